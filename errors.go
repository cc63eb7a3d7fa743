package printplate

import "errors"

// Sentinel errors, grouped by the project's error taxonomy.
var (
	// Configuration errors: malformed or missing required fields,
	// unrecognized values.
	ErrUnknownMode       = errors.New("unknown render mode")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrInvalidBatch      = errors.New("invalid batch file")
	ErrInvalidDimensions = errors.New("dimensions must be positive")
	ErrInvalidTextStyle  = errors.New("invalid text style")
	ErrInvalidNotePos    = errors.New("invalid note position")

	// Reference errors: an entry names something that does not exist.
	ErrLayoutNotFound = errors.New("layout not found")
	ErrThemeNotFound  = errors.New("theme not found")
	ErrColorReference = errors.New("theme style references undefined color")

	// Geometry errors.
	ErrLayoutOutOfBounds = errors.New("layout out of bounds")

	// Resource errors: declared sample content is unavailable. These are
	// recovered locally by placeholder rendering and never fail an entry.
	ErrSampleNotFound = errors.New("sample content not found")

	// Rendering errors.
	ErrMarkdownConversion = errors.New("markdown conversion failed")
	ErrTemplateRender     = errors.New("page template rendering failed")
	ErrDiagramEncode      = errors.New("diagram PNG encoding failed")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Theme import errors.
	ErrPaletteParse = errors.New("could not parse color palette")
)
