package printplate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// Render modes.
const (
	ModeDesign = "design"
	ModePrint  = "print"
)

// Side selects which face of a print an operation applies to.
type Side string

// Print sides.
const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Special layout modes.
const (
	// SpecialDoubleCol splits the caption box into two equal columns
	// separated by the layout's gutter.
	SpecialDoubleCol = "double_col"
)

// Default text style values, applied when a layout omits text_style.
const (
	DefaultFont     = "Georgia, serif"
	DefaultFontSize = 10.0 // points
	AlignLeft       = "left"
	AlignCenter     = "center"
	AlignRight      = "right"
	AlignJustify    = "justify"
	AlignTop        = "top"
	AlignMiddle     = "middle"
	AlignBottom     = "bottom"
)

// Dimensions is a width and height in inches.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate checks that both dimensions are positive.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %.2f x %.2f", ErrInvalidDimensions, d.Width, d.Height)
	}
	return nil
}

// Position places a box within the paper. All values are inches measured
// from the named paper edge. An axis with no field set centers the box on
// that axis.
type Position struct {
	Left   *float64 `yaml:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
	Top    *float64 `yaml:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
}

// TextStyle holds per-box typography settings.
type TextStyle struct {
	AlignH string  `yaml:"align_h,omitempty"` // left, center, right, justify
	AlignV string  `yaml:"align_v,omitempty"` // top, middle, bottom
	Font   string  `yaml:"font,omitempty"`    // CSS font-family list
	Size   float64 `yaml:"size,omitempty"`    // points
}

// DefaultTextStyle returns the style used when a layout omits text_style.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		AlignH: AlignLeft,
		AlignV: AlignTop,
		Font:   DefaultFont,
		Size:   DefaultFontSize,
	}
}

// withDefaults fills unset fields from DefaultTextStyle.
func (t TextStyle) withDefaults() TextStyle {
	def := DefaultTextStyle()
	if t.AlignH == "" {
		t.AlignH = def.AlignH
	}
	if t.AlignV == "" {
		t.AlignV = def.AlignV
	}
	if t.Font == "" {
		t.Font = def.Font
	}
	if t.Size == 0 {
		t.Size = def.Size
	}
	return t
}

// Validate checks alignment values and size.
func (t TextStyle) Validate() error {
	switch t.AlignH {
	case "", AlignLeft, AlignCenter, AlignRight, AlignJustify:
	default:
		return fmt.Errorf("%w: align_h %q", ErrInvalidTextStyle, t.AlignH)
	}
	switch t.AlignV {
	case "", AlignTop, AlignMiddle, AlignBottom:
	default:
		return fmt.Errorf("%w: align_v %q", ErrInvalidTextStyle, t.AlignV)
	}
	if t.Size < 0 {
		return fmt.Errorf("%w: size %.1f", ErrInvalidTextStyle, t.Size)
	}
	return nil
}

// FrontBorders holds border widths in inches for the front side. A nil
// value means no border. The paper border is drawn inset (inward from the
// paper edge); box borders are drawn outset (outward from the box).
type FrontBorders struct {
	Paper   *float64 `yaml:"paper,omitempty"`
	Img     *float64 `yaml:"img,omitempty"`
	Caption *float64 `yaml:"caption,omitempty"`
}

// BackBorders holds border widths in inches for the back side.
type BackBorders struct {
	Paper *float64 `yaml:"paper,omitempty"`
	Note  *float64 `yaml:"note,omitempty"`
}

// FrontLayout describes the image and caption boxes of the front side.
type FrontLayout struct {
	ImgDims      Dimensions   `yaml:"img_dims"`
	ImgPos       Position     `yaml:"img_pos"`
	CaptionDims  Dimensions   `yaml:"caption_dims"`
	CaptionPos   Position     `yaml:"caption_pos"`
	Special      string       `yaml:"special,omitempty"` // "" or "double_col"
	Gutter       float64      `yaml:"gutter,omitempty"`  // inches, double_col only
	TextStyle    *TextStyle   `yaml:"text_style,omitempty"`
	BorderWidths FrontBorders `yaml:"border_widths,omitempty"`
}

// NotePosition is either the literal "centered" or an absolute Position.
type NotePosition struct {
	Centered bool
	At       *Position
}

// UnmarshalYAML accepts the JSON string "centered" or a position object.
func (p *NotePosition) UnmarshalYAML(data []byte) error {
	var s string
	if err := yaml.Unmarshal(data, &s); err == nil {
		if s != "centered" {
			return fmt.Errorf("%w: %q", ErrInvalidNotePos, s)
		}
		*p = NotePosition{Centered: true}
		return nil
	}
	var pos Position
	if err := yaml.Unmarshal(data, &pos); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNotePos, err)
	}
	*p = NotePosition{At: &pos}
	return nil
}

// MarshalYAML emits the same shapes UnmarshalYAML accepts.
func (p NotePosition) MarshalYAML() ([]byte, error) {
	if p.At != nil {
		return yaml.Marshal(p.At)
	}
	return yaml.Marshal("centered")
}

// BackLayout describes the personal note box of the back side.
type BackLayout struct {
	// NoteDims defaults by paper width when omitted: 6x9 for 8.5"-wide
	// paper, 7x10 otherwise.
	NoteDims     *Dimensions  `yaml:"note_dims,omitempty"`
	NotePos      NotePosition `yaml:"note_pos,omitempty"`
	TextStyle    *TextStyle   `yaml:"text_style,omitempty"`
	BorderWidths BackBorders  `yaml:"border_widths,omitempty"`
}

// Layout is the geometry-only description of a print template. Layouts are
// immutable after load.
type Layout struct {
	Name      string      `yaml:"name"`
	Title     string      `yaml:"title,omitempty"`
	PaperSize Dimensions  `yaml:"paper_size"`
	Front     FrontLayout `yaml:"front"`
	Back      BackLayout  `yaml:"back"`
	Notes     string      `yaml:"notes,omitempty"`
}

// Theme modes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ColorSet names the five colors of a theme.
type ColorSet struct {
	Background string `yaml:"background" json:"background"`
	Base       string `yaml:"base" json:"base"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Text       string `yaml:"text" json:"text"`
}

// lookup returns the color registered under name.
func (c ColorSet) lookup(name string) (string, bool) {
	switch name {
	case "background":
		return c.Background, true
	case "base":
		return c.Base, true
	case "secondary":
		return c.Secondary, true
	case "accent":
		return c.Accent, true
	case "text":
		return c.Text, true
	}
	return "", false
}

// StyleMap assigns one of the five color names to each semantic role.
type StyleMap struct {
	PaperBackground   string `yaml:"paper_background" json:"paper_background"`
	PaperBorder       string `yaml:"paper_border" json:"paper_border"`
	ImgBackground     string `yaml:"img_background" json:"img_background"`
	ImgBorder         string `yaml:"img_border" json:"img_border"`
	CaptionBackground string `yaml:"caption_background" json:"caption_background"`
	CaptionBorder     string `yaml:"caption_border" json:"caption_border"`
	NoteBackground    string `yaml:"note_background" json:"note_background"`
	NoteBorder        string `yaml:"note_border" json:"note_border"`
	FontColor         string `yaml:"font_color" json:"font_color"`
}

// Theme is the color-only description of a print: five named colors plus a
// role-to-color mapping. Themes are immutable after load.
type Theme struct {
	Name   string   `yaml:"name" json:"name"`
	Source string   `yaml:"source,omitempty" json:"source,omitempty"`
	Mode   string   `yaml:"mode" json:"mode"` // "light" or "dark"
	Colors ColorSet `yaml:"colors" json:"colors"`
	Styles StyleMap `yaml:"styles" json:"styles"`
}

// BatchEntry names one layout/theme combination to render.
type BatchEntry struct {
	Layout     string `yaml:"layout" json:"layout"`
	FrontTheme string `yaml:"front_theme" json:"front_theme"`
	BackTheme  string `yaml:"back_theme" json:"back_theme"`
}

// Batch is the top-level run descriptor: a render mode, optional shared
// sample content paths, and the entries to render.
type Batch struct {
	Mode               string       `yaml:"mode" json:"mode"`
	ImagePathLandscape string       `yaml:"image_path_landscape,omitempty" json:"image_path_landscape,omitempty"`
	ImagePathPortrait  string       `yaml:"image_path_portrait,omitempty" json:"image_path_portrait,omitempty"`
	TextPath           string       `yaml:"text_path,omitempty" json:"text_path,omitempty"`
	PersonalNotePath   string       `yaml:"personal_note_path,omitempty" json:"personal_note_path,omitempty"`
	Entries            []BatchEntry `yaml:"batch" json:"batch"`
}

// hexColorPattern matches #RGB or #RRGGBB colors.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// isHexColor reports whether s is a #RGB or #RRGGBB color.
func isHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// sanitizeName converts a layout or theme name into a safe file name
// fragment: lowercased, with path separators and whitespace collapsed to
// underscores.
func sanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}
	return strings.Map(mapper, name)
}
