package printplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maela/go-printplate/internal/configutil"
)

// Default back-note dimensions by paper width.
var (
	defaultNoteDimsLetter = Dimensions{Width: 6, Height: 9}  // 8.5"-wide paper
	defaultNoteDimsLarge  = Dimensions{Width: 7, Height: 10} // 11x14 and up
)

// LoadLayout reads and validates a layout JSON file. A missing file is
// reported as ErrLayoutNotFound; malformed content as ErrInvalidLayout.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- layout path comes from the batch file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, path)
		}
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var l Layout
	if err := configutil.UnmarshalStrict(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, path, err)
	}

	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if l.Title == "" {
		l.Title = l.Name
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &l, nil
}

// Validate checks dimensions, special modes, text styles and border widths.
// It does not check paper bounds; that is the geometry resolver's job.
func (l *Layout) Validate() error {
	if err := l.PaperSize.Validate(); err != nil {
		return fmt.Errorf("%w: paper_size: %v", ErrInvalidLayout, err)
	}
	if err := l.Front.validate(); err != nil {
		return err
	}
	if err := l.Back.validate(); err != nil {
		return err
	}
	return nil
}

func (f *FrontLayout) validate() error {
	if err := f.ImgDims.Validate(); err != nil {
		return fmt.Errorf("%w: img_dims: %v", ErrInvalidLayout, err)
	}
	if err := f.CaptionDims.Validate(); err != nil {
		return fmt.Errorf("%w: caption_dims: %v", ErrInvalidLayout, err)
	}

	switch f.Special {
	case "":
		if f.Gutter != 0 {
			return fmt.Errorf("%w: gutter set without special mode", ErrInvalidLayout)
		}
	case SpecialDoubleCol:
		if f.Gutter <= 0 {
			return fmt.Errorf("%w: double_col requires a positive gutter", ErrInvalidLayout)
		}
		if f.Gutter >= f.CaptionDims.Width {
			return fmt.Errorf("%w: gutter %.2f exceeds caption width %.2f",
				ErrInvalidLayout, f.Gutter, f.CaptionDims.Width)
		}
	default:
		return fmt.Errorf("%w: unknown special mode %q", ErrInvalidLayout, f.Special)
	}

	if f.TextStyle != nil {
		if err := f.TextStyle.Validate(); err != nil {
			return err
		}
	}
	return validateBorders(f.BorderWidths.Paper, f.BorderWidths.Img, f.BorderWidths.Caption)
}

func (b *BackLayout) validate() error {
	if b.NoteDims != nil {
		if err := b.NoteDims.Validate(); err != nil {
			return fmt.Errorf("%w: note_dims: %v", ErrInvalidLayout, err)
		}
	}
	if b.TextStyle != nil {
		if err := b.TextStyle.Validate(); err != nil {
			return err
		}
	}
	return validateBorders(b.BorderWidths.Paper, b.BorderWidths.Note)
}

func validateBorders(widths ...*float64) error {
	for _, w := range widths {
		if w != nil && *w < 0 {
			return fmt.Errorf("%w: negative border width %.3f", ErrInvalidLayout, *w)
		}
	}
	return nil
}

// BackNoteDims returns the back note dimensions, defaulting by paper width
// when the layout does not declare them.
func (l *Layout) BackNoteDims() Dimensions {
	if l.Back.NoteDims != nil {
		return *l.Back.NoteDims
	}
	if l.PaperSize.Width <= 8.5 {
		return defaultNoteDimsLetter
	}
	return defaultNoteDimsLarge
}

// FrontTextStyle returns the front text style with defaults applied.
func (l *Layout) FrontTextStyle() TextStyle {
	if l.Front.TextStyle != nil {
		return l.Front.TextStyle.withDefaults()
	}
	return DefaultTextStyle()
}

// BackTextStyle returns the back text style with defaults applied.
func (l *Layout) BackTextStyle() TextStyle {
	if l.Back.TextStyle != nil {
		return l.Back.TextStyle.withDefaults()
	}
	return DefaultTextStyle()
}

// layoutPath returns the conventional path of a named layout below baseDir.
func layoutPath(baseDir, name string) string {
	return filepath.Join(baseDir, "layouts", name+".json")
}
