package printplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maela/go-printplate/internal/configutil"
)

// Palette is a theme resolved to concrete hex colors for every semantic
// role. Resolution is pure: the same theme always yields the same palette.
type Palette struct {
	PaperBackground   string
	PaperBorder       string
	ImgBackground     string
	ImgBorder         string
	CaptionBackground string
	CaptionBorder     string
	NoteBackground    string
	NoteBorder        string
	FontColor         string
}

// LoadTheme reads and validates a theme JSON file. A missing file is
// reported as ErrThemeNotFound; malformed content as ErrInvalidTheme.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- theme path comes from the batch file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var t Theme
	if err := configutil.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, path, err)
	}

	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &t, nil
}

// Validate checks the mode flag, the five colors and the style mapping.
func (t *Theme) Validate() error {
	switch t.Mode {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: mode must be %q or %q, got %q",
			ErrInvalidTheme, ThemeLight, ThemeDark, t.Mode)
	}

	colors := map[string]string{
		"background": t.Colors.Background,
		"base":       t.Colors.Base,
		"secondary":  t.Colors.Secondary,
		"accent":     t.Colors.Accent,
		"text":       t.Colors.Text,
	}
	for name, hex := range colors {
		if hex == "" {
			return fmt.Errorf("%w: color %q is not defined", ErrInvalidTheme, name)
		}
		if !isHexColor(hex) {
			return fmt.Errorf("%w: color %q is not a hex color: %q", ErrInvalidTheme, name, hex)
		}
	}

	_, err := t.Resolve()
	return err
}

// Resolve maps every semantic role to its concrete hex color. A style
// value naming an undefined color is a reference error; a role is never
// left null or undefined in output.
func (t *Theme) Resolve() (*Palette, error) {
	var p Palette
	roles := []struct {
		role string
		name string
		dst  *string
	}{
		{"paper_background", t.Styles.PaperBackground, &p.PaperBackground},
		{"paper_border", t.Styles.PaperBorder, &p.PaperBorder},
		{"img_background", t.Styles.ImgBackground, &p.ImgBackground},
		{"img_border", t.Styles.ImgBorder, &p.ImgBorder},
		{"caption_background", t.Styles.CaptionBackground, &p.CaptionBackground},
		{"caption_border", t.Styles.CaptionBorder, &p.CaptionBorder},
		{"note_background", t.Styles.NoteBackground, &p.NoteBackground},
		{"note_border", t.Styles.NoteBorder, &p.NoteBorder},
		{"font_color", t.Styles.FontColor, &p.FontColor},
	}

	for _, r := range roles {
		if r.name == "" {
			return nil, fmt.Errorf("%w: role %q has no color assigned", ErrInvalidTheme, r.role)
		}
		hex, ok := t.Colors.lookup(r.name)
		if !ok {
			return nil, fmt.Errorf("%w: role %q references %q", ErrColorReference, r.role, r.name)
		}
		*r.dst = hex
	}
	return &p, nil
}

// themePath returns the conventional path of a named theme below baseDir.
func themePath(baseDir, name string) string {
	return filepath.Join(baseDir, "themes", name+".json")
}
