package printplate

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// adobeColorPattern matches the class rules of an Adobe Color CSS export:
//
//	.palette-name-1-hex { color: #0D1821; }
var adobeColorPattern = regexp.MustCompile(`\.([A-Za-z0-9_-]+)-(\d+)-hex\s*\{\s*color:\s*(#[A-Fa-f0-9]{6})`)

// AdobePalette is the parsed form of an Adobe Color CSS export: the palette
// name and its swatches in declaration order.
type AdobePalette struct {
	Name   string
	Colors []string
}

// ParseAdobeCSS extracts the palette from an Adobe Color CSS export. A
// theme needs five colors; exports with fewer are rejected.
func ParseAdobeCSS(data []byte) (*AdobePalette, error) {
	matches := adobeColorPattern.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no color rules found", ErrPaletteParse)
	}

	p := &AdobePalette{Name: matches[0][1]}
	seen := map[int]bool{}
	type indexed struct {
		idx int
		hex string
	}
	var colors []indexed
	for _, m := range matches {
		idx, err := strconv.Atoi(m[2])
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		colors = append(colors, indexed{idx: idx, hex: strings.ToUpper(m[3])})
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].idx < colors[j].idx })
	for _, c := range colors {
		p.Colors = append(p.Colors, c.hex)
	}

	if len(p.Colors) < 5 {
		return nil, fmt.Errorf("%w: palette %q has %d colors, need 5", ErrPaletteParse, p.Name, len(p.Colors))
	}
	p.Colors = p.Colors[:5]
	return p, nil
}

// relativeLuminance computes the WCAG relative luminance of a #RRGGBB color.
func relativeLuminance(hex string) float64 {
	channel := func(s string) float64 {
		v, _ := strconv.ParseUint(s, 16, 8)
		c := float64(v) / 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	hex = strings.TrimPrefix(hex, "#")
	return 0.2126*channel(hex[0:2]) + 0.7152*channel(hex[2:4]) + 0.0722*channel(hex[4:6])
}

// contrastRatio computes the WCAG contrast ratio between two colors.
func contrastRatio(a, b string) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// AssignRoles maps five palette colors onto a theme ColorSet for the given
// mode. The third swatch of the export order is always base. Light mode
// picks the lightest color as background, dark mode the darkest; text is
// the color with the highest contrast against the chosen background. Of
// what is left, light mode takes the lighter color as secondary and the
// darker as accent, dark mode the reverse; base fills any gap.
func AssignRoles(colors []string, mode string) (ColorSet, error) {
	if len(colors) != 5 {
		return ColorSet{}, fmt.Errorf("%w: need exactly 5 colors, got %d", ErrPaletteParse, len(colors))
	}
	base := colors[2]

	byLum := append([]string(nil), colors...)
	sort.Slice(byLum, func(i, j int) bool {
		return relativeLuminance(byLum[i]) > relativeLuminance(byLum[j])
	})

	var background string
	switch mode {
	case ThemeLight:
		background = byLum[0]
	case ThemeDark:
		background = byLum[len(byLum)-1]
	default:
		return ColorSet{}, fmt.Errorf("%w: mode %q", ErrInvalidTheme, mode)
	}

	var rest []string
	for _, c := range colors {
		if c != background {
			rest = append(rest, c)
		}
	}
	if len(rest) == 0 {
		return ColorSet{}, fmt.Errorf("%w: palette has no contrast", ErrPaletteParse)
	}
	text := rest[0]
	for _, c := range rest[1:] {
		if contrastRatio(c, background) > contrastRatio(text, background) {
			text = c
		}
	}

	var remaining []string
	for _, c := range rest {
		if c != base && c != text {
			remaining = append(remaining, c)
		}
	}
	secondary, accent := base, base
	switch {
	case len(remaining) >= 2:
		sort.Slice(remaining, func(i, j int) bool {
			return relativeLuminance(remaining[i]) > relativeLuminance(remaining[j])
		})
		if mode == ThemeLight {
			secondary, accent = remaining[0], remaining[len(remaining)-1]
		} else {
			secondary, accent = remaining[len(remaining)-1], remaining[0]
		}
	case len(remaining) == 1:
		secondary = remaining[0]
	}

	return ColorSet{
		Background: background,
		Base:       base,
		Secondary:  secondary,
		Accent:     accent,
		Text:       text,
	}, nil
}

// defaultStyles is the role mapping given to imported themes: content boxes
// tinted with the secondary color, accent borders, base paper border.
func defaultStyles() StyleMap {
	return StyleMap{
		PaperBackground:   "background",
		PaperBorder:       "base",
		ImgBackground:     "secondary",
		ImgBorder:         "accent",
		CaptionBackground: "secondary",
		CaptionBorder:     "accent",
		NoteBackground:    "secondary",
		NoteBorder:        "accent",
		FontColor:         "text",
	}
}

// ImportPalette parses an Adobe Color CSS export and writes a light and a
// dark theme file under <baseDir>/themes. It returns the written paths.
func ImportPalette(cssPath, baseDir string) ([]string, error) {
	data, err := os.ReadFile(cssPath) // #nosec G304 -- user-supplied palette path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaletteParse, err)
	}
	palette, err := ParseAdobeCSS(data)
	if err != nil {
		return nil, err
	}

	themesDir := filepath.Join(baseDir, "themes")
	if err := os.MkdirAll(themesDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create themes directory: %w", err)
	}

	var written []string
	for _, mode := range []string{ThemeLight, ThemeDark} {
		colors, err := AssignRoles(palette.Colors, mode)
		if err != nil {
			return written, err
		}
		theme := Theme{
			Name:   sanitizeName(palette.Name),
			Source: filepath.Base(cssPath),
			Mode:   mode,
			Colors: colors,
			Styles: defaultStyles(),
		}
		if err := theme.Validate(); err != nil {
			return written, err
		}

		out, err := json.MarshalIndent(theme, "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to encode theme: %w", err)
		}
		path := filepath.Join(themesDir, theme.Name+"_"+mode+".json")
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil { // #nosec G306 -- theme configs are world-readable
			return written, fmt.Errorf("failed to write theme %q: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
