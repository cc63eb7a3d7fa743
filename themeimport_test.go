package printplate

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const testAdobeCSS = `/* Color Theme Swatches in Hex */
.dusk-harbor-1-hex { color: #0D1821; }
.dusk-harbor-2-hex { color: #344966; }
.dusk-harbor-3-hex { color: #B4CDED; }
.dusk-harbor-4-hex { color: #F0F4EF; }
.dusk-harbor-5-hex { color: #BFCC94; }
`

func TestParseAdobeCSS(t *testing.T) {
	t.Parallel()

	p, err := ParseAdobeCSS([]byte(testAdobeCSS))
	if err != nil {
		t.Fatalf("ParseAdobeCSS() error = %v", err)
	}
	if p.Name != "dusk-harbor" {
		t.Errorf("Name = %q, want dusk-harbor", p.Name)
	}
	want := []string{"#0D1821", "#344966", "#B4CDED", "#F0F4EF", "#BFCC94"}
	if len(p.Colors) != 5 {
		t.Fatalf("got %d colors, want 5", len(p.Colors))
	}
	for i, c := range want {
		if p.Colors[i] != c {
			t.Errorf("color %d = %q, want %q", i, p.Colors[i], c)
		}
	}
}

func TestParseAdobeCSS_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no color rules", input: "body { margin: 0; }"},
		{name: "too few colors", input: ".p-1-hex { color: #111111; }\n.p-2-hex { color: #222222; }"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseAdobeCSS([]byte(tt.input)); !errors.Is(err, ErrPaletteParse) {
				t.Errorf("error = %v, want ErrPaletteParse", err)
			}
		})
	}
}

func TestRelativeLuminance(t *testing.T) {
	t.Parallel()

	if l := relativeLuminance("#FFFFFF"); l < 0.99 {
		t.Errorf("white luminance = %.3f, want ~1", l)
	}
	if l := relativeLuminance("#000000"); l > 0.01 {
		t.Errorf("black luminance = %.3f, want ~0", l)
	}
	if lw, lb := relativeLuminance("#F0F4EF"), relativeLuminance("#0D1821"); lw <= lb {
		t.Error("light swatch should outshine dark swatch")
	}
}

func TestContrastRatio(t *testing.T) {
	t.Parallel()

	if r := contrastRatio("#FFFFFF", "#000000"); r < 20.9 || r > 21.1 {
		t.Errorf("white/black contrast = %.2f, want 21", r)
	}
	// Symmetric.
	if contrastRatio("#344966", "#F0F4EF") != contrastRatio("#F0F4EF", "#344966") {
		t.Error("contrast ratio is not symmetric")
	}
}

func TestAssignRoles(t *testing.T) {
	t.Parallel()

	colors := []string{"#0D1821", "#344966", "#B4CDED", "#F0F4EF", "#BFCC94"}

	light, err := AssignRoles(colors, ThemeLight)
	if err != nil {
		t.Fatalf("AssignRoles(light) error = %v", err)
	}
	// The third swatch is always base. The lightest swatch becomes the
	// light-mode background; the darkest has the highest contrast against
	// it and becomes text; of the two left over, the lighter is secondary.
	want := ColorSet{
		Background: "#F0F4EF",
		Base:       "#B4CDED",
		Secondary:  "#BFCC94",
		Accent:     "#344966",
		Text:       "#0D1821",
	}
	if light != want {
		t.Errorf("light roles = %+v, want %+v", light, want)
	}

	dark, err := AssignRoles(colors, ThemeDark)
	if err != nil {
		t.Fatalf("AssignRoles(dark) error = %v", err)
	}
	// Dark mode flips background/text and the secondary/accent ordering.
	want = ColorSet{
		Background: "#0D1821",
		Base:       "#B4CDED",
		Secondary:  "#344966",
		Accent:     "#BFCC94",
		Text:       "#F0F4EF",
	}
	if dark != want {
		t.Errorf("dark roles = %+v, want %+v", dark, want)
	}

	if _, err := AssignRoles(colors, "sepia"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("error = %v, want ErrInvalidTheme", err)
	}
	if _, err := AssignRoles(colors[:3], ThemeLight); !errors.Is(err, ErrPaletteParse) {
		t.Errorf("error = %v, want ErrPaletteParse", err)
	}
}

func TestImportPalette(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := writeTestFile(t, dir, "dusk-harbor.css", testAdobeCSS)

	written, err := ImportPalette(cssPath, dir)
	if err != nil {
		t.Fatalf("ImportPalette() error = %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("got %d files, want 2", len(written))
	}

	wantNames := []string{"dusk-harbor_light.json", "dusk-harbor_dark.json"}
	for i, path := range written {
		if got := filepath.Base(path); got != wantNames[i] {
			t.Errorf("file %d = %q, want %q", i, got, wantNames[i])
		}
		// Written themes round-trip through the loader and resolve cleanly.
		th, err := LoadTheme(path)
		if err != nil {
			t.Fatalf("LoadTheme(%q): %v", path, err)
		}
		if th.Name != "dusk-harbor" {
			t.Errorf("theme name = %q, want dusk-harbor", th.Name)
		}
		if th.Source != "dusk-harbor.css" {
			t.Errorf("theme source = %q", th.Source)
		}
		if th.Styles.CaptionBackground != "secondary" || th.Styles.NoteBackground != "secondary" {
			t.Errorf("content boxes not tinted with secondary: %+v", th.Styles)
		}
		if _, err := th.Resolve(); err != nil {
			t.Errorf("imported theme does not resolve: %v", err)
		}
	}

	// Themes land in the discoverable themes directory.
	infos, err := ListThemes(dir)
	if err != nil {
		t.Fatalf("ListThemes() error = %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("got %d discoverable themes, want 2", len(infos))
	}
}

func TestImportPalette_BadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := ImportPalette(filepath.Join(dir, "missing.css"), dir); !errors.Is(err, ErrPaletteParse) {
		t.Errorf("error = %v, want ErrPaletteParse", err)
	}

	bad := writeTestFile(t, dir, "bad.css", "body{}")
	if _, err := ImportPalette(bad, dir); !errors.Is(err, ErrPaletteParse) {
		t.Errorf("error = %v, want ErrPaletteParse", err)
	}
	if strings.Contains(bad, "themes") {
		t.Fatal("fixture placed wrongly")
	}
}
