package printplate

import (
	"os"
	"path/filepath"
	"testing"
)

// Shared fixtures for package tests: one 8.5x11 layout with a centered
// image/caption stack, plus a light and a dark theme.

const testLayoutJSON = `{
  "name": "classic",
  "title": "Classic Frame",
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "img_pos": {"left": 1.25, "top": 2},
    "caption_dims": {"width": 6, "height": 2},
    "caption_pos": {"left": 1.25, "top": 7},
    "border_widths": {"paper": 0.125, "img": 0.0625}
  },
  "back": {
    "note_pos": "centered"
  },
  "notes": "Hang at 57 inches center."
}`

const testThemeLightJSON = `{
  "name": "harbor",
  "mode": "light",
  "colors": {
    "background": "#FFFFFF",
    "base": "#0D1821",
    "secondary": "#E8EFF5",
    "accent": "#1E3D59",
    "text": "#222222"
  },
  "styles": {
    "paper_background": "background",
    "paper_border": "base",
    "img_background": "secondary",
    "img_border": "accent",
    "caption_background": "background",
    "caption_border": "accent",
    "note_background": "background",
    "note_border": "accent",
    "font_color": "text"
  }
}`

const testThemeDarkJSON = `{
  "name": "harbor",
  "mode": "dark",
  "colors": {
    "background": "#0D1821",
    "base": "#FFFFFF",
    "secondary": "#1E3D59",
    "accent": "#E8EFF5",
    "text": "#F2F2F2"
  },
  "styles": {
    "paper_background": "background",
    "paper_border": "base",
    "img_background": "secondary",
    "img_border": "accent",
    "caption_background": "background",
    "caption_border": "accent",
    "note_background": "background",
    "note_border": "accent",
    "font_color": "text"
  }
}`

// writeTestFile writes content below dir, creating parent directories.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// setupBaseDir creates a base directory with the fixture layout and themes.
func setupBaseDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "layouts/classic.json", testLayoutJSON)
	writeTestFile(t, dir, "themes/harbor_light.json", testThemeLightJSON)
	writeTestFile(t, dir, "themes/harbor_dark.json", testThemeDarkJSON)
	return dir
}

// loadTestPlate resolves the fixture layout and themes into a Plate.
func loadTestPlate(t *testing.T, content *Content) *Plate {
	t.Helper()
	dir := setupBaseDir(t)
	spec, err := GetLayoutSpec(dir, "classic", "harbor_light", "harbor_dark")
	if err != nil {
		t.Fatalf("GetLayoutSpec: %v", err)
	}
	if content == nil {
		content = &Content{}
	}
	return &Plate{Layout: spec.Layout, Front: &spec.Front, Back: &spec.Back, Content: content}
}

// f64 returns a pointer to v for optional layout fields.
func f64(v float64) *float64 { return &v }

// testLayout builds the fixture layout in memory.
func testLayout() *Layout {
	return &Layout{
		Name:      "classic",
		Title:     "Classic Frame",
		PaperSize: Dimensions{Width: 8.5, Height: 11},
		Front: FrontLayout{
			ImgDims:     Dimensions{Width: 6, Height: 4},
			ImgPos:      Position{Left: f64(1.25), Top: f64(2)},
			CaptionDims: Dimensions{Width: 6, Height: 2},
			CaptionPos:  Position{Left: f64(1.25), Top: f64(7)},
			BorderWidths: FrontBorders{
				Paper: f64(0.125),
				Img:   f64(0.0625),
			},
		},
		Back: BackLayout{NotePos: NotePosition{Centered: true}},
	}
}
