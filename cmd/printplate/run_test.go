package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliLayoutJSON = `{
  "name": "classic",
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "img_pos": {"left": 1.25, "top": 2},
    "caption_dims": {"width": 6, "height": 2},
    "caption_pos": {"left": 1.25, "top": 7}
  },
  "back": {}
}`

const cliThemeJSON = `{
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

// setupCLIDir writes a minimal base directory with one layout and theme.
func setupCLIDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("layouts/classic.json", cliLayoutJSON)
	write("themes/harbor_light.json", cliThemeJSON)
	return dir
}

func TestRunGenBatchThenRunBatch(t *testing.T) {
	t.Parallel()

	dir := setupCLIDir(t)
	batchPath := filepath.Join(dir, "batch.json")

	if err := runGenBatch([]string{"-b", batchPath, "-d", dir, "--seed", "3", "-q"}); err != nil {
		t.Fatalf("gen-batch: %v", err)
	}
	if _, err := os.Stat(batchPath); err != nil {
		t.Fatalf("batch file not written: %v", err)
	}

	if err := runBatch([]string{"-q", batchPath}); err != nil {
		t.Fatalf("batch run: %v", err)
	}
	outputs, err := filepath.Glob(filepath.Join(dir, "output", "*.png"))
	if err != nil || len(outputs) != 2 {
		t.Fatalf("outputs = %v (err %v), want front and back PNGs", outputs, err)
	}
}

func TestRunBatch_FailedEntryExitsNonZero(t *testing.T) {
	t.Parallel()

	dir := setupCLIDir(t)
	batchPath := filepath.Join(dir, "batch.json")
	content := `{
  "mode": "design",
  "batch": [
    {"layout": "classic", "front_theme": "missing", "back_theme": "harbor_light"}
  ]
}`
	if err := os.WriteFile(batchPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	err := runBatch([]string{"-q", batchPath})
	if !errors.Is(err, errEntriesFailed) {
		t.Errorf("error = %v, want errEntriesFailed", err)
	}
}

func TestRunImportTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "palette.css")
	css := `.sea-1-hex { color: #0D1821; }
.sea-2-hex { color: #344966; }
.sea-3-hex { color: #B4CDED; }
.sea-4-hex { color: #F0F4EF; }
.sea-5-hex { color: #BFCC94; }`
	if err := os.WriteFile(cssPath, []byte(css), 0o600); err != nil {
		t.Fatalf("write css: %v", err)
	}

	if err := runImportTheme([]string{"-q", "-d", dir, cssPath}); err != nil {
		t.Fatalf("import-theme: %v", err)
	}
	themes, err := filepath.Glob(filepath.Join(dir, "themes", "sea_*.json"))
	if err != nil || len(themes) != 2 {
		t.Fatalf("themes = %v (err %v), want light and dark", themes, err)
	}
	for _, th := range themes {
		data, err := os.ReadFile(th)
		if err != nil {
			t.Fatalf("read theme: %v", err)
		}
		if !strings.Contains(string(data), `"styles"`) {
			t.Errorf("theme %s missing styles block", th)
		}
	}
}
