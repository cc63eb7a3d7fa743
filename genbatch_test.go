package printplate

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	dir := setupBaseDir(t)
	writeTestFile(t, dir, "layouts/aalto.json", strings.Replace(testLayoutJSON, `"classic"`, `"aalto"`, 1))
	batchPath := filepath.Join(dir, "batch.json")

	batch, err := GenerateBatch(dir, batchPath, 42)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}

	// Every layout appears exactly once.
	if len(batch.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(batch.Entries))
	}
	seen := map[string]int{}
	for _, e := range batch.Entries {
		seen[e.Layout]++
		if e.FrontTheme == "" || e.BackTheme == "" {
			t.Errorf("entry %q missing themes", e.Layout)
		}
	}
	for _, layout := range []string{"aalto", "classic"} {
		if seen[layout] != 1 {
			t.Errorf("layout %q appears %d times, want 1", layout, seen[layout])
		}
	}

	// The written file loads back as a valid batch.
	loaded, err := LoadBatch(batchPath)
	if err != nil {
		t.Fatalf("generated batch does not load: %v", err)
	}
	if loaded.Mode != ModeDesign {
		t.Errorf("mode = %q, want design default", loaded.Mode)
	}
}

func TestGenerateBatch_Deterministic(t *testing.T) {
	t.Parallel()

	dir := setupBaseDir(t)

	a, err := GenerateBatch(dir, filepath.Join(dir, "a.json"), 7)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	b, err := GenerateBatch(dir, filepath.Join(dir, "b.json"), 7)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if !reflect.DeepEqual(a.Entries, b.Entries) {
		t.Errorf("same seed produced different entries:\n%v\n%v", a.Entries, b.Entries)
	}
}

func TestGenerateBatch_ThemeCoverage(t *testing.T) {
	t.Parallel()

	// Four layouts, two themes: round-robin assignment must use every
	// theme at least once on each side, whatever the seed shuffles.
	dir := setupBaseDir(t)
	for _, name := range []string{"aalto", "breuer", "corbu"} {
		writeTestFile(t, dir, "layouts/"+name+".json",
			strings.Replace(testLayoutJSON, `"classic"`, `"`+name+`"`, 1))
	}

	for _, seed := range []int64{0, 7, 99} {
		batch, err := GenerateBatch(dir, filepath.Join(dir, "batch.json"), seed)
		if err != nil {
			t.Fatalf("GenerateBatch(seed %d) error = %v", seed, err)
		}
		front, back := map[string]bool{}, map[string]bool{}
		for _, e := range batch.Entries {
			front[e.FrontTheme] = true
			back[e.BackTheme] = true
		}
		for _, theme := range []string{"harbor_dark", "harbor_light"} {
			if !front[theme] {
				t.Errorf("seed %d: theme %q never used as front", seed, theme)
			}
			if !back[theme] {
				t.Errorf("seed %d: theme %q never used as back", seed, theme)
			}
		}
	}
}

func TestGenerateBatch_PreservesGlobals(t *testing.T) {
	t.Parallel()

	dir := setupBaseDir(t)
	batchPath := writeTestFile(t, dir, "batch.json", `{
  "mode": "print",
  "text_path": "samples/caption.md",
  "batch": [
    {"layout": "stale", "front_theme": "stale", "back_theme": "stale"}
  ]
}`)

	batch, err := GenerateBatch(dir, batchPath, 1)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if batch.Mode != ModePrint {
		t.Errorf("mode = %q, existing mode dropped", batch.Mode)
	}
	if batch.TextPath != "samples/caption.md" {
		t.Errorf("text_path = %q, existing path dropped", batch.TextPath)
	}
	for _, e := range batch.Entries {
		if e.Layout == "stale" {
			t.Error("stale entries were not regenerated")
		}
	}
}

func TestGenerateBatch_EmptyDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "layouts/.keep", "")
	writeTestFile(t, dir, "themes/.keep", "")

	if _, err := GenerateBatch(dir, filepath.Join(dir, "batch.json"), 0); !errors.Is(err, ErrLayoutNotFound) {
		t.Errorf("error = %v, want ErrLayoutNotFound", err)
	}
}
