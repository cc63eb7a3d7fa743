package printplate

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/maela/go-printplate/internal/configutil"
	"github.com/maela/go-printplate/internal/fileutil"
)

// GenerateBatch builds a batch covering every discoverable layout exactly
// once, pairing each with front and back themes from a seeded round-robin
// shuffle so every theme gets used on both sides when the layout count
// allows, and repeated runs with the same seed produce the same batch. When a batch
// file already exists at batchPath its mode and sample paths are preserved;
// only the entries are regenerated. The result is written to batchPath and
// returned.
func GenerateBatch(baseDir, batchPath string, seed int64) (*Batch, error) {
	layouts, err := ListLayouts(baseDir)
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("%w: no layouts under %q", ErrLayoutNotFound, filepath.Join(baseDir, "layouts"))
	}
	themes, err := ListThemes(baseDir)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("%w: no themes under %q", ErrThemeNotFound, filepath.Join(baseDir, "themes"))
	}

	batch := &Batch{Mode: ModeDesign}
	if fileutil.FileExists(batchPath) {
		// Lenient read: an existing batch keeps its globals even when its
		// entry list would not validate.
		if data, err := os.ReadFile(batchPath); err == nil { // #nosec G304 -- user-supplied batch path
			var existing Batch
			if err := configutil.Unmarshal(data, &existing); err == nil && existing.Mode != "" {
				batch.Mode = existing.Mode
				batch.ImagePathLandscape = existing.ImagePathLandscape
				batch.ImagePathPortrait = existing.ImagePathPortrait
				batch.TextPath = existing.TextPath
				batch.PersonalNotePath = existing.PersonalNotePath
			}
		}
	}

	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = strings.TrimSuffix(filepath.Base(t.Path), ".json")
	}

	// Repeat the sorted theme list until it covers every layout, then
	// shuffle each side independently. With at least as many layouts as
	// themes, every theme appears at least once as front and as back.
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic shuffle, not security sensitive
	repeats := (len(layouts) + len(names) - 1) / len(names)
	front := make([]string, 0, repeats*len(names))
	for i := 0; i < repeats; i++ {
		front = append(front, names...)
	}
	front = front[:len(layouts)]
	back := append([]string(nil), front...)
	rng.Shuffle(len(front), func(i, j int) { front[i], front[j] = front[j], front[i] })
	rng.Shuffle(len(back), func(i, j int) { back[i], back[j] = back[j], back[i] })

	for i, l := range layouts {
		batch.Entries = append(batch.Entries, BatchEntry{
			Layout:     strings.TrimSuffix(filepath.Base(l.Path), ".json"),
			FrontTheme: front[i],
			BackTheme:  back[i],
		})
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := os.WriteFile(batchPath, append(out, '\n'), 0o644); err != nil { // #nosec G306 -- batch configs are world-readable
		return nil, fmt.Errorf("failed to write batch %q: %w", batchPath, err)
	}
	return batch, nil
}
