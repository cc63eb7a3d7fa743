package printplate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/maela/go-printplate/internal/configutil"
)

// LoadBatch reads and validates a batch descriptor.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied batch path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBatch, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}

	var b Batch
	if err := configutil.UnmarshalStrict(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks the batch mode and entry references.
func (b *Batch) Validate() error {
	switch b.Mode {
	case ModeDesign, ModePrint:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, b.Mode)
	}
	if len(b.Entries) == 0 {
		return fmt.Errorf("%w: empty batch", ErrInvalidBatch)
	}
	for i, e := range b.Entries {
		if e.Layout == "" {
			return fmt.Errorf("%w: entry %d missing layout", ErrInvalidBatch, i)
		}
		if e.FrontTheme == "" {
			return fmt.Errorf("%w: entry %d missing front_theme", ErrInvalidBatch, i)
		}
		if e.BackTheme == "" {
			return fmt.Errorf("%w: entry %d missing back_theme", ErrInvalidBatch, i)
		}
	}
	return nil
}
