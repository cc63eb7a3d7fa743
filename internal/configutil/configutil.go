// Package configutil wraps the YAML parser used for configuration files.
// YAML 1.2 is a superset of JSON, so the project's .json layout, theme and
// batch files parse through the same code path as hand-written YAML, and
// the external dependency stays isolated behind this package.
package configutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("configutil: nil or empty data")
	ErrNilDestination = errors.New("configutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("configutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal parses JSON or YAML data into v.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("configutil: %w", err)
	}
	return nil
}

// UnmarshalStrict parses JSON or YAML data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("configutil: %w", err)
	}
	return nil
}
