// Package assets provides the embedded resources used by the renderers:
// the print-mode page template, the base print stylesheet, and the greeked
// placeholder text used when sample content is unavailable.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

//go:embed text/*
var text embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadTemplate loads an HTML template by name (without the .html extension).
func LoadTemplate(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// LoadStyle loads a CSS stylesheet by name (without the .css extension).
func LoadStyle(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// GreekText returns the deterministic placeholder paragraph used when
// sample caption or note content is unavailable.
func GreekText() string {
	content, err := text.ReadFile("text/greek.txt")
	if err != nil {
		// The file is embedded at compile time; failure to read it is a
		// broken build, not a runtime condition.
		panic("assets: embedded greek.txt missing: " + err.Error())
	}
	return strings.TrimRight(string(content), "\n")
}

// validateAssetName rejects names that could traverse outside the asset
// directories.
func validateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
