package printplate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LayoutInfo summarizes a discoverable layout.
type LayoutInfo struct {
	Name  string
	Title string
	Paper Dimensions
	Path  string
}

// ThemeInfo summarizes a discoverable theme.
type ThemeInfo struct {
	Name string
	Mode string
	Path string
}

// LayoutSpec is the fully resolved placement and color data for one
// layout and theme pair, both sides.
type LayoutSpec struct {
	Layout *Layout
	Front  SideSpec
	Back   SideSpec
}

// ListLayouts loads every layout under <baseDir>/layouts, sorted by name.
// Files that fail to parse or validate are reported as errors rather than
// silently skipped.
func ListLayouts(baseDir string) ([]LayoutInfo, error) {
	paths, err := listJSONFiles(filepath.Join(baseDir, "layouts"))
	if err != nil {
		return nil, err
	}

	infos := make([]LayoutInfo, 0, len(paths))
	for _, p := range paths {
		l, err := LoadLayout(p)
		if err != nil {
			return nil, err
		}
		infos = append(infos, LayoutInfo{Name: l.Name, Title: l.Title, Paper: l.PaperSize, Path: p})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// ListThemes loads every theme under <baseDir>/themes, sorted by name.
func ListThemes(baseDir string) ([]ThemeInfo, error) {
	paths, err := listJSONFiles(filepath.Join(baseDir, "themes"))
	if err != nil {
		return nil, err
	}

	infos := make([]ThemeInfo, 0, len(paths))
	for _, p := range paths {
		t, err := LoadTheme(p)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ThemeInfo{Name: t.Name, Mode: t.Mode, Path: p})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// GetLayoutSpec resolves a layout against a front and back theme, returning
// absolute geometry and concrete palettes for both sides.
func GetLayoutSpec(baseDir, layoutName, frontTheme, backTheme string) (*LayoutSpec, error) {
	layout, err := LoadLayout(layoutPath(baseDir, layoutName))
	if err != nil {
		return nil, err
	}
	front, err := resolveSide(layout, SideFront, baseDir, frontTheme)
	if err != nil {
		return nil, err
	}
	back, err := resolveSide(layout, SideBack, baseDir, backTheme)
	if err != nil {
		return nil, err
	}
	return &LayoutSpec{Layout: layout, Front: *front, Back: *back}, nil
}

// resolveSide loads one theme and resolves it with the layout geometry for
// the given side.
func resolveSide(layout *Layout, side Side, baseDir, themeName string) (*SideSpec, error) {
	geom, err := ResolveGeometry(layout, side)
	if err != nil {
		return nil, err
	}
	theme, err := LoadTheme(themePath(baseDir, themeName))
	if err != nil {
		return nil, err
	}
	pal, err := theme.Resolve()
	if err != nil {
		return nil, err
	}
	return &SideSpec{Geometry: geom, Palette: pal, Theme: theme}, nil
}

// listJSONFiles returns the sorted .json file paths directly under dir.
func listJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
