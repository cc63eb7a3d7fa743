package printplate

import (
	"context"
	"fmt"
)

// RenderConfig holds render-target constants. It is passed into render
// calls explicitly so rendering stays pure and testable.
type RenderConfig struct {
	CanvasWidth  float64 // blueprint canvas width in inches (design mode)
	CanvasHeight float64 // blueprint canvas height in inches (design mode)
	DPI          float64 // raster resolution for design mode
}

// DefaultRenderConfig returns the standard 18"x24" blueprint canvas at
// 150 DPI.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{CanvasWidth: 18, CanvasHeight: 24, DPI: 150}
}

// Validate checks that all render constants are positive.
func (c RenderConfig) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 || c.DPI <= 0 {
		return fmt.Errorf("%w: canvas %.1fx%.1f at %.0f DPI",
			ErrInvalidDimensions, c.CanvasWidth, c.CanvasHeight, c.DPI)
	}
	return nil
}

// SideSpec is one fully resolved side: geometry plus colors.
type SideSpec struct {
	Geometry *Geometry
	Palette  *Palette
	Theme    *Theme
}

// Content carries the shared sample content of a batch run. All fields are
// optional; missing content degrades to deterministic placeholders.
type Content struct {
	LandscapeImagePath string
	PortraitImagePath  string
	Caption            string // markdown source
	Note               string // markdown source
}

// ImagePathFor picks the sample image matching the box orientation:
// landscape for boxes wider than tall, portrait otherwise.
func (c *Content) ImagePathFor(d Dimensions) string {
	if c == nil {
		return ""
	}
	if d.Width >= d.Height {
		return c.LandscapeImagePath
	}
	return c.PortraitImagePath
}

// Plate is one batch entry resolved and ready to render.
type Plate struct {
	Layout  *Layout
	Front   *SideSpec
	Back    *SideSpec
	Content *Content
}

// spec returns the SideSpec for the requested side.
func (p *Plate) spec(side Side) (*SideSpec, error) {
	switch side {
	case SideFront:
		return p.Front, nil
	case SideBack:
		return p.Back, nil
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidLayout, side)
	}
}

// Renderer renders one side of a resolved plate. The two implementations
// are the design-mode blueprint renderer (PNG) and the print-mode HTML
// renderer, selected by the batch mode.
type Renderer interface {
	RenderSide(ctx context.Context, plate *Plate, side Side) ([]byte, error)
	Ext() string // output file extension without dot
}
