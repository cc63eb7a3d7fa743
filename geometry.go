package printplate

import "fmt"

// boundsEpsilon absorbs float drift when comparing against paper edges.
const boundsEpsilon = 1e-6

// Rect is an absolute box placement in paper space: inches from the paper's
// top-left corner.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the x coordinate of the horizontal center.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the y coordinate of the vertical center.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Box is a placed content rectangle. Content box borders are drawn outset
// (outward from the box edge); only the paper border (Geometry.PaperBorder)
// is drawn inset.
type Box struct {
	Rect
	BorderWidth float64 // inches, 0 = no border
}

// Geometry is a layout side resolved to absolute placements. All values
// are inches in paper space; renderers scale into their own targets.
type Geometry struct {
	Paper       Dimensions
	PaperBorder float64 // inset border width, 0 = none
	Image       *Box    // nil on the back side
	Text        Box     // caption (front) or personal note (back)
	Columns     []Rect  // two columns when the caption is double_col
	Gutter      float64 // inches between columns
	Style       TextStyle
}

// ResolveGeometry converts one side of a layout into absolute box
// placements. Boxes whose resolved bounds exceed the paper are rejected
// with ErrLayoutOutOfBounds rather than silently clipped.
func ResolveGeometry(l *Layout, side Side) (*Geometry, error) {
	switch side {
	case SideFront:
		return resolveFront(l)
	case SideBack:
		return resolveBack(l)
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidLayout, side)
	}
}

func resolveFront(l *Layout) (*Geometry, error) {
	paper := l.PaperSize

	img := placeRect(l.Front.ImgDims, l.Front.ImgPos, paper)
	if err := checkBounds("image box", img, paper); err != nil {
		return nil, err
	}

	caption := placeRect(l.Front.CaptionDims, l.Front.CaptionPos, paper)
	if err := checkBounds("caption box", caption, paper); err != nil {
		return nil, err
	}

	g := &Geometry{
		Paper:       paper,
		PaperBorder: borderWidth(l.Front.BorderWidths.Paper),
		Image: &Box{
			Rect:        img,
			BorderWidth: borderWidth(l.Front.BorderWidths.Img),
		},
		Text: Box{
			Rect:        caption,
			BorderWidth: borderWidth(l.Front.BorderWidths.Caption),
		},
		Style: l.FrontTextStyle(),
	}

	if l.Front.Special == SpecialDoubleCol {
		g.Gutter = l.Front.Gutter
		g.Columns = splitColumns(caption, l.Front.Gutter)
	}
	return g, nil
}

func resolveBack(l *Layout) (*Geometry, error) {
	paper := l.PaperSize
	dims := l.BackNoteDims()

	var pos Position
	if l.Back.NotePos.At != nil {
		pos = *l.Back.NotePos.At
	}
	// The zero Position centers on both axes, which is exactly what the
	// "centered" literal means.
	note := placeRect(dims, pos, paper)
	if err := checkBounds("note box", note, paper); err != nil {
		return nil, err
	}

	return &Geometry{
		Paper:       paper,
		PaperBorder: borderWidth(l.Back.BorderWidths.Paper),
		Text: Box{
			Rect:        note,
			BorderWidth: borderWidth(l.Back.BorderWidths.Note),
		},
		Style: l.BackTextStyle(),
	}, nil
}

// placeRect positions a box of the given dimensions within the paper.
// Each axis uses its declared offset, or centers the box when no offset
// is declared for that axis.
func placeRect(d Dimensions, pos Position, paper Dimensions) Rect {
	r := Rect{Width: d.Width, Height: d.Height}

	switch {
	case pos.Left != nil:
		r.Left = *pos.Left
	case pos.Right != nil:
		r.Left = paper.Width - *pos.Right - d.Width
	default:
		r.Left = (paper.Width - d.Width) / 2
	}

	switch {
	case pos.Top != nil:
		r.Top = *pos.Top
	case pos.Bottom != nil:
		r.Top = paper.Height - *pos.Bottom - d.Height
	default:
		r.Top = (paper.Height - d.Height) / 2
	}
	return r
}

// splitColumns subdivides a box into two equal-width columns separated by
// the gutter: each column is (width - gutter) / 2 wide, and the columns
// plus gutter exactly reconstruct the original width.
func splitColumns(r Rect, gutter float64) []Rect {
	colWidth := (r.Width - gutter) / 2
	left := Rect{Left: r.Left, Top: r.Top, Width: colWidth, Height: r.Height}
	right := Rect{Left: r.Left + colWidth + gutter, Top: r.Top, Width: colWidth, Height: r.Height}
	return []Rect{left, right}
}

// checkBounds rejects boxes that extend past the paper edges.
func checkBounds(name string, r Rect, paper Dimensions) error {
	if r.Left < -boundsEpsilon || r.Top < -boundsEpsilon ||
		r.Right() > paper.Width+boundsEpsilon || r.Bottom() > paper.Height+boundsEpsilon {
		return fmt.Errorf("%w: %s [%.2f %.2f %.2fx%.2f] exceeds paper %.2fx%.2f",
			ErrLayoutOutOfBounds, name, r.Left, r.Top, r.Width, r.Height,
			paper.Width, paper.Height)
	}
	return nil
}

func borderWidth(w *float64) float64 {
	if w == nil {
		return 0
	}
	return *w
}
