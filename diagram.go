package printplate

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Blueprint drawing constants.
const (
	blueprintBlue = "#1E3D59" // lines, labels, title block
	canvasColor   = "#F2F2F2" // blueprint background
	imageFill     = "#E8EFF5" // image placeholder fill
	inkColor      = "#333333" // secondary text

	canvasBorderMargin   = 0.25 // inches from canvas edge
	titleBlockHeight     = 2.5  // inches
	titleDividerFraction = 0.6  // title section width share

	dimArrowLen = 0.08 // inches, arrowhead leg length
	dashLen     = 0.08 // inches, dashed-stroke pattern
)

// diagramRenderer produces fixed-size technical blueprint PNGs with
// dimension lines, a title block, and placeholder or sample content.
// Markdown is never interpreted in this mode; captions are literal text.
type diagramRenderer struct {
	cfg     RenderConfig
	images  ImageLoader
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

// newDiagramRenderer creates a diagramRenderer with the embedded Go fonts.
// Panics if the embedded fonts cannot be parsed (programmer error).
func newDiagramRenderer(cfg RenderConfig, images ImageLoader) *diagramRenderer {
	parse := func(ttf []byte, name string) *truetype.Font {
		f, err := truetype.Parse(ttf)
		if err != nil {
			panic("failed to parse embedded font " + name + ": " + err.Error())
		}
		return f
	}
	return &diagramRenderer{
		cfg:     cfg,
		images:  images,
		regular: parse(goregular.TTF, "goregular"),
		bold:    parse(gobold.TTF, "gobold"),
		italic:  parse(goitalic.TTF, "goitalic"),
	}
}

// Ext returns the output file extension.
func (r *diagramRenderer) Ext() string { return "png" }

// face creates a font face sized in points at the blueprint DPI.
func (r *diagramRenderer) face(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: points, DPI: r.cfg.DPI})
}

// blueprint holds per-render drawing state. All drawing coordinates are
// inches in canvas space, converted to pixels at the last moment so the
// dimension-line labels and the boxes they annotate cannot drift apart.
type blueprint struct {
	dc     *gg.Context
	r      *diagramRenderer
	paperX float64 // inches, left edge of paper on canvas
	paperY float64 // inches, top edge of paper on canvas
	paper  Dimensions
}

// px converts inches to pixels.
func (b *blueprint) px(in float64) float64 { return in * b.r.cfg.DPI }

// onPaper translates a paper-space rect into canvas inches.
func (b *blueprint) onPaper(r Rect) Rect {
	return Rect{Left: b.paperX + r.Left, Top: b.paperY + r.Top, Width: r.Width, Height: r.Height}
}

// RenderSide draws the blueprint for one side and returns PNG bytes.
func (r *diagramRenderer) RenderSide(ctx context.Context, plate *Plate, side Side) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	spec, err := plate.spec(side)
	if err != nil {
		return nil, err
	}
	g := spec.Geometry

	dc := gg.NewContext(int(r.cfg.CanvasWidth*r.cfg.DPI), int(r.cfg.CanvasHeight*r.cfg.DPI))

	// Paper centered horizontally, and vertically between the canvas top
	// and the top of the title block.
	regionBottom := r.cfg.CanvasHeight - canvasBorderMargin - titleBlockHeight
	b := &blueprint{
		dc:     dc,
		r:      r,
		paperX: (r.cfg.CanvasWidth - g.Paper.Width) / 2,
		paperY: (regionBottom - g.Paper.Height) / 2,
		paper:  g.Paper,
	}

	b.drawCanvas()
	b.drawPaper(g.PaperBorder)
	b.drawTitleBlock(plate, side)

	if g.Image != nil {
		b.drawImageBox(g.Image, plate.Content.ImagePathFor(Dimensions{Width: g.Image.Width, Height: g.Image.Height}))
	}
	b.drawTextBox(g, textSample(plate.Content, side))
	b.drawDimensions(g)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiagramEncode, err)
	}
	return buf.Bytes(), nil
}

// textSample returns the literal sample text for the side, or "" when no
// sample content was declared. Design mode never renders markdown, so the
// source text is used verbatim.
func textSample(c *Content, side Side) string {
	if c == nil {
		return ""
	}
	if side == SideBack {
		return c.Note
	}
	return c.Caption
}

// drawCanvas fills the background and strokes the canvas border.
func (b *blueprint) drawCanvas() {
	dc := b.dc
	dc.SetHexColor(canvasColor)
	dc.Clear()

	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(2)
	dc.DrawRectangle(
		b.px(canvasBorderMargin), b.px(canvasBorderMargin),
		b.px(b.r.cfg.CanvasWidth-2*canvasBorderMargin),
		b.px(b.r.cfg.CanvasHeight-2*canvasBorderMargin))
	dc.Stroke()
}

// drawPaper strokes the paper outline and, when the layout declares a
// paper border, the inset black border inside the paper edge.
func (b *blueprint) drawPaper(insetBorder float64) {
	dc := b.dc

	dc.SetHexColor("#FFFFFF")
	dc.DrawRectangle(b.px(b.paperX), b.px(b.paperY), b.px(b.paper.Width), b.px(b.paper.Height))
	dc.Fill()

	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(4)
	dc.DrawRectangle(b.px(b.paperX), b.px(b.paperY), b.px(b.paper.Width), b.px(b.paper.Height))
	dc.Stroke()

	if insetBorder > 0 {
		// Inset: the stroke sits entirely inside the paper edge.
		dc.SetHexColor("#000000")
		dc.SetLineWidth(b.px(insetBorder))
		dc.DrawRectangle(
			b.px(b.paperX+insetBorder/2), b.px(b.paperY+insetBorder/2),
			b.px(b.paper.Width-insetBorder), b.px(b.paper.Height-insetBorder))
		dc.Stroke()
	}
}

// drawTitleBlock renders the title and installation-data sections at the
// canvas bottom.
func (b *blueprint) drawTitleBlock(plate *Plate, side Side) {
	dc := b.dc
	x := canvasBorderMargin
	w := b.r.cfg.CanvasWidth - 2*canvasBorderMargin
	y := b.r.cfg.CanvasHeight - canvasBorderMargin - titleBlockHeight

	dc.SetHexColor("#FFFFFF")
	dc.DrawRectangle(b.px(x), b.px(y), b.px(w), b.px(titleBlockHeight))
	dc.Fill()
	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(3)
	dc.DrawRectangle(b.px(x), b.px(y), b.px(w), b.px(titleBlockHeight))
	dc.Stroke()

	divider := x + w*titleDividerFraction
	dc.SetLineWidth(2)
	dc.DrawLine(b.px(divider), b.px(y), b.px(divider), b.px(y+titleBlockHeight))
	dc.Stroke()

	// Title section (left).
	dc.SetFontFace(b.r.face(b.r.bold, 8))
	dc.DrawString("LAYOUT", b.px(x+0.2), b.px(y+0.4))
	dc.SetFontFace(b.r.face(b.r.bold, 12))
	dc.DrawString(strings.ToUpper(plate.Layout.Title), b.px(x+0.2), b.px(y+0.8))
	dc.SetFontFace(b.r.face(b.r.regular, 8))
	dc.DrawString(fmt.Sprintf("Side: %s", strings.ToUpper(string(side))), b.px(x+0.2), b.px(y+1.15))
	dc.SetHexColor(inkColor)
	dc.DrawString(fmt.Sprintf("Paper Size: %s\" x %s\"",
		formatFloat(b.paper.Width), formatFloat(b.paper.Height)),
		b.px(x+0.2), b.px(y+titleBlockHeight-0.4))

	// Installation data section (right).
	dc.SetHexColor(blueprintBlue)
	dc.SetFontFace(b.r.face(b.r.bold, 8))
	dc.DrawString("INSTALLATION DATA", b.px(divider+0.2), b.px(y+0.4))
	dc.SetHexColor(inkColor)
	dc.SetFontFace(b.r.face(b.r.regular, 7))
	notes := plate.Layout.Notes
	if notes != "" {
		dc.DrawStringWrapped(notes, b.px(divider+0.2), b.px(y+0.6), 0, 0,
			b.px(w*(1-titleDividerFraction)-0.4), 1.4, gg.AlignLeft)
	}
	themes := fmt.Sprintf("Front theme: %s / Back theme: %s",
		plate.Front.Theme.Name+"_"+plate.Front.Theme.Mode,
		plate.Back.Theme.Name+"_"+plate.Back.Theme.Mode)
	dc.DrawString(themes, b.px(divider+0.2), b.px(y+titleBlockHeight-0.4))
}

// drawImageBox renders the image box: the fitted sample image when
// available, otherwise a flat placeholder stating expected dimensions.
func (b *blueprint) drawImageBox(box *Box, samplePath string) {
	dc := b.dc
	r := b.onPaper(box.Rect)

	dc.SetHexColor(imageFill)
	dc.DrawRectangle(b.px(r.Left), b.px(r.Top), b.px(r.Width), b.px(r.Height))
	dc.Fill()

	drawn := false
	if samplePath != "" {
		if img, err := b.r.images.Load(samplePath); err == nil {
			fitted := fitImage(img, int(b.px(r.Width)), int(b.px(r.Height)))
			dc.DrawImageAnchored(fitted, int(b.px(r.CenterX())), int(b.px(r.CenterY())), 0.5, 0.5)
			drawn = true
		}
	}
	if !drawn {
		dc.SetHexColor(blueprintBlue)
		dc.SetFontFace(b.r.face(b.r.bold, 10))
		label := fmt.Sprintf("IMAGE\n%s\" x %s\"", formatFloat(r.Width), formatFloat(r.Height))
		dc.DrawStringWrapped(label, b.px(r.CenterX()), b.px(r.CenterY()), 0.5, 0.5,
			b.px(r.Width), 1.5, gg.AlignCenter)
	}

	b.strokeOutsetBorder(r, box.BorderWidth)
	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(2)
	dc.DrawRectangle(b.px(r.Left), b.px(r.Top), b.px(r.Width), b.px(r.Height))
	dc.Stroke()
}

// drawTextBox renders the caption or note box as dashed outlines. Sample
// text is drawn literally; greeked labels mark empty boxes.
func (b *blueprint) drawTextBox(g *Geometry, sample string) {
	if len(g.Columns) > 0 {
		left, right := b.onPaper(g.Columns[0]), b.onPaper(g.Columns[1])
		b.dashedRect(left)
		b.dashedRect(right)
		if sample != "" {
			first, second := splitForColumns(sample)
			b.drawBoxText(left, first, g.Style, false)
			b.drawBoxText(right, second, g.Style, false)
		} else {
			b.drawBoxText(left, "TXT", g.Style, true)
			b.drawBoxText(right, "TXT", g.Style, true)
		}
		b.strokeOutsetBorder(b.onPaper(g.Text.Rect), g.Text.BorderWidth)
		return
	}

	r := b.onPaper(g.Text.Rect)
	b.dashedRect(r)
	if sample != "" {
		b.drawBoxText(r, sample, g.Style, false)
	} else {
		b.drawBoxText(r, "CAPTION TEXT\n(Greeked)", g.Style, true)
	}
	b.strokeOutsetBorder(r, g.Text.BorderWidth)
}

// drawBoxText draws literal text inside a box. Greeked labels are centered
// and italic; sample text follows the layout's text style alignment.
func (b *blueprint) drawBoxText(r Rect, text string, style TextStyle, greeked bool) {
	dc := b.dc
	dc.SetHexColor(blueprintBlue)
	if greeked {
		dc.SetFontFace(b.r.face(b.r.italic, 8))
		dc.DrawStringWrapped(text, b.px(r.CenterX()), b.px(r.CenterY()), 0.5, 0.5,
			b.px(r.Width), 1.4, gg.AlignCenter)
		return
	}

	dc.SetFontFace(b.r.face(b.r.regular, style.Size))
	align := gg.AlignLeft
	switch style.AlignH {
	case AlignCenter:
		align = gg.AlignCenter
	case AlignRight:
		align = gg.AlignRight
	}
	inset := 0.05
	dc.DrawStringWrapped(text, b.px(r.Left+inset), b.px(r.Top+inset), 0, 0,
		b.px(r.Width-2*inset), 1.4, align)
}

// strokeOutsetBorder strokes a content-box border outside the box edge.
func (b *blueprint) strokeOutsetBorder(r Rect, width float64) {
	if width <= 0 {
		return
	}
	dc := b.dc
	dc.SetHexColor("#000000")
	dc.SetLineWidth(b.px(width))
	dc.DrawRectangle(
		b.px(r.Left-width/2), b.px(r.Top-width/2),
		b.px(r.Width+width), b.px(r.Height+width))
	dc.Stroke()
}

// dashedRect strokes a dashed rectangle.
func (b *blueprint) dashedRect(r Rect) {
	dc := b.dc
	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(2)
	dc.SetDash(b.px(dashLen), b.px(dashLen))
	dc.DrawRectangle(b.px(r.Left), b.px(r.Top), b.px(r.Width), b.px(r.Height))
	dc.Stroke()
	dc.SetDash()
}

// drawDimensions draws one dimension line per distinct measured offset and
// size, positioned outside the paper.
func (b *blueprint) drawDimensions(g *Geometry) {
	paperLeft, paperTop := b.paperX, b.paperY
	paperRight := b.paperX + b.paper.Width
	paperBottom := b.paperY + b.paper.Height
	text := b.onPaper(g.Text.Rect)

	n := 0
	id := func() string { n++; return fmt.Sprintf("D%d", n) }

	if g.Image != nil {
		img := b.onPaper(g.Image.Rect)

		// Top margin: paper top to image top.
		if img.Top-paperTop > boundsEpsilon {
			b.dimLineV(paperLeft-0.5, paperTop, img.Top, inchLabel(img.Top-paperTop), id())
		}
		// Gap between image bottom and caption top.
		if gap := text.Top - img.Bottom(); gap > 0.1 {
			b.dimLineV(paperLeft-0.5, img.Bottom(), text.Top, inchLabel(gap), id())
		}
		// Left and right image margins, above the paper.
		b.dimLineH(paperTop-0.5, paperLeft, img.Left, inchLabel(img.Left-paperLeft), id())
		b.dimLineH(paperTop-0.5, img.Right(), paperRight, inchLabel(paperRight-img.Right()), id())
	}

	// Paper top to text box top.
	b.dimLineV(paperLeft-1.0, paperTop, text.Top, inchLabel(text.Top-paperTop), id())
	// Text box height.
	b.dimLineV(paperLeft-1.0, text.Top, text.Bottom(), inchLabel(text.Height), id())
	// Text box left offset and width, above the paper.
	if text.Left-paperLeft > 0.1 {
		b.dimLineH(paperTop-1.0, paperLeft, text.Left, inchLabel(text.Left-paperLeft), id())
	}
	b.dimLineH(paperTop-1.0, text.Left, text.Right(), inchLabel(text.Width), id())

	// Overall paper width and height.
	b.dimLineH(paperBottom+0.5, paperLeft, paperRight, inchLabel(b.paper.Width), id())
	b.dimLineV(paperRight+0.5, paperTop, paperBottom, inchLabel(b.paper.Height), id())
}

// inchLabel formats a measurement for a dimension-line label.
func inchLabel(v float64) string {
	return fmt.Sprintf("%.2f\"", v)
}

// dimLineV draws a vertical dimension line with arrowheads at both ends, a
// rotated measurement label to its left, and the line's identifier below it.
func (b *blueprint) dimLineV(x, y1, y2 float64, label, id string) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	dc := b.dc
	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(1.5)
	dc.DrawLine(b.px(x), b.px(y1), b.px(x), b.px(y2))
	dc.Stroke()
	b.arrowhead(x, y1, 0, 1)
	b.arrowhead(x, y2, 0, -1)

	mid := (y1 + y2) / 2
	dc.SetFontFace(b.r.face(b.r.regular, 7))
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), b.px(x-0.08), b.px(mid))
	dc.DrawStringAnchored(label+"  "+id, b.px(x-0.08), b.px(mid), 0.5, 1)
	dc.Pop()
}

// dimLineH draws a horizontal dimension line with arrowheads at both ends
// and the measurement label above its midpoint.
func (b *blueprint) dimLineH(y, x1, x2 float64, label, id string) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	dc := b.dc
	dc.SetHexColor(blueprintBlue)
	dc.SetLineWidth(1.5)
	dc.DrawLine(b.px(x1), b.px(y), b.px(x2), b.px(y))
	dc.Stroke()
	b.arrowhead(x1, y, 1, 0)
	b.arrowhead(x2, y, -1, 0)

	mid := (x1 + x2) / 2
	dc.SetFontFace(b.r.face(b.r.regular, 7))
	dc.DrawStringAnchored(label+"  "+id, b.px(mid), b.px(y-0.06), 0.5, 0)
}

// arrowhead draws the two 45-degree legs of a dimension-line arrowhead at
// (x, y), opening along the unit direction (dx, dy).
func (b *blueprint) arrowhead(x, y, dx, dy float64) {
	dc := b.dc
	// Perpendicular to the line direction.
	px1 := x + dimArrowLen*(dx-dy)/1.4142
	py1 := y + dimArrowLen*(dy+dx)/1.4142
	px2 := x + dimArrowLen*(dx+dy)/1.4142
	py2 := y + dimArrowLen*(dy-dx)/1.4142
	dc.DrawLine(b.px(x), b.px(y), b.px(px1), b.px(py1))
	dc.DrawLine(b.px(x), b.px(y), b.px(px2), b.px(py2))
	dc.Stroke()
}

// splitForColumns splits sample text into two word-balanced halves so the
// blueprint hints at the double-column flow without typesetting it.
func splitForColumns(text string) (string, string) {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text, ""
	}
	mid := len(words) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}
