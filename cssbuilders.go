package printplate

import (
	"fmt"
	"strconv"
	"strings"
)

// buildSideCSS generates the per-side CSS for a print-mode page. The page
// class scopes every rule so front and back can share one document.
// fontFamily overrides the layout's font when non-empty (used by the
// template path to leave a {{FONT_FAMILY}} placeholder).
func buildSideCSS(class string, g *Geometry, p *Palette, fontFamily string) string {
	var buf strings.Builder

	// Paper block. The paper border is inset: box-shadow draws inward
	// without shifting content, matching the physical print.
	fmt.Fprintf(&buf, "\n.page.%s {\n  width: %s;\n  height: %s;\n  background: %s;\n",
		class, inches(g.Paper.Width), inches(g.Paper.Height), p.PaperBackground)
	if g.PaperBorder > 0 {
		fmt.Fprintf(&buf, "  box-shadow: inset 0 0 0 %s %s;\n", inches(g.PaperBorder), p.PaperBorder)
	}
	buf.WriteString("}\n")

	if g.Image != nil {
		buf.WriteString(buildBoxCSS(class, "box-img", g.Image.Rect, g.Image.BorderWidth,
			p.ImgBackground, p.ImgBorder))
	}

	textBG, textBorder := p.CaptionBackground, p.CaptionBorder
	if g.Image == nil { // back side: the text box is the personal note
		textBG, textBorder = p.NoteBackground, p.NoteBorder
	}
	buf.WriteString(buildBoxCSS(class, "box-text", g.Text.Rect, g.Text.BorderWidth,
		textBG, textBorder))
	buf.WriteString(buildTextCSS(class, g, p.FontColor, fontFamily))

	// Placeholder label shown when a sample image is unavailable.
	fmt.Fprintf(&buf, "\n.%s .ph {\n  display: flex;\n  align-items: center;\n  justify-content: center;\n  width: 100%%;\n  height: 100%%;\n  text-align: center;\n  font-weight: bold;\n  color: %s;\n}\n",
		class, p.FontColor)

	return buf.String()
}

// buildBoxCSS positions one absolutely placed box. Content box borders are
// outset: outline draws outward from the box edge without consuming any of
// the declared box dimensions.
func buildBoxCSS(pageClass, boxClass string, r Rect, border float64, bg, borderColor string) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "\n.%s .%s {\n  left: %s;\n  top: %s;\n  width: %s;\n  height: %s;\n  background: %s;\n",
		pageClass, boxClass, inches(r.Left), inches(r.Top), inches(r.Width), inches(r.Height), bg)
	if border > 0 {
		fmt.Fprintf(&buf, "  outline: %s solid %s;\n", inches(border), borderColor)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// buildTextCSS applies the resolved text style to the side's text box.
// Double-column captions use CSS columns with the gutter as column gap;
// vertical alignment uses flex centering otherwise.
func buildTextCSS(pageClass string, g *Geometry, fontColor, fontFamily string) string {
	style := g.Style
	// Only the layout-provided font is escaped; a non-empty override comes
	// from the template path and must keep its literal placeholder braces.
	family := escapeCSSValue(style.Font)
	if fontFamily != "" {
		family = fontFamily
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "\n.%s .box-text {\n  font-family: %s;\n  font-size: %spt;\n  color: %s;\n  text-align: %s;\n",
		pageClass, family, formatFloat(style.Size), fontColor, cssTextAlign(style.AlignH))

	if len(g.Columns) > 0 {
		fmt.Fprintf(&buf, "  column-count: 2;\n  column-gap: %s;\n", inches(g.Gutter))
	} else {
		fmt.Fprintf(&buf, "  display: flex;\n  flex-direction: column;\n  justify-content: %s;\n",
			cssJustify(style.AlignV))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// cssTextAlign maps a layout align_h value onto CSS text-align.
func cssTextAlign(alignH string) string {
	switch alignH {
	case AlignCenter, AlignRight, AlignJustify:
		return alignH
	default:
		return AlignLeft
	}
}

// cssJustify maps a layout align_v value onto flex justify-content.
func cssJustify(alignV string) string {
	switch alignV {
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "flex-end"
	default:
		return "flex-start"
	}
}

// inches formats an inch measurement as a CSS length.
func inches(v float64) string {
	return formatFloat(v) + "in"
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeCSSValue escapes characters that could break out of a CSS
// declaration. Font family lists keep their commas and quotes are dropped.
func escapeCSSValue(s string) string {
	s = strings.ReplaceAll(s, `\`, ``)
	s = strings.ReplaceAll(s, `"`, ``)
	s = strings.ReplaceAll(s, ";", "")
	s = strings.ReplaceAll(s, "}", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
