package printplate

import (
	"fmt"
	"html/template"

	"github.com/maela/go-printplate/internal/assets"
)

// Content placeholder tokens left unfilled by GetHTMLTemplate so callers
// can substitute their own image, caption, and note markup.
const (
	PlaceholderImage      = "{{IMAGE}}"
	PlaceholderCaption    = "{{CAPTION}}"
	PlaceholderNote       = "{{NOTE}}"
	PlaceholderFontFamily = "{{FONT_FAMILY}}"
)

// GetHTMLTemplate renders the full two-page print document for a layout and
// theme pair, leaving the image, caption, note, and font family as literal
// placeholder tokens. The result is a reusable print template: substitute
// the tokens and the document is ready for Chrome.
func GetHTMLTemplate(layout *Layout, front, back *Theme) ([]byte, error) {
	frontGeom, err := ResolveGeometry(layout, SideFront)
	if err != nil {
		return nil, err
	}
	backGeom, err := ResolveGeometry(layout, SideBack)
	if err != nil {
		return nil, err
	}
	frontPal, err := front.Resolve()
	if err != nil {
		return nil, err
	}
	backPal, err := back.Resolve()
	if err != nil {
		return nil, err
	}

	baseCSS, err := assets.LoadStyle("print")
	if err != nil {
		return nil, err
	}
	tmplContent, err := assets.LoadTemplate("page")
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	css := baseCSS +
		buildSideCSS(string(SideFront), frontGeom, frontPal, PlaceholderFontFamily) +
		buildSideCSS(string(SideBack), backGeom, backPal, PlaceholderFontFamily)

	doc := pageDoc{
		Title: layout.Title,
		CSS:   template.CSS(css), // #nosec G203 -- generated from validated layout and palette values
		Pages: []pageBlock{
			{Class: string(SideFront), Boxes: []boxBlock{
				{Class: "box box-img", Content: PlaceholderImage},
				{Class: "box box-text", Content: PlaceholderCaption},
			}},
			{Class: string(SideBack), Boxes: []boxBlock{
				{Class: "box box-text", Content: PlaceholderNote},
			}},
		},
	}
	r := &htmlRenderer{tmpl: tmpl}
	return r.execute(doc)
}
