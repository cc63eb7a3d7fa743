package printplate

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"path/filepath"

	"github.com/maela/go-printplate/internal/assets"
	"github.com/maela/go-printplate/internal/fileutil"
)

// pageDoc is the data fed to the embedded page template.
type pageDoc struct {
	Title string
	CSS   template.CSS
	Pages []pageBlock
}

// pageBlock is one paper-sized page.
type pageBlock struct {
	Class string
	Boxes []boxBlock
}

// boxBlock is one absolutely positioned box on a page.
type boxBlock struct {
	Class   string
	Content template.HTML
}

// htmlRenderer produces paper-sized, print-ready HTML documents from
// resolved geometry and theme colors.
type htmlRenderer struct {
	md      MarkdownConverter
	tmpl    *template.Template
	baseCSS string
}

// newHTMLRenderer creates an htmlRenderer using the embedded page template
// and base stylesheet. Panics if the embedded assets cannot be parsed
// (programmer error).
func newHTMLRenderer(md MarkdownConverter) *htmlRenderer {
	tmplContent, err := assets.LoadTemplate("page")
	if err != nil {
		panic("failed to load page template: " + err.Error())
	}
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		panic("failed to parse page template: " + err.Error())
	}
	baseCSS, err := assets.LoadStyle("print")
	if err != nil {
		panic("failed to load print stylesheet: " + err.Error())
	}
	return &htmlRenderer{md: md, tmpl: tmpl, baseCSS: baseCSS}
}

// Ext returns the output file extension.
func (r *htmlRenderer) Ext() string { return "html" }

// RenderSide emits one paper-sized HTML document for the given side, with
// markdown caption/note content converted to HTML and the sample image
// referenced by path at native resolution.
func (r *htmlRenderer) RenderSide(ctx context.Context, plate *Plate, side Side) ([]byte, error) {
	spec, err := plate.spec(side)
	if err != nil {
		return nil, err
	}

	page, err := r.buildPage(ctx, plate, spec, side)
	if err != nil {
		return nil, err
	}

	doc := pageDoc{
		Title: fmt.Sprintf("%s (%s)", plate.Layout.Title, side),
		CSS:   template.CSS(r.baseCSS + buildSideCSS(string(side), spec.Geometry, spec.Palette, "")),
		Pages: []pageBlock{page},
	}
	return r.execute(doc)
}

// buildPage assembles the box blocks for one side.
func (r *htmlRenderer) buildPage(ctx context.Context, plate *Plate, spec *SideSpec, side Side) (pageBlock, error) {
	g := spec.Geometry
	page := pageBlock{Class: string(side)}

	if g.Image != nil {
		page.Boxes = append(page.Boxes, boxBlock{
			Class:   "box box-img",
			Content: imageHTML(plate.Content.ImagePathFor(Dimensions{Width: g.Image.Width, Height: g.Image.Height}), g.Image.Rect),
		})
	}

	source := plate.Content.Caption
	if side == SideBack {
		source = plate.Content.Note
	}
	textContent, err := r.textHTML(ctx, source)
	if err != nil {
		return pageBlock{}, err
	}
	page.Boxes = append(page.Boxes, boxBlock{Class: "box box-text", Content: textContent})
	return page, nil
}

// textHTML converts markdown content to HTML, or falls back to the
// deterministic greeked paragraph when no content is available.
func (r *htmlRenderer) textHTML(ctx context.Context, source string) (template.HTML, error) {
	if source == "" {
		return template.HTML("<p>" + html.EscapeString(assets.GreekText()) + "</p>"), nil // #nosec G203 -- escaped above
	}
	converted, err := r.md.ToHTML(ctx, source)
	if err != nil {
		return "", err
	}
	return template.HTML(converted), nil // #nosec G203 -- goldmark output from trusted sample files
}

// imageHTML references the sample image by path, preserving native
// resolution, or renders a labeled placeholder stating the expected
// dimensions when the image is unavailable.
func imageHTML(path string, r Rect) template.HTML {
	if path == "" || !fileutil.FileExists(path) {
		label := fmt.Sprintf(`IMAGE<br/>%s&quot; &#215; %s&quot;`, formatFloat(r.Width), formatFloat(r.Height))
		return template.HTML(`<div class="ph">` + label + `</div>`) // #nosec G203 -- label built from numbers only
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return template.HTML(`<img src="` + html.EscapeString(abs) + `" alt=""/>`) // #nosec G203 -- path escaped above
}

// execute renders the page template.
func (r *htmlRenderer) execute(doc pageDoc) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}
