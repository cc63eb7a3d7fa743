// Package printplate generates print layout renderings for gallery and
// museum photo prints from declarative JSON descriptions.
//
// A layout file describes paper geometry in inches (image, caption and note
// boxes, border widths), a theme file describes five named colors and a
// role-to-color mapping, and a batch file pairs layouts with themes and
// selects a render mode.
//
// # Quick Start
//
// Run a batch of renderings:
//
//	svc := printplate.New()
//	results, err := svc.RunBatch(ctx, "production/batch.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("entry %d failed: %v", r.Index, r.Err)
//	    }
//	}
//
// # Render Modes
//
// Two renderers share the same resolved geometry:
//
//   - "design": an 18"x24" technical blueprint PNG with dimension lines and
//     a title block, for internal review. Captions are drawn as literal
//     text; markdown is never interpreted in this mode.
//   - "print": a paper-sized HTML document per side with absolutely
//     positioned boxes, theme colors, and markdown-rendered caption and
//     note content, suitable for a browser's print-to-PDF path.
//
// # Pipeline
//
// Each batch entry runs through the same synchronous pipeline:
//
//  1. Load the layout and theme files referenced by the entry
//  2. Resolve geometry (inches, centered-axis defaults, column splits)
//  3. Resolve theme roles to concrete hex colors
//  4. Render front and back sides with the mode's renderer
//  5. Write output files under <batchdir>/output/
//
// Entries are independent; a failing entry is reported and skipped without
// aborting the rest of the batch.
//
// # Programmatic Interface
//
// External integrators can discover available inputs and resolve geometry
// without rendering:
//
//	layouts, err := printplate.ListLayouts(baseDir)
//	themes, err := printplate.ListThemes(baseDir)
//	spec, err := printplate.GetLayoutSpec(baseDir, "classic_85x11", "harbor_light", "harbor_dark")
//	tmpl, err := printplate.GetHTMLTemplate(spec.Layout, spec.Front.Theme, spec.Back.Theme)
//
// The HTML template keeps {{IMAGE}}, {{CAPTION}}, {{NOTE}} and
// {{FONT_FAMILY}} placeholders so callers can inject externally produced
// content (pre-rendered emoji, custom fonts) without re-deriving geometry.
//
// # PDF Export
//
// Print-mode HTML can additionally be rendered to PDF at the exact paper
// size through headless Chrome (go-rod). The browser is downloaded and
// managed by rod on first use; set ROD_BROWSER_BIN to use a pre-installed
// binary.
package printplate
