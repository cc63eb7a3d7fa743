package printplate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Service orchestrates the full batch pipeline: load and validate configs,
// resolve geometry and palettes, render both sides of every entry, and
// write the results. A Service is safe for sequential reuse across batches.
type Service struct {
	cfg     RenderConfig
	md      MarkdownConverter
	images  ImageLoader
	pdf     PDFExporter
	outDir  string
	baseDir string
}

// Option configures a Service.
type Option func(*Service)

// WithRenderConfig overrides the blueprint canvas size and DPI.
func WithRenderConfig(cfg RenderConfig) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithMarkdownConverter replaces the markdown converter.
func WithMarkdownConverter(md MarkdownConverter) Option {
	return func(s *Service) { s.md = md }
}

// WithImageLoader replaces the sample image loader.
func WithImageLoader(il ImageLoader) Option {
	return func(s *Service) { s.images = il }
}

// WithOutputDir overrides the default <batchdir>/output destination.
func WithOutputDir(dir string) Option {
	return func(s *Service) { s.outDir = dir }
}

// WithBaseDir overrides the directory holding layouts/ and themes/, which
// otherwise defaults to the batch file's directory.
func WithBaseDir(dir string) Option {
	return func(s *Service) { s.baseDir = dir }
}

// WithPDFExporter enables PDF export for print-mode batches.
func WithPDFExporter(p PDFExporter) Option {
	return func(s *Service) { s.pdf = p }
}

// New creates a Service with default dependencies.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    DefaultRenderConfig(),
		md:     newGoldmarkConverter(),
		images: newImagingLoader(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EntryResult reports the outcome of one batch entry. A failed entry never
// stops the batch; inspect Err per entry.
type EntryResult struct {
	Index    int
	Entry    BatchEntry
	Outputs  []string
	Err      error
	Duration time.Duration
}

// Failed reports whether the entry produced an error.
func (r EntryResult) Failed() bool { return r.Err != nil }

// RunBatch loads a batch descriptor and renders every entry sequentially.
// Entry failures are recorded and skipped; the returned error is non-nil
// only for batch-level problems such as an unreadable descriptor or an
// output directory that cannot be created.
func (s *Service) RunBatch(ctx context.Context, batchPath string) ([]EntryResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	batch, err := LoadBatch(batchPath)
	if err != nil {
		return nil, err
	}

	batchDir := filepath.Dir(batchPath)
	baseDir := s.baseDir
	if baseDir == "" {
		baseDir = batchDir
	}
	outDir := s.outDir
	if outDir == "" {
		outDir = filepath.Join(batchDir, "output")
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var renderer Renderer
	switch batch.Mode {
	case ModeDesign:
		renderer = newDiagramRenderer(s.cfg, s.images)
	case ModePrint:
		renderer = newHTMLRenderer(s.md)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, batch.Mode)
	}

	content := s.loadContent(batchDir, batch)

	results := make([]EntryResult, 0, len(batch.Entries))
	for i, entry := range batch.Entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		outputs, err := s.renderEntry(ctx, renderer, baseDir, outDir, batch.Mode, entry, content)
		results = append(results, EntryResult{
			Index:    i,
			Entry:    entry,
			Outputs:  outputs,
			Err:      err,
			Duration: time.Since(start),
		})
	}
	return results, nil
}

// renderEntry resolves and renders both sides of one entry, returning the
// written output paths.
func (s *Service) renderEntry(ctx context.Context, renderer Renderer, baseDir, outDir, mode string, entry BatchEntry, content *Content) ([]string, error) {
	spec, err := GetLayoutSpec(baseDir, entry.Layout, entry.FrontTheme, entry.BackTheme)
	if err != nil {
		return nil, err
	}
	plate := &Plate{
		Layout:  spec.Layout,
		Front:   &spec.Front,
		Back:    &spec.Back,
		Content: content,
	}

	sides := []struct {
		side  Side
		theme string
	}{
		{SideFront, entry.FrontTheme},
		{SideBack, entry.BackTheme},
	}

	var outputs []string
	for _, sd := range sides {
		data, err := renderer.RenderSide(ctx, plate, sd.side)
		if err != nil {
			return outputs, err
		}
		name := fmt.Sprintf("%s__%s_%s.%s",
			sanitizeName(entry.Layout), sanitizeName(sd.theme), sd.side, renderer.Ext())
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- rendered outputs are world-readable
			return outputs, fmt.Errorf("failed to write output %q: %w", path, err)
		}
		outputs = append(outputs, path)

		if mode == ModePrint && s.pdf != nil {
			pdfPath := strings.TrimSuffix(path, "."+renderer.Ext()) + ".pdf"
			pdfData, err := s.pdf.Export(ctx, path, spec.Layout.PaperSize)
			if err != nil {
				return outputs, err
			}
			if err := os.WriteFile(pdfPath, pdfData, 0o644); err != nil { // #nosec G306
				return outputs, fmt.Errorf("failed to write output %q: %w", pdfPath, err)
			}
			outputs = append(outputs, pdfPath)
		}
	}
	return outputs, nil
}

// loadContent reads the batch's optional shared sample content. Missing or
// unreadable samples degrade to placeholders rather than failing the run.
func (s *Service) loadContent(baseDir string, b *Batch) *Content {
	c := &Content{
		LandscapeImagePath: resolveSample(baseDir, b.ImagePathLandscape),
		PortraitImagePath:  resolveSample(baseDir, b.ImagePathPortrait),
	}
	c.Caption = readSampleText(resolveSample(baseDir, b.TextPath))
	c.Note = readSampleText(resolveSample(baseDir, b.PersonalNotePath))
	s.orientSamples(c)
	return c
}

// orientSamples corrects swapped sample image declarations: when a sample's
// actual pixel dimensions contradict its slot, the paths are exchanged so
// boxes pick the image matching their orientation.
func (s *Service) orientSamples(c *Content) {
	mismatch := func(path string, wantLandscape bool) bool {
		if path == "" {
			return false
		}
		w, h, err := s.images.Meta(path)
		if err != nil {
			return false
		}
		return (w >= h) != wantLandscape
	}
	landscapeWrong := mismatch(c.LandscapeImagePath, true)
	portraitWrong := mismatch(c.PortraitImagePath, false)
	if (landscapeWrong && (portraitWrong || c.PortraitImagePath == "")) ||
		(portraitWrong && c.LandscapeImagePath == "") {
		c.LandscapeImagePath, c.PortraitImagePath = c.PortraitImagePath, c.LandscapeImagePath
	}
}

// resolveSample anchors a relative sample path at the batch directory.
func resolveSample(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// readSampleText returns the file contents, or "" when unavailable.
func readSampleText(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied sample path
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
