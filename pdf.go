package printplate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PDFExporter renders a written HTML output file to PDF at the layout's
// exact paper size.
type PDFExporter interface {
	Export(ctx context.Context, htmlPath string, paper Dimensions) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ PDFExporter = (*rodExporter)(nil)

// DefaultPDFTimeout bounds a single page load and print.
const DefaultPDFTimeout = 30 * time.Second

// rodExporter implements PDFExporter using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodExporter struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewPDFExporter creates a Chrome-backed PDF exporter. The browser is
// launched lazily on first export. A non-positive timeout uses
// DefaultPDFTimeout.
func NewPDFExporter(timeout time.Duration) PDFExporter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &rodExporter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodExporter) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodExporter) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Export opens the HTML file in headless Chrome and prints it to PDF with
// zero margins so the page blocks map 1:1 onto the paper.
func (r *rodExporter) Export(ctx context.Context, htmlPath string, paper Dimensions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := paper.Validate(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		abs = htmlPath
	}
	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zero := 0.0
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      &paper.Width,
		PaperHeight:     &paper.Height,
		MarginTop:       &zero,
		MarginBottom:    &zero,
		MarginLeft:      &zero,
		MarginRight:     &zero,
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}
