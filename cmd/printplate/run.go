package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	printplate "github.com/maela/go-printplate"
)

// errEntriesFailed signals a finished batch with at least one failed entry.
var errEntriesFailed = errors.New("one or more batch entries failed")

// run dispatches to the requested subcommand.
func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "import-theme":
			return runImportTheme(args[1:])
		case "gen-batch":
			return runGenBatch(args[1:])
		case "version":
			fmt.Println("printplate", Version)
			return nil
		case "help", "-h", "--help":
			printHelp(os.Stdout)
			return nil
		}
	}
	return runBatch(args)
}

// newLogger creates the CLI logger honoring quiet and verbose.
func newLogger(w io.Writer, f commonFlags) *log.Logger {
	level := log.InfoLevel
	if f.verbose {
		level = log.DebugLevel
	}
	if f.quiet {
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runBatch renders every entry of a batch file (default ./batch.json).
func runBatch(args []string) error {
	f, rest, err := parseRunFlags(args)
	if err != nil {
		return err
	}
	batchPath := "batch.json"
	if len(rest) > 0 {
		batchPath = rest[0]
	}

	logger := newLogger(os.Stderr, f.common)
	ctx, cancel := signalContext()
	defer cancel()

	opts := []printplate.Option{}
	if f.output != "" {
		opts = append(opts, printplate.WithOutputDir(f.output))
	}
	if f.common.dir != "" {
		opts = append(opts, printplate.WithBaseDir(f.common.dir))
	}
	var exporter printplate.PDFExporter
	if f.pdf {
		exporter = printplate.NewPDFExporter(f.timeout)
		defer func() {
			if err := exporter.Close(); err != nil {
				logger.Debug("browser close", "err", err)
			}
		}()
		opts = append(opts, printplate.WithPDFExporter(exporter))
	}

	svc := printplate.New(opts...)
	logger.Debug("starting batch", "path", batchPath)
	results, err := svc.RunBatch(ctx, batchPath)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		ref := fmt.Sprintf("%s (%s/%s)", r.Entry.Layout, r.Entry.FrontTheme, r.Entry.BackTheme)
		if r.Failed() {
			failed++
			logger.Error("entry failed", "entry", ref, "err", r.Err)
			continue
		}
		logger.Info("entry rendered", "entry", ref, "outputs", len(r.Outputs), "took", r.Duration.Round(time.Millisecond))
		for _, out := range r.Outputs {
			logger.Debug("wrote", "path", out)
		}
	}
	logger.Info("batch finished", "entries", len(results), "failed", failed)
	if failed > 0 {
		return errEntriesFailed
	}
	return nil
}

// runGenBatch regenerates the entry list of a batch file from the
// discoverable layouts and themes.
func runGenBatch(args []string) error {
	f, _, err := parseGenBatchFlags(args)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, f.common)

	baseDir := f.common.dir
	if baseDir == "" {
		baseDir = filepath.Dir(f.batch)
	}
	batch, err := printplate.GenerateBatch(baseDir, f.batch, f.seed)
	if err != nil {
		return err
	}
	logger.Info("batch generated", "path", f.batch, "entries", len(batch.Entries))
	return nil
}

// runImportTheme converts Adobe Color CSS exports into theme files.
func runImportTheme(args []string) error {
	f, paths, err := parseImportThemeFlags(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("import-theme: at least one palette CSS file required")
	}
	logger := newLogger(os.Stderr, f.common)

	baseDir := f.common.dir
	if baseDir == "" {
		baseDir = "."
	}
	for _, p := range paths {
		written, err := printplate.ImportPalette(p, baseDir)
		if err != nil {
			return err
		}
		for _, w := range written {
			logger.Info("theme written", "path", w)
		}
	}
	return nil
}

// printUsage writes flag usage for the default command.
func printUsage(fs *flag.FlagSet) {
	printHelp(os.Stderr)
	fmt.Fprintln(os.Stderr, "\nFlags:")
	fmt.Fprint(os.Stderr, fs.FlagUsages())
}

// printHelp writes the command overview.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, `printplate renders gallery print layouts as blueprint diagrams or
print-ready HTML.

Usage:
  printplate [flags] [batch.json]           run a batch (default ./batch.json)
  printplate import-theme <palette.css>...  create themes from Adobe Color CSS
  printplate gen-batch [flags]              regenerate batch entries
  printplate version                        print the version`)
}
