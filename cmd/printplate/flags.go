package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
	dir     string
}

// runFlags holds flags for the default batch-run command.
type runFlags struct {
	common  commonFlags
	output  string
	pdf     bool
	timeout time.Duration
}

// genBatchFlags holds flags for the gen-batch command.
type genBatchFlags struct {
	common commonFlags
	seed   int64
	batch  string
}

// importThemeFlags holds flags for the import-theme command.
type importThemeFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-entry detail")
	fs.StringVarP(&f.dir, "dir", "d", "", "base directory holding layouts/ and themes/ (default: batch directory)")
}

// parseRunFlags parses batch-run flags and returns positional args.
func parseRunFlags(args []string) (*runFlags, []string, error) {
	fs := flag.NewFlagSet("printplate", flag.ContinueOnError)
	f := &runFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: <batchdir>/output)")
	fs.BoolVar(&f.pdf, "pdf", false, "print mode: also export PDFs via headless Chrome")
	fs.DurationVarP(&f.timeout, "timeout", "t", 30*time.Second, "PDF render timeout per page")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseGenBatchFlags parses gen-batch flags and returns positional args.
func parseGenBatchFlags(args []string) (*genBatchFlags, []string, error) {
	fs := flag.NewFlagSet("gen-batch", flag.ContinueOnError)
	f := &genBatchFlags{}

	fs.Int64Var(&f.seed, "seed", 0, "shuffle seed for theme assignment")
	fs.StringVarP(&f.batch, "batch", "b", "batch.json", "batch file to write")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseImportThemeFlags parses import-theme flags and returns the palette
// file paths.
func parseImportThemeFlags(args []string) (*importThemeFlags, []string, error) {
	fs := flag.NewFlagSet("import-theme", flag.ContinueOnError)
	f := &importThemeFlags{}

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
