// Command displace expands a list of labeled 3D points into displaced
// points using a category-based offset catalog.
//
// Usage:
//
//	displace [flags] <input-path> <output-path> [--no-original]
//
// Each input record is "label X Y Z" or "label,X,Y,Z". The digits in a
// label select a category, and every entry of that category's catalog
// produces one output point named label+suffix at the offset position.
// Output is CSV with three decimals per coordinate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/banshee-data/pointexpand/internal/config"
	"github.com/banshee-data/pointexpand/internal/expand"
	"github.com/banshee-data/pointexpand/internal/fsutil"
	"github.com/banshee-data/pointexpand/internal/monitoring"
	"github.com/banshee-data/pointexpand/internal/pointio"
	"github.com/banshee-data/pointexpand/internal/version"
	"github.com/google/uuid"
)

const noOriginalFlag = "--no-original"

// errUsage marks argument errors that should print usage.
var errUsage = errors.New("usage")

// Options holds the parsed command line.
type Options struct {
	InputPath       string
	OutputPath      string
	IncludeOriginal bool
	CatalogPath     string
	Workers         int
	Verbose         bool
	ShowVersion     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, fsutil.OSFileSystem{}))
}

func newFlagSet(opts *Options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("displace", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.CatalogPath, "config", "", "Catalog file (.json, .yaml or .yml); default is the built-in BLUE/RED catalog")
	fs.IntVar(&opts.Workers, "workers", 1, "Number of goroutines used to expand points (1 = sequential)")
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print version and exit")
	fs.BoolFunc("no-original", "Do not copy input points to the output", func(string) error {
		opts.IncludeOriginal = false
		return nil
	})

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: displace [options] inputFile outputFile [%s]\n\n", noOriginalFlag)
		fmt.Fprintf(stderr, "Reads label,X,Y,Z points and writes each point plus its displaced copies.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs accepts flags before the positional arguments and a single
// trailing --no-original after them.
func parseArgs(args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{IncludeOriginal: true}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.ShowVersion {
		return opts, nil
	}

	rest := fs.Args()
	switch len(rest) {
	case 2:
	case 3:
		if rest[2] != noOriginalFlag {
			fmt.Fprintf(stderr, "Unknown option: %s\n", rest[2])
			return nil, fmt.Errorf("%w: unknown option %q", errUsage, rest[2])
		}
		opts.IncludeOriginal = false
	default:
		fs.Usage()
		return nil, fmt.Errorf("%w: expected inputFile and outputFile", errUsage)
	}
	opts.InputPath = rest[0]
	opts.OutputPath = rest[1]
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return opts, nil
}

func loadConfig(path string) (*expand.Config, error) {
	cat := config.DefaultCatalog()
	if path != "" {
		var err error
		if cat, err = config.LoadCatalogFile(path); err != nil {
			return nil, err
		}
	}
	return cat.Build()
}

// run executes one expansion pass and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, fsys fsutil.FileSystem) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	monitoring.SetVerbose(opts.Verbose)

	runID := uuid.New()
	monitoring.Debugf("run %s: input=%s output=%s include_original=%v workers=%d",
		runID, opts.InputPath, opts.OutputPath, opts.IncludeOriginal, opts.Workers)

	cfg, err := loadConfig(opts.CatalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	points, skipped, err := pointio.ReadPointsFile(fsys, opts.InputPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, le := range skipped {
		monitoring.Warnf("%s:%d: skipped record %q: %v", opts.InputPath, le.Line, le.Text, le.Err)
	}
	if len(points) == 0 {
		monitoring.Warnf("no points read from %s", opts.InputPath)
	}

	rows := expand.RunParallel(points, cfg, opts.IncludeOriginal, opts.Workers)

	if err := pointio.WriteRowsFile(fsys, opts.OutputPath, rows); err != nil {
		if errors.Is(err, pointio.ErrSinkUnavailable) {
			fmt.Fprintf(stderr, "Error: cannot open output file %s\n", opts.OutputPath)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	summary := expand.Summarize(rows)
	fmt.Fprintf(stdout, "Wrote %s with ", opts.OutputPath)
	if opts.IncludeOriginal {
		fmt.Fprintf(stdout, "%d original points and ", summary.Original)
	}
	fmt.Fprintf(stdout, "%d displaced points.\n", summary.Generated)

	if monitoring.Verbose() {
		ids := make([]string, 0, len(summary.ByCategory))
		for id := range summary.ByCategory {
			ids = append(ids, string(id))
		}
		sort.Strings(ids)
		for _, id := range ids {
			monitoring.Debugf("run %s: category %s: %d displaced points", runID, id, summary.ByCategory[expand.CategoryID(id)])
		}
	}
	return 0
}
