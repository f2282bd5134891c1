// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Command balance reports unmatched and mismatched delimiters in text files.
//
// Usage:
//
//	balance [flags] <path>...
//
// Directories are walked recursively. Exit status is 0 when no imbalance is
// found, 1 when there are findings and 2 on read or usage errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/avdva/balance"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		pairs      = fs.StringSliceP("pairs", "p", nil, "Delimiter pairs to track, e.g. '{},(),[]'")
		exts       = fs.StringSliceP("ext", "x", nil, "File extensions to check inside directories")
		exclude    = fs.StringSlice("exclude", nil, "Directory names to skip")
		depth      = fs.Bool("depth", false, "Trace nesting level per line instead of matching pairs")
		count      = fs.Bool("count", false, "Only count openers and closers")
		jsonOutput = fs.Bool("json", false, "Output in JSON format")
		noColumns  = fs.Bool("no-columns", false, "Omit columns from mismatched and unclosed reports")
		noColor    = fs.Bool("no-color", false, "Disable color output")
		verbose    = fs.CountP("verbose", "v", "Increase verbosity (-v info, -vv debug)")
		quiet      = fs.BoolP("quiet", "q", false, "Only print findings and errors")
		configPath = fs.StringP("config", "c", "", "Path to config file (default: ./"+defaultConfigFile+")")
		showVer    = fs.BoolP("version", "V", false, "Show version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: balance [flags] <path>...\n\nFlags:\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitFailure
	}
	if *showVer {
		fmt.Fprintf(stdout, "balance version %s\n", version)
		return exitOK
	}
	if *quiet && *verbose > 0 {
		fmt.Fprintln(stderr, "cannot use --quiet and --verbose together")
		return exitFailure
	}
	setupLogging(stderr, *verbose, *quiet)
	color.NoColor = *noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(stdout)

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return exitFailure
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return fail(stderr, err)
	}
	if len(*pairs) > 0 {
		cfg.Pairs = *pairs
	}
	if len(*exts) > 0 {
		cfg.Extensions = *exts
	}
	if len(*exclude) > 0 {
		cfg.Exclude = *exclude
	}
	if *depth {
		cfg.Checkers = []string{balance.CheckerDepth}
	}
	opts, err := cfg.options()
	if err != nil {
		return fail(stderr, err)
	}
	log.Debugf("tracking pairs %s", opts.Pairs)

	l, err := balance.New(paths, opts)
	if err != nil {
		return fail(stderr, err)
	}
	if len(l.Files()) == 0 {
		log.Warnf("no files to check in %v", paths)
	}
	withFile := len(l.Files()) > 1 || len(paths) > 1
	bar := newProgressBar(l, stderr, *quiet || *jsonOutput)

	if *count {
		counts, err := l.Count()
		finishProgressBar(bar)
		if err != nil {
			return fail(stderr, err)
		}
		if *jsonOutput {
			if err := printJSON(stdout, counts); err != nil {
				return fail(stderr, err)
			}
		} else {
			printCounts(stdout, counts, withFile)
		}
		if !countsBalanced(counts) {
			return exitFindings
		}
		return exitOK
	}

	reports, err := l.Do()
	finishProgressBar(bar)
	if err != nil {
		return fail(stderr, err)
	}
	log.Infof("%d files checked, %d findings", len(l.Files()), len(reports))
	if *jsonOutput {
		if reports == nil {
			reports = []balance.Report{}
		}
		if err := printJSON(stdout, reports); err != nil {
			return fail(stderr, err)
		}
	} else {
		printReports(stdout, reports, cfg.columns() && !*noColumns, withFile)
	}
	if len(reports) > 0 {
		return exitFindings
	}
	return exitOK
}

func setupLogging(w io.Writer, verbose int, quiet bool) {
	log.SetOutput(w)
	switch {
	case quiet:
		log.SetLevel(log.ErrorLevel)
	case verbose >= 2:
		log.SetLevel(log.DebugLevel)
	case verbose == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

func newProgressBar(l *balance.Linter, w io.Writer, disabled bool) *progressbar.ProgressBar {
	if disabled || len(l.Files()) < 2 || !isTerminal(w) {
		return nil
	}
	bar := progressbar.NewOptions(len(l.Files()),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Checking files"),
		progressbar.OptionClearOnFinish(),
	)
	l.SetProgressCallback(func(current, total int) {
		_ = bar.Set(current)
	})
	return bar
}

func finishProgressBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}

func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "%s %v\n", errorLabel.Sprint("ERROR:"), err)
	return exitFailure
}
