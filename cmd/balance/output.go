// Copyright 2026 Aleksandr Demakin. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/avdva/balance"
)

const okMessage = "OK: no imbalance found"

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	okLabel    = color.New(color.FgGreen)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorize paints the leading "ERROR:" of a diagnostic line.
func colorize(line string) string {
	if rest, found := strings.CutPrefix(line, "ERROR:"); found {
		return errorLabel.Sprint("ERROR:") + rest
	}
	return line
}

func printReports(w io.Writer, reports []balance.Report, columns, withFile bool) {
	if len(reports) == 0 {
		fmt.Fprintln(w, okLabel.Sprint(okMessage))
		return
	}
	for _, r := range reports {
		line := colorize(r.Finding.Format(columns))
		if withFile {
			line = r.File + ": " + line
		}
		fmt.Fprintln(w, line)
	}
}

func printCounts(w io.Writer, counts []balance.FileCount, withFile bool) {
	for _, fc := range counts {
		for _, pc := range fc.Counts {
			line := pc.String()
			if !pc.Balanced() {
				line = errorLabel.Sprint(line)
			}
			if withFile {
				line = fc.File + ": " + line
			}
			fmt.Fprintln(w, line)
		}
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func countsBalanced(counts []balance.FileCount) bool {
	for _, fc := range counts {
		for _, pc := range fc.Counts {
			if !pc.Balanced() {
				return false
			}
		}
	}
	return true
}
