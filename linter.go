// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// Options control which files are read and how they are checked.
type Options struct {
	Pairs    Pairs
	Checkers []string
	// Extensions filter files found while walking directories.
	// Files named explicitly are always checked.
	Extensions []string
	// Exclude lists directory names skipped while walking.
	Exclude []string
}

type Linter struct {
	files    []string
	pairs    Pairs
	checkers []Checker
	progress func(current, total int)
}

type Report struct {
	File    string  `json:"file"`
	Finding Finding `json:"finding"`
}

func (r Report) Location() string {
	return r.File + ":" + r.Finding.Pos.String()
}

// FileCount holds delimiter totals of one file.
type FileCount struct {
	File   string      `json:"file"`
	Counts []PairCount `json:"counts"`
}

// IOError is returned when a file cannot be read or is not valid UTF-8.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Cause() error {
	return e.Err
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func New(paths []string, opts Options) (*Linter, error) {
	if opts.Pairs == nil {
		opts.Pairs = DefaultPairs()
	}
	checkers, err := makeCheckers(opts.Checkers, opts.Pairs)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, path := range paths {
		found, err := collectFiles(path, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return &Linter{files: files, pairs: opts.Pairs, checkers: checkers}, nil
}

func DoFile(name string, opts Options) ([]Report, error) {
	l, err := New([]string{name}, opts)
	if err != nil {
		return nil, err
	}
	return l.Do()
}

func (l *Linter) Files() []string {
	return l.files
}

// SetProgressCallback sets a function called after every processed file.
func (l *Linter) SetProgressCallback(fn func(current, total int)) {
	l.progress = fn
}

// Do checks all files. The first file that cannot be read stops the run.
func (l *Linter) Do() ([]Report, error) {
	var result []Report
	for i, name := range l.files {
		text, err := readText(name)
		if err != nil {
			return nil, err
		}
		info := &CheckInfo{Name: name, Text: text, Index: NewLineIndex(text)}
		for _, checker := range l.checkers {
			for _, f := range checker.DoFile(info) {
				result = append(result, Report{File: name, Finding: f})
			}
		}
		log.Debugf("%s: %d lines checked", name, info.Index.Lines())
		l.reportProgress(i + 1)
	}
	return result, nil
}

// Count returns delimiter totals for every file.
func (l *Linter) Count() ([]FileCount, error) {
	var result []FileCount
	for i, name := range l.files {
		text, err := readText(name)
		if err != nil {
			return nil, err
		}
		result = append(result, FileCount{File: name, Counts: Count(text, l.pairs)})
		l.reportProgress(i + 1)
	}
	return result, nil
}

func (l *Linter) reportProgress(current int) {
	if l.progress != nil {
		l.progress(current, len(l.files))
	}
}

func readText(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", &IOError{Path: name, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: name, Err: errInvalidUTF8}
	}
	return string(data), nil
}

func collectFiles(path string, opts Options) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}
	var result []string
	err = filepath.WalkDir(path, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Path: name, Err: err}
		}
		if d.IsDir() {
			if name != path && excluded(d.Name(), opts.Exclude) {
				log.Debugf("skipping directory %s", name)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !hasExtension(name, opts.Extensions) {
			return nil
		}
		result = append(result, name)
		return nil
	})
	if err != nil {
		if _, ok := err.(*IOError); ok {
			return nil, err
		}
		return nil, errors.Wrapf(err, "error walking %q", path)
	}
	sort.Strings(result)
	return result, nil
}

func excluded(dir string, exclude []string) bool {
	for _, e := range exclude {
		if dir == e {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, normalizeExt(e)) {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
