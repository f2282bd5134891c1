// Copyright 2026 Aleksandr Demakin. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdva/balance"
)

func TestLoadConfig(t *testing.T) {
	r := require.New(t)
	name := filepath.Join(t.TempDir(), "balance.yaml")
	r.NoError(os.WriteFile(name, []byte(`
pairs: ["{}", "<>"]
extensions: [".css"]
exclude: [node_modules]
checkers: [depth]
columns: false
`), 0o644))
	cfg, err := LoadConfig(name)
	r.NoError(err)
	r.False(cfg.columns())
	opts, err := cfg.options()
	r.NoError(err)
	r.Equal(balance.Pairs{'{': '}', '<': '>'}, opts.Pairs)
	r.Equal([]string{".css"}, opts.Extensions)
	r.Equal([]string{"node_modules"}, opts.Exclude)
	r.Equal([]string{"depth"}, opts.Checkers)
}

func TestLoadConfigDefaults(t *testing.T) {
	r := require.New(t)
	cfg, err := LoadConfig("")
	r.NoError(err)
	r.True(cfg.columns())
	opts, err := cfg.options()
	r.NoError(err)
	r.Equal(balance.DefaultPairs(), opts.Pairs)
}

func TestLoadConfigErrors(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	r.Error(err)

	bad := filepath.Join(dir, "bad.yaml")
	r.NoError(os.WriteFile(bad, []byte("pairs: {"), 0o644))
	_, err = LoadConfig(bad)
	r.Error(err)
}
