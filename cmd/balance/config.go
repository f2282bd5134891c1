// Copyright 2026 Aleksandr Demakin. All rights reserved.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avdva/balance"
)

const defaultConfigFile = ".balance.yaml"

// Config is the optional .balance.yaml file. Command line flags override it.
type Config struct {
	Pairs      []string `yaml:"pairs"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Checkers   []string `yaml:"checkers"`
	Columns    *bool    `yaml:"columns"`
}

// LoadConfig reads the config at path. With an empty path the default file
// is used if it exists, otherwise an empty config is returned.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "cannot read config %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", path)
	}
	return &cfg, nil
}

func (c *Config) columns() bool {
	return c.Columns == nil || *c.Columns
}

func (c *Config) options() (balance.Options, error) {
	opts := balance.Options{
		Pairs:      balance.DefaultPairs(),
		Checkers:   c.Checkers,
		Extensions: c.Extensions,
		Exclude:    c.Exclude,
	}
	if len(c.Pairs) > 0 {
		pairs, err := balance.ParsePairs(c.Pairs)
		if err != nil {
			return opts, err
		}
		opts.Pairs = pairs
	}
	return opts, nil
}
