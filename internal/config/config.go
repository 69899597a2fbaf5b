// Package config loads the optional YAML configuration file of the mimedb command.
// Settings in the file are defaults; command line flags override them.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/birkland/mimedb/internal/atomicfile"
	"github.com/birkland/mimedb/scan"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds every configurable setting
type Config struct {
	// DB is a mime-db JSON file to use in place of the embedded table
	DB string `yaml:"db,omitempty"`

	Scan Scan `yaml:"scan"`
}

// Scan holds scanner settings
type Scan struct {
	Workers        int  `yaml:"workers"`
	Recursive      bool `yaml:"recursive"`
	Sniff          bool `yaml:"sniff"`
	FollowSymlinks bool `yaml:"follow_symlinks"`
}

// Default returns the configuration used when there is no file
func Default() *Config {
	return &Config{
		Scan: Scan{
			Workers: scan.DefaultWorkers,
		},
	}
}

// Load reads a configuration file over the defaults.  A missing file is not an
// error; unknown keys are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "could not read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "could not parse config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks settings for sanity
func (c *Config) Validate() error {
	if c.Scan.Workers < 0 {
		return errors.Errorf("scan workers must not be negative, got %d", c.Scan.Workers)
	}
	return nil
}

// Write encodes the configuration as YAML, in the form Load reads
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	return enc.Close()
}

// Save writes the configuration, replacing any file at path only once fully written
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return atomicfile.WriteFile(path, c.Write)
}

// ScanConfig converts scanner settings into a scanner configuration
func (c *Config) ScanConfig(log *zap.Logger) scan.Config {
	return scan.Config{
		Workers:        c.Scan.Workers,
		Recursive:      c.Scan.Recursive,
		Sniff:          c.Scan.Sniff,
		FollowSymlinks: c.Scan.FollowSymlinks,
		Logger:         log,
	}
}
