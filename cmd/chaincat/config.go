// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the knobs that may come from a config file. Flags given on the
// command line override the file.
type Config struct {
	// Lines is the number of lines to print; 0 prints every line.
	Lines int `yaml:"lines"`
	// At selects a single line; negative values count from the end.
	At *int `yaml:"at"`
	// Grep keeps only lines containing the substring.
	Grep string `yaml:"grep"`
	// Count prints the number of lines instead of the lines.
	Count bool `yaml:"count"`
	// Uniq drops lines seen among the last Uniq distinct lines; 0 disables it.
	Uniq int `yaml:"uniq"`
	// Primes prints the first Primes primes and ignores the inputs.
	Primes int `yaml:"primes"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{LogLevel: "info"}
}

// loadConfig reads a YAML config on top of the defaults. Unknown keys are
// errors.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := decodeConfig(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.validate()
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Lines < 0:
		return fmt.Errorf("lines must not be negative, got %d", cfg.Lines)
	case cfg.Uniq < 0:
		return fmt.Errorf("uniq must not be negative, got %d", cfg.Uniq)
	case cfg.Primes < 0:
		return fmt.Errorf("primes must not be negative, got %d", cfg.Primes)
	case cfg.Count && cfg.At != nil:
		return errors.New("count and at are mutually exclusive")
	}
	return nil
}
