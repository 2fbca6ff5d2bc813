// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional runner configuration file looked up in the
// working directory.
const FileName = ".addsuite.yaml"

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete test-runner configuration
type Config struct {
	Runner RunnerConfig `yaml:"runner"`
	Log    LogConfig    `yaml:"log"`
}

// RunnerConfig controls how test groups are executed
type RunnerConfig struct {
	FailFast bool     `yaml:"fail_fast"`
	Tags     []string `yaml:"tags"`
}

// LogConfig selects the slog handler and level
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Format: FormatText,
			Level:  "info",
		},
	}
}

// Load loads the configuration from .addsuite.yaml in the working
// directory. A missing file yields the defaults.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := LoadFile(filepath.Join(cwd, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile loads the configuration from path. Fields absent from the file
// keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if _, err := c.Log.level(); err != nil {
		return err
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(l.Level))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// Handler builds the slog handler described by the log section
func (l LogConfig) Handler(w io.Writer) slog.Handler {
	level, err := l.level()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if l.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
