// Package config loads the settings of the calculator from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvConfig   = "CALC_CONFIG"
	EnvLogLevel = "CALC_LOG_LEVEL"
	EnvColor    = "CALC_COLOR"
	EnvHistory  = "CALC_HISTORY"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of a session.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Color       string `yaml:"color"`
	Precision   int    `yaml:"precision"`
	HistoryFile string `yaml:"history_file"`
	Trace       bool   `yaml:"trace"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	cfg := Config{
		LogLevel:  "warn",
		Color:     ColorAuto,
		Precision: -1,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".calc_history")
	}
	return cfg
}

// DefaultPath returns where the configuration file is looked for when
// CALC_CONFIG is not set.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// Load reads the configuration file named by CALC_CONFIG, or the one at
// DefaultPath, and applies the environment overrides. A missing file is not an
// error.
func Load() (Config, error) {
	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg, err := LoadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = Default()
	default:
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadFile reads the file at path on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fs.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		cfg.Color = v
	}
	if v, ok := os.LookupEnv(EnvHistory); ok {
		cfg.HistoryFile = v
	}
}

// Validate checks that every setting has a usable value.
func (cfg Config) Validate() error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: want %s, %s or %s",
			cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if cfg.Precision < -1 {
		return fmt.Errorf("invalid precision %d: must be -1 or more", cfg.Precision)
	}
	return nil
}

// Level returns the parsed log level, InfoLevel if it can not be parsed.
func (cfg Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
