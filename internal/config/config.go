// Package config provides the YAML application configuration with
// defaults and validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/666fy666/AutoOffer/internal/common"
	"github.com/666fy666/AutoOffer/internal/match"
)

// DefaultTemplatePath is used when the config names no template file.
const DefaultTemplatePath = "data/resume_template.yaml"

// Config holds the runtime settings for the assistant.
type Config struct {
	// TemplatePath is the resume template file location.
	TemplatePath string `yaml:"template_path,omitempty"`

	// MatchThreshold is the minimum similarity for fallback matches
	// against recognized text.
	MatchThreshold float64 `yaml:"match_threshold,omitempty"`

	// SearchThreshold is the minimum similarity for fuzzy label search.
	SearchThreshold float64 `yaml:"search_threshold,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)

	return cfg
}

// Load reads and parses the config file at path. A missing file is not an
// error: the defaults apply.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applying defaults and validating.
func Parse(data []byte) (Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = DefaultTemplatePath
	}

	if cfg.MatchThreshold == 0 {
		cfg.MatchThreshold = match.DefaultThreshold
	}

	if cfg.SearchThreshold == 0 {
		cfg.SearchThreshold = match.DefaultSearchThreshold
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks that both thresholds are sane.
func (c Config) Validate() error {
	if !common.IsInRange(0.0, c.MatchThreshold, 1.0) {
		return fmt.Errorf("match_threshold %v out of range [0,1]", c.MatchThreshold)
	}

	if !common.IsInRange(0.0, c.SearchThreshold, 1.0) {
		return fmt.Errorf("search_threshold %v out of range [0,1]", c.SearchThreshold)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info for
// unrecognized names.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
