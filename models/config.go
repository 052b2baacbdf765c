// Package models defines data structures for configuration, artifacts and analysis results.
package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "config.yaml"

// Config holds runtime configuration. Values come from an optional YAML file
// and are overridden by CLI flags.
type Config struct {
	Artifacts ArtifactConfig  `yaml:"artifacts"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Insights  InsightConfig   `yaml:"insights"`
	Language  LanguageConfig  `yaml:"language"`
	Output    OutputConfig    `yaml:"output"`
}

// ArtifactConfig locates the fitted vectorizer and trained model.
type ArtifactConfig struct {
	Dir        string `yaml:"dir"`
	Vectorizer string `yaml:"vectorizer"`
	Model      string `yaml:"model"`
}

type SentimentConfig struct {
	Enabled bool   `yaml:"enabled"`
	Lexicon string `yaml:"lexicon,omitempty"` // optional YAML lexicon extension
}

type InsightConfig struct {
	TopWords      int `yaml:"top_words"`
	MinWordLength int `yaml:"min_word_length"` // in runes; 5 means "longer than 4"
}

type LanguageConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Expected string `yaml:"expected,omitempty"` // ISO 639-1; empty means the vectorizer's language
}

type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Artifacts: ArtifactConfig{
			Dir:        ".",
			Vectorizer: "vectorizer.json",
			Model:      "lr_model.json",
		},
		Sentiment: SentimentConfig{Enabled: true},
		Insights: InsightConfig{
			TopWords:      5,
			MinWordLength: 5,
		},
		Output: OutputConfig{Format: "text"},
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file is only an
// error when it is not the default config file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFile {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside the pipeline.
func (c *Config) Validate() error {
	if c.Insights.TopWords < 0 {
		return fmt.Errorf("%w: insights.top_words must be >= 0, got %d", ErrInvalidConfig, c.Insights.TopWords)
	}
	if c.Insights.MinWordLength < 1 {
		return fmt.Errorf("%w: insights.min_word_length must be >= 1, got %d", ErrInvalidConfig, c.Insights.MinWordLength)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unsupported output format %q (want text, json or yaml)", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}
