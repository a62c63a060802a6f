// Package config provides configuration management for the enrichment pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSummarySentences is the sentence count used when neither the
// config file nor the CLI supplies one.
const DefaultSummarySentences = 3

// Configuration validation errors.
var (
	ErrInvalidSentences   = errors.New("summary.sentences must be at least 1")
	ErrMissingOutputDir   = errors.New("output.dir is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrModelURLWithoutDir = errors.New("entities.model_url has no effect without entities.model_dir")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// PipelineConfig contains pipeline-specific settings.
type PipelineConfig struct {
	Summary  SummaryConfig  `yaml:"summary"`
	Entities EntitiesConfig `yaml:"entities"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SummaryConfig controls the extractive summarizer.
type SummaryConfig struct {
	Sentences int `yaml:"sentences"`
}

// EntitiesConfig controls named-entity recognition model resolution.
// An empty ModelDir selects the library's built-in model. When ModelDir
// is set but absent on disk, the archive at ModelURL is fetched once.
type EntitiesConfig struct {
	ModelDir string `yaml:"model_dir"`
	ModelURL string `yaml:"model_url"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	HTML bool   `yaml:"html"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Summary: SummaryConfig{Sentences: DefaultSummarySentences},
			Output:  OutputConfig{Dir: ".", HTML: true},
			Logging: LoggingConfig{Level: "info"},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields omitted in the
// file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.Summary.Sentences < 1 {
		return ErrInvalidSentences
	}

	if c.Pipeline.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Pipeline.Entities.ModelURL != "" && c.Pipeline.Entities.ModelDir == "" {
		return ErrModelURLWithoutDir
	}

	return nil
}

// UsesBuiltinModel reports whether entity extraction runs on the
// library's embedded model instead of one loaded from disk.
func (e *EntitiesConfig) UsesBuiltinModel() bool {
	return e.ModelDir == ""
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sentences: %d, ModelDir: %q, OutputDir: %s, HTML: %t}",
		c.Pipeline.Summary.Sentences,
		c.Pipeline.Entities.ModelDir,
		c.Pipeline.Output.Dir,
		c.Pipeline.Output.HTML,
	)
}
