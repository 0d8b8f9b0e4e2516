// Package config provides configuration loading and structs for shitsumon.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Ranking   RankingConfig   `yaml:"ranking"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
}

// CorpusConfig holds corpus loading settings.
type CorpusConfig struct {
	// Extensions lists the recognized file extensions (with leading dot).
	Extensions []string `yaml:"extensions"`
}

// RankingConfig holds default result counts for the ranking pipeline.
type RankingConfig struct {
	// FileMatches is how many top files to carry into sentence ranking.
	FileMatches int `yaml:"file_matches"`
	// SentenceMatches is how many ranked sentences to return.
	SentenceMatches int `yaml:"sentence_matches"`
}

// TokenizerConfig holds tokenizer settings.
type TokenizerConfig struct {
	// ExtraStopwords are added to the built-in English stop list, e.g.
	// boilerplate words that appear in every corpus file.
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with all defaults applied, for running without a
// config file.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
