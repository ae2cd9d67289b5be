// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Database DatabaseConfig `toml:"database"`
	Index    IndexConfig    `toml:"index"`
	Vision   VisionConfig   `toml:"vision"`
	Matching MatchingConfig `toml:"matching"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type IndexConfig struct {
	Path string `toml:"path"`
}

type VisionConfig struct {
	URL     string        `toml:"url"`
	Timeout time.Duration `toml:"timeout"`
}

type MatchingConfig struct {
	SearchLimit int           `toml:"search_limit"`
	Concurrency int           `toml:"concurrency"`
	ItemTimeout time.Duration `toml:"item_timeout"`
}

// Load reads and parses a config file, substituting ${VAR} patterns from the
// environment and applying defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config with all defaults applied, for running without a
// config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/shelfscan.db"
	}
	if c.Index.Path == "" {
		c.Index.Path = "./data/index"
	}
	if c.Vision.Timeout == 0 {
		c.Vision.Timeout = 30 * time.Second
	}
	if c.Matching.SearchLimit == 0 {
		c.Matching.SearchLimit = 10
	}
	if c.Matching.Concurrency == 0 {
		c.Matching.Concurrency = 8
	}
	if c.Matching.ItemTimeout == 0 {
		c.Matching.ItemTimeout = 10 * time.Second
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
