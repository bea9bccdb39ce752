// Package config loads wquant configuration from TOML, YAML, or JSON
// files, merged over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for wquant.
type Config struct {
	// Percentile settings
	Percentile PercentileConfig `koanf:"percentile"`

	// Input settings
	Input InputConfig `koanf:"input"`

	// Output settings
	Output OutputConfig `koanf:"output"`

	// Compute settings
	Compute ComputeConfig `koanf:"compute"`
}

// PercentileConfig controls the percentile computed by default.
type PercentileConfig struct {
	Default float64 `koanf:"default"`
}

// InputConfig controls how input tables are read.
type InputConfig struct {
	WeightColumn string `koanf:"weight_column"`
	NoHeader     bool   `koanf:"no_header"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown, toon
	Color  bool   `koanf:"color"`
}

// ComputeConfig controls parallel evaluation.
type ComputeConfig struct {
	Workers int `koanf:"workers"` // 0 or 1 means sequential
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Percentile: PercentileConfig{
			Default: 50,
		},
		Input: InputConfig{
			WeightColumn: "",
			NoHeader:     false,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Compute: ComputeConfig{
			Workers: 0,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Locate returns the first config file present in the standard search
// locations, or "" when none exists.
func Locate() string {
	configNames := []string{
		"wquant.toml",
		"wquant.yaml",
		"wquant.yml",
		"wquant.json",
		".wquant.toml",
		".wquant.yaml",
		".wquant.yml",
		".wquant.json",
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	if path := Locate(); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return DefaultConfig()
}

// Validate checks value ranges the CLI relies on.
func (c *Config) Validate() error {
	if c.Percentile.Default < 0 || c.Percentile.Default > 100 {
		return fmt.Errorf("percentile.default must be in [0, 100], got %v", c.Percentile.Default)
	}
	if c.Compute.Workers < 0 {
		return fmt.Errorf("compute.workers must not be negative, got %d", c.Compute.Workers)
	}
	switch c.Output.Format {
	case "text", "json", "markdown", "toon":
	default:
		return fmt.Errorf("output.format %q is not one of text, json, markdown, toon", c.Output.Format)
	}
	return nil
}
