// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/ports"
)

// Config represents the full configuration for the placeholder service.
type Config struct {
	// Server
	Listen string `yaml:"listen" toml:"listen"`

	// Limits
	MaxDimension int `yaml:"max_dimension" toml:"max_dimension"`
	MaxCount     int `yaml:"max_count" toml:"max_count"`

	// Rendering
	Workers int      `yaml:"workers" toml:"workers"` // 0 = one per CPU
	Fonts   []string `yaml:"fonts" toml:"fonts"`     // paths or ** globs, tried before the system candidates
	Seed    uint64   `yaml:"seed" toml:"seed"`       // 0 = seeded from entropy

	// Logging
	LogLevel     string `yaml:"log_level" toml:"log_level"`
	LogFile      string `yaml:"log_file" toml:"log_file"` // empty = console
	LogMaxSizeMB int    `yaml:"log_max_size_mb" toml:"log_max_size_mb"`

	// Debug
	Debug    bool   `yaml:"debug" toml:"debug"`
	DebugDir string `yaml:"debug_dir" toml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	limits := orchestrator.DefaultConfig()
	return Config{
		Listen:       ":8000",
		MaxDimension: limits.MaxDimension,
		MaxCount:     limits.MaxCount,
		LogLevel:     "info",
		LogMaxSizeMB: 10,
		DebugDir:     "./debug",
	}
}

// LoadFromFile loads configuration over the defaults. Files ending in
// .toml are parsed as TOML, anything else as YAML.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Level returns the configured log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		MaxDimension: c.MaxDimension,
		MaxCount:     c.MaxCount,
	}
}
