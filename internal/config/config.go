// Package config loads asfinfo settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the asfinfo configuration.
type Config struct {
	IndexPath   string `yaml:"index_path"`
	MetricsFile string `yaml:"metrics_file"`
	Jobs        int    `yaml:"jobs"`
	LogLevel    string `yaml:"log_level"`
	Show        Show   `yaml:"show"`
}

// Show selects the sections printed by the show command.
type Show struct {
	Info    bool `yaml:"info"`
	Tags    bool `yaml:"tags"`
	Objects bool `yaml:"objects"`
	Stream  bool `yaml:"stream"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		IndexPath: "",
		Jobs:      4,
		LogLevel:  "info",
		Show: Show{
			Info:    true,
			Tags:    true,
			Objects: true,
			Stream:  false,
		},
	}
}

// Load reads the configuration at path on top of the defaults, so keys
// missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if !Exists(path) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes cfg to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// DefaultPath returns $HOME/.asfinfo.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".asfinfo.yaml"
	}
	return filepath.Join(home, ".asfinfo.yaml")
}

// Exists checks if a configuration file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
