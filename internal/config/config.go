// Package config handles configuration file parsing and hot-reloading.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`

	// Internal: path to the config file
	path string

	mu sync.RWMutex
}

// ThemeConfig selects the color palette used by the TUI.
type ThemeConfig struct {
	Palette string `yaml:"palette"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{Palette: "teal"},
	}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.path = path

	return cfg, nil
}

// Path returns the path the config was loaded from, empty for defaults.
func (c *Config) Path() string {
	return c.path
}

// Palette returns the configured palette name.
func (c *Config) Palette() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme.Palette
}

// Reload re-reads the config file in place.
func (c *Config) Reload() error {
	if c.path == "" {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fresh := DefaultConfig()
	if err := yaml.Unmarshal(data, fresh); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	c.mu.Lock()
	c.Theme = fresh.Theme
	c.mu.Unlock()
	return nil
}
