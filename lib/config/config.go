// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package config loads the taller client configuration.
//
// Configuration is read from a single YAML file located by:
//   - TALLER_CONFIG environment variable, or
//   - $XDG_CONFIG_HOME/taller/config.yaml (~/.config/taller/config.yaml)
//
// A missing file is not an error; the defaults cover local use against
// a backend on localhost. Environment variables never override file
// values, with one exception: TALLER_API_URL, which the API client
// resolves itself so that a single shell export can retarget every
// command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	// API configures the HTTP client core.
	API APIConfig `yaml:"api"`

	// Theme forces the dashboard theme ("light" or "dark"). Empty
	// means: use the persisted preference, else detect from the
	// terminal background.
	Theme string `yaml:"theme,omitempty"`

	// Cache configures the read cache.
	Cache CacheConfig `yaml:"cache"`

	// Snapshot configures the dashboard startup snapshot.
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// APIConfig configures the HTTP client core.
type APIConfig struct {
	// BaseURL is the backend root, including the /api prefix.
	// Default: http://localhost:8080/api
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-request timeout, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout"`
}

// CacheConfig configures the read cache.
type CacheConfig struct {
	// StaleAfter is how long a cached read stays fresh, as a Go
	// duration string. Default: 5m
	StaleAfter string `yaml:"stale_after"`

	// Retries is how many times a failed read is retried.
	// Default: 1. Set to -1 to disable retries.
	Retries int `yaml:"retries"`
}

// SnapshotConfig configures the dashboard startup snapshot.
type SnapshotConfig struct {
	// Disabled turns the snapshot off; the dashboard then always
	// starts with live fetches.
	Disabled bool `yaml:"disabled"`

	// Path overrides the snapshot file location.
	// Default: $XDG_CACHE_HOME/taller/snapshot (~/.cache/taller/snapshot)
	Path string `yaml:"path,omitempty"`
}

// Default returns the default configuration, used as the base before
// the config file (if any) is merged in.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: "30s",
		},
		Cache: CacheConfig{
			StaleAfter: "5m",
			Retries:    1,
		},
	}
}

// FilePath returns the config file location: TALLER_CONFIG if set,
// otherwise the XDG config directory.
func FilePath() (string, error) {
	if path := os.Getenv("TALLER_CONFIG"); path != "" {
		return path, nil
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "taller", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "taller", "config.yaml"), nil
}

// Load reads the config file from its standard location. A missing
// file yields the defaults; a present but malformed file is an error.
func Load() (*Config, error) {
	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from a specific file path, merged over
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme must be \"light\" or \"dark\", got %q", c.Theme)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if _, err := c.CacheStaleAfter(); err != nil {
		return err
	}
	return nil
}

// RequestTimeout parses APIConfig.Timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	return d, nil
}

// CacheStaleAfter parses CacheConfig.StaleAfter.
func (c *Config) CacheStaleAfter() (time.Duration, error) {
	d, err := time.ParseDuration(c.Cache.StaleAfter)
	if err != nil {
		return 0, fmt.Errorf("cache.stale_after: %w", err)
	}
	return d, nil
}

// SnapshotPath returns the snapshot file location, honoring the
// configured override.
func (c *Config) SnapshotPath() (string, error) {
	if c.Snapshot.Path != "" {
		return c.Snapshot.Path, nil
	}
	if base := os.Getenv("XDG_CACHE_HOME"); base != "" {
		return filepath.Join(base, "taller", "snapshot"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "taller", "snapshot"), nil
}
