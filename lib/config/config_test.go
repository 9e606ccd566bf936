// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("unexpected base_url: %s", cfg.API.BaseURL)
	}
	if timeout, err := cfg.RequestTimeout(); err != nil || timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v (%v)", timeout, err)
	}
	if staleAfter, err := cfg.CacheStaleAfter(); err != nil || staleAfter != 5*time.Minute {
		t.Errorf("expected 5m stale_after, got %v (%v)", staleAfter, err)
	}
	if cfg.Cache.Retries != 1 {
		t.Errorf("expected 1 retry, got %d", cfg.Cache.Retries)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TALLER_CONFIG", filepath.Join(t.TempDir(), "no-such-file.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed on missing file: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: https://taller.example.com/api
theme: dark
cache:
  retries: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.BaseURL != "https://taller.example.com/api" {
		t.Errorf("unexpected base_url: %s", cfg.API.BaseURL)
	}
	if cfg.Theme != "dark" {
		t.Errorf("unexpected theme: %s", cfg.Theme)
	}
	if cfg.Cache.Retries != 2 {
		t.Errorf("unexpected retries: %d", cfg.Cache.Retries)
	}
	// Untouched fields keep their defaults.
	if cfg.API.Timeout != "30s" {
		t.Errorf("expected default timeout to survive the merge, got %s", cfg.API.Timeout)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		problem string
	}{
		{"bad theme", "theme: sepia\n", "theme must be"},
		{"bad timeout", "api:\n  timeout: soon\n", "api.timeout"},
		{"bad stale_after", "cache:\n  stale_after: whenever\n", "cache.stale_after"},
		{"malformed yaml", "api: [\n", "config:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(test.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), test.problem) {
				t.Errorf("error %q does not mention %q", err, test.problem)
			}
		})
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv("TALLER_CONFIG", "/tmp/custom.yaml")

	path, err := FilePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom.yaml" {
		t.Errorf("unexpected path: %s", path)
	}
}

func TestFilePathXDG(t *testing.T) {
	t.Setenv("TALLER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	path, err := FilePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/xdg", "taller", "config.yaml") {
		t.Errorf("unexpected path: %s", path)
	}
}
