// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Model != "gemini-3-pro-preview" {
		t.Errorf("default model = %q, want gemini-3-pro-preview", cfg.API.Model)
	}
	if cfg.Generation.Temperature != 0.6 {
		t.Errorf("default temperature = %g, want 0.6", cfg.Generation.Temperature)
	}
	if cfg.Generation.TopP != 0.9 {
		t.Errorf("default top_p = %g, want 0.9", cfg.Generation.TopP)
	}
	if cfg.Limits.DailyLimit != 25 {
		t.Errorf("default daily limit = %d, want 25", cfg.Limits.DailyLimit)
	}
	if cfg.Limits.HistoryWindow != 10 {
		t.Errorf("default history window = %d, want 10", cfg.Limits.HistoryWindow)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
key = "test-key"
model = "gemini-3-pro-preview"

[limits]
daily_limit = 5
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.API.Key != "test-key" {
		t.Errorf("api.key = %q, want test-key", cfg.API.Key)
	}
	if cfg.Limits.DailyLimit != 5 {
		t.Errorf("daily_limit = %d, want 5", cfg.Limits.DailyLimit)
	}
	// Unset fields fall back to defaults.
	if cfg.Generation.Temperature != 0.6 {
		t.Errorf("temperature = %g, want default 0.6", cfg.Generation.Temperature)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"api": {"key": "json-key"}, "limits": {"history_window": 4}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.API.Key != "json-key" {
		t.Errorf("api.key = %q, want json-key", cfg.API.Key)
	}
	if cfg.Limits.HistoryWindow != 4 {
		t.Errorf("history_window = %d, want 4", cfg.Limits.HistoryWindow)
	}
}

func TestLoadFromPath_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("api = {{{"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("malformed config should return an error")
	}
}

// =============================================================================
// ENV OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MEDHA_API_KEY", "env-key")
	t.Setenv("MEDHA_MODEL", "env-model")
	t.Setenv("MEDHA_DAILY_LIMIT", "7")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.Key != "env-key" {
		t.Errorf("api.key = %q, want env-key", cfg.API.Key)
	}
	if cfg.API.Model != "env-model" {
		t.Errorf("api.model = %q, want env-model", cfg.API.Model)
	}
	if cfg.Limits.DailyLimit != 7 {
		t.Errorf("daily_limit = %d, want 7", cfg.Limits.DailyLimit)
	}
}

func TestApplyEnvOverrides_BadLimit(t *testing.T) {
	t.Setenv("MEDHA_DAILY_LIMIT", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.Limits.DailyLimit != 25 {
		t.Errorf("daily_limit = %d, want unchanged 25", cfg.Limits.DailyLimit)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"temperature too high", func(c *Config) { c.Generation.Temperature = 3 }, true},
		{"negative top_p", func(c *Config) { c.Generation.TopP = -0.1 }, true},
		{"zero daily limit", func(c *Config) { c.Limits.DailyLimit = 0 }, true},
		{"negative history window", func(c *Config) { c.Limits.HistoryWindow = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// =============================================================================
// REDACTION TESTS
// =============================================================================

func TestString_RedactsKey(t *testing.T) {
	cfg := Default()
	cfg.API.Key = "super-secret"

	s := cfg.String()
	if strings.Contains(s, "super-secret") {
		t.Error("String() must not expose the API key")
	}
	if !strings.Contains(s, "[REDACTED]") {
		t.Error("String() should mark the key as redacted")
	}
}
