// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.medha/config.toml
//   - ~/.medha/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/medha-ai/medha-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete application configuration.
type Config struct {
	// API settings for the generation service
	API APIConfig `toml:"api" json:"api"`

	// Generation sampling parameters
	Generation GenerationConfig `toml:"generation" json:"generation"`

	// Local usage limits
	Limits LimitsConfig `toml:"limits" json:"limits"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// APIConfig contains generation service settings.
type APIConfig struct {
	// Key is the API key for the generation service
	Key string `toml:"key" json:"key"`
	// BaseURL is the service endpoint base URL
	BaseURL string `toml:"base_url" json:"base_url"`
	// Model is the model identifier used in generateContent calls
	Model string `toml:"model" json:"model"`
	// TimeoutSecs is the request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// GenerationConfig contains sampling parameters sent with every request.
type GenerationConfig struct {
	// Temperature controls sampling randomness (0.0-2.0)
	Temperature float64 `toml:"temperature" json:"temperature"`
	// TopP is the nucleus sampling mass (0.0-1.0)
	TopP float64 `toml:"top_p" json:"top_p"`
}

// LimitsConfig contains local usage limits.
type LimitsConfig struct {
	// DailyLimit is the number of generation requests allowed per calendar day
	DailyLimit int `toml:"daily_limit" json:"daily_limit"`
	// HistoryWindow is how many prior transcript turns are sent to the model
	HistoryWindow int `toml:"history_window" json:"history_window"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// CompactWidth is the terminal width below which the compact layout is used
	CompactWidth int `toml:"compact_width" json:"compact_width"`
	// ShowUsage displays the daily usage meter
	ShowUsage bool `toml:"show_usage" json:"show_usage"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Key:         "",
			BaseURL:     "https://generativelanguage.googleapis.com",
			Model:       "gemini-3-pro-preview",
			TimeoutSecs: 60,
		},
		Generation: GenerationConfig{
			Temperature: 0.6,
			TopP:        0.9,
		},
		Limits: LimitsConfig{
			DailyLimit:    25,
			HistoryWindow: 10,
		},
		UI: UIConfig{
			CompactWidth: 80,
			ShowUsage:    true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the application configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".medha"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// finish applies env overrides, defaults, and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Written with 0600 permissions because the file carries the API key.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf strings.Builder
	buf.WriteString("# medha configuration file\n")
	buf.WriteString("# Generated by medha - edit with care\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.API.BaseURL != "" {
		if _, err := url.Parse(c.API.BaseURL); err != nil {
			errs = append(errs, ValidationError{
				Field:   "api.base_url",
				Message: fmt.Sprintf("invalid URL: %v", err),
			})
		}
	}
	if c.API.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_secs",
			Message: "must be non-negative",
		})
	}

	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		errs = append(errs, ValidationError{
			Field:   "generation.temperature",
			Message: fmt.Sprintf("must be between 0.0 and 2.0, got %g", c.Generation.Temperature),
		})
	}
	if c.Generation.TopP < 0 || c.Generation.TopP > 1 {
		errs = append(errs, ValidationError{
			Field:   "generation.top_p",
			Message: fmt.Sprintf("must be between 0.0 and 1.0, got %g", c.Generation.TopP),
		})
	}

	if c.Limits.DailyLimit < 1 {
		errs = append(errs, ValidationError{
			Field:   "limits.daily_limit",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Limits.DailyLimit),
		})
	}
	if c.Limits.HistoryWindow < 0 {
		errs = append(errs, ValidationError{
			Field:   "limits.history_window",
			Message: "must be non-negative",
		})
	}

	if c.UI.CompactWidth < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.compact_width",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Model == "" {
		c.API.Model = defaults.API.Model
	}
	if c.API.TimeoutSecs == 0 {
		c.API.TimeoutSecs = defaults.API.TimeoutSecs
	}

	if c.Generation.Temperature == 0 {
		c.Generation.Temperature = defaults.Generation.Temperature
	}
	if c.Generation.TopP == 0 {
		c.Generation.TopP = defaults.Generation.TopP
	}

	if c.Limits.DailyLimit == 0 {
		c.Limits.DailyLimit = defaults.Limits.DailyLimit
	}
	if c.Limits.HistoryWindow == 0 {
		c.Limits.HistoryWindow = defaults.Limits.HistoryWindow
	}

	if c.UI.CompactWidth == 0 {
		c.UI.CompactWidth = defaults.UI.CompactWidth
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - MEDHA_API_KEY: overrides api.key
//   - MEDHA_BASE_URL: overrides api.base_url
//   - MEDHA_MODEL: overrides api.model
//   - MEDHA_DAILY_LIMIT: overrides limits.daily_limit
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv("MEDHA_API_KEY"); key != "" {
		c.API.Key = key
	}
	if base := os.Getenv("MEDHA_BASE_URL"); base != "" {
		c.API.BaseURL = base
	}
	if model := os.Getenv("MEDHA_MODEL"); model != "" {
		c.API.Model = model
	}
	if limit := os.Getenv("MEDHA_DAILY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Limits.DailyLimit = n
		}
	}
}

// String returns a string representation of the config for debugging.
// SECURITY: Redacts the API key so it never appears in logs or output.
func (c *Config) String() string {
	safe := *c
	if safe.API.Key != "" {
		safe.API.Key = "[REDACTED]"
	}
	data, _ := json.MarshalIndent(safe, "", "  ")
	return string(data)
}
