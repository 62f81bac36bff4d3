// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists preferences and daily usage for Medha TUI.
//
// Records live as small JSON files under the config directory. The file
// names carry a version suffix so an incompatible format change can ship
// under a new name without migrating old records: stale files are simply
// ignored.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/medha-ai/medha-tui/internal/config"
	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/util"
)

// =============================================================================
// RECORD KEYS
// =============================================================================

const (
	prefsFile = "medha_prefs_v3.json"
	usageFile = "medha_usage_v3.json"
)

// =============================================================================
// STORE
// =============================================================================

// Store reads and writes the per-user records under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Open creates a store under the default config directory.
func Open() (*Store, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return New(dir)
}

// Dir returns the directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// =============================================================================
// PREFERENCES
// =============================================================================

// LoadPreferences returns the saved preferences. ok is false when no valid
// record exists; a corrupt record is treated the same as a missing one so
// the app always starts with sane defaults.
func (s *Store) LoadPreferences() (model.Preferences, bool) {
	var prefs model.Preferences
	if !s.load(prefsFile, &prefs) {
		return model.DefaultPreferences(), false
	}
	return prefs.Normalize(), true
}

// SavePreferences writes the preferences record.
func (s *Store) SavePreferences(prefs model.Preferences) error {
	return s.save(prefsFile, prefs)
}

// =============================================================================
// USAGE
// =============================================================================

// LoadUsage returns the saved usage record. ok is false when no valid
// record exists.
func (s *Store) LoadUsage() (model.Usage, bool) {
	var usage model.Usage
	if !s.load(usageFile, &usage) {
		return model.Usage{}, false
	}
	return usage, true
}

// SaveUsage writes the usage record.
func (s *Store) SaveUsage(usage model.Usage) error {
	return s.save(usageFile, usage)
}

// =============================================================================
// INTERNAL
// =============================================================================

func (s *Store) load(name string, out any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		// RELIABILITY: a corrupt record must not wedge startup.
		log.Printf("store: ignoring corrupt %s: %v", name, err)
		return false
	}
	return true
}

func (s *Store) save(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(filepath.Join(s.dir, name), data, 0600)
}
