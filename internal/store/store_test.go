// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medha-ai/medha-tui/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestPreferences_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	prefs := model.Preferences{
		Mode:            model.ModeFlashcards,
		Subject:         model.SubjectPhysics,
		IsSearchEnabled: true,
	}
	require.NoError(t, s.SavePreferences(prefs))

	got, ok := s.LoadPreferences()
	assert.True(t, ok)
	assert.Equal(t, prefs, got)
}

func TestPreferences_MissingReturnsDefaults(t *testing.T) {
	s := newTestStore(t)

	got, ok := s.LoadPreferences()
	assert.False(t, ok)
	assert.Equal(t, model.DefaultPreferences(), got)
}

func TestPreferences_CorruptTreatedAsMissing(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.Dir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	got, ok := s.LoadPreferences()
	assert.False(t, ok)
	assert.Equal(t, model.DefaultPreferences(), got)
}

func TestPreferences_InvalidValuesNormalized(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.Dir(), prefsFile)
	raw := `{"mode":"Time Travel","subject":"Alchemy","isSearchEnabled":false}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	got, ok := s.LoadPreferences()
	assert.True(t, ok)
	assert.Equal(t, model.ModeSubjectLearning, got.Mode)
	assert.Equal(t, model.SubjectNone, got.Subject)
}

func TestUsage_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	usage := model.Usage{Date: "2026-08-31", Count: 7}
	require.NoError(t, s.SaveUsage(usage))

	got, ok := s.LoadUsage()
	assert.True(t, ok)
	assert.Equal(t, usage, got)
}

func TestUsage_MissingReturnsZero(t *testing.T) {
	s := newTestStore(t)

	got, ok := s.LoadUsage()
	assert.False(t, ok)
	assert.Equal(t, model.Usage{}, got)
}

func TestSave_FilePermissions(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveUsage(model.Usage{Date: "2026-08-31", Count: 1}))

	info, err := os.Stat(filepath.Join(s.Dir(), usageFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestHistory_RecordAndRecent(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Record(model.Usage{Date: "2026-08-29", Count: 3}))
	require.NoError(t, h.Record(model.Usage{Date: "2026-08-30", Count: 12}))
	require.NoError(t, h.Record(model.Usage{Date: "2026-08-31", Count: 1}))

	got, err := h.Recent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-08-31", got[0].Date)
	assert.Equal(t, "2026-08-30", got[1].Date)
}

func TestHistory_RecordUpsertsSameDay(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Record(model.Usage{Date: "2026-08-31", Count: 1}))
	require.NoError(t, h.Record(model.Usage{Date: "2026-08-31", Count: 5}))

	got, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Count)
}
