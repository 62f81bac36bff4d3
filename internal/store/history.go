// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/medha-ai/medha-tui/internal/model"
)

// =============================================================================
// USAGE HISTORY
// =============================================================================

// History archives one usage row per calendar day in a local SQLite
// database. The JSON usage record only keeps the current day; the archive
// is what the stats command reads.
type History struct {
	db *sql.DB
}

const historySchema = `
CREATE TABLE IF NOT EXISTS usage_history (
	date  TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);`

// OpenHistory opens (and if needed initializes) the archive under dir.
func OpenHistory(dir string) (*History, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("opening usage history: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing usage history: %w", err)
	}
	return &History{db: db}, nil
}

// Record upserts the day's row. Counts only move forward within a day, so
// the stored value is replaced rather than summed.
func (h *History) Record(usage model.Usage) error {
	_, err := h.db.Exec(`
		INSERT INTO usage_history (date, count) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET count = excluded.count`,
		usage.Date, usage.Count)
	return err
}

// Recent returns up to n rows, newest first.
func (h *History) Recent(n int) ([]model.Usage, error) {
	rows, err := h.db.Query(`
		SELECT date, count FROM usage_history
		ORDER BY date DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Usage
	for rows.Next() {
		var u model.Usage
		if err := rows.Scan(&u.Date, &u.Count); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (h *History) Close() error {
	return h.db.Close()
}
