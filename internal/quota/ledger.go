// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package quota enforces the per-day generation limit.
package quota

import (
	"log"
	"time"

	"github.com/medha-ai/medha-tui/internal/model"
)

// DefaultDailyLimit caps generation requests per calendar day.
const DefaultDailyLimit = 25

// store is the subset of the persistence layer the ledger needs.
type store interface {
	LoadUsage() (model.Usage, bool)
	SaveUsage(model.Usage) error
}

// archive receives a copy of every usage write. It is optional.
type archive interface {
	Record(model.Usage) error
}

// =============================================================================
// LEDGER
// =============================================================================

// Ledger reads and advances the daily usage count. Persistence failures are
// logged and otherwise ignored: losing a count is better than blocking a
// question.
type Ledger struct {
	store   store
	archive archive
	limit   int
	now     func() time.Time
}

// New creates a ledger over the given store. archive may be nil.
func New(s store, a archive, limit int) *Ledger {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Ledger{store: s, archive: a, limit: limit, now: time.Now}
}

// Limit returns the configured daily cap.
func (l *Ledger) Limit() int {
	return l.limit
}

// today returns the current ISO calendar day.
func (l *Ledger) today() string {
	return l.now().Format("2006-01-02")
}

// Usage returns today's usage. A persisted record from an earlier day is
// stale and reads as a fresh zero count for today; the stored record is
// left untouched until the next write.
func (l *Ledger) Usage() model.Usage {
	usage, ok := l.store.LoadUsage()
	if !ok || usage.Date != l.today() {
		return model.Usage{Date: l.today(), Count: 0}
	}
	return usage
}

// Exhausted reports whether the count has reached the daily cap.
func (l *Ledger) Exhausted(usage model.Usage) bool {
	return usage.Count >= l.limit
}

// RecordUse increments the given usage record by one and persists the
// result. The record's own date is kept; rollover to a new day happens on
// read, not on write.
func (l *Ledger) RecordUse(current model.Usage) model.Usage {
	next := model.Usage{Date: current.Date, Count: current.Count + 1}
	l.Persist(next)
	return next
}

// Persist writes an already-advanced usage record to the store and, when
// configured, the archive.
func (l *Ledger) Persist(usage model.Usage) {
	if err := l.store.SaveUsage(usage); err != nil {
		log.Printf("quota: saving usage failed: %v", err)
	}
	if l.archive != nil {
		if err := l.archive.Record(usage); err != nil {
			log.Printf("quota: archiving usage failed: %v", err)
		}
	}
}
