// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session.
package model

// =============================================================================
// USAGE RECORD
// =============================================================================

// Usage tracks generation requests made against the daily quota.
// Date is an ISO calendar day ("2006-01-02"); a persisted record whose date
// differs from the current day is stale and must be treated as a fresh
// zero record for today.
type Usage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// =============================================================================
// PREFERENCES
// =============================================================================

// Preferences holds the user's last selections, persisted across sessions.
type Preferences struct {
	Mode            AppMode `json:"mode"`
	Subject         Subject `json:"subject"`
	IsSearchEnabled bool    `json:"isSearchEnabled"`
}

// DefaultPreferences returns the selections used when nothing is persisted
// or the persisted record cannot be parsed.
func DefaultPreferences() Preferences {
	return Preferences{
		Mode:            ModeSubjectLearning,
		Subject:         SubjectNone,
		IsSearchEnabled: false,
	}
}

// Normalize replaces unknown mode/subject values with defaults. Persisted
// blobs from older versions may carry values this build no longer knows.
func (p Preferences) Normalize() Preferences {
	if !p.Mode.Valid() || p.Mode == "" {
		p.Mode = ModeSubjectLearning
	}
	if !p.Subject.Valid() || p.Subject == "" {
		p.Subject = SubjectNone
	}
	return p
}
