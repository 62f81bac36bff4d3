// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/prompt"
)

// Effect is a side effect the caller must execute after a transition. The
// core never performs effects itself.
type Effect interface{ isEffect() }

// Generate calls the generation service with an assembled request. The
// outcome comes back as a GenerationSucceeded or GenerationFailed intent.
type Generate struct {
	Request prompt.Request
}

// PersistUsage writes the usage record.
type PersistUsage struct {
	Usage model.Usage
}

// SavePreferences writes the preference record.
type SavePreferences struct {
	Prefs model.Preferences
}

// FocusSubjects moves input focus to the subject picker. Emitted when a
// query was rejected for having no subject selected.
type FocusSubjects struct{}

func (Generate) isEffect()        {}
func (PersistUsage) isEffect()    {}
func (SavePreferences) isEffect() {}
func (FocusSubjects) isEffect()   {}
