// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the chat session core: a pure transition function
// from (state, intent) to (state, effects). The UI feeds intents in and
// executes the returned effects; nothing in this package performs I/O, so
// every behavior is testable without a terminal or a network.
package session

import "github.com/medha-ai/medha-tui/internal/model"

// State is the complete session state at one instant. Transitions copy it;
// callers must not mutate a State they handed to Apply.
type State struct {
	Messages  []model.Message
	IsLoading bool
	Error     string

	CurrentMode     model.AppMode
	CurrentSubject  model.Subject
	IsSearchEnabled bool

	Usage model.Usage

	// FlashcardIndex is the cursor into the most recent deck reply.
	FlashcardIndex int
}

// NewState builds the initial state from persisted preferences and usage.
func NewState(prefs model.Preferences, usage model.Usage) State {
	return State{
		CurrentMode:     prefs.Mode,
		CurrentSubject:  prefs.Subject,
		IsSearchEnabled: prefs.IsSearchEnabled,
		Usage:           usage,
	}
}

// Preferences extracts the persistable selections from the state.
func (s State) Preferences() model.Preferences {
	return model.Preferences{
		Mode:            s.CurrentMode,
		Subject:         s.CurrentSubject,
		IsSearchEnabled: s.IsSearchEnabled,
	}
}
