// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "github.com/medha-ai/medha-tui/internal/model"

// Intent is a user action or generation outcome for the core to apply.
type Intent interface{ isIntent() }

// SubmitQuery asks a question. Ignored while a generation is in flight or
// when the text is blank.
type SubmitQuery struct {
	Text string
}

// SetMode switches the learning mode.
type SetMode struct {
	Mode model.AppMode
}

// SetSubject switches the subject.
type SetSubject struct {
	Subject model.Subject
}

// ToggleSearch flips web-search grounding.
type ToggleSearch struct{}

// NewChat clears the transcript. Preferences and usage survive.
type NewChat struct{}

// NextCard and PrevCard move the flashcard cursor within a deck of
// CardCount cards.
type NextCard struct{ CardCount int }
type PrevCard struct{ CardCount int }

// GenerationSucceeded delivers a normalized reply.
type GenerationSucceeded struct {
	Text    string
	Sources []model.Source
}

// GenerationFailed delivers a generation error. Err's message is shown to
// the user, so it must already be localized.
type GenerationFailed struct {
	Err error
}

// ClearError dismisses the current error banner.
type ClearError struct{}

func (SubmitQuery) isIntent()         {}
func (SetMode) isIntent()             {}
func (SetSubject) isIntent()          {}
func (ToggleSearch) isIntent()        {}
func (NewChat) isIntent()             {}
func (NextCard) isIntent()            {}
func (PrevCard) isIntent()            {}
func (GenerationSucceeded) isIntent() {}
func (GenerationFailed) isIntent()    {}
func (ClearError) isIntent()          {}
