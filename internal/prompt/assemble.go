// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt builds the instruction set and conversation payload sent to
// the generation service.
package prompt

import (
	"fmt"

	"github.com/medha-ai/medha-tui/internal/model"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultHistoryWindow is how many prior transcript turns are sent as
	// conversation context. Older turns are silently dropped.
	DefaultHistoryWindow = 10

	// DefaultTemperature and DefaultTopP are the fixed sampling parameters.
	DefaultTemperature = 0.6
	DefaultTopP        = 0.9
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Turn is one role-tagged text turn in the conversation payload.
type Turn struct {
	Role model.Role
	Text string
}

// Request is a fully assembled generation request: everything the client
// needs to call the service exactly once.
type Request struct {
	// Instruction is the combined system + mode instruction text
	Instruction string

	// Turns is the bounded history window followed by the formatted
	// current turn (always last, always user role)
	Turns []Turn

	// Sampling configuration
	Temperature float64
	TopP        float64

	// SearchEnabled requests web-search grounding from the service
	SearchEnabled bool
}

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler builds generation requests with configured sampling parameters
// and history window.
type Assembler struct {
	Temperature   float64
	TopP          float64
	HistoryWindow int
}

// NewAssembler returns an assembler with the default parameters.
func NewAssembler() *Assembler {
	return &Assembler{
		Temperature:   DefaultTemperature,
		TopP:          DefaultTopP,
		HistoryWindow: DefaultHistoryWindow,
	}
}

// Assemble composes the outbound payload for one user query:
//
//   - the most recent HistoryWindow entries of history, each mapped to a
//     role-tagged turn
//   - the formatted current turn, appended last
//   - the instruction set for the mode
//
// The current turn has the exact shape:
//
//	Mode: <mode>
//	Subject: <subject or "N/A">
//	Question: <userText>
func (a *Assembler) Assemble(userText string, mode model.AppMode, subject model.Subject, history []model.Message, searchEnabled bool) Request {
	window := a.HistoryWindow
	if len(history) > window {
		history = history[len(history)-window:]
	}

	turns := make([]Turn, 0, len(history)+1)
	for _, msg := range history {
		turns = append(turns, Turn{Role: msg.Role, Text: msg.Content})
	}
	turns = append(turns, Turn{Role: model.RoleUser, Text: FormatTurn(userText, mode, subject)})

	return Request{
		Instruction:   Instructions(mode),
		Turns:         turns,
		Temperature:   a.Temperature,
		TopP:          a.TopP,
		SearchEnabled: searchEnabled,
	}
}

// FormatTurn renders the current query in the fixed three-line shape the
// instruction set expects.
func FormatTurn(userText string, mode model.AppMode, subject model.Subject) string {
	subjectLabel := "N/A"
	if subject != model.SubjectNone {
		subjectLabel = subject.String()
	}
	return fmt.Sprintf("Mode: %s\nSubject: %s\nQuestion: %s", mode, subjectLabel, userText)
}
