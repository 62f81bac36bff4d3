// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SOURCE TYPE
// =============================================================================

// Source is a web citation attached to a model reply when search grounding
// was used. Title falls back to the URI when the service omits it.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single transcript entry. Messages are immutable once created;
// the transcript is an append-only ordered sequence owned by the session.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content. For model messages in flashcard mode this may embed a
	// flashcard block (see the render package).
	Content string `json:"content"`

	// Selections active when the message was created
	Mode    AppMode `json:"mode"`
	Subject Subject `json:"subject,omitempty"`

	// Citations (model messages only, search-grounded replies)
	Sources []Source `json:"sources,omitempty"`
}

// NewUserMessage creates a user transcript entry for the given selections.
func NewUserMessage(content string, mode AppMode, subject Subject) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Timestamp: time.Now(),
		Content:   content,
		Mode:      mode,
		Subject:   subject,
	}
}

// NewModelMessage creates a model reply entry with optional citations.
func NewModelMessage(content string, mode AppMode, subject Subject, sources []Source) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      RoleModel,
		Timestamp: time.Now(),
		Content:   content,
		Mode:      mode,
		Subject:   subject,
		Sources:   sources,
	}
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation so multi-byte text is never split.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
