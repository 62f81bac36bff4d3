// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import "github.com/medha-ai/medha-tui/internal/model"

// Content is one reply in displayable form: either a card deck or styled
// text blocks, never both.
type Content struct {
	Deck   []Card
	Blocks []Block
}

// IsDeck reports whether the reply rendered as flashcards.
func (c Content) IsDeck() bool {
	return len(c.Deck) > 0
}

// Parse renders a reply for the mode it was produced under. Deck parsing
// only applies to flashcard-mode replies, and falls through to text when
// the reply carries no usable deck.
func Parse(text string, mode model.AppMode) Content {
	if mode == model.ModeFlashcards {
		if cards, ok := (MarkerParser{}).Parse(text); ok {
			return Content{Deck: cards}
		}
	}
	return Content{Blocks: FormatText(text)}
}
