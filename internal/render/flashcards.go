// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"regexp"
	"strings"
)

// =============================================================================
// FLASHCARD DECKS
// =============================================================================

// DeckMarker gates flashcard parsing. Replies without this literal header
// render as ordinary text even in flashcard mode.
const DeckMarker = "Flashcards:"

// Card is one question/answer pair.
type Card struct {
	Question string
	Answer   string
}

// DeckParser extracts a card deck from reply text.
type DeckParser interface {
	// Parse returns the deck, or ok=false when the text carries no deck.
	Parse(text string) (cards []Card, ok bool)
}

// MarkerParser parses the numbered "N. Q: ... A: ..." deck format the
// flashcard mode instruction asks the model to produce.
type MarkerParser struct{}

var cardSplitRe = regexp.MustCompile(`\d+\.\s+Q:`)

// Parse implements DeckParser. Only the text after the marker is split
// into cards; the header and any preamble before it contribute nothing.
// A card body without an "A:" marker keeps an empty answer rather than
// being dropped; the model's output is best-effort.
func (MarkerParser) Parse(text string) ([]Card, bool) {
	_, body, found := strings.Cut(text, DeckMarker)
	if !found {
		return nil, false
	}

	var cards []Card
	for _, chunk := range cardSplitRe.Split(body, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		question, answer, _ := strings.Cut(chunk, "A:")
		cards = append(cards, Card{
			Question: strings.TrimSpace(question),
			Answer:   strings.TrimSpace(answer),
		})
	}
	return cards, len(cards) > 0
}

// ClampIndex bounds a deck cursor to [0, count). A zero-card count clamps
// to 0.
func ClampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
