// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"reflect"
	"testing"

	"github.com/medha-ai/medha-tui/internal/model"
)

// =============================================================================
// MARKUP TESTS
// =============================================================================

func TestFormatText_BoldRuns(t *testing.T) {
	blocks := FormatText("an **important** word")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	want := []Span{
		{SpanText, "an "},
		{SpanBold, "important"},
		{SpanText, " word"},
	}
	if !reflect.DeepEqual(blocks[0].Spans, want) {
		t.Errorf("spans = %+v, want %+v", blocks[0].Spans, want)
	}
}

func TestFormatText_SubscriptsOnParagraphLines(t *testing.T) {
	blocks := FormatText("Water is H_2O")
	want := []Span{
		{SpanText, "Water is H"},
		{SpanSubscript, "2"},
		{SpanText, "O"},
	}
	if !reflect.DeepEqual(blocks[0].Spans, want) {
		t.Errorf("spans = %+v, want %+v", blocks[0].Spans, want)
	}
}

func TestFormatText_BulletLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"dot bullet", "• first point", "first point"},
		{"dash bullet", "- second point", "second point"},
		{"indented bullet", "  • third point", "third point"},
		{"dot bullet without space", "•item", "item"},
		{"dash bullet without space", "-velocity", "velocity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := FormatText(tt.line)
			if blocks[0].Kind != BlockListItem {
				t.Fatalf("kind = %v, want list item", blocks[0].Kind)
			}
			if got := blocks[0].Spans[0].Text; got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatText_NoSubscriptInsideBullets(t *testing.T) {
	blocks := FormatText("• formula CO_2 stays literal")
	for _, s := range blocks[0].Spans {
		if s.Kind == SpanSubscript {
			t.Fatal("bullet line produced a subscript span")
		}
	}
}

func TestFormatText_SubscriptInsideBold(t *testing.T) {
	blocks := FormatText("**H_2O** molecule")
	want := []Span{
		{SpanBold, "H"},
		{SpanSubscript, "2"},
		{SpanBold, "O"},
		{SpanText, " molecule"},
	}
	if !reflect.DeepEqual(blocks[0].Spans, want) {
		t.Errorf("spans = %+v, want %+v", blocks[0].Spans, want)
	}
}

func TestFormatText_MixedLines(t *testing.T) {
	text := "**Photosynthesis** produces O_2\n• needs sunlight\n• needs CO_2"
	blocks := FormatText(text)
	if len(blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(blocks))
	}
	if blocks[0].Kind != BlockParagraph || blocks[1].Kind != BlockListItem || blocks[2].Kind != BlockListItem {
		t.Errorf("kinds = %v/%v/%v", blocks[0].Kind, blocks[1].Kind, blocks[2].Kind)
	}
}

func TestPlainText_RoundTripsSimpleContent(t *testing.T) {
	text := "line one\n• item"
	got := PlainText(FormatText(text))
	if got != text {
		t.Errorf("PlainText = %q, want %q", got, text)
	}
}

// =============================================================================
// FLASHCARD TESTS
// =============================================================================

func TestMarkerParser_TwoCards(t *testing.T) {
	text := "Flashcards:\n1. Q: A\n   A: B\n2. Q: C\n   A: D"
	cards, ok := MarkerParser{}.Parse(text)
	if !ok {
		t.Fatal("Parse returned ok=false")
	}
	want := []Card{{"A", "B"}, {"C", "D"}}
	if !reflect.DeepEqual(cards, want) {
		t.Errorf("cards = %+v, want %+v", cards, want)
	}
}

func TestMarkerParser_NoMarker(t *testing.T) {
	if _, ok := (MarkerParser{}.Parse("1. Q: A\n   A: B")); ok {
		t.Error("text without the marker parsed as a deck")
	}
}

func TestMarkerParser_PreambleBeforeMarkerIgnored(t *testing.T) {
	text := "Here you go!\nFlashcards:\n1. Q: What is force?\n   A: Mass times acceleration."
	cards, ok := MarkerParser{}.Parse(text)
	if !ok || len(cards) != 1 {
		t.Fatalf("cards = %+v, ok = %v, want exactly one card", cards, ok)
	}
	if cards[0].Question != "What is force?" {
		t.Errorf("question = %q", cards[0].Question)
	}
}

func TestMarkerParser_EntryWithoutAnswerKeepsEmptyAnswer(t *testing.T) {
	text := "Flashcards:\n1. Q: orphan question\n2. Q: real\n   A: answer"
	cards, ok := MarkerParser{}.Parse(text)
	if !ok || len(cards) != 2 {
		t.Fatalf("cards = %+v, want both entries kept", cards)
	}
	if cards[0].Question != "orphan question" || cards[0].Answer != "" {
		t.Errorf("card 0 = %+v, want empty answer", cards[0])
	}
	if cards[1].Answer != "answer" {
		t.Errorf("card 1 = %+v", cards[1])
	}
}

func TestMarkerParser_MarkerWithNoCards(t *testing.T) {
	if _, ok := (MarkerParser{}.Parse("Flashcards:\n\n")); ok {
		t.Error("empty deck parsed as ok")
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{-1, 5, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("ClampIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}

// =============================================================================
// MODE DISPATCH TESTS
// =============================================================================

func TestParse_FlashcardModeWithDeck(t *testing.T) {
	text := "Flashcards:\n1. Q: A\n   A: B"
	content := Parse(text, model.ModeFlashcards)
	if !content.IsDeck() {
		t.Fatal("flashcard-mode reply with marker did not render as deck")
	}
	if len(content.Blocks) != 0 {
		t.Error("deck content also produced text blocks")
	}
}

func TestParse_FlashcardModeWithoutMarkerFallsBackToText(t *testing.T) {
	content := Parse("just prose", model.ModeFlashcards)
	if content.IsDeck() {
		t.Fatal("prose reply rendered as deck")
	}
	if len(content.Blocks) == 0 {
		t.Error("fallback produced no blocks")
	}
}

func TestParse_OtherModesNeverDeck(t *testing.T) {
	text := "Flashcards:\n1. Q: A\n   A: B"
	content := Parse(text, model.ModeGeneralKnowledge)
	if content.IsDeck() {
		t.Error("deck-shaped text rendered as deck outside flashcard mode")
	}
}
