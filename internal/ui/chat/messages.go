// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/render"
)

const sourceTitleWidth = 48

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript renders every message for the viewport.
func (m *Model) renderTranscript() string {
	if len(m.state.Messages) == 0 {
		return m.theme.HeaderTag.Render("প্রশ্ন লিখে Enter চাপুন।")
	}

	var sb strings.Builder
	for i, msg := range m.state.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderMessage(msg))
	}
	if m.state.IsLoading {
		sb.WriteString("\n\n")
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.theme.HeaderTag.Render(" ভাবছি..."))
	}
	return sb.String()
}

// renderMessage renders one transcript entry: role label, styled body,
// citations.
func (m *Model) renderMessage(msg model.Message) string {
	var sb strings.Builder
	sb.WriteString(m.theme.RoleLabel.Render(msg.Role.DisplayName()))
	sb.WriteString("\n")

	content := render.Parse(msg.Content, msg.Mode)
	if content.IsDeck() {
		sb.WriteString(m.renderDeck(content.Deck))
	} else {
		sb.WriteString(m.renderBlocks(content.Blocks))
	}

	for _, src := range msg.Sources {
		sb.WriteString("\n")
		title := runewidth.Truncate(src.Title, sourceTitleWidth, "…")
		sb.WriteString(m.theme.SourceLine.Render("  ↗ " + title))
	}
	return sb.String()
}

// renderBlocks draws styled text blocks. Subscript spans render as
// foot-style digits after the preceding run; terminals have no true
// subscript, so the digits are dimmed instead.
func (m *Model) renderBlocks(blocks []render.Block) string {
	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		if block.Kind == render.BlockListItem {
			sb.WriteString(m.theme.Bullet.Render("  • "))
		}
		for _, span := range block.Spans {
			switch span.Kind {
			case render.SpanBold:
				sb.WriteString(m.theme.BoldText.Render(span.Text))
			case render.SpanSubscript:
				sb.WriteString(m.theme.SubscriptTag.Render(span.Text))
			default:
				sb.WriteString(span.Text)
			}
		}
	}
	return sb.String()
}

// renderDeck draws the flashcard viewer: one card, its counter, and the
// flip hint. Only the current card is shown; left/right navigate.
func (m *Model) renderDeck(deck []render.Card) string {
	index := render.ClampIndex(m.state.FlashcardIndex, len(deck))
	card := deck[index]

	var body strings.Builder
	body.WriteString(m.theme.CardLabel.Render("প্রশ্ন"))
	body.WriteString("\n")
	body.WriteString(card.Question)
	if m.showAnswer {
		body.WriteString("\n\n")
		body.WriteString(m.theme.CardLabel.Render("উত্তর"))
		body.WriteString("\n")
		body.WriteString(card.Answer)
	} else {
		body.WriteString("\n\n")
		body.WriteString(m.theme.CardCounter.Render("C-f উত্তর দেখুন"))
	}

	counter := m.theme.CardCounter.Render(
		fmt.Sprintf("কার্ড %d/%d  ←/→", index+1, len(deck)))
	return m.theme.CardBox.Render(body.String()) + "\n" + counter
}
