// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns raw model replies into displayable structure: styled
// text blocks for prose replies and question/answer decks for flashcard
// replies.
package render

import (
	"regexp"
	"strings"
)

// =============================================================================
// SPAN AND BLOCK TYPES
// =============================================================================

// SpanKind classifies a run of styled text.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanSubscript
)

// Span is a run of text with one style.
type Span struct {
	Kind SpanKind
	Text string
}

// BlockKind classifies a rendered line.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockListItem
)

// Block is one line of output. List items have their bullet marker
// stripped; the renderer draws its own.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// =============================================================================
// MARKUP GRAMMAR
// =============================================================================

var (
	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	subscriptRe = regexp.MustCompile(`_(\d+)`)
	bulletRe    = regexp.MustCompile(`^[•-]\s*`)
)

// FormatText parses reply markup into blocks, one per input line. The
// grammar is deliberately tiny: **bold** anywhere, bullet lines whose
// trimmed form starts with "•" or "-", and chemistry-style subscripts
// written as _N. Subscripts apply only on paragraph lines; formula digits
// inside bullet lists stay literal.
func FormatText(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := bulletRe.FindString(trimmed); marker != "" {
			item := strings.TrimSpace(trimmed[len(marker):])
			blocks = append(blocks, Block{
				Kind:  BlockListItem,
				Spans: parseSpans(item, false),
			})
			continue
		}
		blocks = append(blocks, Block{
			Kind:  BlockParagraph,
			Spans: parseSpans(line, true),
		})
	}
	return blocks
}

// parseSpans splits bold runs out first, then (optionally) subscripts
// within both the plain and the bold runs.
func parseSpans(line string, subscripts bool) []Span {
	var spans []Span
	rest := line
	for {
		loc := boldRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			spans = append(spans, styledSpans(rest, SpanText, subscripts)...)
			break
		}
		spans = append(spans, styledSpans(rest[:loc[0]], SpanText, subscripts)...)
		spans = append(spans, styledSpans(rest[loc[2]:loc[3]], SpanBold, subscripts)...)
		rest = rest[loc[1]:]
	}
	return spans
}

func styledSpans(text string, kind SpanKind, subscripts bool) []Span {
	if text == "" {
		return nil
	}
	if !subscripts {
		return []Span{{Kind: kind, Text: text}}
	}
	var spans []Span
	rest := text
	for {
		loc := subscriptRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			if rest != "" {
				spans = append(spans, Span{Kind: kind, Text: rest})
			}
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Kind: kind, Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Kind: SpanSubscript, Text: rest[loc[2]:loc[3]]})
		rest = rest[loc[1]:]
	}
	return spans
}

// PlainText flattens blocks back to an unstyled string, one line per
// block. List items get a uniform bullet back.
func PlainText(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if b.Kind == BlockListItem {
			sb.WriteString("• ")
		}
		for _, s := range b.Spans {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}
