// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. The accent color
// switches with the layout: indigo for the wide two-pane view, teal for
// the compact tabbed view.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout
	Compact bool

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderTag   lipgloss.Style

	// Transcript
	UserBubble   lipgloss.Style
	ModelBubble  lipgloss.Style
	RoleLabel    lipgloss.Style
	BoldText     lipgloss.Style
	SubscriptTag lipgloss.Style
	Bullet       lipgloss.Style
	SourceLine   lipgloss.Style

	// Flashcards
	CardBox     lipgloss.Style
	CardLabel   lipgloss.Style
	CardCounter lipgloss.Style

	// Sidebar and tabs
	Sidebar         lipgloss.Style
	SidebarTitle    lipgloss.Style
	Option          lipgloss.Style
	OptionSelected  lipgloss.Style
	Tab             lipgloss.Style
	TabActive       lipgloss.Style
	SearchIndicator lipgloss.Style

	// Status and errors
	StatusBar    lipgloss.Style
	UsageOK      lipgloss.Style
	UsageWarning lipgloss.Style
	UsageDanger  lipgloss.Style
	ErrorBanner  lipgloss.Style
	Spinner      lipgloss.Style

	// Input
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
}

// NewTheme creates a theme for the given layout.
func NewTheme(compact bool) *Theme {
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
		Compact:      compact,
	}
	t.initStyles()
	return t
}

func (t *Theme) accent() lipgloss.AdaptiveColor {
	if t.Compact {
		return Teal
	}
	return Indigo
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	accent := t.accent()

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	t.HeaderTag = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1).
		MarginLeft(4)

	t.ModelBubble = lipgloss.NewStyle().
		Foreground(ModelBubbleFg).
		Background(ModelBubbleBg).
		Padding(0, 1).
		MarginRight(4)

	t.RoleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	t.BoldText = lipgloss.NewStyle().Bold(true)

	t.SubscriptTag = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Faint(true)

	t.Bullet = lipgloss.NewStyle().
		Foreground(accent)

	t.SourceLine = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.CardBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.CardLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	t.CardCounter = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Option = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.OptionSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Underline(true).
		Padding(0, 1)

	t.SearchIndicator = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.UsageOK = lipgloss.NewStyle().Foreground(TextSecondary)
	t.UsageWarning = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.UsageDanger = lipgloss.NewStyle().Foreground(Rose).Bold(true)

	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Padding(0, 1)

	t.Spinner = lipgloss.NewStyle().Foreground(accent)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
}

// UsageStyle picks the meter style for count against limit.
func (t *Theme) UsageStyle(count, limit int) lipgloss.Style {
	switch {
	case count >= limit:
		return t.UsageDanger
	case limit > 0 && count*5 >= limit*4:
		return t.UsageWarning
	default:
		return t.UsageOK
	}
}
