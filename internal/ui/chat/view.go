// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medha-ai/medha-tui/internal/model"
)

const sidebarWidth = 22

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if m.compact {
		sections = append(sections, m.renderTabs())
		sections = append(sections, m.renderCompactBody())
	} else {
		sections = append(sections, lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderSidebar(),
			m.viewport.View(),
		))
	}
	if m.state.Error != "" {
		sections = append(sections, m.theme.ErrorBanner.Render(m.state.Error))
	}
	sections = append(sections, m.theme.InputContainer.Render(
		m.theme.InputPrompt.Render("> ")+m.input.View()))
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// CHROME
// =============================================================================

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Medha AI")
	tag := m.theme.HeaderTag.Render(" শেখার সঙ্গী")
	return m.theme.Header.Width(m.width).Render(title + tag)
}

func (m *Model) renderTabs() string {
	var parts []string
	for t := tabHome; t <= tabCards; t++ {
		style := m.theme.Tab
		if t == m.activeTab {
			style = m.theme.TabActive
		}
		parts = append(parts, style.Render(tabLabels[t]))
	}
	return strings.Join(parts, " ")
}

// renderCompactBody shows the panel for the active tab. Home, GK and Cards
// all show the transcript; Subjects shows the picker full-width.
func (m *Model) renderCompactBody() string {
	if m.activeTab == tabSubjects {
		return m.renderSubjectList()
	}
	return m.viewport.View()
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m *Model) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(m.theme.SidebarTitle.Render("Mode"))
	sb.WriteString("\n")
	for _, mode := range model.Modes {
		style := m.theme.Option
		marker := "  "
		if mode == m.state.CurrentMode {
			style = m.theme.OptionSelected
			marker = "▸ "
		}
		sb.WriteString(style.Render(marker + string(mode)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderSubjectList())
	return m.theme.Sidebar.Width(sidebarWidth).Height(m.viewport.Height).Render(sb.String())
}

func (m *Model) renderSubjectList() string {
	var sb strings.Builder
	sb.WriteString(m.theme.SidebarTitle.Render("Subject"))
	sb.WriteString("\n")
	for i, subject := range model.Subjects {
		style := m.theme.Option
		marker := "  "
		if subject == m.state.CurrentSubject {
			style = m.theme.OptionSelected
			marker = "✓ "
		}
		if m.sidebarFocus && i == m.sidebarCursor {
			style = m.theme.OptionSelected
			marker = "▸ "
		}
		sb.WriteString(style.Render(marker + string(subject)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m *Model) renderStatusBar() string {
	usage := m.state.Usage
	meter := m.theme.UsageStyle(usage.Count, m.core.Limit).
		Render(fmt.Sprintf("ব্যবহার %d/%d", usage.Count, m.core.Limit))

	mode := string(m.state.CurrentMode)
	if m.state.CurrentSubject != model.SubjectNone {
		mode += " · " + string(m.state.CurrentSubject)
	}

	search := ""
	if m.state.IsSearchEnabled {
		search = m.theme.SearchIndicator.Render("⌕ search")
	}

	left := strings.TrimRight(strings.Join([]string{meter, mode, search}, "  "), " ")
	help := m.theme.HeaderTag.Render("Tab panel · C-o mode · C-s search · C-n new · C-c quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help) - 2
	if gap < 1 {
		return m.theme.StatusBar.Width(m.width).Render(left)
	}
	return m.theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + help)
}
