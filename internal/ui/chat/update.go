// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/session"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case GenerationDoneMsg:
		cmd := m.apply(session.GenerationSucceeded{
			Text:    msg.Response.Text,
			Sources: msg.Response.Sources,
		})
		m.showAnswer = false
		return m, cmd

	case GenerationErrMsg:
		return m, m.apply(session.GenerationFailed{Err: msg.Err})

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.core.Limit = msg.Config.Limits.DailyLimit
			m.core.Assembler.HistoryWindow = msg.Config.Limits.HistoryWindow
			m.compactWidth = msg.Config.UI.CompactWidth
			m.resize(m.width, m.height)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes a key press. Global bindings first, then the focused
// panel.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Dismiss):
		if m.state.Error != "" {
			return m, m.apply(session.ClearError{})
		}
		if m.sidebarFocus {
			m.leaveSidebar()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.CycleMode):
		return m, m.cycleMode()

	case key.Matches(msg, m.keyMap.ToggleSearch):
		return m, m.apply(session.ToggleSearch{})

	case key.Matches(msg, m.keyMap.NewChat):
		m.showAnswer = false
		return m, m.apply(session.NewChat{})

	case key.Matches(msg, m.keyMap.FocusNext):
		return m, m.cycleFocus()
	}

	if m.flashcardViewActive() {
		if handled, cmd := m.handleCardKey(msg); handled {
			return m, cmd
		}
	}

	if m.sidebarFocus {
		return m, m.handleSidebarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		text := m.input.Value()
		cmd := m.apply(session.SubmitQuery{Text: text})
		if m.state.IsLoading {
			m.input.Reset()
		}
		return m, cmd

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MODE AND SUBJECT SELECTION
// =============================================================================

// cycleMode steps through the modes in declaration order.
func (m *Model) cycleMode() tea.Cmd {
	modes := model.Modes
	for i, mode := range modes {
		if mode == m.state.CurrentMode {
			next := modes[(i+1)%len(modes)]
			m.showAnswer = false
			return m.apply(session.SetMode{Mode: next})
		}
	}
	return m.apply(session.SetMode{Mode: modes[0]})
}

// cycleFocus moves between the input and the subject picker (wide layout)
// or steps through the tabs (compact layout).
func (m *Model) cycleFocus() tea.Cmd {
	if m.compact {
		m.activeTab = (m.activeTab + 1) % 4
		switch m.activeTab {
		case tabSubjects:
			m.enterSidebar()
		case tabGK:
			m.leaveSidebar()
			return m.apply(session.SetMode{Mode: model.ModeGeneralKnowledge})
		case tabCards:
			m.leaveSidebar()
			return m.apply(session.SetMode{Mode: model.ModeFlashcards})
		default:
			m.leaveSidebar()
		}
		return nil
	}

	if m.sidebarFocus {
		m.leaveSidebar()
	} else {
		m.enterSidebar()
	}
	return nil
}

func (m *Model) enterSidebar() {
	m.sidebarFocus = true
	m.input.Blur()
	for i, s := range model.Subjects {
		if s == m.state.CurrentSubject {
			m.sidebarCursor = i
		}
	}
}

func (m *Model) leaveSidebar() {
	m.sidebarFocus = false
	m.input.Focus()
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case key.Matches(msg, m.keyMap.Down):
		if m.sidebarCursor < len(model.Subjects)-1 {
			m.sidebarCursor++
		}
	case key.Matches(msg, m.keyMap.Submit):
		subject := model.Subjects[m.sidebarCursor]
		m.leaveSidebar()
		if m.compact {
			m.activeTab = tabHome
		}
		cmds := []tea.Cmd{m.apply(session.SetSubject{Subject: subject})}
		if m.state.CurrentMode != model.ModeSubjectLearning && m.state.CurrentMode != model.ModeFlashcards {
			cmds = append(cmds, m.apply(session.SetMode{Mode: model.ModeSubjectLearning}))
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// =============================================================================
// FLASHCARD NAVIGATION
// =============================================================================

// flashcardViewActive reports whether card navigation keys should apply.
func (m *Model) flashcardViewActive() bool {
	return m.state.CurrentMode == model.ModeFlashcards && len(m.deck()) > 0
}

func (m *Model) handleCardKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	count := len(m.deck())
	switch {
	case key.Matches(msg, m.keyMap.PrevCard):
		m.showAnswer = false
		return true, m.apply(session.PrevCard{CardCount: count})
	case key.Matches(msg, m.keyMap.NextCard):
		m.showAnswer = false
		return true, m.apply(session.NextCard{CardCount: count})
	case key.Matches(msg, m.keyMap.FlipCard):
		m.showAnswer = !m.showAnswer
		return true, nil
	}
	return false, nil
}
