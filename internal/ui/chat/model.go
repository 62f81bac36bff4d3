// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/render"
	"github.com/medha-ai/medha-tui/internal/session"
	"github.com/medha-ai/medha-tui/internal/ui/styles"
)

// =============================================================================
// LAYOUT
// =============================================================================

// tab identifies a view in the compact layout. The wide layout shows the
// sidebar and transcript together and ignores tabs.
type tab int

const (
	tabHome tab = iota
	tabSubjects
	tabGK
	tabCards
)

var tabLabels = map[tab]string{
	tabHome:     "Home",
	tabSubjects: "Subjects",
	tabGK:       "GK",
	tabCards:    "Cards",
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. All session semantics
// live in the session core; this model only routes key presses to intents,
// executes effects, and draws the state.
type Model struct {
	// Session
	core  *session.Core
	state session.State

	// Effect executors
	client Generator
	ledger UsageWriter
	prefs  PrefsWriter

	// Styling
	theme *styles.Theme

	// Dimensions
	width        int
	height       int
	compact      bool
	compactWidth int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keyMap   KeyMap

	// Layout state
	activeTab     tab
	sidebarFocus  bool
	sidebarCursor int

	// Flashcard state. The deck itself is derived from the transcript;
	// only the flip is view-local.
	showAnswer bool

	quitting bool
}

// Options carries the dependencies for a chat model.
type Options struct {
	Core         *session.Core
	State        session.State
	Client       Generator
	Ledger       UsageWriter
	Prefs        PrefsWriter
	CompactWidth int
}

// New creates the chat model.
func New(opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "আপনার প্রশ্ন লিখুন..."
	input.Focus()
	input.CharLimit = 2000

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	if opts.CompactWidth <= 0 {
		opts.CompactWidth = 80
	}

	return &Model{
		core:         opts.Core,
		state:        opts.State,
		client:       opts.Client,
		ledger:       opts.Ledger,
		prefs:        opts.Prefs,
		theme:        styles.NewTheme(false),
		compactWidth: opts.CompactWidth,
		input:        input,
		spinner:      spin,
		keyMap:       DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// apply runs one session transition and turns its effects into commands.
func (m *Model) apply(intent session.Intent) tea.Cmd {
	next, effects := m.core.Apply(m.state, intent)
	m.state = next
	cmds := m.effectCmds(effects)
	m.syncViewport()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// deck returns the flashcard deck of the most recent model reply, or nil
// when the last reply is not a deck.
func (m *Model) deck() []render.Card {
	for i := len(m.state.Messages) - 1; i >= 0; i-- {
		msg := m.state.Messages[i]
		if msg.Role != model.RoleModel {
			continue
		}
		content := render.Parse(msg.Content, msg.Mode)
		if content.IsDeck() {
			return content.Deck
		}
		return nil
	}
	return nil
}

// focusSubjects moves focus to the subject picker after a rejected query.
func (m *Model) focusSubjects() {
	if m.compact {
		m.activeTab = tabSubjects
	}
	m.sidebarFocus = true
	m.sidebarCursor = 0
	m.input.Blur()
}

// resize recomputes the layout for a new terminal size. Crossing the
// compact threshold swaps the theme with it.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	compact := width < m.compactWidth
	if compact != m.compact || m.viewport.Width == 0 {
		m.compact = compact
		m.theme = styles.NewTheme(compact)
	}

	contentWidth := width
	if !compact {
		contentWidth = width - sidebarWidth
	}
	// Header, status bar, error line, input box.
	contentHeight := height - 6

	if m.viewport.Width == 0 {
		m.viewport = viewport.New(contentWidth, contentHeight)
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}
	m.input.Width = contentWidth - 4
	m.syncViewport()
}

// syncViewport re-renders the transcript into the viewport and follows the
// tail.
func (m *Model) syncViewport() {
	if m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
