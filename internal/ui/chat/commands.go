// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medha-ai/medha-tui/internal/config"
	"github.com/medha-ai/medha-tui/internal/gemini"
	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/prompt"
	"github.com/medha-ai/medha-tui/internal/session"
)

// =============================================================================
// TEA MESSAGES
// =============================================================================

// GenerationDoneMsg carries a successful reply back into Update.
type GenerationDoneMsg struct {
	Response gemini.Response
}

// GenerationErrMsg carries a failed generation back into Update.
type GenerationErrMsg struct {
	Err error
}

// ConfigReloadedMsg is sent when the config watcher sees an edit.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// Generator is the client surface the UI needs. *gemini.Client satisfies
// it; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, req prompt.Request) (gemini.Response, error)
}

// UsageWriter persists usage records.
type UsageWriter interface {
	Persist(model.Usage)
}

// PrefsWriter persists preference records.
type PrefsWriter interface {
	SavePreferences(model.Preferences) error
}

// generateCmd runs one generation call off the update loop.
func generateCmd(client Generator, req prompt.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Generate(context.Background(), req)
		if err != nil {
			return GenerationErrMsg{Err: err}
		}
		return GenerationDoneMsg{Response: resp}
	}
}

// persistUsageCmd writes the usage record in the background. Failures are
// already logged by the ledger; the UI has nothing to show for them.
func persistUsageCmd(writer UsageWriter, usage model.Usage) tea.Cmd {
	return func() tea.Msg {
		writer.Persist(usage)
		return nil
	}
}

// savePrefsCmd writes the preference record in the background. A failed
// write loses nothing for the running session, so it is logged and not
// surfaced.
func savePrefsCmd(writer PrefsWriter, prefs model.Preferences) tea.Cmd {
	return func() tea.Msg {
		if err := writer.SavePreferences(prefs); err != nil {
			log.Printf("chat: saving preferences failed: %v", err)
		}
		return nil
	}
}

// effectCmds maps session effects onto Bubble Tea commands. FocusSubjects
// is handled by the model directly and never reaches here.
func (m *Model) effectCmds(effects []session.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case session.Generate:
			cmds = append(cmds, generateCmd(m.client, e.Request))
		case session.PersistUsage:
			cmds = append(cmds, persistUsageCmd(m.ledger, e.Usage))
		case session.SavePreferences:
			cmds = append(cmds, savePrefsCmd(m.prefs, e.Prefs))
		case session.FocusSubjects:
			m.focusSubjects()
		}
	}
	return cmds
}
