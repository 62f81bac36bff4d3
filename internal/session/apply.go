// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"

	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/prompt"
	"github.com/medha-ai/medha-tui/internal/render"
)

// Core applies intents to session state. It is stateless itself; all
// session data lives in State.
type Core struct {
	// Limit is the daily generation cap.
	Limit int

	// Assembler builds outbound generation requests.
	Assembler *prompt.Assembler
}

// NewCore returns a core with the given daily limit and default prompt
// parameters.
func NewCore(limit int) *Core {
	return &Core{Limit: limit, Assembler: prompt.NewAssembler()}
}

// Apply executes one transition. It returns the next state and the effects
// the caller must run. Unknown intents leave the state unchanged.
func (c *Core) Apply(s State, intent Intent) (State, []Effect) {
	switch in := intent.(type) {
	case SubmitQuery:
		return c.applySubmit(s, in)

	case SetMode:
		if !in.Mode.Valid() || in.Mode == s.CurrentMode {
			return s, nil
		}
		s.CurrentMode = in.Mode
		s.Error = ""
		return s, []Effect{SavePreferences{Prefs: s.Preferences()}}

	case SetSubject:
		if !in.Subject.Valid() || in.Subject == s.CurrentSubject {
			return s, nil
		}
		s.CurrentSubject = in.Subject
		s.Error = ""
		return s, []Effect{SavePreferences{Prefs: s.Preferences()}}

	case ToggleSearch:
		s.IsSearchEnabled = !s.IsSearchEnabled
		return s, []Effect{SavePreferences{Prefs: s.Preferences()}}

	case NewChat:
		s.Messages = nil
		s.Error = ""
		s.FlashcardIndex = 0
		return s, nil

	case NextCard:
		s.FlashcardIndex = render.ClampIndex(s.FlashcardIndex+1, in.CardCount)
		return s, nil

	case PrevCard:
		s.FlashcardIndex = render.ClampIndex(s.FlashcardIndex-1, in.CardCount)
		return s, nil

	case GenerationSucceeded:
		return c.applySucceeded(s, in)

	case GenerationFailed:
		s.IsLoading = false
		if in.Err != nil {
			s.Error = in.Err.Error()
		}
		return s, nil

	case ClearError:
		s.Error = ""
		return s, nil
	}
	return s, nil
}

// applySubmit validates and dispatches a query. The history sent to the
// assembler is the transcript as it stood before this query; the new user
// message is appended to the transcript but formatted separately as the
// current turn.
func (c *Core) applySubmit(s State, in SubmitQuery) (State, []Effect) {
	text := strings.TrimSpace(in.Text)
	if text == "" || s.IsLoading {
		return s, nil
	}

	if rej := c.validate(s); rej != nil {
		s.Error = rej.message
		if rej.focusSubjects {
			return s, []Effect{FocusSubjects{}}
		}
		return s, nil
	}

	req := c.Assembler.Assemble(text, s.CurrentMode, s.CurrentSubject, s.Messages, s.IsSearchEnabled)

	msg := model.NewUserMessage(text, s.CurrentMode, s.CurrentSubject)
	s.Messages = append(append([]model.Message(nil), s.Messages...), msg)
	s.IsLoading = true
	s.Error = ""
	return s, []Effect{Generate{Request: req}}
}

// applySucceeded lands a reply: the usage count advances by one on the
// record's own date, the model message joins the transcript, and the
// flashcard cursor resets for the new deck.
func (c *Core) applySucceeded(s State, in GenerationSucceeded) (State, []Effect) {
	s.IsLoading = false
	s.Error = ""

	msg := model.NewModelMessage(in.Text, s.CurrentMode, s.CurrentSubject, in.Sources)
	s.Messages = append(append([]model.Message(nil), s.Messages...), msg)

	s.Usage = model.Usage{Date: s.Usage.Date, Count: s.Usage.Count + 1}
	s.FlashcardIndex = 0
	return s, []Effect{PersistUsage{Usage: s.Usage}}
}
