// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command for the medha CLI.
//
// Runs the full request pipeline without the TUI: validate against the
// daily limit, assemble the prompt, call the service once, print the
// normalized reply. Usage counts exactly like an interactive question.
//
// Examples:
//
//	medha ask "পদার্থবিজ্ঞানে বল কী?" --subject Physics
//	medha ask --mode gk --search "Who won the 2026 World Cup?"
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/medha-ai/medha-tui/internal/config"
	"github.com/medha-ai/medha-tui/internal/gemini"
	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/quota"
	"github.com/medha-ai/medha-tui/internal/render"
	"github.com/medha-ai/medha-tui/internal/session"
	"github.com/medha-ai/medha-tui/internal/store"
)

// HandleAsk runs the ask command.
func HandleAsk(args []string) error {
	flags := ParseAskArgs(args)
	question := strings.TrimSpace(strings.Join(flags.Question, " "))
	if question == "" {
		return errors.New("usage: medha ask [--mode gk|subject|cards] [--subject NAME] [--search] QUESTION")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.API.Key == "" {
		return errors.New("no API key configured; set MEDHA_API_KEY or api.key in config.toml")
	}

	st, err := store.Open()
	if err != nil {
		return err
	}
	history, err := store.OpenHistory(st.Dir())
	if err != nil {
		return err
	}
	defer history.Close()
	ledger := quota.New(st, history, cfg.Limits.DailyLimit)

	prefs, _ := st.LoadPreferences()
	state := session.NewState(prefs, ledger.Usage())
	applyFlags(&state, flags)

	core := session.NewCore(ledger.Limit())
	core.Assembler.HistoryWindow = cfg.Limits.HistoryWindow
	core.Assembler.Temperature = cfg.Generation.Temperature
	core.Assembler.TopP = cfg.Generation.TopP

	state, effects := core.Apply(state, session.SubmitQuery{Text: question})
	if state.Error != "" {
		return errors.New(state.Error)
	}

	client := gemini.NewClient(gemini.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Model:   cfg.API.Model,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	})

	for _, effect := range effects {
		gen, ok := effect.(session.Generate)
		if !ok {
			continue
		}
		resp, err := client.Generate(context.Background(), gen.Request)
		if err != nil {
			state, _ = core.Apply(state, session.GenerationFailed{Err: err})
			return errors.New(state.Error)
		}
		var after []session.Effect
		state, after = core.Apply(state, session.GenerationSucceeded{
			Text:    resp.Text,
			Sources: resp.Sources,
		})
		for _, e := range after {
			if p, ok := e.(session.PersistUsage); ok {
				ledger.Persist(p.Usage)
			}
		}
		printReply(resp, state.CurrentMode)
	}

	fmt.Fprintf(os.Stderr, "\nব্যবহার %d/%d\n", state.Usage.Count, ledger.Limit())
	return nil
}

// applyFlags overrides persisted selections with command-line ones.
func applyFlags(state *session.State, flags Flags) {
	switch strings.ToLower(flags.Mode) {
	case "gk", "general":
		state.CurrentMode = model.ModeGeneralKnowledge
	case "subject":
		state.CurrentMode = model.ModeSubjectLearning
	case "cards", "flashcards":
		state.CurrentMode = model.ModeFlashcards
	}
	if flags.Subject != "" {
		for _, s := range model.Subjects {
			if strings.EqualFold(string(s), flags.Subject) {
				state.CurrentSubject = s
			}
		}
	}
	if flags.Search {
		state.IsSearchEnabled = true
	}
}

// printReply writes the normalized reply to stdout: flattened text for
// prose, a numbered card list for decks, citations last.
func printReply(resp gemini.Response, mode model.AppMode) {
	content := render.Parse(resp.Text, mode)
	if content.IsDeck() {
		for i, card := range content.Deck {
			fmt.Printf("%d. Q: %s\n   A: %s\n", i+1, card.Question, card.Answer)
		}
	} else {
		fmt.Println(render.PlainText(content.Blocks))
	}
	for _, src := range resp.Sources {
		fmt.Printf("  ↗ %s <%s>\n", src.Title, src.URI)
	}
}
