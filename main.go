// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// medha is a terminal client for the Medha AI study assistant: subject
// learning, general knowledge and flashcards for Bangladeshi students,
// backed by a hosted generation service with a daily question limit.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medha-ai/medha-tui/internal/cli"
	"github.com/medha-ai/medha-tui/internal/config"
	"github.com/medha-ai/medha-tui/internal/gemini"
	"github.com/medha-ai/medha-tui/internal/quota"
	"github.com/medha-ai/medha-tui/internal/session"
	"github.com/medha-ai/medha-tui/internal/store"
	"github.com/medha-ai/medha-tui/internal/ui/chat"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdAsk:
		if err := cli.HandleAsk(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdStats:
		if err := cli.HandleStats(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		fmt.Printf("medha %s (%s, built %s)\n", Version, GitCommit, BuildDate)
	case cli.CmdHelp:
		printUsage()
	}
}

func printUsage() {
	fmt.Print(`medha - Medha AI study assistant

Usage:
  medha                 Start the interactive TUI
  medha ask QUESTION    Ask one question and exit
  medha stats           Show recent daily usage
  medha version         Print version information

Ask flags:
  --mode gk|subject|cards   Override the learning mode
  --subject NAME            Override the subject
  --search                  Enable web-search grounding
`)
}

// runTUI wires the full application and hands control to Bubble Tea.
func runTUI() {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "stdin is not a terminal; use `medha ask` for scripted queries")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.API.Key == "" {
		fmt.Fprintln(os.Stderr, "No API key configured; set MEDHA_API_KEY or api.key in config.toml")
		os.Exit(1)
	}

	st, err := store.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	// TUI output owns the terminal; route the standard logger to a file.
	logFile, err := os.OpenFile(filepath.Join(st.Dir(), "medha.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	history, err := store.OpenHistory(st.Dir())
	if err != nil {
		log.Printf("usage archive unavailable: %v", err)
		history = nil
	} else {
		defer history.Close()
	}

	ledger := quota.New(st, nil, cfg.Limits.DailyLimit)
	if history != nil {
		ledger = quota.New(st, history, cfg.Limits.DailyLimit)
	}

	client := gemini.NewClient(gemini.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Model:   cfg.API.Model,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	})

	core := session.NewCore(ledger.Limit())
	core.Assembler.HistoryWindow = cfg.Limits.HistoryWindow
	core.Assembler.Temperature = cfg.Generation.Temperature
	core.Assembler.TopP = cfg.Generation.TopP

	prefs, _ := st.LoadPreferences()
	state := session.NewState(prefs, ledger.Usage())

	m := chat.New(chat.Options{
		Core:         core,
		State:        state,
		Client:       client,
		Ledger:       ledger,
		Prefs:        st,
		CompactWidth: cfg.UI.CompactWidth,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Config edits land in the running program as reload messages.
	watcher, err := config.NewWatcher(500*time.Millisecond, func(updated *config.Config) {
		p.Send(chat.ConfigReloadedMsg{Config: updated})
	})
	if err == nil {
		if err := watcher.Watch(); err != nil {
			log.Printf("config watcher: %v", err)
		}
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
