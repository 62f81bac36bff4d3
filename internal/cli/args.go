// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

// Command identifies the top-level subcommand.
type Command string

const (
	CmdTUI     Command = "tui"
	CmdAsk     Command = "ask"
	CmdStats   Command = "stats"
	CmdVersion Command = "version"
	CmdHelp    Command = "help"
)

// Parse splits argv (without the program name) into a command and its
// arguments. No arguments means the interactive TUI.
func Parse(argv []string) (Command, []string) {
	if len(argv) == 0 {
		return CmdTUI, nil
	}
	switch argv[0] {
	case "ask":
		return CmdAsk, argv[1:]
	case "stats":
		return CmdStats, argv[1:]
	case "version", "--version", "-v":
		return CmdVersion, nil
	case "help", "--help", "-h":
		return CmdHelp, nil
	}
	return CmdHelp, argv
}

// Flags holds the parsed ask flags.
type Flags struct {
	Mode    string
	Subject string
	Search  bool
	// Positional words joined into the question text.
	Question []string
}

// ParseAskArgs separates flags from the question words.
func ParseAskArgs(args []string) Flags {
	var f Flags
	i := 0
	for i < len(args) {
		switch args[i] {
		case "--mode", "-m":
			if i+1 < len(args) {
				f.Mode = args[i+1]
				i += 2
				continue
			}
			i++
		case "--subject", "-s":
			if i+1 < len(args) {
				f.Subject = args[i+1]
				i += 2
				continue
			}
			i++
		case "--search":
			f.Search = true
			i++
		default:
			f.Question = append(f.Question, args[i])
			i++
		}
	}
	return f
}
