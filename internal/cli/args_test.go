// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args runs the TUI", nil, CmdTUI},
		{"ask", []string{"ask", "what?"}, CmdAsk},
		{"stats", []string{"stats"}, CmdStats},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"unknown falls to help", []string{"frobnicate"}, CmdHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Parse(tt.argv)
			if got != tt.want {
				t.Errorf("Parse(%v) = %q, want %q", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseAskArgs(t *testing.T) {
	flags := ParseAskArgs([]string{"--mode", "gk", "--search", "who", "won", "--subject", "Physics"})

	if flags.Mode != "gk" || flags.Subject != "Physics" || !flags.Search {
		t.Errorf("flags = %+v", flags)
	}
	if !reflect.DeepEqual(flags.Question, []string{"who", "won"}) {
		t.Errorf("question = %v", flags.Question)
	}
}

func TestParseAskArgs_TrailingFlagWithoutValue(t *testing.T) {
	flags := ParseAskArgs([]string{"question", "--mode"})
	if flags.Mode != "" {
		t.Errorf("mode = %q, want empty for a dangling flag", flags.Mode)
	}
	if len(flags.Question) != 1 {
		t.Errorf("question = %v", flags.Question)
	}
}
