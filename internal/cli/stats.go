// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/medha-ai/medha-tui/internal/config"
	"github.com/medha-ai/medha-tui/internal/store"
)

// barColor picks the ANSI color for a day's bar: red at the limit, yellow
// when close, green otherwise.
func barColor(count, limit int) string {
	switch {
	case limit > 0 && count >= limit:
		return "1"
	case limit > 0 && count*5 >= limit*4:
		return "3"
	default:
		return "2"
	}
}

// statsDays is how many archived days the stats command shows.
const statsDays = 30

// HandleStats prints the recent daily usage from the archive.
func HandleStats(args []string) error {
	st, err := store.Open()
	if err != nil {
		return err
	}
	history, err := store.OpenHistory(st.Dir())
	if err != nil {
		return err
	}
	defer history.Close()

	rows, err := history.Recent(statsDays)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("no usage recorded yet")
		return nil
	}

	cfg, err := config.Load()
	limit := 0
	if err == nil {
		limit = cfg.Limits.DailyLimit
	}

	profile := ColorProfile()
	barMax := TerminalWidth() - 28
	if barMax < 1 {
		barMax = 1
	}

	fmt.Printf("%-12s %s\n", "date", "questions")
	total := 0
	for _, row := range rows {
		width := row.Count
		if width > barMax {
			width = barMax
		}
		bar := profile.String(strings.Repeat("█", width)).
			Foreground(profile.Color(barColor(row.Count, limit))).
			String()
		if limit > 0 && row.Count >= limit {
			bar += " (limit)"
		}
		fmt.Printf("%-12s %-3d %s\n", row.Date, row.Count, bar)
		total += row.Count
	}
	fmt.Printf("\n%d questions over %d days\n", total, len(rows))
	return nil
}
