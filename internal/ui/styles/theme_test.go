// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme_AccentFollowsLayout(t *testing.T) {
	wide := NewTheme(false)
	compact := NewTheme(true)

	if wide.accent() != Indigo {
		t.Error("wide layout accent is not indigo")
	}
	if compact.accent() != Teal {
		t.Error("compact layout accent is not teal")
	}
}

func TestUsageStyle_Thresholds(t *testing.T) {
	theme := NewTheme(false)

	tests := []struct {
		name  string
		count int
		limit int
		want  string
	}{
		{"fresh day", 0, 25, "ok"},
		{"midway", 12, 25, "ok"},
		{"near limit", 20, 25, "warning"},
		{"at limit", 25, 25, "danger"},
		{"over limit", 30, 25, "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.UsageStyle(tt.count, tt.limit)
			var want = theme.UsageOK
			switch tt.want {
			case "warning":
				want = theme.UsageWarning
			case "danger":
				want = theme.UsageDanger
			}
			if got.GetForeground() != want.GetForeground() {
				t.Errorf("UsageStyle(%d, %d) picked the wrong style", tt.count, tt.limit)
			}
		})
	}
}
