// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestBarColor(t *testing.T) {
	tests := []struct {
		name         string
		count, limit int
		want         string
	}{
		{"well under limit", 5, 25, "2"},
		{"near limit", 20, 25, "3"},
		{"at limit", 25, 25, "1"},
		{"over limit", 30, 25, "1"},
		{"no limit known", 40, 0, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barColor(tt.count, tt.limit); got != tt.want {
				t.Errorf("barColor(%d, %d) = %q, want %q", tt.count, tt.limit, got, tt.want)
			}
		})
	}
}
