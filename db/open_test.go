// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestWithPragmas(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"vote.db", "vote.db?" + sqlitePragmas},
		{"file:vote.db?mode=rwc", "file:vote.db?mode=rwc&" + sqlitePragmas},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := withPragmas(tt.url); got != tt.want {
				t.Errorf("withPragmas(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
