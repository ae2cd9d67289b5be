package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "Catan", 40, "Catan"},
		{"exact length unchanged", strings.Repeat("x", 40), 40, strings.Repeat("x", 40)},
		{"long ascii", strings.Repeat("x", 50), 40, strings.Repeat("x", 37) + "..."},
		{"multibyte not split", strings.Repeat("Orléans ", 10), 40, string([]rune(strings.Repeat("Orléans ", 10))[:37]) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateName produced invalid UTF-8: %q", got)
			}
		})
	}
}
