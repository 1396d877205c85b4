package game

import "testing"

func TestFormatLoop(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00.0"},
		{2.55, "00:02.5"},
		{29.99, "00:29.9"},
		{75.25, "01:15.2"},
		{-3, "00:00.0"},
	}
	for _, tt := range tests {
		if got := formatLoop(tt.in); got != tt.want {
			t.Errorf("formatLoop(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
