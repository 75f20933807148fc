package cli

import (
	"testing"
	"time"
)

func TestFormatBudget(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{13.5, "$13.50"},
		{0, "$0.00"},
		{16, "$16.00"},
		{-1.25, "-$1.25"},
	}
	for _, c := range cases {
		if got := FormatBudget(c.in); got != c.want {
			t.Errorf("FormatBudget(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{13*time.Hour + 30*time.Minute, "13h 30m"},
		{45 * time.Minute, "45m"},
		{0, "0m"},
		{-time.Hour, "0m"},
	}
	for _, c := range cases {
		if got := FormatCountdown(c.in); got != c.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCategory(t *testing.T) {
	if got := FormatCategory("self_care"); got != "self care" {
		t.Errorf("FormatCategory = %q", got)
	}
}

func TestFormatSpan(t *testing.T) {
	start := time.Date(2024, 1, 2, 22, 30, 0, 0, time.Local)
	end := time.Date(2024, 1, 3, 0, 15, 0, 0, time.Local)
	if got, want := FormatSpan(start, end), "10:30pm - 12:15am"; got != want {
		t.Errorf("FormatSpan = %q, want %q", got, want)
	}
}
