// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/m4cbeth/16dollars/internal/clock"
)

// FormatBudget renders a budget figure as notional dollars, e.g. "$13.50".
func FormatBudget(hours float64) string {
	if hours < 0 {
		return fmt.Sprintf("-$%.2f", -hours)
	}
	return fmt.Sprintf("$%.2f", hours)
}

// FormatHours renders an hour count, e.g. "2.50h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}

// FormatCountdown formats a duration as a compact countdown.
// e.g., 13h30m -> "13h 30m", 45m -> "45m"
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatCategory renders a category tag for display, e.g. "self_care" ->
// "self care".
func FormatCategory(c string) string {
	return strings.ReplaceAll(c, "_", " ")
}

// FormatSpan renders an activity's start and end as a 12-hour range,
// e.g. "10:30pm - 12:15am".
func FormatSpan(start, end time.Time) string {
	return clock.Format12h(start) + " - " + clock.Format12h(end)
}
