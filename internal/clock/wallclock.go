// Package clock implements the day-window budget engine: wall-clock time
// parsing, sleep and day-window calculation, budget math, activity
// overlap rules, and symbolic time references. Every function is pure;
// "now" is always an explicit argument, so refresh cadence belongs to
// callers, never to this package.
package clock

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"time"
)

// DefaultWallClock is what malformed wall-clock strings degrade to.
const DefaultWallClock = "00:00"

var hhmmRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Normalize validates an "H:MM"/"HH:MM" wall-clock string and returns it
// zero-padded. Malformed or out-of-range input degrades to "00:00" with a
// diagnostic; it never fails, so callers must tolerate defaulted times.
func Normalize(s string) string {
	m := hhmmRe.FindStringSubmatch(s)
	if m == nil {
		log.Printf("clock: malformed wall-clock time %q, using %s", s, DefaultWallClock)
		return DefaultWallClock
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		log.Printf("clock: wall-clock time %q out of range, using %s", s, DefaultWallClock)
		return DefaultWallClock
	}
	return fmt.Sprintf("%02d:%02d", h, mins)
}

// Valid reports whether s parses as an in-range wall-clock time.
func Valid(s string) bool {
	m := hhmmRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return h <= 23 && mins <= 59
}

// MinutesOfDay converts a wall-clock string to minutes since midnight,
// normalizing first.
func MinutesOfDay(hhmm string) int {
	h, m := split(Normalize(hhmm))
	return h*60 + m
}

func split(normalized string) (hour, minute int) {
	hour, _ = strconv.Atoi(normalized[:2])
	minute, _ = strconv.Atoi(normalized[3:])
	return hour, minute
}

// ToInstant places a wall-clock time on the local calendar date of
// anchor. Only the anchor's date part matters; its own time-of-day is
// discarded and seconds are zeroed.
func ToInstant(anchor time.Time, hhmm string) time.Time {
	h, m := split(Normalize(hhmm))
	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), h, m, 0, 0, anchor.Location())
}

// Format12h renders an instant's time of day as e.g. "11:05pm".
func Format12h(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if t.Hour() >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), suffix)
}

// Round2 rounds half away from zero at the hundredths place, matching the
// currency-like display the budget figures use.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
