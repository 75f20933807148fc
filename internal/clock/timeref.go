package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RefKind discriminates symbolic time references.
type RefKind int

// The three reference kinds presets may use.
const (
	RefBedtime RefKind = iota
	RefWake
	RefWakeOffset
)

// TimeRef is a symbolic time anchor used by quick-action presets:
// bedtime, wake time, or a minute offset measured from wake time.
type TimeRef struct {
	Kind          RefKind
	OffsetMinutes int // only meaningful for RefWakeOffset; may be negative
}

// Bedtime returns the bedtime reference.
func Bedtime() TimeRef { return TimeRef{Kind: RefBedtime} }

// Wake returns the wake-time reference.
func Wake() TimeRef { return TimeRef{Kind: RefWake} }

// WakeOffset returns a reference offset from wake time by the given
// number of minutes. No range clamp is applied.
func WakeOffset(minutes int) TimeRef {
	return TimeRef{Kind: RefWakeOffset, OffsetMinutes: minutes}
}

// Resolve turns a symbolic reference into a concrete instant on the
// local calendar date of anchor.
func Resolve(ref TimeRef, s Schedule, anchor time.Time) time.Time {
	switch ref.Kind {
	case RefBedtime:
		return ToInstant(anchor, s.Bedtime)
	case RefWake:
		return ToInstant(anchor, s.WakeTime)
	default:
		return ToInstant(anchor, s.WakeTime).Add(time.Duration(ref.OffsetMinutes) * time.Minute)
	}
}

// ResolveSpan resolves a preset's start and end against the same anchor
// (conventionally the current day window's start) and applies the same
// midnight-wrap correction as activity durations, so presets and manual
// entries behave identically.
func ResolveSpan(startRef, endRef TimeRef, s Schedule, anchor time.Time) (start, end time.Time) {
	start = Resolve(startRef, s, anchor)
	end = Resolve(endRef, s, anchor)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end
}

// FormatRef renders a reference's time of day for preset labels. Only
// the wall-clock part is meaningful, so any anchor date works.
func FormatRef(ref TimeRef, s Schedule) string {
	return Format12h(Resolve(ref, s, time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)))
}

// ParseRef parses the config syntax for time references: "bedtime",
// "wake", or "wake±N" with N an offset in minutes (e.g. "wake+45",
// "wake-30").
func ParseRef(in string) (TimeRef, error) {
	s := strings.ToLower(strings.TrimSpace(in))
	switch s {
	case "bedtime", "bed":
		return Bedtime(), nil
	case "wake", "waketime":
		return Wake(), nil
	}
	rest, ok := strings.CutPrefix(s, "wake")
	if !ok || rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return TimeRef{}, fmt.Errorf("unrecognized time reference %q", in)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return TimeRef{}, fmt.Errorf("unrecognized time reference %q", in)
	}
	return WakeOffset(n), nil
}
