package clock

import "time"

// wrapEnd applies the midnight-wrap correction: an end that appears
// earlier than its start is treated as the following day. This is the
// sole negative-duration recovery rule; there are no multi-day
// heuristics.
func wrapEnd(start, end time.Time) time.Time {
	if end.Before(start) {
		return end.Add(24 * time.Hour)
	}
	return end
}

// DurationHours returns the non-negative, midnight-aware duration of
// [start, end) in hours. A three-hour activity returns 3.0.
func DurationHours(start, end time.Time) float64 {
	return wrapEnd(start, end).Sub(start).Hours()
}

// OverlapsWindow reports whether the wrap-corrected activity interval
// overlaps [winStart, winEnd). The test is open on both sides: an
// activity ending exactly at winStart, or starting exactly at winEnd,
// does not count.
func OverlapsWindow(start, end, winStart, winEnd time.Time) bool {
	return start.Before(winEnd) && wrapEnd(start, end).After(winStart)
}
