package clock

import "time"

// Schedule is the engine's read-only view of the user's sleep settings.
// Times are "HH:MM" wall-clock strings. Callers are expected to have
// validated them once up front (config.Validate does this); malformed
// values still degrade to 00:00 rather than failing.
type Schedule struct {
	Bedtime  string
	WakeTime string
}

// DayWindow spans one bedtime to the next: a full sleep period plus the
// following waking period. It is derived on every query, never persisted.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls in [Start, End).
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// IsAsleep reports whether now falls inside the sleep window.
// now == bedtime counts as asleep; now == wake time counts as awake.
func IsAsleep(now time.Time, s Schedule) bool {
	bed := MinutesOfDay(s.Bedtime)
	wake := MinutesOfDay(s.WakeTime)
	nowM := now.Hour()*60 + now.Minute()

	if bed < wake {
		// Same-day sleep window, e.g. 01:00-09:00. Unusual but legal.
		return nowM >= bed && nowM < wake
	}
	return nowM >= bed || nowM < wake
}

// MostRecentBedtime returns today's bedtime if now is at or past it,
// otherwise yesterday's.
func MostRecentBedtime(now time.Time, s Schedule) time.Time {
	bed := ToInstant(now, s.Bedtime)
	if now.Before(bed) {
		return bed.AddDate(0, 0, -1)
	}
	return bed
}

// NextBedtime returns today's bedtime if it is still ahead of now,
// otherwise tomorrow's.
func NextBedtime(now time.Time, s Schedule) time.Time {
	bed := ToInstant(now, s.Bedtime)
	if now.Before(bed) {
		return bed
	}
	return bed.AddDate(0, 0, 1)
}

// MostRecentWake returns the wake instant belonging to the current day
// window: the wake time placed on the window's start date, pushed forward
// a day when the schedule crosses midnight. It can be in the future if
// the user has not yet woken within this window.
func MostRecentWake(now time.Time, s Schedule) time.Time {
	start := MostRecentBedtime(now, s)
	wake := ToInstant(start, s.WakeTime)
	if wake.Before(start) {
		wake = wake.AddDate(0, 0, 1)
	}
	return wake
}

// Window returns the active day window around now.
// Invariant: Start <= now < End for any now.
func Window(now time.Time, s Schedule) DayWindow {
	return DayWindow{
		Start: MostRecentBedtime(now, s),
		End:   NextBedtime(now, s),
	}
}
