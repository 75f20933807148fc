package clock

import "time"

// Remaining returns the unspent allowance for the rest of the current
// waking period: hours from now until the next bedtime, clamped at zero
// and rounded to two decimals.
func Remaining(now time.Time, s Schedule) float64 {
	h := NextBedtime(now, s).Sub(now).Hours()
	if h < 0 {
		h = 0
	}
	return Round2(h)
}

// Spent returns hours elapsed since waking in the current day window,
// clamped at zero and rounded to two decimals. While still asleep before
// the window's wake instant, spent is zero.
func Spent(now time.Time, s Schedule) float64 {
	h := now.Sub(MostRecentWake(now, s)).Hours()
	if h < 0 {
		h = 0
	}
	return Round2(h)
}
