package clock

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tm
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"23:00", "23:00"},
		{"7:05", "07:05"},
		{"0:00", "00:00"},
		{"07:05", "07:05"},
		{"24:00", "00:00"},
		{"12:60", "00:00"},
		{"noon", "00:00"},
		{"", "00:00"},
		{"7:5", "00:00"},
		{"-1:30", "00:00"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"00:00", "07:30", "23:59", "12:00"} {
		if got := Normalize(Normalize(s)); got != s {
			t.Errorf("Normalize(Normalize(%q)) = %q, want unchanged", s, got)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range []string{"23:00", "7:05", "0:00", "23:59"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"24:00", "12:60", "noon", "", "7:5", "-1:30"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestToInstantIgnoresAnchorTimeOfDay(t *testing.T) {
	anchor := mustTime(t, "2024-01-02T18:45")
	got := ToInstant(anchor, "07:30")
	want := mustTime(t, "2024-01-02T07:30")
	if !got.Equal(want) {
		t.Fatalf("ToInstant = %v, want %v", got, want)
	}
	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("ToInstant carried sub-minute precision: %v", got)
	}
}

func TestToInstantRoundTrip(t *testing.T) {
	anchor := mustTime(t, "2024-03-15T00:00")
	for _, hhmm := range []string{"00:00", "07:05", "12:30", "23:59"} {
		inst := ToInstant(anchor, hhmm)
		back := ToInstant(anchor, Normalize(inst.Format("15:04")))
		if !back.Equal(inst) {
			t.Errorf("round trip of %s: got %v, want %v", hhmm, back, inst)
		}
	}
}

func TestFormat12h(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-02T23:05", "11:05pm"},
		{"2024-01-02T00:00", "12:00am"},
		{"2024-01-02T12:00", "12:00pm"},
		{"2024-01-02T07:30", "7:30am"},
		{"2024-01-02T13:09", "1:09pm"},
	}
	for _, c := range cases {
		if got := Format12h(mustTime(t, c.in)); got != c.want {
			t.Errorf("Format12h(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.0 / 3.0, 0.67},
		{-2.0 / 3.0, -0.67},
		{13.0 + 29.8/60.0, 13.5},
		{21.0, 21.0},
		{0.0049, 0.0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
