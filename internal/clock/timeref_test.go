package clock

import (
	"testing"
)

func TestResolve(t *testing.T) {
	anchor := mustTime(t, "2024-01-01T23:00")

	if got, want := Resolve(Bedtime(), nightOwl, anchor), mustTime(t, "2024-01-01T23:00"); !got.Equal(want) {
		t.Errorf("bedtime ref = %v, want %v", got, want)
	}
	if got, want := Resolve(Wake(), nightOwl, anchor), mustTime(t, "2024-01-01T07:00"); !got.Equal(want) {
		t.Errorf("wake ref = %v, want %v", got, want)
	}
	if got, want := Resolve(WakeOffset(45), nightOwl, anchor), mustTime(t, "2024-01-01T07:45"); !got.Equal(want) {
		t.Errorf("wake+45 ref = %v, want %v", got, want)
	}
	if got, want := Resolve(WakeOffset(-30), nightOwl, anchor), mustTime(t, "2024-01-01T06:30"); !got.Equal(want) {
		t.Errorf("wake-30 ref = %v, want %v", got, want)
	}
}

func TestResolveSpanWrapsLikeActivities(t *testing.T) {
	// Resolved against a window start of Jan 1 23:00: a wake->bedtime
	// preset resolves end (23:00) after start (07:00), no wrap. A
	// bedtime->wake preset resolves end before start and gains 24h.
	anchor := mustTime(t, "2024-01-01T23:00")

	start, end := ResolveSpan(Wake(), Bedtime(), nightOwl, anchor)
	if !start.Equal(mustTime(t, "2024-01-01T07:00")) || !end.Equal(mustTime(t, "2024-01-01T23:00")) {
		t.Errorf("wake->bedtime span = [%v, %v)", start, end)
	}

	start, end = ResolveSpan(Bedtime(), Wake(), nightOwl, anchor)
	if !start.Equal(mustTime(t, "2024-01-01T23:00")) || !end.Equal(mustTime(t, "2024-01-02T07:00")) {
		t.Errorf("bedtime->wake span = [%v, %v)", start, end)
	}

	if d := DurationHours(start, end); d != 8.0 {
		t.Errorf("bedtime->wake duration = %v, want 8.0", d)
	}
}

func TestFormatRef(t *testing.T) {
	cases := []struct {
		ref  TimeRef
		want string
	}{
		{Bedtime(), "11:00pm"},
		{Wake(), "7:00am"},
		{WakeOffset(65), "8:05am"},
		{WakeOffset(-30), "6:30am"},
	}
	for _, c := range cases {
		if got := FormatRef(c.ref, nightOwl); got != c.want {
			t.Errorf("FormatRef(%v) = %q, want %q", c.ref, got, c.want)
		}
	}
}

func TestParseRef(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeRef
		wantErr bool
	}{
		{"bedtime", Bedtime(), false},
		{"bed", Bedtime(), false},
		{"wake", Wake(), false},
		{"WAKE", Wake(), false},
		{"wake+45", WakeOffset(45), false},
		{"wake-30", WakeOffset(-30), false},
		{" wake+0 ", WakeOffset(0), false},
		{"wake45", TimeRef{}, true},
		{"noon", TimeRef{}, true},
		{"", TimeRef{}, true},
	}
	for _, c := range cases {
		got, err := ParseRef(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseRef(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRef(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRef(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
