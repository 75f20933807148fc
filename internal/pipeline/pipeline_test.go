package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tm
}

func testConfig() config.Config {
	return config.Validate(config.Config{
		Schedule: config.ScheduleConfig{Bedtime: "23:00", WakeTime: "07:00"},
	})
}

func activity(t *testing.T, name string, cat model.Category, start, end string) model.Activity {
	t.Helper()
	return NewActivity(name, cat, mustTime(t, start), mustTime(t, end))
}

func TestNewActivityCost(t *testing.T) {
	a := activity(t, "reading", model.CategoryBeneficial, "2024-01-02T20:00", "2024-01-02T21:20")
	if math.Abs(a.Cost-1.33) > 1e-9 {
		t.Errorf("Cost = %v, want 1.33", a.Cost)
	}
	if a.ID == "" {
		t.Error("activity has no ID")
	}

	// End before start crosses midnight: 22:30 -> 00:15 is 1.75 hours.
	wrapped := activity(t, "movie", model.CategoryNeutral, "2024-01-02T22:30", "2024-01-02T00:15")
	if math.Abs(wrapped.Cost-1.75) > 1e-9 {
		t.Errorf("wrapped Cost = %v, want 1.75", wrapped.Cost)
	}
}

func TestForWindowFiltersAndSorts(t *testing.T) {
	w := clock.DayWindow{
		Start: mustTime(t, "2024-01-01T23:00"),
		End:   mustTime(t, "2024-01-02T23:00"),
	}
	in := []model.Activity{
		activity(t, "evening", model.CategoryNeutral, "2024-01-02T20:00", "2024-01-02T21:00"),
		activity(t, "morning", model.CategoryBeneficial, "2024-01-02T08:00", "2024-01-02T09:00"),
		activity(t, "yesterday", model.CategoryNeutral, "2024-01-01T10:00", "2024-01-01T11:00"),
		activity(t, "straddles end", model.CategoryNeutral, "2024-01-02T22:45", "2024-01-02T23:30"),
		activity(t, "starts at end", model.CategoryNeutral, "2024-01-02T23:00", "2024-01-02T23:45"),
	}

	got := ForWindow(in, w)
	want := []string{"morning", "evening", "straddles end"}
	if len(got) != len(want) {
		t.Fatalf("ForWindow returned %d activities, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("ForWindow[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestAggregateCategories(t *testing.T) {
	in := []model.Activity{
		activity(t, "gym", model.CategorySelfCare, "2024-01-02T08:00", "2024-01-02T09:00"),
		activity(t, "work", model.CategoryBeneficial, "2024-01-02T09:00", "2024-01-02T12:00"),
		activity(t, "walk", model.CategorySelfCare, "2024-01-02T12:00", "2024-01-02T12:30"),
	}

	stats := AggregateCategories(in)
	if len(stats) != 2 {
		t.Fatalf("got %d categories, want 2", len(stats))
	}
	if stats[0].Category != model.CategoryBeneficial || math.Abs(stats[0].Hours-3.0) > 1e-9 {
		t.Errorf("top category = %+v, want beneficial 3.0h", stats[0])
	}
	if stats[1].Category != model.CategorySelfCare || stats[1].Activities != 2 || math.Abs(stats[1].Hours-1.5) > 1e-9 {
		t.Errorf("second category = %+v, want self_care 2x 1.5h", stats[1])
	}
}

func TestBuildSnapshot(t *testing.T) {
	cfg := testConfig()
	now := mustTime(t, "2024-01-02T09:30")
	in := []model.Activity{
		activity(t, "work", model.CategoryBeneficial, "2024-01-02T07:30", "2024-01-02T09:00"),
		activity(t, "old", model.CategoryNeutral, "2023-12-30T10:00", "2023-12-30T11:00"),
	}

	snap := BuildSnapshot(now, cfg, in)
	if snap.Asleep {
		t.Error("asleep at 09:30")
	}
	if math.Abs(snap.Spent-2.50) > 1e-9 {
		t.Errorf("Spent = %v, want 2.50", snap.Spent)
	}
	if math.Abs(snap.Remaining-13.50) > 1e-9 {
		t.Errorf("Remaining = %v, want 13.50", snap.Remaining)
	}
	if !snap.WindowStart.Equal(mustTime(t, "2024-01-01T23:00")) || !snap.WindowEnd.Equal(mustTime(t, "2024-01-02T23:00")) {
		t.Errorf("window = [%v, %v)", snap.WindowStart, snap.WindowEnd)
	}
	if len(snap.Activities) != 1 || snap.Activities[0].Name != "work" {
		t.Errorf("window activities = %+v", snap.Activities)
	}
	if math.Abs(snap.Logged()-1.5) > 1e-9 {
		t.Errorf("Logged = %v, want 1.5", snap.Logged())
	}
}

func TestFromPreset(t *testing.T) {
	cfg := testConfig()
	now := mustTime(t, "2024-01-02T09:30")

	a, err := FromPreset(config.PresetConfig{
		Name:     "Morning routine",
		Category: "self_care",
		Start:    "wake",
		End:      "wake+45",
	}, cfg, now)
	if err != nil {
		t.Fatalf("FromPreset: %v", err)
	}
	// Anchor is the window start (Jan 1 23:00); wake resolves on that date
	// and the span stays put since end follows start.
	if !a.StartTime.Equal(mustTime(t, "2024-01-01T07:00")) {
		t.Errorf("start = %v", a.StartTime)
	}
	if !a.EndTime.Equal(mustTime(t, "2024-01-01T07:45")) {
		t.Errorf("end = %v", a.EndTime)
	}
	if math.Abs(a.Cost-0.75) > 1e-9 {
		t.Errorf("cost = %v, want 0.75", a.Cost)
	}
	if a.Category != model.CategorySelfCare {
		t.Errorf("category = %v", a.Category)
	}

	if _, err := FromPreset(config.PresetConfig{Name: "bad", Start: "noon", End: "wake"}, cfg, now); err == nil {
		t.Error("expected error for unknown reference")
	}
}
