package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/model"
)

func TestActivitiesMsgRecomputesSnapshot(t *testing.T) {
	a := App{cfg: config.DefaultConfig()}

	now := time.Now()
	updated, _ := a.Update(ActivitiesMsg{
		Activities: []model.Activity{
			{
				ID:        "a1",
				Name:      "reading",
				Category:  model.CategoryBeneficial,
				StartTime: now.Add(-time.Hour),
				EndTime:   now,
				Cost:      1.0,
			},
		},
	})

	got, ok := updated.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", updated)
	}
	if !got.loaded {
		t.Fatal("loaded = false after ActivitiesMsg")
	}
	if len(got.activities) != 1 {
		t.Fatalf("activities len = %d, want 1", len(got.activities))
	}
	if got.snap.Allowance != config.DefaultAllowance {
		t.Fatalf("snapshot allowance = %v, want %v", got.snap.Allowance, config.DefaultAllowance)
	}
	if !got.snap.WindowStart.Before(got.snap.WindowEnd) {
		t.Fatalf("window start %v not before end %v", got.snap.WindowStart, got.snap.WindowEnd)
	}
}

func TestActivitiesMsgKeepsOldDataOnError(t *testing.T) {
	a := App{cfg: config.DefaultConfig()}
	a.activities = []model.Activity{{ID: "a1", Name: "reading"}}

	updated, _ := a.Update(ActivitiesMsg{Err: errFake})
	got := updated.(App)
	if got.loadErr == nil {
		t.Fatal("loadErr = nil, want error")
	}
	if len(got.activities) != 1 {
		t.Fatalf("activities len = %d, want 1 (stale data retained)", len(got.activities))
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "boom" }

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Fatalf("truncStr(short, 10) = %q", got)
	}
	got := truncStr("a very long activity name", 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncStr long = %q", got)
	}
	if got := truncStr("anything", 0); got != "" {
		t.Fatalf("truncStr(_, 0) = %q, want empty", got)
	}
}

func TestPadAndTruncateHeight(t *testing.T) {
	s := "a\nb\nc"
	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Fatalf("truncateHeight = %q", got)
	}
	padded := padHeight(s, 5)
	if n := len(strings.Split(padded, "\n")); n != 5 {
		t.Fatalf("padHeight produced %d lines, want 5", n)
	}
}

func TestSaveSetupConfigNormalizes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := App{cfg: config.DefaultConfig()}
	a.setupVals = setupValues{
		bedtime:   "9:05",
		wake:      "7:30",
		allowance: "12",
		theme:     "terminal",
	}

	if err := a.saveSetupConfig(); err != nil {
		t.Fatalf("saveSetupConfig: %v", err)
	}

	// The validated config must be the one kept and saved: times
	// zero-padded, allowance parsed.
	if a.cfg.Schedule.Bedtime != "09:05" || a.cfg.Schedule.WakeTime != "07:30" {
		t.Fatalf("schedule = %q/%q, want normalized 09:05/07:30",
			a.cfg.Schedule.Bedtime, a.cfg.Schedule.WakeTime)
	}
	if a.cfg.Budget.DailyAllowance != 12 {
		t.Fatalf("allowance = %v, want 12", a.cfg.Budget.DailyAllowance)
	}
	if !config.Exists() {
		t.Fatal("config file was not written")
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if saved.Schedule.Bedtime != "09:05" {
		t.Fatalf("saved bedtime = %q, want 09:05", saved.Schedule.Bedtime)
	}
}

func TestSetupValidators(t *testing.T) {
	if err := validateWallClock("23:00"); err != nil {
		t.Fatalf("validateWallClock(23:00) = %v", err)
	}
	if err := validateWallClock("25:00"); err == nil {
		t.Fatal("validateWallClock(25:00) accepted out-of-range hour")
	}
	if err := validateAllowance("16"); err != nil {
		t.Fatalf("validateAllowance(16) = %v", err)
	}
	if err := validateAllowance("-1"); err == nil {
		t.Fatal("validateAllowance(-1) accepted non-positive value")
	}
}
