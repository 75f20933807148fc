package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/tui/theme"
)

// setupValues holds the first-run form answers before they are written to
// the config.
type setupValues struct {
	bedtime   string
	wake      string
	allowance string
	theme     string
}

func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.bedtime = cfg.Schedule.Bedtime
	vals.wake = cfg.Schedule.WakeTime
	vals.allowance = strconv.FormatFloat(cfg.Budget.DailyAllowance, 'f', -1, 64)
	vals.theme = cfg.Appearance.Theme

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to 16dollars!").
				Description("Your day is a budget. Let's set up your schedule."),
			huh.NewInput().
				Title("Bedtime").
				Description("When your day ends (HH:MM, 24h)").
				Value(&vals.bedtime).
				Validate(validateWallClock),
			huh.NewInput().
				Title("Wake time").
				Description("When your budget starts depleting (HH:MM, 24h)").
				Value(&vals.wake).
				Validate(validateWallClock),
			huh.NewInput().
				Title("Daily allowance").
				Description("Notional dollars per day, one per waking hour").
				Value(&vals.allowance).
				Validate(validateAllowance),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&vals.theme),
		),
	)
}

func validateWallClock(s string) error {
	if !clock.Valid(s) {
		return fmt.Errorf("expected HH:MM, e.g. 23:00")
	}
	return nil
}

func validateAllowance(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("expected a positive number, e.g. 16")
	}
	return nil
}

func (a *App) saveSetupConfig() error {
	cfg := a.cfg
	cfg.Schedule.Bedtime = a.setupVals.bedtime
	cfg.Schedule.WakeTime = a.setupVals.wake
	if v, err := strconv.ParseFloat(a.setupVals.allowance, 64); err == nil && v > 0 {
		cfg.Budget.DailyAllowance = v
	}
	cfg.Appearance.Theme = a.setupVals.theme

	cfg = config.Validate(cfg)
	theme.SetActive(cfg.Appearance.Theme)
	a.cfg = cfg
	return config.Save(cfg)
}
