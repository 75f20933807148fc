// Package config loads and saves 16dollars configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/m4cbeth/16dollars/internal/clock"
)

// Defaults applied by Validate when fields are missing.
const (
	DefaultBedtime   = "23:00"
	DefaultWakeTime  = "07:00"
	DefaultAllowance = 16.0
)

// Config holds all 16dollars configuration.
type Config struct {
	Schedule   ScheduleConfig   `toml:"schedule"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Presets    []PresetConfig   `toml:"presets"`
}

// ScheduleConfig holds the user's sleep schedule as wall-clock times.
type ScheduleConfig struct {
	Bedtime  string `toml:"bedtime"`
	WakeTime string `toml:"wake_time"`
}

// BudgetConfig holds the daily allowance settings.
type BudgetConfig struct {
	DailyAllowance float64 `toml:"daily_allowance"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// PresetConfig defines a quick-action preset. Start and End use the
// symbolic reference syntax: "bedtime", "wake", "wake+45", "wake-30".
type PresetConfig struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Start    string `toml:"start"`
	End      string `toml:"end"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Schedule: ScheduleConfig{
			Bedtime:  DefaultBedtime,
			WakeTime: DefaultWakeTime,
		},
		Budget: BudgetConfig{
			DailyAllowance: DefaultAllowance,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Presets: []PresetConfig{
			{Name: "Morning routine", Category: "self_care", Start: "wake", End: "wake+45"},
			{Name: "Wind down", Category: "self_care", Start: "wake+900", End: "bedtime"},
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "16dollars")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "16dollars")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning validated defaults if it doesn't
// exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Validate(cfg), nil
		}
		return Validate(cfg), fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Validate(cfg), fmt.Errorf("parsing config: %w", err)
	}

	return Validate(cfg), nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate fills missing fields with defaults and normalizes wall-clock
// strings. The engine performs no defaulting of its own, so this is the
// single place partial settings are repaired before any engine call.
func Validate(cfg Config) Config {
	if cfg.Schedule.Bedtime == "" {
		cfg.Schedule.Bedtime = DefaultBedtime
	}
	if cfg.Schedule.WakeTime == "" {
		cfg.Schedule.WakeTime = DefaultWakeTime
	}
	cfg.Schedule.Bedtime = clock.Normalize(cfg.Schedule.Bedtime)
	cfg.Schedule.WakeTime = clock.Normalize(cfg.Schedule.WakeTime)

	if cfg.Budget.DailyAllowance <= 0 {
		cfg.Budget.DailyAllowance = DefaultAllowance
	}
	if cfg.Appearance.Theme == "" {
		cfg.Appearance.Theme = "flexoki-dark"
	}
	return cfg
}

// ClockSchedule converts the config schedule into the engine's type.
func (c Config) ClockSchedule() clock.Schedule {
	return clock.Schedule{
		Bedtime:  c.Schedule.Bedtime,
		WakeTime: c.Schedule.WakeTime,
	}
}
