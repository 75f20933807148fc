// Package cmd implements the 16dollars CLI commands.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/model"
	"github.com/m4cbeth/16dollars/internal/store"
)

var (
	flagAt    string
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "16dollars",
	Short: "Daily time budget tracker",
	Long:  "Track your day like a budget: a fixed allowance, one dollar per hour, depleting from wake time to bedtime.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAt, "at", "", "Override the current time (RFC3339 or HH:MM)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", store.DefaultPath(), "Activity database path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// resolveNow returns the instant commands compute against. --at accepts
// RFC3339 or a bare HH:MM anchored on today's date; anything else falls
// back to the wall clock.
func resolveNow() time.Time {
	if flagAt == "" {
		return time.Now()
	}
	if t, err := time.Parse(time.RFC3339, flagAt); err == nil {
		return t.Local()
	}
	return clock.ToInstant(time.Now(), flagAt)
}

// loadActivities opens the store, reads everything, and closes it. The
// CLI commands are one-shot, so holding the handle open buys nothing.
func loadActivities() ([]model.Activity, error) {
	st, err := store.Open(flagDB)
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()
	return st.LoadActivities()
}

func saveActivity(a model.Activity) error {
	st, err := store.Open(flagDB)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return st.SaveActivity(a)
}
