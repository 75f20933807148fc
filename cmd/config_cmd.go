package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	now := resolveNow()
	fmt.Println("  [Schedule]")
	fmt.Printf("    Bedtime:   %s (%s)\n", cfg.Schedule.Bedtime, clock.Format12h(clock.ToInstant(now, cfg.Schedule.Bedtime)))
	fmt.Printf("    Wake time: %s (%s)\n", cfg.Schedule.WakeTime, clock.Format12h(clock.ToInstant(now, cfg.Schedule.WakeTime)))
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Daily allowance: %s\n", cli.FormatBudget(cfg.Budget.DailyAllowance))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Presets]")
	if len(cfg.Presets) == 0 {
		fmt.Println("    none")
	}
	sched := cfg.ClockSchedule()
	for _, p := range cfg.Presets {
		label := p.Start + " → " + p.End
		if s, serr := clock.ParseRef(p.Start); serr == nil {
			if e, eerr := clock.ParseRef(p.End); eerr == nil {
				label = clock.FormatRef(s, sched) + " → " + clock.FormatRef(e, sched)
			}
		}
		fmt.Printf("    %-20s %s (%s)\n", p.Name, label, cli.FormatCategory(p.Category))
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Database: %s\n", flagDB)
	fmt.Println()

	fmt.Println("  Run `16dollars setup` to reconfigure.")
	return nil
}
