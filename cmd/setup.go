package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to 16dollars!")
	fmt.Println()

	// 1. Bedtime
	fmt.Println("  1. Bedtime")
	fmt.Printf("     When your day ends. Current: %s\n", clock.Format12h(clock.ToInstant(resolveNow(), cfg.Schedule.Bedtime)))
	fmt.Print("     HH:MM (24h) > ")
	bedtime, _ := reader.ReadString('\n')
	bedtime = strings.TrimSpace(bedtime)
	if bedtime != "" {
		cfg.Schedule.Bedtime = bedtime
	}
	fmt.Println()

	// 2. Wake time
	fmt.Println("  2. Wake time")
	fmt.Printf("     When your budget starts depleting. Current: %s\n", clock.Format12h(clock.ToInstant(resolveNow(), cfg.Schedule.WakeTime)))
	fmt.Print("     HH:MM (24h) > ")
	wake, _ := reader.ReadString('\n')
	wake = strings.TrimSpace(wake)
	if wake != "" {
		cfg.Schedule.WakeTime = wake
	}
	fmt.Println()

	// 3. Daily allowance
	fmt.Println("  3. Daily allowance")
	fmt.Printf("     Notional dollars per day, one per waking hour. Current: $%.0f\n", cfg.Budget.DailyAllowance)
	fmt.Print("     > ")
	allowance, _ := reader.ReadString('\n')
	allowance = strings.TrimSpace(allowance)
	if allowance != "" {
		if v, err := strconv.ParseFloat(allowance, 64); err == nil && v > 0 {
			cfg.Budget.DailyAllowance = v
		} else {
			fmt.Printf("     Ignoring %q, keeping $%.0f\n", allowance, cfg.Budget.DailyAllowance)
		}
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Validate fills anything left blank and normalizes the times
	cfg = config.Validate(cfg)

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `16dollars setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
