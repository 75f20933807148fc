package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/pipeline"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's budget: remaining, spent, and logged activities",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	activities, err := loadActivities()
	if err != nil {
		return err
	}

	now := resolveNow()
	snap := pipeline.BuildSnapshot(now, cfg, activities)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TODAY'S BUDGET"))
	fmt.Println()

	windowLabel := fmt.Sprintf("%s %s → %s %s",
		snap.WindowStart.Format("Mon"), clock.Format12h(snap.WindowStart),
		snap.WindowEnd.Format("Mon"), clock.Format12h(snap.WindowEnd),
	)
	fmt.Printf("  Day window:  %s\n", windowLabel)

	if snap.Asleep {
		sleepStyle := lipgloss.NewStyle().Foreground(cli.ColorPurple)
		fmt.Printf("  State:       %s\n", sleepStyle.Render("asleep"))
	} else {
		fmt.Printf("  State:       awake, %s since waking\n", cli.FormatHours(snap.Spent))
	}
	fmt.Println()

	fmt.Printf("  Remaining:   %s of %s\n",
		cli.FormatBudget(snap.Remaining), cli.FormatBudget(snap.Allowance))
	fmt.Printf("               %s\n", cli.RenderBudgetBar(snap.Remaining, snap.Allowance, 32))
	fmt.Printf("  Spent:       %s\n", cli.FormatBudget(snap.Spent))
	fmt.Printf("  Logged:      %s across %d activities\n",
		cli.FormatHours(snap.Logged()), len(snap.Activities))
	fmt.Println()

	if len(snap.Categories) > 0 {
		rows := make([][]string, 0, len(snap.Categories))
		for _, cs := range snap.Categories {
			rows = append(rows, []string{
				cli.FormatCategory(string(cs.Category)),
				fmt.Sprintf("%d", cs.Activities),
				cli.FormatHours(cs.Hours),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Categories",
			Headers: []string{"Category", "Activities", "Hours"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
