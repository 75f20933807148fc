package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/pipeline"
)

var flagActivitiesAll bool

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities in the current day window",
	RunE:  runActivities,
}

func init() {
	activitiesCmd.Flags().BoolVar(&flagActivitiesAll, "all", false, "List every stored activity, not just today's")
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	activities, err := loadActivities()
	if err != nil {
		return err
	}

	now := resolveNow()
	list := activities
	title := "All Activities"
	if !flagActivitiesAll {
		w := clock.Window(now, cfg.ClockSchedule())
		list = pipeline.ForWindow(activities, w)
		title = fmt.Sprintf("Activities %s → %s",
			clock.Format12h(w.Start), clock.Format12h(w.End))
	}

	if len(list) == 0 {
		fmt.Println("  Nothing logged yet. Try `16dollars log`.")
		return nil
	}

	var total float64
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			a.Name,
			cli.FormatCategory(string(a.Category)),
			cli.FormatSpan(a.StartTime, a.EndTime),
			cli.FormatBudget(a.Cost),
		})
		total += a.Cost
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Activity", "Category", "When", "Cost"},
		Rows:    rows,
	}))
	fmt.Printf("  Total: %s\n\n", cli.FormatBudget(clock.Round2(total)))
	return nil
}
