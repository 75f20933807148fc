package cmd

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/model"
	"github.com/m4cbeth/16dollars/internal/pipeline"
)

var (
	flagLogCategory string
	flagLogFrom     string
	flagLogTo       string
)

var logCmd = &cobra.Command{
	Use:   "log <name>",
	Short: "Log an activity against today's budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagLogCategory, "category", "c", "neutral", "Category: beneficial, detrimental, self_care, neutral")
	logCmd.Flags().StringVar(&flagLogFrom, "from", "", "Start time (HH:MM, required)")
	logCmd.Flags().StringVar(&flagLogTo, "to", "", "End time (HH:MM, defaults to now)")
	_ = logCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	category := model.Category(flagLogCategory)
	if !category.Valid() {
		options := make([]string, len(model.Categories))
		for i, c := range model.Categories {
			options[i] = string(c)
		}
		return fmt.Errorf("unknown category %q (did you mean %q?)", flagLogCategory, closestMatch(flagLogCategory, options))
	}

	now := resolveNow()
	start := clock.ToInstant(now, flagLogFrom)
	end := now
	if flagLogTo != "" {
		end = clock.ToInstant(now, flagLogTo)
	}

	// End before start is fine: the activity crossed midnight and the
	// wrap correction prices it accordingly.
	a := pipeline.NewActivity(args[0], category, start, end)
	if err := saveActivity(a); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Logged %q (%s) %s, cost %s\n",
			a.Name,
			cli.FormatCategory(string(a.Category)),
			cli.FormatSpan(a.StartTime, a.EndTime),
			cli.FormatBudget(a.Cost),
		)
	}
	return nil
}

// closestMatch returns the option nearest to the input by edit distance.
func closestMatch(input string, options []string) string {
	best := options[0]
	bestDist := levenshtein.ComputeDistance(input, best)
	for _, o := range options[1:] {
		if d := levenshtein.ComputeDistance(input, o); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}
