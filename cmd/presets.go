package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/pipeline"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List quick-action presets",
	RunE:  runPresets,
}

var presetsRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Log an activity from a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsRun,
}

func init() {
	presetsCmd.AddCommand(presetsRunCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(cfg.Presets) == 0 {
		fmt.Println("  No presets configured. Add [[presets]] entries to", config.Path())
		return nil
	}

	sched := cfg.ClockSchedule()
	rows := make([][]string, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		label := p.Start + " → " + p.End
		startRef, serr := clock.ParseRef(p.Start)
		endRef, eerr := clock.ParseRef(p.End)
		if serr == nil && eerr == nil {
			label = clock.FormatRef(startRef, sched) + " → " + clock.FormatRef(endRef, sched)
		}
		rows = append(rows, []string{p.Name, cli.FormatCategory(p.Category), label})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Presets",
		Headers: []string{"Preset", "Category", "Time"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runPresetsRun(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var match *config.PresetConfig
	names := make([]string, 0, len(cfg.Presets))
	for i, p := range cfg.Presets {
		names = append(names, p.Name)
		if strings.EqualFold(p.Name, args[0]) {
			match = &cfg.Presets[i]
			break
		}
	}
	if match == nil {
		if len(names) == 0 {
			return fmt.Errorf("no presets configured")
		}
		return fmt.Errorf("unknown preset %q (did you mean %q?)", args[0], closestMatch(args[0], names))
	}

	a, err := pipeline.FromPreset(*match, cfg, resolveNow())
	if err != nil {
		return fmt.Errorf("preset %q: %w", match.Name, err)
	}
	if err := saveActivity(a); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Logged %q %s, cost %s\n",
			a.Name, cli.FormatSpan(a.StartTime, a.EndTime), cli.FormatBudget(a.Cost))
	}
	return nil
}
