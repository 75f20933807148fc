// Package components holds reusable render helpers for the TUI dashboard.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/m4cbeth/16dollars/internal/tui/theme"
)

// ColorForRemaining returns green/orange/red based on how much of the
// allowance is left.
func ColorForRemaining(remaining, allowance float64) string {
	t := theme.Active
	if allowance <= 0 {
		return string(t.TextDim)
	}
	frac := remaining / allowance
	switch {
	case frac <= 0.2:
		return string(t.Red)
	case frac <= 0.5:
		return string(t.Orange)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled budget bar: remaining over allowance.
func BudgetBar(label string, remaining, allowance float64, labelW, barWidth int) string {
	t := theme.Active

	frac := 0.0
	if allowance > 0 {
		frac = remaining / allowance
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	color := ColorForRemaining(remaining, allowance)
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(frac) +
		" " +
		amountStyle.Render(fmt.Sprintf("$%.2f", remaining)) +
		dimStyle.Render(fmt.Sprintf(" / $%.2f", allowance))
}
