package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/m4cbeth/16dollars/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, refreshedAgo string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [r]efresh  [q]uit"
	right := ""
	if refreshedAgo != "" {
		right = fmt.Sprintf("Updated %s ago ", refreshedAgo)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
