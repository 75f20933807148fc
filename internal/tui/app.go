// Package tui provides the interactive Bubble Tea dashboard for 16dollars.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/m4cbeth/16dollars/internal/cli"
	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/model"
	"github.com/m4cbeth/16dollars/internal/pipeline"
	"github.com/m4cbeth/16dollars/internal/store"
	"github.com/m4cbeth/16dollars/internal/tui/components"
	"github.com/m4cbeth/16dollars/internal/tui/theme"
)

// ActivitiesMsg is sent when the activity store has been read.
type ActivitiesMsg struct {
	Activities []model.Activity
	Err        error
}

type tickMsg time.Time

const (
	minTerminalWidth = 60
	refreshInterval  = 30 * time.Second
)

// App is the root Bubble Tea model: a single-screen budget dashboard that
// recomputes against the wall clock every tick.
type App struct {
	dbPath string
	cfg    config.Config

	activities []model.Activity
	snap       model.BudgetSnapshot
	loaded     bool
	loadErr    error

	width  int
	height int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	lastRefresh time.Time
}

// NewApp creates a new TUI app model.
func NewApp(dbPath string) App {
	cfg, _ := config.Load()
	a := App{
		dbPath:    dbPath,
		cfg:       cfg,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadActivitiesCmd(a.dbPath),
		tickCmd(),
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.snap = pipeline.BuildSnapshot(time.Now(), a.cfg, a.activities)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			return a, loadActivitiesCmd(a.dbPath)
		}
		return a, nil

	case ActivitiesMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.lastRefresh = time.Now()
		if msg.Err == nil {
			a.activities = msg.Activities
		}
		a.recompute()
		return a, nil

	case tickMsg:
		// Budget figures depend on the wall clock, so recompute even
		// when no activity changed, and re-read the store in case
		// another process logged something.
		a.recompute()
		return a, tea.Batch(tickCmd(), loadActivitiesCmd(a.dbPath))
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  16dollars needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if !a.loaded {
		return "\n  Loading activities...\n"
	}

	content := a.viewDashboard()

	statusBar := components.RenderStatusBar(a.width, a.refreshedAgo())
	contentH := a.height - lipgloss.Height(statusBar)
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) viewDashboard() string {
	t := theme.Active
	snap := a.snap

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	asleepStyle := lipgloss.NewStyle().Foreground(t.Magenta).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  ◈ 16dollars"))
	b.WriteString(labelStyle.Render(" · Today's Budget"))
	b.WriteString("\n\n")

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render(fmt.Sprintf("  Could not read activities: %v", a.loadErr)))
		b.WriteString("\n\n")
	}

	windowLabel := fmt.Sprintf("%s %s → %s %s",
		snap.WindowStart.Format("Mon"), clock.Format12h(snap.WindowStart),
		snap.WindowEnd.Format("Mon"), clock.Format12h(snap.WindowEnd),
	)
	b.WriteString(labelStyle.Render("  Day window  "))
	b.WriteString(valueStyle.Render(windowLabel))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("  State       "))
	if snap.Asleep {
		b.WriteString(asleepStyle.Render("asleep"))
	} else {
		b.WriteString(valueStyle.Render(fmt.Sprintf("awake, %s since waking", cli.FormatHours(snap.Spent))))
	}
	b.WriteString("\n\n")

	barW := a.width - 30
	if barW > 48 {
		barW = 48
	}
	if barW < 16 {
		barW = 16
	}
	b.WriteString("  ")
	b.WriteString(components.BudgetBar("Remaining", snap.Remaining, snap.Allowance, 10, barW))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Spent       "))
	b.WriteString(valueStyle.Render(cli.FormatBudget(snap.Spent)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ·  bedtime in %s",
		cli.FormatCountdown(snap.WindowEnd.Sub(snap.At)))))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("  Logged: %s across %d activities",
		cli.FormatHours(snap.Logged()), len(snap.Activities))))
	b.WriteString("\n\n")

	for _, cs := range snap.Categories {
		catStyle := lipgloss.NewStyle().Foreground(a.categoryColor(cs.Category))
		b.WriteString(catStyle.Render(fmt.Sprintf("  ● %-12s", cli.FormatCategory(string(cs.Category)))))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %s", cli.FormatHours(cs.Hours))))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d)", cs.Activities)))
		b.WriteString("\n")
	}
	if len(snap.Categories) > 0 {
		b.WriteString("\n")
	}

	for _, act := range snap.Activities {
		catStyle := lipgloss.NewStyle().Foreground(a.categoryColor(act.Category))
		b.WriteString(catStyle.Render("  ▪ "))
		b.WriteString(valueStyle.Render(truncStr(act.Name, 28)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s",
			cli.FormatSpan(act.StartTime, act.EndTime), cli.FormatBudget(act.Cost))))
		b.WriteString("\n")
	}
	if len(snap.Activities) == 0 {
		b.WriteString(dimStyle.Render("  Nothing logged yet. Use `16dollars log` to add an activity."))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) categoryColor(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryBeneficial:
		return t.Green
	case model.CategoryDetrimental:
		return t.Red
	case model.CategorySelfCare:
		return t.Blue
	default:
		return t.TextMuted
	}
}

func (a App) refreshedAgo() string {
	if a.lastRefresh.IsZero() {
		return ""
	}
	d := time.Since(a.lastRefresh).Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}

// ─── Commands ───────────────────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadActivitiesCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return ActivitiesMsg{Err: err}
		}
		defer func() { _ = st.Close() }()

		activities, err := st.LoadActivities()
		if err != nil {
			return ActivitiesMsg{Err: err}
		}
		return ActivitiesMsg{Activities: activities}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
