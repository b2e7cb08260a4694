// Package tui provides the interactive Bubble Tea dashboard for hburn.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hburn/internal/budget"
	"hburn/internal/cli"
	"hburn/internal/config"
	"hburn/internal/model"
	"hburn/internal/pipeline"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the ingestion pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	cfg   config.Config
	paths []string

	// Data
	entries  []model.TimeEntry
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Filter state: -1 means "all" for each cycling dimension
	periods   []string
	users     []string
	periodIdx int
	userIdx   int

	// Budget state: edits survive re-resolution for projects still present
	edits map[string]float64

	// Pre-computed for the current selection
	result pipeline.Result

	// UI state
	spin     spinner.Model
	cursor   int
	editing  bool
	editIn   textinput.Model
	width    int
	height   int
	quitting bool
}

// NewApp builds the dashboard model for the given export files.
func NewApp(cfg config.Config, paths []string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	ti := textinput.New()
	ti.Placeholder = "hours"
	ti.CharLimit = 10
	ti.Width = 10

	return App{
		cfg:       cfg,
		paths:     paths,
		periodIdx: -1,
		userIdx:   -1,
		edits:     make(map[string]float64),
		spin:      sp,
		editIn:    ti,
	}
}

// Init kicks off the spinner and the data load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	paths := a.paths
	dayFirst := a.cfg.General.DayFirst
	return func() tea.Msg {
		start := time.Now()
		result, err := pipeline.Load(paths, dayFirst, nil)
		return DataLoadedMsg{Result: result, Err: err, LoadTime: time.Since(start)}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		if msg.Err == nil && msg.Result != nil {
			a.entries = msg.Result.Entries
			a.periods = model.DistinctPeriods(a.entries)
			a.users = model.DistinctUsers(a.entries)
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		return a.handleEditKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		a.quitting = true
		return a, tea.Quit

	case "r":
		a.loaded = false
		a.loadErr = nil
		return a, tea.Batch(a.spin.Tick, a.loadCmd())

	case "p":
		a.periodIdx = cycle(a.periodIdx, len(a.periods))
		a.recompute()
		return a, nil

	case "u":
		a.userIdx = cycle(a.userIdx, len(a.users))
		a.recompute()
		return a, nil

	case "j", "down":
		if a.cursor < len(a.result.Reports)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "e", "enter":
		if a.cursor < len(a.result.Reports) {
			r := a.result.Reports[a.cursor]
			a.editing = true
			a.editIn.SetValue(strconv.FormatFloat(r.ContractedHours, 'f', -1, 64))
			a.editIn.Focus()
			return a, textinput.Blink
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = false
		a.editIn.Blur()
		return a, nil

	case "enter":
		if a.cursor < len(a.result.Reports) {
			if hours, err := strconv.ParseFloat(strings.TrimSpace(a.editIn.Value()), 64); err == nil && hours >= 0 {
				a.edits[a.result.Reports[a.cursor].Project] = hours
				a.recompute()
			}
		}
		a.editing = false
		a.editIn.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.editIn, cmd = a.editIn.Update(msg)
	return a, cmd
}

// cycle advances -1 -> 0 -> ... -> n-1 -> -1 ("all").
func cycle(idx, n int) int {
	if n == 0 {
		return -1
	}
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

// recompute runs one full reconciliation pass for the current selection.
// Budgets are re-resolved from config defaults and in-session edits are
// carried forward by project identifier.
func (a *App) recompute() {
	var periods, users []string
	if a.periodIdx >= 0 {
		periods = []string{a.periods[a.periodIdx]}
	}
	if a.userIdx >= 0 {
		users = []string{a.users[a.userIdx]}
	}
	sel := pipeline.Selection(nil, users, periods)

	// Budgets cover every loaded project, not just the filtered ones, so
	// zero-consumption projects keep their rows under any filter.
	budgets := budget.Resolve(model.DistinctProjects(a.entries), a.cfg.Budgets, a.cfg.General.DefaultBudget)
	budgets = budget.MergeEdits(budgets, a.edits)

	a.result = pipeline.Reconcile(a.entries, sel, budgets)

	if a.cursor >= len(a.result.Reports) {
		a.cursor = 0
	}
}

// View renders the dashboard.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.loaded {
		return fmt.Sprintf("\n  %s Loading exports...\n", a.spin.View())
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  %s\n\n  press q to quit\n", cli.Bad(a.loadErr.Error()))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("HOURS vs BUDGET"))
	b.WriteString("\n\n")

	b.WriteString(a.renderFilters())
	b.WriteString("\n")

	if a.result.Empty {
		b.WriteString(cli.Muted("  No entries match the current filters.\n"))
	} else {
		b.WriteString(a.renderReports())
		b.WriteString("\n")
		b.WriteString(a.renderSummary())
	}

	b.WriteString("\n")
	if a.editing {
		b.WriteString(fmt.Sprintf("  New budget for %s: %s  (enter save · esc cancel)\n",
			a.result.Reports[a.cursor].Project, a.editIn.View()))
	} else {
		b.WriteString(cli.Muted("  j/k move · e edit budget · p period · u user · r reload · q quit\n"))
	}

	return b.String()
}

func (a App) renderFilters() string {
	period := "all"
	if a.periodIdx >= 0 {
		period = a.periods[a.periodIdx]
	}
	user := "all"
	if a.userIdx >= 0 {
		user = a.users[a.userIdx]
	}
	return fmt.Sprintf("  %s %s   %s %s\n",
		cli.Muted("period:"), period,
		cli.Muted("user:"), user)
}

func (a App) renderReports() string {
	var b strings.Builder
	for i, r := range a.result.Reports {
		marker := "  "
		if i == a.cursor {
			marker = cli.Good("▸ ")
		}

		ratio := 0.0
		if r.ContractedHours > 0 {
			ratio = r.ConsumedHours / r.ContractedHours
		}

		line := fmt.Sprintf("%s%-22s %10s / %-10s %s  %s",
			marker,
			cli.Truncate(r.Project, 22),
			cli.FormatHours(r.ConsumedHours),
			cli.FormatBudgetHours(r.ContractedHours),
			cli.RenderProgressBar(ratio, 20),
			cli.StatusStyle(r.Status).Render(cli.FormatStatus(r.Status)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderSummary() string {
	s := a.result.Summary
	over := ""
	if s.OverBudget > 0 {
		over = "  " + cli.Bad(fmt.Sprintf("%d over budget", s.OverBudget))
	}
	return fmt.Sprintf("  %s %s consumed of %s contracted · %s remaining%s\n",
		cli.RenderProgressBar(s.GlobalProgress, 24),
		cli.FormatHours(s.TotalConsumed),
		cli.FormatHours(s.TotalBudget),
		cli.FormatHours(s.TotalRemaining),
		over,
	)
}
