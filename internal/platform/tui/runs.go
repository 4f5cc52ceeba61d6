package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const maxRuns = 50

var (
	runsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	runsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	runsEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

func newRunsTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Coins", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Seed", Width: 10},
		{Title: "End", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
		table.WithWidth(min(width-4, 60)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// runRows formats runs for the table. tickRate converts ticks to seconds.
func runRows(runs []storage.Run, tickRate int) []table.Row {
	if tickRate <= 0 {
		tickRate = 60
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		secs := r.Ticks / tickRate
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Coins),
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			fmt.Sprintf("%d", r.Seed),
			strings.ReplaceAll(r.Reason, "_", " "),
		}
	}
	return rows
}

// loadRuns refreshes the table from the store.
func (m *Model) loadRuns() {
	m.runList = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(maxRuns); err == nil {
			m.runList = runs
		} else {
			m.logger.Warn("cannot load runs", "err", err)
		}
	}
	m.runs.SetRows(runRows(m.runList, m.config.TickRate))
	m.runs.GotoTop()
}

func (m Model) runsView() string {
	var b strings.Builder
	b.WriteString(runsTitleStyle.Render("RUNS THIS SESSION"))
	b.WriteString("\n")
	if len(m.runList) == 0 {
		b.WriteString(runsBoxStyle.Render(runsEmptyStyle.Render("No runs finished yet.")))
	} else {
		b.WriteString(runsBoxStyle.Render(m.runs.View()))
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH-1, lipgloss.Center, lipgloss.Center, b.String())
}

// SummaryTable renders runs as a static table for printing after the
// program exits.
func SummaryTable(runs []storage.Run, tickRate int) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}
	t := newRunsTable(80, len(runs)+8)
	t.SetRows(runRows(runs, tickRate))
	t.Blur()
	return runsBoxStyle.Render(t.View())
}
