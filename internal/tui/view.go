package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const minPanelWidth = 40

// View renders the query bar, the panel grid, and the status line.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	status := m.renderStatus()

	gridHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if gridHeight < 6 {
		gridHeight = 6
	}

	grid := m.renderGrid(m.width, gridHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, grid, status)
}

func (m *DashboardModel) renderHeader() string {
	label := panelTitleStyle.Render("query ")
	var bar string
	if m.editing {
		bar = m.queryInput.View()
	} else {
		text := m.queryText
		if text == "" {
			text = "*"
		}
		bar = statusStyle.Render(text)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Left, label, bar)
	if m.lastError != "" {
		line = lipgloss.JoinVertical(lipgloss.Left, line, errorStyle.Render("! "+m.lastError))
	}
	return line
}

func (m *DashboardModel) renderStatus() string {
	var left string
	switch {
	case m.snap == nil && m.fetchInFlight:
		left = "loading..."
	case m.snap == nil:
		left = "no data"
	default:
		left = fmt.Sprintf("%d records | %s scan | refreshed %s",
			m.snap.stats.RowCount,
			m.snap.stats.ExecDuration.Truncate(time.Millisecond),
			m.lastRefresh.Format("15:04:05"))
	}
	if m.paused {
		left += " | PAUSED"
	}
	help := "/ edit  r refresh  p pause  tab next  q quit"
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help) - 2
	if gap < 1 {
		gap = 1
	}
	return helpStyle.Render(left + lipgloss.NewStyle().Width(gap).Render("") + help)
}

// renderGrid lays the panels out two per row, the active one with a
// highlighted border.
func (m *DashboardModel) renderGrid(width, height int) string {
	cols := 2
	if width < 2*minPanelWidth {
		cols = 1
	}
	rows := (len(m.panels) + cols - 1) / cols
	panelW := width/cols - 2
	panelH := height/rows - 2
	if panelH < 4 {
		panelH = 4
	}

	var rendered []string
	for r := 0; r < rows; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(m.panels) {
				break
			}
			cells = append(cells, m.renderPanel(i, panelW, panelH))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m *DashboardModel) renderPanel(i, width, height int) string {
	p := m.panels[i]
	style := sectionStyle
	if i == m.activePanel {
		style = activeSectionStyle
	}
	title := panelTitleStyle.Render(p.Title())

	innerW := width - 2
	innerH := height - 1
	var body string
	if m.snap == nil {
		body = helpStyle.Render("No data available")
	} else {
		body = p.Render(m.snap, innerW, innerH)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return style.Width(width).Height(height).Render(content)
}
