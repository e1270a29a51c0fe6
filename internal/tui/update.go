package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles messages.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.queryInput.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		// Skip the refresh while paused or while an earlier fetch is
		// still outstanding, but keep ticking.
		if m.paused || m.fetchInFlight || m.editing {
			return m, m.tick()
		}
		return m, tea.Batch(m.startFetch(), m.tick())

	case dataLoadedMsg:
		if msg.generation != m.generation {
			// A newer fetch was started after this one; drop it.
			return m, nil
		}
		m.fetchInFlight = false
		if msg.err != nil {
			// Keep the last good snapshot and show the error inline.
			m.lastError = msg.err.Error()
			m.log.Warn("refresh failed", zap.Error(msg.err))
			return m, nil
		}
		m.lastError = ""
		m.lastRefresh = time.Now()
		m.snap = buildSnapshot(msg.records, msg.stats, m.thresholds)
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.editing = false
			m.queryInput.Blur()
			if m.applyQuery(m.queryInput.Value()) {
				return m, m.startFetch()
			}
			return m, nil
		case "esc":
			m.editing = false
			m.queryInput.Blur()
			m.queryInput.SetValue(m.queryText)
			return m, nil
		}
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/", "e":
		m.editing = true
		m.queryInput.Focus()
		return m, nil
	case "r":
		return m, m.startFetch()
	case "p", " ":
		m.paused = !m.paused
		return m, nil
	case "tab", "right", "l":
		m.activePanel = (m.activePanel + 1) % len(m.panels)
		return m, nil
	case "shift+tab", "left", "h":
		m.activePanel = (m.activePanel - 1 + len(m.panels)) % len(m.panels)
		return m, nil
	}
	return m, nil
}
