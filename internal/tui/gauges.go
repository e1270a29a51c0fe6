package tui

import (
	"fmt"
	"strings"
)

// GaugesPanel shows the health gauges as horizontal meters with their
// ok/warn/critical status coloring.
type GaugesPanel struct{}

func (p *GaugesPanel) ID() string    { return "gauges" }
func (p *GaugesPanel) Title() string { return "Health" }

func (p *GaugesPanel) Render(s *snapshot, width, height int) string {
	if len(s.gauges) == 0 {
		return helpStyle.Render("No data available")
	}

	meterWidth := width - 28
	if meterWidth < 10 {
		meterWidth = 10
	}

	var lines []string
	for _, g := range s.gauges {
		filled := int(g.Value / 100 * float64(meterWidth))
		if filled > meterWidth {
			filled = meterWidth
		}
		meter := gaugeColor(string(g.Status)).Render(strings.Repeat("█", filled)) +
			helpStyle.Render(strings.Repeat("░", meterWidth-filled))
		lines = append(lines, fmt.Sprintf("%-11s %s %5.1f %s", g.Name, meter, g.Value, string(g.Status)))
	}

	lines = append(lines, "")
	lines = append(lines, helpStyle.Render(fmt.Sprintf(
		"errors %d/%d (%.1f%%) trend %s",
		s.errStats.ErrorCount, s.errStats.Total, s.errStats.Rate, s.errStats.Trend)))

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
