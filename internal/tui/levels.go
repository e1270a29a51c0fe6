package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// LevelsPanel shows the severity distribution as a bar chart with a
// count legend alongside.
type LevelsPanel struct{}

func (p *LevelsPanel) ID() string    { return "levels" }
func (p *LevelsPanel) Title() string { return "Severity" }

func (p *LevelsPanel) Render(s *snapshot, width, height int) string {
	if len(s.levels) == 0 {
		return helpStyle.Render("No data available")
	}

	legendWidth := 18
	chartWidth := width - legendWidth - 2
	if chartWidth < 12 {
		chartWidth = 12
	}
	chartHeight := height - 1
	if chartHeight < 3 {
		chartHeight = 3
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithNoAxis(),
	)
	for _, lv := range s.levels {
		bc.Push(barchart.BarData{
			Label: lv.Value,
			Values: []barchart.BarValue{
				{Name: lv.Value, Value: float64(lv.Count), Style: severityStyle(lv.Value)},
			},
		})
	}
	bc.Draw()

	var legend []string
	for _, lv := range s.levels {
		swatch := severityStyle(lv.Value).Render(" ")
		legend = append(legend, fmt.Sprintf("%s %-8s %d", swatch, lv.Value, lv.Count))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		bc.View(),
		"  ",
		strings.Join(legend, "\n"),
	)
}
