package tui

import (
	"fmt"
	"strings"
	"time"
)

// ActivityPanel shows the hour-of-week grid: one colored block per
// (weekday, hour) with a five-step intensity scale.
type ActivityPanel struct{}

func (p *ActivityPanel) ID() string    { return "activity" }
func (p *ActivityPanel) Title() string { return "Activity" }

var dayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (p *ActivityPanel) Render(s *snapshot, width, height int) string {
	var lines []string
	lines = append(lines, helpStyle.Render("    0     6     12    18    "))
	for day := 0; day < 7; day++ {
		var row strings.Builder
		row.WriteString(helpStyle.Render(dayLabels[day] + " "))
		for hour := 0; hour < 24; hour++ {
			level := s.activity.Intensity(day, hour)
			row.WriteString(blockStyles[level].Render("█"))
		}
		lines = append(lines, row.String())
	}
	if s.activity.Peak > 0 {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("peak %d/h (%s)", s.activity.Peak, time.Now().Format("MST"))))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
