package tui

import (
	"fmt"
	"strings"

	"github.com/prismview/prism/internal/geometry"
)

// HostsPanel shows the host distribution as a donut unrolled into a
// proportional band: each segment's width follows its slice's angular
// sweep.
type HostsPanel struct{}

func (p *HostsPanel) ID() string    { return "hosts" }
func (p *HostsPanel) Title() string { return "Hosts" }

func (p *HostsPanel) Render(s *snapshot, width, height int) string {
	if len(s.hosts) == 0 {
		return helpStyle.Render("No data available")
	}

	slices := geometry.DonutSlices(s.hosts, 1.0, geometry.DefaultInnerFraction)
	if len(slices) == 0 {
		return helpStyle.Render("No data available")
	}

	var band strings.Builder
	used := 0
	for i, sl := range slices {
		sweep := sl.EndAngle - sl.StartAngle
		cells := int(sweep / 360 * float64(width))
		if i == len(slices)-1 {
			cells = width - used
		}
		if cells < 1 {
			cells = 1
		}
		used += cells
		band.WriteString(treemapStyles[i%len(treemapStyles)].Render(strings.Repeat(" ", cells)))
	}

	total := 0
	for _, h := range s.hosts {
		total += h.Count
	}
	var legend []string
	for i, sl := range slices {
		pct := float64(sl.Value) / float64(total) * 100
		swatch := treemapStyles[i%len(treemapStyles)].Render(" ")
		legend = append(legend, fmt.Sprintf("%s %-14s %5.1f%%  %d", swatch, sl.Label, pct, sl.Value))
	}
	if len(legend) > height-2 {
		legend = legend[:height-2]
	}

	return band.String() + "\n" + strings.Join(legend, "\n")
}
