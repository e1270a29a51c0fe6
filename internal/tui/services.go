package tui

import (
	"fmt"
	"strings"

	"github.com/prismview/prism/internal/geometry"
)

// ServicesPanel shows the top services as a treemap. The layout is
// computed in cell units so rectangle areas track record share.
type ServicesPanel struct{}

func (p *ServicesPanel) ID() string    { return "services" }
func (p *ServicesPanel) Title() string { return "Services" }

func (p *ServicesPanel) Render(s *snapshot, width, height int) string {
	if len(s.services) == 0 {
		return helpStyle.Render("No data available")
	}

	rects := geometry.TreemapLayout(s.services, float64(width), float64(height))
	if len(rects) == 0 {
		return helpStyle.Render("No data available")
	}

	// Paint rectangles into a rune grid, then color per cell.
	owner := make([][]int, height)
	for y := range owner {
		owner[y] = make([]int, width)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}
	for i, r := range rects {
		x0, y0 := int(r.X), int(r.Y)
		x1, y1 := int(r.X+r.Width+0.5), int(r.Y+r.Height+0.5)
		for y := y0; y < y1 && y < height; y++ {
			for x := x0; x < x1 && x < width; x++ {
				owner[y][x] = i
			}
		}
	}

	labels := make(map[int]string, len(rects))
	for i, r := range rects {
		labels[i] = fmt.Sprintf("%s %d", r.Label, r.Value)
	}

	var lines []string
	for y := 0; y < height; y++ {
		var line strings.Builder
		x := 0
		for x < width {
			i := owner[y][x]
			// Find the run of cells owned by the same rectangle.
			end := x
			for end < width && owner[y][end] == i {
				end++
			}
			run := end - x
			if i < 0 {
				line.WriteString(strings.Repeat(" ", run))
			} else {
				text := ""
				if y == int(rects[i].Y) {
					text = labels[i]
					if len(text) > run {
						text = text[:run]
					}
				}
				cell := text + strings.Repeat(" ", run-len(text))
				line.WriteString(treemapStyles[i%len(treemapStyles)].Render(cell))
			}
			x = end
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
