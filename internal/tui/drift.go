package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prismview/prism/internal/model"
)

// DriftPanel lists per service and severity volume drift between the
// first and second half of the loaded window, worst tiers first.
type DriftPanel struct{}

func (p *DriftPanel) ID() string    { return "drift" }
func (p *DriftPanel) Title() string { return "Drift" }

func (p *DriftPanel) Render(s *snapshot, width, height int) string {
	if len(s.drift) == 0 {
		return helpStyle.Render("No drift data")
	}

	// Show critical and warning rows before normal ones.
	ordered := make([]model.DriftRecord, 0, len(s.drift))
	for _, tier := range []model.DriftTier{model.DriftCritical, model.DriftWarning, model.DriftNormal} {
		for _, d := range s.drift {
			if d.Tier == tier {
				ordered = append(ordered, d)
			}
		}
	}

	lines := []string{helpStyle.Render(fmt.Sprintf("%-14s %-8s %6s %6s %8s", "service", "level", "base", "now", "change"))}
	for _, d := range ordered {
		if len(lines) >= height {
			break
		}
		change := fmt.Sprintf("%+.1f%%", d.PercentChange)
		if d.Baseline == 0 {
			change = fmt.Sprintf("+%d new", d.Delta)
		}
		line := fmt.Sprintf("%-14s %-8s %6d %6d %8s",
			truncate(d.Service, 14), d.Severity, d.Baseline, d.Current, change)
		lines = append(lines, driftTierStyle(d.Tier).Render(line))
	}
	return strings.Join(lines, "\n")
}

func driftTierStyle(tier model.DriftTier) lipgloss.Style {
	switch tier {
	case model.DriftCritical:
		return errorStyle
	case model.DriftWarning:
		return lipgloss.NewStyle().Foreground(ColorOrange)
	default:
		return statusStyle
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
