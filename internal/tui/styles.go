package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by all panels.
var (
	ColorBlue   = lipgloss.Color("39")
	ColorGreen  = lipgloss.Color("42")
	ColorOrange = lipgloss.Color("208")
	ColorRed    = lipgloss.Color("196")
	ColorPink   = lipgloss.Color("201")
	ColorGray   = lipgloss.Color("244")
	ColorDim    = lipgloss.Color("240")
	ColorWhite  = lipgloss.Color("252")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBlue).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	helpStyle       = lipgloss.NewStyle().Foreground(ColorGray)
	errorStyle      = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(ColorWhite)
)

// severityStyles colors chart segments and legends per level, matching
// the usual terminal conventions for log severities.
var severityStyles = map[string]lipgloss.Style{
	"TRACE":    lipgloss.NewStyle().Foreground(ColorDim).Background(ColorDim),
	"DEBUG":    lipgloss.NewStyle().Foreground(ColorGray).Background(ColorGray),
	"INFO":     lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorBlue),
	"WARN":     lipgloss.NewStyle().Foreground(ColorOrange).Background(ColorOrange),
	"ERROR":    lipgloss.NewStyle().Foreground(ColorRed).Background(ColorRed),
	"FATAL":    lipgloss.NewStyle().Foreground(ColorPink).Background(ColorPink),
	"CRITICAL": lipgloss.NewStyle().Foreground(ColorPink).Background(ColorPink),
	"unknown":  lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorWhite),
}

func severityStyle(level string) lipgloss.Style {
	if s, ok := severityStyles[level]; ok {
		return s
	}
	return severityStyles["unknown"]
}

// blockStyles is the five-step intensity ramp for the activity grid.
var blockStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// treemapStyles rotates across treemap rectangles.
var treemapStyles = []lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(ColorWhite),
	lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(ColorWhite),
	lipgloss.NewStyle().Background(lipgloss.Color("96")).Foreground(ColorWhite),
	lipgloss.NewStyle().Background(lipgloss.Color("131")).Foreground(ColorWhite),
	lipgloss.NewStyle().Background(lipgloss.Color("166")).Foreground(ColorWhite),
	lipgloss.NewStyle().Background(lipgloss.Color("100")).Foreground(ColorWhite),
}

func gaugeColor(status string) lipgloss.Style {
	switch status {
	case "critical":
		return lipgloss.NewStyle().Foreground(ColorRed)
	case "warn":
		return lipgloss.NewStyle().Foreground(ColorOrange)
	default:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	}
}
