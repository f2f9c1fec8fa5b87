package ui

import "github.com/charmbracelet/lipgloss"

// Color palette inspired by top security tools
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Probe outcome colors
	Confirmed   = lipgloss.Color("#00D26A") // Green - endpoint exists
	Rejected    = lipgloss.Color("#FF3838") // Red - not found
	Unreachable = lipgloss.Color("#FFB800") // Yellow - no response at all

	Muted = lipgloss.Color("#6B7280") // Gray

	// HTTP status code colors
	Status2xx = lipgloss.Color("#00D26A")
	Status3xx = lipgloss.Color("#4D96FF")
	Status4xx = lipgloss.Color("#FFD93D")
	Status5xx = lipgloss.Color("#FF3838")
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ConfirmedStyle = lipgloss.NewStyle().
			Foreground(Confirmed).
			Bold(true)

	RejectedStyle = lipgloss.NewStyle().
			Foreground(Rejected)

	UnreachableStyle = lipgloss.NewStyle().
				Foreground(Unreachable)

	ProbabilityStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Rejected).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusCodeStyle returns a style colorized by HTTP status class.
func StatusCodeStyle(code int) lipgloss.Style {
	var c lipgloss.Color
	switch {
	case code >= 200 && code < 300:
		c = Status2xx
	case code >= 300 && code < 400:
		c = Status3xx
	case code >= 400 && code < 500:
		c = Status4xx
	case code >= 500:
		c = Status5xx
	default:
		c = Muted
	}
	return lipgloss.NewStyle().Foreground(c)
}
