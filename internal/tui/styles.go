package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("241")
	colorGood    = lipgloss.Color("42")
	colorBad     = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Underline(true).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	valueStyle = lipgloss.NewStyle().Bold(true)

	goodStyle = lipgloss.NewStyle().Foreground(colorGood)
	badStyle  = lipgloss.NewStyle().Foreground(colorBad)
	warnStyle = lipgloss.NewStyle().Foreground(colorWarn)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 1, 0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBad).
			Padding(1, 2)
)

// statusStyle picks a color for a status word based on how good it is.
func statusStyle(rank int) lipgloss.Style {
	switch {
	case rank >= 4:
		return goodStyle
	case rank >= 3:
		return warnStyle
	default:
		return badStyle
	}
}
