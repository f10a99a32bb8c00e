package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/ago/internal/reltime"
)

var (
	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	secondsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	minutesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	hoursStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	daysStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// UnitStyle returns the style used for phrases in the given bucket.
func UnitStyle(u reltime.Unit) lipgloss.Style {
	switch u {
	case reltime.UnitSecond:
		return secondsStyle
	case reltime.UnitMinute:
		return minutesStyle
	case reltime.UnitHour:
		return hoursStyle
	default:
		return daysStyle
	}
}
