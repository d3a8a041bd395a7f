// Package formatter renders tables and styled text for the terminal UI.
package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nconsulting/timecard/internal/domain"
)

// Palette shared by tables, the grid TUI and the huh forms.
var (
	ColorGreen  = lipgloss.Color("#4caf50")
	ColorYellow = lipgloss.Color("#ff9800")
	ColorRed    = lipgloss.Color("#f44336")
	ColorBlue   = lipgloss.Color("#2196f3")
	ColorPurple = lipgloss.Color("#9c27b0")
	ColorDim    = lipgloss.Color("#9e9e9e")
	ColorFg     = lipgloss.Color("#eceff1")
	ColorHeader = lipgloss.Color("#03a9f4")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle maps a timesheet status to its display style.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusApproved:
		return StyleGreen
	case domain.StatusSubmitted:
		return StyleYellow
	case domain.StatusRejected:
		return StyleRed
	case domain.StatusSaved:
		return StyleBlue
	case domain.StatusLocked:
		return StylePurple
	case domain.StatusFuture:
		return StyleDim
	default:
		return StyleFg
	}
}

// Status renders the status text in its color.
func Status(s domain.Status) string {
	return StatusStyle(s).Render(string(s))
}
