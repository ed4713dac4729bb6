package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorOK     = lipgloss.Color("42")
	colorDanger = lipgloss.Color("203")
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(10)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorOK)

	// overlays: info boxes get a plain border, destructive or failed ones a red one
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	dangerBoxStyle  = overlayBoxStyle.BorderForeground(colorDanger)
)
