package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorValid   = lipgloss.Color("#10B981")
	colorInvalid = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#8B5CF6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Width(16)

	focusedLabelStyle = labelStyle.
				Foreground(colorAccent).
				Bold(true)

	validStyle   = lipgloss.NewStyle().Foreground(colorValid)
	invalidStyle = lipgloss.NewStyle().Foreground(colorInvalid)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorInvalid).Italic(true)
	helpStyle    = mutedStyle.MarginTop(1)
)
