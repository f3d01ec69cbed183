package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#43BF6D")
	ColorDanger  = lipgloss.Color("#F25D94")
	ColorMuted   = lipgloss.Color("#6C6C6C")
	ColorBorder  = lipgloss.Color("#444444")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(16)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	ActiveModeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	InactiveModeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(16)

	ResultValueStyle = lipgloss.NewStyle().
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
