package view

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorMuted     = lipgloss.Color("#6B7280") // Gray

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	dirStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12).
			Align(lipgloss.Right)

	dateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(20)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
