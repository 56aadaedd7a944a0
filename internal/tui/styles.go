// Package tui provides a bubbletea + lipgloss preview of a trellis layout.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorRed   = lipgloss.Color("#FF6B6B")
)

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
