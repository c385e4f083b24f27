package color

import (
	"github.com/charmbracelet/lipgloss"
)

// Initialize sets the background assumption for adaptive colors. It should
// be called once at application startup.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Styles for the console reports. These are global so commands can share a
// single theme.
var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"})

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005F00", Dark: "#5FFF87"})

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#875F00", Dark: "#FFD75F"})

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#870000", Dark: "#FF5F5F"})

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"})
)
