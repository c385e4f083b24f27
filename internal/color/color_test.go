package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestStylesRender(t *testing.T) {
	// Rendering must never drop the text, whatever the terminal supports.
	for name, style := range map[string]lipgloss.Style{
		"heading": HeadingStyle,
		"success": SuccessStyle,
		"warning": WarningStyle,
		"error":   ErrorStyle,
		"muted":   MutedStyle,
	} {
		out := style.Render("sample")
		if out == "" {
			t.Errorf("style %s rendered empty output", name)
		}
	}
}
