package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	WarningColor = lipgloss.Color("#FF8800") // Orange
	InfoColor    = lipgloss.Color("#4682B4") // Steel blue
	TextColor    = lipgloss.Color("#CCCCCC") // Light gray
	MutedColor   = lipgloss.Color("#888888") // Medium gray
)

var (
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
)

var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(InfoColor).
			Padding(0, 1).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)
)

var TitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Bold(true).
	Padding(0, 1)

// TruncateString truncates a string to at most maxWidth runes, used when
// displaying constant pool UTF-8 values that can run arbitrarily long.
func TruncateString(s string, maxWidth int) string {
	r := []rune(s)
	if len(r) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return strings.Repeat(".", maxWidth)
	}
	return string(r[:maxWidth-3]) + "..."
}
