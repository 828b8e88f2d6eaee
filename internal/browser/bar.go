package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jclassdump/utils"
)

// frequencyBar is one row of the attribute-frequency chart: a label, its
// raw count, and what share of the total it represents.
type frequencyBar struct {
	Label      string
	Count      int
	Percentage float64
}

// renderFrequencyChart draws a horizontal bar per entry, in the order the
// bars are given, in the style of a dashboard summary panel.
func renderFrequencyChart(title string, bars []frequencyBar, areaWidth int) string {
	const labelWidth = 20
	barArea := areaWidth - labelWidth - 12
	if barArea < 10 {
		barArea = 10
	}

	var lines []string
	if title != "" {
		lines = append(lines, title, "")
	}
	for _, b := range bars {
		filled := int(b.Percentage * float64(barArea) / 100)
		if filled < 1 && b.Count > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("▱", barArea-filled)
		styled := utils.InfoStyle.Render(bar)
		lines = append(lines, fmt.Sprintf("%-*s │%s│ %3d (%4.1f%%)",
			labelWidth, b.Label, styled, b.Count, b.Percentage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func toFrequencyBars(counts map[string]int, sortedNames []string) []frequencyBar {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil
	}
	bars := make([]frequencyBar, 0, len(sortedNames))
	for _, name := range sortedNames {
		count := counts[name]
		bars = append(bars, frequencyBar{
			Label:      name,
			Count:      count,
			Percentage: float64(count) * 100 / float64(total),
		})
	}
	return bars
}
