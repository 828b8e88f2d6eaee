package utils

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// TimePoint is a single (time, value) sample fed into a Chart.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// Chart wraps ntcharts' timeserieslinechart.Model with the small surface
// the TUI tabs actually need: a default series plus any number of named
// side-by-side datasets, each with its own style.
type Chart struct {
	model timeserieslinechart.Model
}

// NewChart builds a braille-capable time series chart sized to width x
// height, defaulting to an auto-scaled Y axis.
func NewChart(width, height int) *Chart {
	m := timeserieslinechart.New(width, height)
	m.AxisStyle = lipgloss.NewStyle().Foreground(MutedColor)
	m.LabelStyle = lipgloss.NewStyle().Foreground(TextColor)
	return &Chart{model: m}
}

// Push adds a sample to the chart's default (unnamed) series.
func (c *Chart) Push(p TimePoint) {
	c.model.Push(timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
}

// PushDataSet adds a sample to a named side-by-side series, drawn
// alongside the default series when DrawBrailleAll is used.
func (c *Chart) PushDataSet(name string, p TimePoint) {
	c.model.PushDataSet(name, timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
}

// SetStyle sets the line style for the default series.
func (c *Chart) SetStyle(style lipgloss.Style) {
	c.model.SetStyle(style)
}

// SetDataSetStyle sets the line style for a named series.
func (c *Chart) SetDataSetStyle(name string, style lipgloss.Style) {
	c.model.SetDataSetStyle(name, style)
}

// Draw renders the default series only.
func (c *Chart) Draw() {
	c.model.DrawBraille()
}

// DrawBrailleAll renders the default series plus every named dataset.
func (c *Chart) DrawBrailleAll() {
	c.model.DrawBrailleAll()
}

// View returns the chart's current rendering.
func (c *Chart) View() string {
	return c.model.View()
}

// SetXLabelFormatter overrides how X-axis ticks are rendered, e.g. as
// clock times instead of raw Unix timestamps.
func (c *Chart) SetXLabelFormatter(f timeserieslinechart.LabelFormatter) {
	c.model.XLabelFormatter = f
}
