package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitlog/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	// DefaultBarWidth is the bar length used for the largest value in a chart.
	DefaultBarWidth = 30
)

// RenderBar renders value as a bar scaled so that maxValue fills width cells.
// Any positive value gets at least one cell.
func RenderBar(value, maxValue, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	if value < 0 {
		value = 0
	}
	filled := 0
	if maxValue > 0 {
		filled = value * width / maxValue
		if filled == 0 && value > 0 {
			filled = 1
		}
		filled = min(filled, width)
	}
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderDayChart draws one horizontal bar per day, labelled "Jan 2nd", with
// the minutes logged that day.
func RenderDayChart(days []stats.DayDuration, width int) string {
	if len(days) == 0 {
		return Dim("No workouts to chart.")
	}
	maxMin, labelWidth := 0, 0
	for _, d := range days {
		maxMin = max(maxMin, d.TotalMin)
		labelWidth = max(labelWidth, lipgloss.Width(d.Label))
	}

	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-*s  %s %s", labelWidth, d.Label,
			RenderBar(d.TotalMin, maxMin, width, StyleBlue), FormatMinutes(d.TotalMin))
	}
	return b.String()
}

// RenderTypeBreakdown lists each workout type with its palette color, count
// and share of all workouts.
func RenderTypeBreakdown(types []stats.TypeCount, width int) string {
	if len(types) == 0 {
		return Dim("No workouts yet.")
	}
	total, maxCount, nameWidth := 0, 0, 0
	for _, tc := range types {
		total += tc.Count
		maxCount = max(maxCount, tc.Count)
		nameWidth = max(nameWidth, lipgloss.Width(tc.Type))
	}

	var b strings.Builder
	for i, tc := range types {
		if i > 0 {
			b.WriteString("\n")
		}
		style := TypeStyle(i)
		pct := float64(tc.Count) / float64(total) * 100
		fmt.Fprintf(&b, "%s %-*s  %s %d (%.0f%%)",
			style.Render("●"), nameWidth, tc.Type, RenderBar(tc.Count, maxCount, width, style), tc.Count, pct)
	}
	return b.String()
}
