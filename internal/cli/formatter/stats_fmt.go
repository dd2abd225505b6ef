package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

// FormatSummary renders the three headline totals side by side.
func FormatSummary(s stats.Summary) string {
	cell := lipgloss.NewStyle().Width(16).Align(lipgloss.Center)
	metric := func(value, label string) string {
		return cell.Render(Bold(value) + "\n" + Dim(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		metric(fmt.Sprint(s.TotalCount), "Workouts"),
		metric(FormatDuration(s.TotalDurationMin), "Duration"),
		metric(FormatDistance(s.TotalDistanceMi), "Distance"),
	)
	return RenderBox("Summary", row)
}

// FormatStats renders the type breakdown and the per-day duration chart.
func FormatStats(resp *app.StatsResponse, barWidth int) string {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	var b strings.Builder
	b.WriteString(FormatSummary(resp.Summary))
	b.WriteString("\n\n")
	b.WriteString(Header("Workout Types"))
	b.WriteString("\n")
	b.WriteString(RenderTypeBreakdown(resp.ByType, barWidth/2))
	b.WriteString("\n\n")
	b.WriteString(Header(fmt.Sprintf("Duration by Day (last %d)", len(resp.ByDay))))
	b.WriteString("\n")
	b.WriteString(RenderDayChart(resp.ByDay, barWidth))
	b.WriteString("\n")
	return b.String()
}
