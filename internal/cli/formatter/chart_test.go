package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", stripANSI(RenderBar(50, 100, 10, StyleBlue)))
	assert.Equal(t, "██████████", stripANSI(RenderBar(100, 100, 10, StyleBlue)))
	assert.Equal(t, "█░░░░░░░░░", stripANSI(RenderBar(1, 1000, 10, StyleBlue)), "small values stay visible")
	assert.Equal(t, "░░░░░░░░░░", stripANSI(RenderBar(0, 0, 10, StyleBlue)))
	assert.Equal(t, "░░░░░░░░░░", stripANSI(RenderBar(-4, 10, 10, StyleBlue)))
}

func TestRenderDayChart(t *testing.T) {
	days := []stats.DayDuration{
		{Label: "Mar 1st", TotalMin: 30},
		{Label: "Mar 12th", TotalMin: 60},
	}
	lines := strings.Split(stripANSI(RenderDayChart(days, 4)), "\n")
	assert.Equal(t, []string{
		"Mar 1st   ██░░ 30m",
		"Mar 12th  ████ 1h",
	}, lines)
}

func TestRenderDayChart_Empty(t *testing.T) {
	assert.Equal(t, "No workouts to chart.", stripANSI(RenderDayChart(nil, 10)))
}

func TestRenderTypeBreakdown(t *testing.T) {
	out := stripANSI(RenderTypeBreakdown([]stats.TypeCount{
		{Type: "Running", Count: 3},
		{Type: "Yoga", Count: 1},
	}, 3))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "● Running  ███ 3 (75%)", lines[0])
	assert.Equal(t, "● Yoga     █░░ 1 (25%)", lines[1])
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(stats.Summary{TotalCount: 2, TotalDurationMin: 92, TotalDistanceMi: 3.5}))
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Workouts")
	assert.Contains(t, out, "1 h 32 m")
	assert.Contains(t, out, "3.5 miles")
}

func TestFormatStats(t *testing.T) {
	resp := &app.StatsResponse{
		Summary: stats.Summary{TotalCount: 2, TotalDurationMin: 92, TotalDistanceMi: 3.5},
		ByType:  []stats.TypeCount{{Type: "Swimming", Count: 1}, {Type: "Walking", Count: 1}},
		ByDay: []stats.DayDuration{
			{Label: "Sep 24th", TotalMin: 60},
			{Label: "Sep 27th", TotalMin: 32},
		},
	}
	out := stripANSI(FormatStats(resp, 0))
	assert.Contains(t, out, "WORKOUT TYPES")
	assert.Contains(t, out, "Swimming")
	assert.Contains(t, out, "DURATION BY DAY (LAST 2)")
	assert.Less(t, strings.Index(out, "Sep 24th"), strings.Index(out, "Sep 27th"))
}

func TestFormatWorkoutList(t *testing.T) {
	ws := []domain.Workout{
		{ID: "0123456789abcdef", Type: "Running", DurationMin: 45, DistanceMi: 3.1, Date: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
	}
	out := stripANSI(FormatWorkoutList(ws, time.UTC))
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "2024-03-15 09:30")
	assert.Contains(t, out, "45m")
	assert.Contains(t, out, "3.1 miles")
}

func TestFormatWorkoutList_Empty(t *testing.T) {
	assert.Equal(t, "No workouts yet.\n", stripANSI(FormatWorkoutList(nil, time.UTC)))
}

func TestFormatWorkout(t *testing.T) {
	w := domain.Workout{ID: "abc", Type: "Swimming", DurationMin: 92, DistanceMi: 1, Date: time.Date(2024, 9, 27, 3, 5, 0, 0, time.UTC)}
	out := stripANSI(FormatWorkout(w, time.UTC))
	assert.Contains(t, out, "Swimming")
	assert.Contains(t, out, "1 hr 32 min")
	assert.Contains(t, out, "1 miles")
	assert.Contains(t, out, "Friday, Sep 27th, 2024, 03:05 AM")
}
