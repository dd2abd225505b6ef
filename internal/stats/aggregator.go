// Package stats computes display orderings and aggregate views over a
// workout history. Every function is pure: inputs are never mutated and
// malformed numbers are coerced through the domain sanitizers rather than
// reported as errors. Summarize adds a negative or non-finite distance as 0
// and a negative duration as 0 minutes.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// DefaultChartDays is how many recent days the duration chart shows.
const DefaultChartDays = 5

// Summary holds the totals shown on the home screen.
type Summary struct {
	TotalCount       int
	TotalDurationMin int
	TotalDistanceMi  float64
}

// HoursMinutes splits TotalDurationMin for display as "H h M m".
func (s Summary) HoursMinutes() (int, int) {
	return domain.SplitMinutes(s.TotalDurationMin)
}

// TypeCount is one slice of the workout-type breakdown.
type TypeCount struct {
	Type  string
	Count int
}

// DayDuration is one bar of the duration chart. Day is midnight of the
// calendar day in the location used for grouping; Label is derived from it.
type DayDuration struct {
	Day      time.Time
	Label    string
	TotalMin int
	Workouts int
}

// Summarize totals count, duration and distance. Negative durations and
// unusable distances count as zero.
func Summarize(workouts []domain.Workout) Summary {
	s := Summary{TotalCount: len(workouts)}
	for _, w := range workouts {
		s.TotalDurationMin += domain.SanitizeDuration(w.DurationMin)
		s.TotalDistanceMi += domain.SanitizeDistance(w.DistanceMi)
	}
	return s
}

// CountByType counts workouts per type string. Types appear in order of
// first occurrence; type strings are compared exactly.
func CountByType(workouts []domain.Workout) []TypeCount {
	var out []TypeCount
	pos := make(map[string]int)
	for _, w := range workouts {
		i, ok := pos[w.Type]
		if !ok {
			pos[w.Type] = len(out)
			out = append(out, TypeCount{Type: w.Type, Count: 1})
			continue
		}
		out[i].Count++
	}
	return out
}

// DurationByDay sums minutes per calendar day in loc and returns the maxDays
// most recent days in chronological order. Workouts with a negative duration
// are skipped. A nil loc means time.Local; maxDays <= 0 returns nil.
func DurationByDay(workouts []domain.Workout, maxDays int, loc *time.Location) []DayDuration {
	if maxDays <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	sorted := Sort(workouts, domain.SortDateAscending)

	var days []DayDuration
	pos := make(map[time.Time]int)
	for _, w := range sorted {
		if w.DurationMin < 0 {
			continue
		}
		day := startOfDay(w.Date, loc)
		i, ok := pos[day]
		if !ok {
			pos[day] = len(days)
			days = append(days, DayDuration{Day: day, Label: DayLabel(day)})
			i = len(days) - 1
		}
		days[i].TotalMin += w.DurationMin
		days[i].Workouts++
	}

	// Most recent first, truncate, then back to chronological.
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day.After(days[j].Day) })
	if len(days) > maxDays {
		days = days[:maxDays]
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })
	return days
}

// DayLabel formats a day as "Jan 2nd".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s %d%s", t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()))
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
