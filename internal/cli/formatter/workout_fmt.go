package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// FormatWorkoutList renders workouts as a table in the order given.
func FormatWorkoutList(workouts []domain.Workout, loc *time.Location) string {
	if len(workouts) == 0 {
		return Dim("No workouts yet.") + "\n"
	}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		d := w.Date
		if loc != nil {
			d = d.In(loc)
		}
		rows = append(rows, []string{
			TruncID(w.ID),
			d.Format("2006-01-02 15:04"),
			w.Type,
			FormatMinutes(w.DurationMin),
			FormatDistance(w.DistanceMi),
		})
	}
	return RenderTable([]string{"ID", "DATE", "TYPE", "DURATION", "DISTANCE"}, rows, 3, 4)
}

// FormatWorkout renders one workout as a labelled card.
func FormatWorkout(w domain.Workout, loc *time.Location) string {
	h, m := w.HoursMinutes()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Workout: "), Bold(w.Type))
	fmt.Fprintf(&b, "%s %d hr %d min\n", Dim("Duration:"), h, m)
	fmt.Fprintf(&b, "%s %s\n", Dim("Distance:"), FormatDistance(w.DistanceMi))
	fmt.Fprintf(&b, "%s %s\n", Dim("Date:    "), WorkoutDate(w.Date, loc))
	fmt.Fprintf(&b, "%s %s", Dim("ID:      "), Dim(w.ID))
	return RenderBox("", b.String())
}
