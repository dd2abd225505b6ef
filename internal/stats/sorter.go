package stats

import (
	"sort"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// Sort returns a new slice ordered by the criterion. The sort is stable, so
// workouts with equal keys keep their input order. An unknown criterion
// returns the workouts in input order. The input slice is never modified.
func Sort(workouts []domain.Workout, criterion domain.SortCriterion) []domain.Workout {
	out := make([]domain.Workout, len(workouts))
	copy(out, workouts)

	less := lessFunc(out, criterion)
	if less == nil {
		return out
	}
	sort.SliceStable(out, less)
	return out
}

func lessFunc(w []domain.Workout, criterion domain.SortCriterion) func(i, j int) bool {
	switch criterion {
	case domain.SortDateDescending:
		return func(i, j int) bool { return w[i].Unix() > w[j].Unix() }
	case domain.SortDateAscending:
		return func(i, j int) bool { return w[i].Unix() < w[j].Unix() }
	case domain.SortDistanceLongest:
		return func(i, j int) bool { return w[i].DistanceMi > w[j].DistanceMi }
	case domain.SortDistanceShortest:
		return func(i, j int) bool { return w[i].DistanceMi < w[j].DistanceMi }
	default:
		return nil
	}
}
