package testutil

import (
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/google/uuid"
)

// FixedDate is the reference day fixtures are dated on unless overridden.
var FixedDate = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

// Workout options
type WorkoutOption func(*domain.Workout)

func WithID(id string) WorkoutOption {
	return func(w *domain.Workout) {
		w.ID = id
	}
}

func WithDuration(min int) WorkoutOption {
	return func(w *domain.Workout) {
		w.DurationMin = min
	}
}

func WithDistance(mi float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.DistanceMi = mi
	}
}

func WithDate(d time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.Date = d
	}
}

// WithDaysAgo dates the workout n days before FixedDate.
func WithDaysAgo(n int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Date = FixedDate.AddDate(0, 0, -n)
	}
}

func NewTestWorkout(workoutType string, opts ...WorkoutOption) domain.Workout {
	w := domain.Workout{
		ID:          uuid.New().String(),
		Type:        workoutType,
		DurationMin: 30,
		DistanceMi:  1,
		Date:        FixedDate,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}
