package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrInvalidWorkout is wrapped by every ValidationError.
	ErrInvalidWorkout = errors.New("invalid workout")
	// ErrWorkoutNotFound is returned when no workout matches an ID.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrDuplicateID is returned when a collection already holds a workout with the same ID.
	ErrDuplicateID = errors.New("duplicate workout id")
	// ErrAmbiguousID is returned when an ID prefix matches more than one workout.
	ErrAmbiguousID = errors.New("ambiguous workout id")
)

// Workout is one logged exercise session.
type Workout struct {
	ID          string
	Type        string
	DurationMin int
	DistanceMi  float64
	Date        time.Time
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidWorkout }

// Validate checks the workout before it is stored. The type is trimmed in place.
func (w *Workout) Validate() error {
	w.Type = strings.TrimSpace(w.Type)
	if w.Type == "" {
		return &ValidationError{Field: "type", Message: "please enter a workout type"}
	}
	if w.DurationMin <= 0 {
		return &ValidationError{Field: "duration", Message: "please enter a duration"}
	}
	if math.IsNaN(w.DistanceMi) || math.IsInf(w.DistanceMi, 0) || w.DistanceMi < 0 {
		return &ValidationError{Field: "distance", Message: "please enter a distance 0 or greater"}
	}
	if w.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	return nil
}

// Unix returns the workout date as epoch seconds, the unit stored on disk.
func (w Workout) Unix() int64 {
	return w.Date.Unix()
}

// HoursMinutes splits the duration for display.
func (w Workout) HoursMinutes() (int, int) {
	return SplitMinutes(w.DurationMin)
}

// SplitMinutes returns floor(total/60) and total mod 60.
func SplitMinutes(total int) (hours, minutes int) {
	return total / 60, total % 60
}

// WorkoutTypes is the list offered by the workout form. Other values are accepted.
var WorkoutTypes = []string{
	"Running",
	"Cycling",
	"Weight Lifting",
	"Yoga",
	"Swimming",
	"HIIT",
	"Walking",
	"Dancing",
	"Pilates",
	"Boxing",
}
