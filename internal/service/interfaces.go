package service

import (
	"context"

	"github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/domain"
)

type WorkoutService interface {
	// Create validates w, assigns an ID when empty and appends it. w.ID is
	// set on success.
	Create(ctx context.Context, w *domain.Workout) error
	// Get accepts a full ID or a unique ID prefix.
	Get(ctx context.Context, ref string) (*domain.Workout, error)
	Update(ctx context.Context, w *domain.Workout) error
	// Delete accepts a full ID or a unique ID prefix and returns the removed workout.
	Delete(ctx context.Context, ref string) (*domain.Workout, error)
	List(ctx context.Context, req app.ListWorkoutsRequest) ([]domain.Workout, error)
	Import(ctx context.Context, req app.ImportRequest) (*app.ImportResult, error)
	// Export returns the stored history in the blob format, indented.
	Export(ctx context.Context) (string, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req app.StatsRequest) (*app.StatsResponse, error)
}

var (
	_ app.LogWorkoutUseCase     = WorkoutService(nil)
	_ app.ListWorkoutsUseCase   = WorkoutService(nil)
	_ app.ImportWorkoutsUseCase = WorkoutService(nil)
	_ app.StatsUseCase          = StatsService(nil)
)
