package app

import (
	"context"

	"github.com/alexanderramin/fitlog/internal/domain"
)

type LogWorkoutUseCase interface {
	Create(ctx context.Context, w *domain.Workout) error
}

type ListWorkoutsUseCase interface {
	List(ctx context.Context, req ListWorkoutsRequest) ([]domain.Workout, error)
}

type StatsUseCase interface {
	GetStats(ctx context.Context, req StatsRequest) (*StatsResponse, error)
}

type ImportWorkoutsUseCase interface {
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)
}
