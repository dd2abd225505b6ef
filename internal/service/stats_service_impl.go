package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/repository"
	"github.com/alexanderramin/fitlog/internal/stats"
)

type statsService struct {
	workouts repository.WorkoutRepo
	observer UseCaseObserver
}

func NewStatsService(workouts repository.WorkoutRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{workouts: workouts, observer: useCaseObserverOrNoop(observers)}
}

func (s *statsService) GetStats(ctx context.Context, req app.StatsRequest) (_ *app.StatsResponse, err error) {
	uc := startUseCase(s.observer, "get-stats")
	defer uc.finish(ctx, &err)

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	days := req.Days
	if days <= 0 {
		days = stats.DefaultChartDays
	}
	loc := req.Location
	if loc == nil {
		loc = time.Local
	}
	uc.set("days", days)

	col, err := s.workouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	workouts := filterByType(col.All(), req.TypeFilter)
	uc.set("count", len(workouts))

	return &app.StatsResponse{
		GeneratedAt: now.UTC(),
		Summary:     stats.Summarize(workouts),
		ByType:      stats.CountByType(workouts),
		ByDay:       stats.DurationByDay(workouts, days, loc),
	}, nil
}
