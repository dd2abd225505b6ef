package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/fitlog/internal/repository"
	"github.com/alexanderramin/fitlog/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

type testServices struct {
	db       *sql.DB
	repo     repository.WorkoutRepo
	workouts WorkoutService
	stats    StatsService
	observer *recordingObserver
}

// newSQLiteServices wires services the way the CLI does: SQLite blob store
// plus a unit of work.
func newSQLiteServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewBlobWorkoutRepo(repository.NewSQLiteBlobStore(database))
	obs := &recordingObserver{}
	return &testServices{
		db:       database,
		repo:     repo,
		workouts: NewWorkoutService(repo, testutil.NewTestUoW(database), obs),
		stats:    NewStatsService(repo, obs),
		observer: obs,
	}
}

// newMemoryServices wires services without a unit of work.
func newMemoryServices(t *testing.T) *testServices {
	t.Helper()
	repo := repository.NewBlobWorkoutRepo(repository.NewMemoryBlobStore())
	obs := &recordingObserver{}
	return &testServices{
		repo:     repo,
		workouts: NewWorkoutService(repo, nil, obs),
		stats:    NewStatsService(repo, obs),
		observer: obs,
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s *testServices)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteServices(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, newMemoryServices(t)) })
}
