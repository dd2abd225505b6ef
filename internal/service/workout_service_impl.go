package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/codec"
	"github.com/alexanderramin/fitlog/internal/db"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/repository"
	"github.com/alexanderramin/fitlog/internal/stats"
)

// ErrInvalidImport wraps every import that fails validation.
var ErrInvalidImport = errors.New("import validation failed")

type workoutService struct {
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewWorkoutService builds a WorkoutService. When uow is non-nil every
// mutation loads and saves the history inside one transaction against the
// SQLite blob store; otherwise mutations go through workouts directly.
func NewWorkoutService(workouts repository.WorkoutRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WorkoutService {
	return &workoutService{
		workouts: workouts,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// mutate runs fn as one load-modify-save cycle.
func (s *workoutService) mutate(ctx context.Context, fn func(col *domain.Collection) error) error {
	if s.uow == nil {
		return loadModifySave(ctx, s.workouts, fn)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkouts := repository.NewBlobWorkoutRepo(repository.NewSQLiteBlobStore(tx))
		return loadModifySave(ctx, txWorkouts, fn)
	})
}

func loadModifySave(ctx context.Context, repo repository.WorkoutRepo, fn func(col *domain.Collection) error) error {
	col, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(col); err != nil {
		return err
	}
	return repo.Save(ctx, col)
}

func (s *workoutService) Create(ctx context.Context, w *domain.Workout) (err error) {
	uc := startUseCase(s.observer, "create-workout")
	defer uc.finish(ctx, &err)

	if err = w.Validate(); err != nil {
		return err
	}
	uc.set("type", w.Type)

	err = s.mutate(ctx, func(col *domain.Collection) error {
		added, err := col.Add(*w)
		if err != nil {
			return err
		}
		*w = added
		return nil
	})
	if err == nil {
		uc.set("workout_id", w.ID)
	}
	return err
}

func (s *workoutService) Get(ctx context.Context, ref string) (_ *domain.Workout, err error) {
	uc := startUseCase(s.observer, "get-workout")
	defer uc.finish(ctx, &err)

	col, err := s.workouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	w, err := col.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *workoutService) Update(ctx context.Context, w *domain.Workout) (err error) {
	uc := startUseCase(s.observer, "update-workout")
	defer uc.finish(ctx, &err)
	uc.set("workout_id", w.ID)

	if err = w.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, func(col *domain.Collection) error {
		return col.Replace(*w)
	})
}

func (s *workoutService) Delete(ctx context.Context, ref string) (_ *domain.Workout, err error) {
	uc := startUseCase(s.observer, "delete-workout")
	defer uc.finish(ctx, &err)

	var removed domain.Workout
	err = s.mutate(ctx, func(col *domain.Collection) error {
		target, err := col.Resolve(ref)
		if err != nil {
			return err
		}
		removed, err = col.Remove(target.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.set("workout_id", removed.ID)
	return &removed, nil
}

func (s *workoutService) List(ctx context.Context, req app.ListWorkoutsRequest) (_ []domain.Workout, err error) {
	uc := startUseCase(s.observer, "list-workouts")
	defer uc.finish(ctx, &err)

	criterion := req.Sort
	if criterion == "" {
		criterion = domain.SortDateDescending
	}
	criterion, err = domain.ParseSortCriterion(string(criterion))
	if err != nil {
		return nil, err
	}
	uc.set("sort", string(criterion))

	col, err := s.workouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	listed := stats.Sort(filterByType(col.All(), req.TypeFilter), criterion)
	uc.set("count", len(listed))
	return listed, nil
}

func (s *workoutService) Import(ctx context.Context, req app.ImportRequest) (_ *app.ImportResult, err error) {
	uc := startUseCase(s.observer, "import-workouts")
	defer uc.finish(ctx, &err)
	uc.set("replace", req.Mode == app.ImportReplace)

	if errs := codec.ValidateImport(req.Data); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	decoded, err := codec.Decode(string(req.Data))
	if err != nil {
		return nil, err
	}
	// Decoding truncates fractional minutes, so re-check what will be stored.
	var errs []error
	for i := range decoded.Workouts {
		if vErr := decoded.Workouts[i].Validate(); vErr != nil {
			errs = append(errs, fmt.Errorf("workouts[%d].%w", i, vErr))
		}
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result := &app.ImportResult{Skipped: decoded.Skipped}
	err = s.mutate(ctx, func(col *domain.Collection) error {
		if req.Mode == app.ImportReplace {
			col.Clear()
		}
		for _, w := range decoded.Workouts {
			if _, err := col.Get(w.ID); err == nil {
				w.ID = ""
				result.Renamed++
			}
			if _, err := col.Add(w); err != nil {
				return err
			}
			result.Imported++
		}
		result.Total = col.Len()
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.set("imported", result.Imported)
	return result, nil
}

func (s *workoutService) Export(ctx context.Context) (_ string, err error) {
	uc := startUseCase(s.observer, "export-workouts")
	defer uc.finish(ctx, &err)

	col, err := s.workouts.Load(ctx)
	if err != nil {
		return "", err
	}
	uc.set("count", col.Len())
	return codec.EncodeIndent(col.All())
}

// filterByType keeps workouts whose type matches typ, ignoring case and
// surrounding space. An empty typ keeps everything.
func filterByType(workouts []domain.Workout, typ string) []domain.Workout {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return workouts
	}
	out := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if strings.EqualFold(strings.TrimSpace(w.Type), typ) {
			out = append(out, w)
		}
	}
	return out
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("(%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w %s", ErrInvalidImport, msg)
}
