package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alexanderramin/fitlog/internal/cli"
	"github.com/alexanderramin/fitlog/internal/config"
	"github.com/alexanderramin/fitlog/internal/db"
	"github.com/alexanderramin/fitlog/internal/repository"
	"github.com/alexanderramin/fitlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings: ~/.fitlog/config.yaml (or FITLOG_CONFIG), then FITLOG_* env vars
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the workout history over the key-value table
	workoutRepo := repository.NewBlobWorkoutRepo(repository.NewSQLiteBlobStore(database))
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	workoutSvc := service.NewWorkoutService(workoutRepo, uow, observers...)
	statsSvc := service.NewStatsService(workoutRepo, observers...)

	app := &cli.App{
		Workouts: workoutSvc,
		Stats:    statsSvc,
		Config:   cfg,

		LogWorkout:     workoutSvc,
		ListWorkouts:   workoutSvc,
		Report:         statsSvc,
		ImportWorkouts: workoutSvc,
	}

	// Forms and the browser only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
