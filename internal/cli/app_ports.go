package cli

import fitlogapp "github.com/alexanderramin/fitlog/internal/app"

func (a *App) logWorkoutUseCase() fitlogapp.LogWorkoutUseCase {
	if a.LogWorkout != nil {
		return a.LogWorkout
	}
	return a.Workouts
}

func (a *App) listWorkoutsUseCase() fitlogapp.ListWorkoutsUseCase {
	if a.ListWorkouts != nil {
		return a.ListWorkouts
	}
	return a.Workouts
}

func (a *App) statsUseCase() fitlogapp.StatsUseCase {
	if a.Report != nil {
		return a.Report
	}
	return a.Stats
}

func (a *App) importWorkoutsUseCase() fitlogapp.ImportWorkoutsUseCase {
	if a.ImportWorkouts != nil {
		return a.ImportWorkouts
	}
	return a.Workouts
}
