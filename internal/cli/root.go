package cli

import (
	"context"
	"io"
	"os"
	"time"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/config"
	"github.com/alexanderramin/fitlog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by all commands.
type App struct {
	Workouts service.WorkoutService
	Stats    service.StatsService
	Config   config.Config

	// Use-case overrides. Nil falls back to Workouts or Stats.
	LogWorkout     fitlogapp.LogWorkoutUseCase
	ListWorkouts   fitlogapp.ListWorkoutsUseCase
	Report         fitlogapp.StatsUseCase
	ImportWorkouts fitlogapp.ImportWorkoutsUseCase

	// IsInteractive reports whether forms and the browser may be shown.
	// Nil means never.
	IsInteractive func() bool
	// Now is the clock used for default dates. Nil means time.Now.
	Now func() time.Time
	// RunForm and RunProgram are replaced in tests.
	RunForm    func(form *huh.Form) error
	RunProgram func(model tea.Model, in io.Reader, out io.Writer) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) runForm(form *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(form)
	}
	return form.Run()
}

func (a *App) runProgram(model tea.Model, in io.Reader, out io.Writer) error {
	if a.RunProgram != nil {
		return a.RunProgram(model, in, out)
	}
	if in == nil {
		in = os.Stdin
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out)).Run()
	return err
}

// NewRootCmd creates the top-level "fitlog" command and registers all
// subcommands against the provided App. Run bare, it prints the summary.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitlog",
		Short:         "Log workouts and see where the time went",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, app)
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newEditCmd(app),
		newShowCmd(app),
		newRemoveCmd(app),
		newListCmd(app),
		newSummaryCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
	)

	return root
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
