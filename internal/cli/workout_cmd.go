package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/spf13/cobra"
)

func (a *App) location() *time.Location {
	return a.Config.Location()
}

func (a *App) defaultSort() domain.SortCriterion {
	if a.Config.DefaultSort == "" {
		return domain.SortDateDescending
	}
	return a.Config.DefaultSort
}

func (a *App) workoutTypes() []string {
	return a.Config.WorkoutTypes()
}

// flagFields copies the set flags of cmd into f.
func flagFields(cmd *cobra.Command, f *workoutFields, typ, date string, hours, minutes int, distance float64) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		f.Type = typ
	}
	if flags.Changed("hours") {
		f.Hours = strconv.Itoa(hours)
	}
	if flags.Changed("minutes") {
		f.Minutes = strconv.Itoa(minutes)
	}
	if flags.Changed("distance") {
		f.Distance = strconv.FormatFloat(distance, 'f', -1, 64)
	}
	if flags.Changed("date") {
		f.setDate(date)
	}
}

func addWorkoutFlags(cmd *cobra.Command, typ, date *string, hours, minutes *int, distance *float64) {
	cmd.Flags().StringVarP(typ, "type", "t", "", "Workout type, e.g. Running")
	cmd.Flags().IntVar(hours, "hours", 0, "Duration hours")
	cmd.Flags().IntVarP(minutes, "minutes", "m", 0, "Duration minutes")
	cmd.Flags().Float64VarP(distance, "distance", "d", 0, "Distance in miles")
	cmd.Flags().StringVar(date, "date", "", `Date as YYYY-MM-DD or "YYYY-MM-DD HH:MM" (default now)`)
}

func newAddCmd(app *App) *cobra.Command {
	var typ, date string
	var hours, minutes int
	var distance float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			loc := app.location()

			var fields workoutFields
			flagFields(cmd, &fields, typ, date, hours, minutes, distance)
			if fields.Type == "" {
				if !app.interactive() {
					return errors.New("--type is required when not running in a terminal")
				}
				if err := app.runForm(workoutForm("New workout", &fields, app.workoutTypes(), loc, app.now)); err != nil {
					return err
				}
			}

			var w domain.Workout
			if err := fields.apply(&w, loc, app.now()); err != nil {
				return err
			}
			if err := app.logWorkoutUseCase().Create(ctx, &w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workout saved (%s)\n", formatter.ShortID(w.ID))
			return nil
		},
	}
	addWorkoutFlags(cmd, &typ, &date, &hours, &minutes, &distance)
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var typ, date string
	var hours, minutes int
	var distance float64

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a logged workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			loc := app.location()

			existing, err := app.Workouts.Get(ctx, args[0])
			if err != nil {
				return err
			}

			fields := fieldsFromWorkout(*existing, loc)
			flagFields(cmd, &fields, typ, date, hours, minutes, distance)
			if cmd.Flags().NFlag() == 0 {
				if !app.interactive() {
					return errors.New("nothing to change: pass --type, --hours, --minutes, --distance or --date")
				}
				if err := app.runForm(workoutForm("Edit workout", &fields, app.workoutTypes(), loc, app.now)); err != nil {
					return err
				}
			}

			updated := *existing
			if err := fields.apply(&updated, loc, app.now()); err != nil {
				return err
			}
			if err := app.Workouts.Update(ctx, &updated); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Workout updated")
			return nil
		},
	}
	addWorkoutFlags(cmd, &typ, &date, &hours, &minutes, &distance)
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Workouts.Get(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkout(*w, app.location()))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a workout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)

			w, err := app.Workouts.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return errors.New("refusing to delete without --yes when not running in a terminal")
				}
				confirmed := false
				title := fmt.Sprintf("Delete %s on %s?", w.Type, formatter.HumanDate(w.Date, app.now().In(app.location())))
				if err := app.runForm(confirmForm(title, &confirmed)); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if _, err := app.Workouts.Delete(ctx, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", formatter.ShortID(w.ID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var sort domain.SortCriterion
	var typeFilter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := app.listWorkoutsUseCase().List(cmdContext(cmd), fitlogapp.ListWorkoutsRequest{
				Sort:       sort,
				TypeFilter: typeFilter,
			})
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Sorted by "+sort.Label()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkoutList(workouts, app.location()))
			return nil
		},
	}

	addSortFlag(cmd.Flags(), &sort, app.defaultSort())
	cmd.Flags().StringVar(&typeFilter, "type", "", "Only show this workout type")
	return cmd
}
