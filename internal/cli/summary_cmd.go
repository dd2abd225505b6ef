package cli

import (
	"fmt"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show workout count, total duration and total distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, app)
		},
	}
}

func runSummary(cmd *cobra.Command, app *App) error {
	req := fitlogapp.NewStatsRequest()
	req.Location = app.location()
	resp, err := app.statsUseCase().GetStats(cmdContext(cmd), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(resp.Summary))
	return nil
}

func newStatsCmd(app *App) *cobra.Command {
	var days, width int
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show workout types and recent daily durations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			req := fitlogapp.NewStatsRequest()
			req.Days = days
			req.Location = app.location()
			req.TypeFilter = typeFilter
			now := app.now()
			req.Now = &now

			resp, err := app.statsUseCase().GetStats(cmdContext(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(resp, width))
			return nil
		},
	}

	defDays := app.Config.ChartDays
	if defDays <= 0 {
		defDays = fitlogapp.NewStatsRequest().Days
	}
	cmd.Flags().IntVar(&days, "days", defDays, "Number of most recent days to chart")
	cmd.Flags().IntVar(&width, "width", formatter.DefaultBarWidth, "Bar width in cells")
	cmd.Flags().StringVar(&typeFilter, "type", "", "Only count this workout type")
	return cmd
}
