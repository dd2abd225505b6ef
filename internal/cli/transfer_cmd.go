package cli

import (
	"fmt"
	"io"
	"os"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import workouts from a JSON export (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			req := fitlogapp.ImportRequest{Data: data, Mode: fitlogapp.ImportAppend}
			if replace {
				req.Mode = fitlogapp.ImportReplace
			}
			res, err := app.importWorkoutsUseCase().Import(cmdContext(cmd), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d workouts (%d total)\n", res.Imported, res.Total)
			if res.Renamed > 0 {
				fmt.Fprintf(out, "%d workouts had ids already in use and were given new ones\n", res.Renamed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Discard existing workouts before importing")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write all workouts as JSON to FILE or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := app.Workouts.Export(cmdContext(cmd))
			if err != nil {
				return err
			}
			if len(args) == 0 || args[0] == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), blob)
				return err
			}
			if err := os.WriteFile(args[0], []byte(blob), 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", args[0])
			return nil
		},
	}
}
