package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/config"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/repository"
	"github.com/alexanderramin/fitlog/internal/service"
	"github.com/alexanderramin/fitlog/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.September, 28, 18, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewBlobWorkoutRepo(repository.NewSQLiteBlobStore(database))

	cfg := config.DefaultConfig()
	cfg.TimeZone = "UTC"

	return &App{
		Workouts: service.NewWorkoutService(repo, testutil.NewTestUoW(database)),
		Stats:    service.NewStatsService(repo),
		Config:   cfg,
		Now:      func() time.Time { return testNow },
	}
}

// seedScenario stores the Swimming/Walking pair used across the tests.
func seedScenario(t *testing.T, app *App) (swim, walk domain.Workout) {
	t.Helper()
	ctx := context.Background()
	swim = testutil.NewTestWorkout("Swimming", testutil.WithID("swim-0001"), testutil.WithDuration(32),
		testutil.WithDistance(1), testutil.WithDate(time.Unix(1727406312, 0).UTC()))
	walk = testutil.NewTestWorkout("Walking", testutil.WithID("walk-0001"), testutil.WithDuration(60),
		testutil.WithDistance(2.5), testutil.WithDate(time.Unix(1727147340, 0).UTC()))
	require.NoError(t, app.Workouts.Create(ctx, &swim))
	require.NoError(t, app.Workouts.Create(ctx, &walk))
	return swim, walk
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestAddCmd_WithFlags(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "add", "--type", "Running", "--hours", "1", "--minutes", "5",
		"--distance", "6.2", "--date", "2024-09-27 07:15")
	require.NoError(t, err)
	assert.Contains(t, out, "Workout saved")

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Running", ws[0].Type)
	assert.Equal(t, 65, ws[0].DurationMin)
	assert.InDelta(t, 6.2, ws[0].DistanceMi, 1e-9)
	assert.True(t, time.Date(2024, 9, 27, 7, 15, 0, 0, time.UTC).Equal(ws[0].Date))
}

func TestAddCmd_DefaultsDateToNow(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-t", "Yoga", "-m", "45")
	require.NoError(t, err)

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.True(t, ws[0].Date.Equal(testNow))
	assert.Equal(t, 0.0, ws[0].DistanceMi)
}

func TestAddCmd_ValidationMessage(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "--type", "Running")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidWorkout)
	assert.Contains(t, err.Error(), "please enter a duration")

	_, err = executeCmd(t, app, "add", "--type", "Running", "--minutes", "10", "--distance", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please enter a distance 0 or greater")
}

func TestAddCmd_NeedsTypeWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "--minutes", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--type is required")
}

func TestAddCmd_InteractiveOpensForm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var shown *huh.Form
	app.RunForm = func(f *huh.Form) error {
		shown = f
		return huh.ErrUserAborted
	}

	_, err := executeCmd(t, app, "add")
	assert.ErrorIs(t, err, huh.ErrUserAborted)
	assert.NotNil(t, shown)

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestEditCmd_ChangesOnlyGivenFields(t *testing.T) {
	app := testApp(t)
	swim, _ := seedScenario(t, app)

	out, err := executeCmd(t, app, "edit", "swim", "--minutes", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Workout updated")

	got, err := app.Workouts.Get(context.Background(), swim.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.DurationMin, "hours stay 0, minutes replaced")
	assert.Equal(t, "Swimming", got.Type)
	assert.Equal(t, swim.DistanceMi, got.DistanceMi)
	assert.Equal(t, swim.Unix(), got.Unix(), "date is kept to the second")
}

func TestEditCmd_KeepsStoredDateToTheSecond(t *testing.T) {
	app := testApp(t)
	swim, _ := seedScenario(t, app)
	require.Equal(t, int64(1727406312), swim.Unix())

	_, err := executeCmd(t, app, "edit", swim.ID, "--distance", "1.5")
	require.NoError(t, err)

	got, err := app.Workouts.Get(context.Background(), swim.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1727406312), got.Unix())
	assert.Equal(t, 1.5, got.DistanceMi)
}

func TestEditCmd_DateFlagReplacesDate(t *testing.T) {
	app := testApp(t)
	swim, _ := seedScenario(t, app)

	_, err := executeCmd(t, app, "edit", swim.ID, "--date", "2024-09-27 03:05")
	require.NoError(t, err)

	got, err := app.Workouts.Get(context.Background(), swim.ID)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 9, 27, 3, 5, 0, 0, time.UTC).Equal(got.Date))
}

func TestEditCmd_InteractiveUntouchedDateIsKept(t *testing.T) {
	app := testApp(t)
	swim, _ := seedScenario(t, app)
	app.IsInteractive = func() bool { return true }
	app.RunForm = func(*huh.Form) error { return nil }

	_, err := executeCmd(t, app, "edit", swim.ID)
	require.NoError(t, err)

	got, err := app.Workouts.Get(context.Background(), swim.ID)
	require.NoError(t, err)
	assert.Equal(t, swim.Unix(), got.Unix())
	assert.Equal(t, swim.DurationMin, got.DurationMin)
}

func TestAddCmd_RejectsOversizedDuration(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "--type", "Running", "--hours", "4611686018427387904")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours")

	_, err = executeCmd(t, app, "add", "--type", "Running", "--minutes", "99999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minutes")

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestEditCmd_Errors(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)

	_, err := executeCmd(t, app, "edit", "swim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")

	_, err = executeCmd(t, app, "edit", "nope", "--minutes", "5")
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	_, err = executeCmd(t, app, "edit", "swim", "--type", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidWorkout)
}

func TestShowCmd(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)

	out, err := executeCmd(t, app, "show", "walk")
	require.NoError(t, err)
	assert.Contains(t, out, "Walking")
	assert.Contains(t, out, "1 hr 0 min")
	assert.Contains(t, out, "2.5 miles")
}

func TestRemoveCmd(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)

	_, err := executeCmd(t, app, "rm", "swim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out, err := executeCmd(t, app, "delete", "swim", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted workout swim-000")

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Walking", ws[0].Type)
}

func TestRemoveCmd_InteractiveCancel(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)
	app.IsInteractive = func() bool { return true }
	app.RunForm = func(*huh.Form) error { return nil }

	out, err := executeCmd(t, app, "remove", "walk")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	ws, err := app.Workouts.List(context.Background(), listAll())
	require.NoError(t, err)
	assert.Len(t, ws, 2)
}

func TestListCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Equal(t, "No workouts yet.\n", out)

	seedScenario(t, app)

	out, err = executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Date (Most Recent)")
	assert.Less(t, strings.Index(out, "Swimming"), strings.Index(out, "Walking"))

	out, err = executeCmd(t, app, "list", "--sort", "distance-desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Walking"), strings.Index(out, "Swimming"))

	out, err = executeCmd(t, app, "list", "--type", "walking")
	require.NoError(t, err)
	assert.NotContains(t, out, "Swimming")
	assert.Contains(t, out, "Walking")
}

func TestListCmd_RejectsUnknownSort(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "list", "--sort", "byMood")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byMood")
}

func TestListCmd_UsesConfiguredSort(t *testing.T) {
	app := testApp(t)
	app.Config.DefaultSort = domain.SortDateAscending
	seedScenario(t, app)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Walking"), strings.Index(out, "Swimming"))
}

func TestSummaryCmd(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)

	for _, args := range [][]string{{"summary"}, {}} {
		out, err := executeCmd(t, app, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "2")
		assert.Contains(t, out, "1 h 32 m")
		assert.Contains(t, out, "3.5 miles")
	}
}

func TestStatsCmd(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Swimming")
	assert.Contains(t, out, "Walking")
	assert.Less(t, strings.Index(out, "Sep 24th"), strings.Index(out, "Sep 27th"))

	out, err = executeCmd(t, app, "stats", "--days", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "Sep 24th")
	assert.Contains(t, out, "Sep 27th")

	_, err = executeCmd(t, app, "stats", "--days", "0")
	assert.Error(t, err)
}

func TestImportExportCmds(t *testing.T) {
	app := testApp(t)
	seedScenario(t, app)
	dir := t.TempDir()
	path := filepath.Join(dir, "workouts.json")

	_, err := executeCmd(t, app, "export", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"workout_type": "Swimming"`)

	other := testApp(t)
	out, err := executeCmd(t, other, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 workouts (2 total)")

	out, err = executeCmd(t, other, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 workouts (4 total)")
	assert.Contains(t, out, "2 workouts had ids already in use")

	out, err = executeCmd(t, other, "import", "--replace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 total)")
}

func TestImportCmd_ReportsValidationErrors(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"workout_type":"Run","duration":"abc","date":1}]`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidImport)
	assert.Contains(t, err.Error(), "workouts[0].duration: not a number")

	_, err = executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading import file")
}

func TestExportCmd_Stdout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestBrowseCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")

	app.IsInteractive = func() bool { return true }
	var got tea.Model
	app.RunProgram = func(m tea.Model, _ io.Reader, _ io.Writer) error {
		got = m
		return nil
	}
	_, err = executeCmd(t, app, "browse", "--sort", "distanceShortest")
	require.NoError(t, err)
	require.IsType(t, &browseModel{}, got)
	assert.Equal(t, domain.SortDistanceShortest, got.(*browseModel).sort)
}

type failingStats struct{}

func (failingStats) GetStats(context.Context, fitlogapp.StatsRequest) (*fitlogapp.StatsResponse, error) {
	return nil, errors.New("stats offline")
}

func TestSummaryCmd_UsesReportOverride(t *testing.T) {
	app := testApp(t)
	app.Report = failingStats{}

	_, err := executeCmd(t, app, "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats offline")
}

func listAll() fitlogapp.ListWorkoutsRequest {
	return fitlogapp.ListWorkoutsRequest{}
}
