package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fitlogHuhTheme returns a huh theme using the formatter palette.
func fitlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// workoutFields is the text form of a workout as typed by the user.
type workoutFields struct {
	Type     string
	Hours    string
	Minutes  string
	Distance string
	Date     string

	// storedDate is the exact date Date was prefilled from. It is kept as
	// long as Date still shows the prefilled text.
	storedDate  time.Time
	prefillDate string
}

// maxHours bounds the hours a single workout may span.
const maxHours = 24 * 7

func fieldsFromWorkout(w domain.Workout, loc *time.Location) workoutFields {
	h, m := w.HoursMinutes()
	date := w.Date.In(loc).Format(dateTimeLayout)
	return workoutFields{
		Type:        w.Type,
		Hours:       strconv.Itoa(h),
		Minutes:     strconv.Itoa(m),
		Distance:    strconv.FormatFloat(w.DistanceMi, 'f', -1, 64),
		Date:        date,
		storedDate:  w.Date,
		prefillDate: date,
	}
}

// setDate replaces the date text and drops the stored date.
func (f *workoutFields) setDate(s string) {
	f.Date = s
	f.storedDate = time.Time{}
}

// apply parses every field into w. Blank hours, minutes and distance read as 0.
// An untouched prefilled date keeps its stored value to the second.
func (f workoutFields) apply(w *domain.Workout, loc *time.Location, now time.Time) error {
	hours, err := parseHours(f.Hours)
	if err != nil {
		return fmt.Errorf("hours: %w", err)
	}
	minutes, err := parseCount(f.Minutes)
	if err != nil {
		return fmt.Errorf("minutes: %w", err)
	}
	if minutes > maxHours*60 {
		return fmt.Errorf("minutes: must be at most %d", maxHours*60)
	}
	distance, err := parseDistance(f.Distance)
	if err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	date := f.storedDate
	if date.IsZero() || f.Date != f.prefillDate {
		if date, err = parseWorkoutDate(f.Date, loc, now); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}
	w.Type = strings.TrimSpace(f.Type)
	w.DurationMin = hours*60 + minutes
	w.DistanceMi = distance
	w.Date = date
	return nil
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, errors.New("enter a whole number 0 or greater")
	}
	return v, nil
}

func parseDistance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.New("please enter a distance 0 or greater")
	}
	return v, nil
}

// parseWorkoutDate accepts "", "today", "yesterday", YYYY-MM-DD,
// "YYYY-MM-DD HH:MM" or RFC 3339. Blank means now; a bare date means noon.
func parseWorkoutDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	now = now.In(loc)
	switch strings.ToLower(s) {
	case "", "now", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	if t, err := time.ParseInLocation(dateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\", got %q", s)
}

func parseHours(s string) (int, error) {
	v, err := parseCount(s)
	if err != nil {
		return 0, err
	}
	if v > maxHours {
		return 0, fmt.Errorf("must be at most %d", maxHours)
	}
	return v, nil
}

func validateHours(s string) error {
	_, err := parseHours(s)
	return err
}

func validateMinutes(s string) error {
	v, err := parseCount(s)
	if err != nil {
		return err
	}
	if v > 59 {
		return errors.New("minutes must be below 60")
	}
	return nil
}

func validateDistance(s string) error {
	_, err := parseDistance(s)
	return err
}

func validateType(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter a workout type")
	}
	return nil
}

// workoutForm builds the add/edit form over f. Types are offered in order;
// a current type missing from the list is added first.
func workoutForm(title string, f *workoutFields, types []string, loc *time.Location, now func() time.Time) *huh.Form {
	options := make([]huh.Option[string], 0, len(types)+1)
	if f.Type != "" && !containsFold(types, f.Type) {
		options = append(options, huh.NewOption(f.Type, f.Type))
	}
	for _, t := range types {
		options = append(options, huh.NewOption(t, t))
	}
	if f.Type == "" && len(types) > 0 {
		f.Type = types[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Workout type").
				Options(options...).
				Value(&f.Type).
				Validate(validateType),
		),
		huh.NewGroup(
			huh.NewInput().Title("Hours").Placeholder("0").Value(&f.Hours).Validate(validateHours),
			huh.NewInput().Title("Minutes").Placeholder("30").Value(&f.Minutes).Validate(validateMinutes),
			huh.NewInput().Title("Distance (miles)").Placeholder("0").Value(&f.Distance).Validate(validateDistance),
			huh.NewInput().
				Title("Date").
				Placeholder(now().In(loc).Format(dateTimeLayout)).
				Value(&f.Date).
				Validate(func(s string) error {
					_, err := parseWorkoutDate(s, loc, now())
					return err
				}),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
