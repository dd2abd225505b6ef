package codec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidateImport checks an import file strictly and returns every problem
// found. Unlike Decode it does not coerce: a record that Decode would load
// with a zeroed field is reported here.
func ValidateImport(data []byte) []error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []error{fmt.Errorf("import file must be a JSON array of workouts: %w", err)}
	}

	var errs []error
	for i, elem := range raw {
		prefix := fmt.Sprintf("workouts[%d]", i)
		var ww wireWorkout
		if !isObject(elem) || json.Unmarshal(elem, &ww) != nil {
			errs = append(errs, fmt.Errorf("%s: not a workout object", prefix))
			continue
		}
		errs = append(errs, validateRecord(prefix, ww)...)
	}
	return errs
}

func validateRecord(prefix string, ww wireWorkout) []error {
	var errs []error

	if strings.TrimSpace(ww.Type) == "" {
		errs = append(errs, fmt.Errorf("%s.workout_type is required", prefix))
	}
	switch {
	case !ww.Duration.Present:
		errs = append(errs, fmt.Errorf("%s.duration is required", prefix))
	case !ww.Duration.Valid:
		errs = append(errs, fmt.Errorf("%s.duration: not a number", prefix))
	case ww.Duration.Value <= 0:
		errs = append(errs, fmt.Errorf("%s.duration must be greater than 0", prefix))
	}
	if ww.Distance.Present && !ww.Distance.Valid {
		errs = append(errs, fmt.Errorf("%s.distance: not a number", prefix))
	} else if ww.Distance.Valid && ww.Distance.Value < 0 {
		errs = append(errs, fmt.Errorf("%s.distance must be 0 or greater", prefix))
	}
	switch {
	case !ww.Date.Present:
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	case !ww.Date.Valid:
		errs = append(errs, fmt.Errorf("%s.date: not a number", prefix))
	case ww.Date.Value <= 0:
		errs = append(errs, fmt.Errorf("%s.date must be a positive epoch second", prefix))
	}
	return errs
}
