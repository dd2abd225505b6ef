package codec

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// Encode serializes workouts in the given order. Dates are written as epoch
// seconds; non-finite distances are written as 0.
func Encode(workouts []domain.Workout) (string, error) {
	data, err := json.Marshal(toWire(workouts))
	if err != nil {
		return "", fmt.Errorf("encoding workouts: %w", err)
	}
	return string(data), nil
}

// EncodeIndent is Encode with two-space indentation, used for exports.
func EncodeIndent(workouts []domain.Workout) (string, error) {
	data, err := json.MarshalIndent(toWire(workouts), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding workouts: %w", err)
	}
	return string(data) + "\n", nil
}

func toWire(workouts []domain.Workout) []outWorkout {
	out := make([]outWorkout, len(workouts))
	for i, w := range workouts {
		out[i] = outWorkout{
			ID:       w.ID,
			Type:     w.Type,
			Duration: w.DurationMin,
			Distance: domain.SanitizeDistance(w.DistanceMi),
			Date:     w.Unix(),
		}
	}
	return out
}
