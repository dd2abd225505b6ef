// Package codec reads and writes the serialized workout list stored under
// the "workouts" key.
//
// Stored data is hand-entered and may predate the current format, so
// decoding follows one coercion policy instead of failing:
//
//   - numbers may be JSON numbers or numeric strings ("2.5");
//   - a missing, null, empty or non-numeric distance becomes 0, and so
//     does a negative one; totals never subtract distance;
//   - a missing or non-numeric duration becomes 0, and a fractional
//     duration is truncated to whole minutes;
//   - a missing or non-numeric date becomes the zero time;
//   - an element that is not a JSON object is skipped and counted;
//   - a record without an id gets a UUIDv5 derived from its position,
//     date and type, so it keeps the same id until the next save writes it.
//
// Import files go through the same decoder but are additionally checked by
// ValidateImport, which reports every problem instead of coercing.
package codec

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// StorageKey is the blob store key holding the workout list.
const StorageKey = "workouts"

// wireWorkout is one element of the stored JSON array.
type wireWorkout struct {
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"workout_type"`
	Duration flexNumber `json:"duration"`
	Distance flexNumber `json:"distance"`
	Date     flexNumber `json:"date"`
}

// outWorkout is the encoded form. Numbers are always written as numbers.
type outWorkout struct {
	ID       string  `json:"id"`
	Type     string  `json:"workout_type"`
	Duration int     `json:"duration"`
	Distance float64 `json:"distance"`
	Date     int64   `json:"date"`
}

// flexNumber accepts a JSON number or a numeric string. Anything else
// leaves Valid false and Value 0. Null counts as absent.
type flexNumber struct {
	Value   float64
	Valid   bool
	Present bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	n.Present = true
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.Value, n.Valid = v, true
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		n.Value, n.Valid = v, true
	}
	return nil
}
