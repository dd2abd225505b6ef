package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/google/uuid"
)

// legacyNamespace seeds ids for records stored before ids existed.
var legacyNamespace = uuid.MustParse("6f1c3b2e-5d1a-4c59-9a0e-7b6f3e2d8c41")

// DecodeResult is the outcome of decoding a stored blob.
type DecodeResult struct {
	Workouts []domain.Workout
	// Skipped counts array elements that were not objects.
	Skipped int
	// Legacy counts records that had no stored id.
	Legacy int
}

// Decode parses a stored blob. An empty blob is an empty list. Only a blob
// that is not a JSON array is an error.
func Decode(blob string) (*DecodeResult, error) {
	res := &DecodeResult{}
	if strings.TrimSpace(blob) == "" {
		return res, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	for i, elem := range raw {
		var ww wireWorkout
		if !isObject(elem) || json.Unmarshal(elem, &ww) != nil {
			res.Skipped++
			continue
		}
		w := ww.toDomain()
		if w.ID == "" {
			w.ID = legacyID(i, ww)
			res.Legacy++
		}
		if seen[w.ID] {
			w.ID = uuid.NewSHA1(legacyNamespace, []byte(fmt.Sprintf("dup:%d:%s", i, w.ID))).String()
		}
		seen[w.ID] = true
		res.Workouts = append(res.Workouts, w)
	}
	return res, nil
}

// DecodeCollection decodes a blob straight into a Collection.
func DecodeCollection(blob string) (*domain.Collection, *DecodeResult, error) {
	res, err := Decode(blob)
	if err != nil {
		return nil, nil, err
	}
	col, err := domain.NewCollection(res.Workouts...)
	if err != nil {
		return nil, nil, err
	}
	return col, res, nil
}

func (ww wireWorkout) toDomain() domain.Workout {
	w := domain.Workout{
		ID:   strings.TrimSpace(ww.ID),
		Type: ww.Type,
	}
	if ww.Duration.Valid && !math.IsNaN(ww.Duration.Value) && !math.IsInf(ww.Duration.Value, 0) {
		w.DurationMin = int(math.Trunc(ww.Duration.Value))
	}
	if ww.Distance.Valid {
		w.DistanceMi = domain.SanitizeDistance(ww.Distance.Value)
	}
	if ww.Date.Valid && !math.IsNaN(ww.Date.Value) && !math.IsInf(ww.Date.Value, 0) {
		w.Date = time.Unix(int64(ww.Date.Value), 0).UTC()
	}
	return w
}

func legacyID(index int, ww wireWorkout) string {
	key := fmt.Sprintf("%d:%d:%s", index, int64(ww.Date.Value), ww.Type)
	return uuid.NewSHA1(legacyNamespace, []byte(key)).String()
}

func isObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "{")
}
