package stats

import (
	"fmt"
	"math/rand"

	"github.com/alexanderramin/fitlog/internal/domain"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomWorkouts generates n workouts. With uniqueDates every date differs.
func randomWorkouts(rng *rand.Rand, n int, uniqueDates bool) []domain.Workout {
	types := domain.WorkoutTypes
	base := int64(1727000000)
	used := make(map[int64]bool)
	out := make([]domain.Workout, 0, n)
	for i := 0; i < n; i++ {
		date := base + int64(rng.Intn(30*86400))
		if uniqueDates {
			for used[date] {
				date++
			}
			used[date] = true
		}
		out = append(out, makeWorkout(
			fmt.Sprintf("w-%d", i),
			types[rng.Intn(len(types))],
			rng.Intn(180)+1,
			float64(rng.Intn(200))/10,
			date,
		))
	}
	return out
}
