package app

import "github.com/alexanderramin/fitlog/internal/domain"

type ListWorkoutsRequest struct {
	Sort       domain.SortCriterion
	TypeFilter string
}

type ImportMode int

const (
	// ImportAppend adds imported workouts after the existing history.
	ImportAppend ImportMode = iota
	// ImportReplace discards the existing history first.
	ImportReplace
)

type ImportRequest struct {
	Data []byte
	Mode ImportMode
}

type ImportResult struct {
	Imported int
	// Skipped counts array elements that were not workout objects.
	Skipped int
	// Renamed counts imported workouts whose id collided with an existing one.
	Renamed int
	Total   int
}
