package domain

import (
	"fmt"
	"strings"
)

// SortCriterion names a display ordering for the workout list.
type SortCriterion string

const (
	SortDateDescending   SortCriterion = "dateDescending"
	SortDateAscending    SortCriterion = "dateAscending"
	SortDistanceLongest  SortCriterion = "distanceLongest"
	SortDistanceShortest SortCriterion = "distanceShortest"
)

// SortCriteria lists the known criteria in picker order.
var SortCriteria = []SortCriterion{
	SortDateDescending,
	SortDateAscending,
	SortDistanceLongest,
	SortDistanceShortest,
}

var sortAliases = map[string]SortCriterion{
	"datedescending":   SortDateDescending,
	"date-desc":        SortDateDescending,
	"dateascending":    SortDateAscending,
	"date-asc":         SortDateAscending,
	"distancelongest":  SortDistanceLongest,
	"distance-desc":    SortDistanceLongest,
	"distanceshortest": SortDistanceShortest,
	"distance-asc":     SortDistanceShortest,
}

// ParseSortCriterion accepts the canonical names (case-insensitive) and the
// short aliases date-desc, date-asc, distance-desc and distance-asc.
func ParseSortCriterion(s string) (SortCriterion, error) {
	if c, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown sort %q (valid: %s)", s, strings.Join(sortCriterionNames(), ", "))
}

// Label is the picker text for the criterion.
func (c SortCriterion) Label() string {
	switch c {
	case SortDateDescending:
		return "Date (Most Recent)"
	case SortDateAscending:
		return "Date (Oldest)"
	case SortDistanceLongest:
		return "Distance (Longest)"
	case SortDistanceShortest:
		return "Distance (Shortest)"
	default:
		return string(c)
	}
}

// Next cycles through SortCriteria; unknown criteria restart at the first one.
func (c SortCriterion) Next() SortCriterion {
	for i, known := range SortCriteria {
		if known == c {
			return SortCriteria[(i+1)%len(SortCriteria)]
		}
	}
	return SortCriteria[0]
}

func sortCriterionNames() []string {
	names := make([]string, len(SortCriteria))
	for i, c := range SortCriteria {
		names[i] = string(c)
	}
	return names
}
