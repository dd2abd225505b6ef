package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortCriterion(t *testing.T) {
	cases := map[string]SortCriterion{
		"dateDescending":   SortDateDescending,
		"DATEASCENDING":    SortDateAscending,
		" distanceLongest": SortDistanceLongest,
		"distanceShortest": SortDistanceShortest,
		"date-desc":        SortDateDescending,
		"date-asc":         SortDateAscending,
		"distance-desc":    SortDistanceLongest,
		"distance-asc":     SortDistanceShortest,
	}
	for in, want := range cases {
		got, err := ParseSortCriterion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseSortCriterion_Unknown(t *testing.T) {
	_, err := ParseSortCriterion("alphabetical")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateDescending")
}

func TestSortCriterion_Next(t *testing.T) {
	assert.Equal(t, SortDateAscending, SortDateDescending.Next())
	assert.Equal(t, SortDateDescending, SortDistanceShortest.Next())
	assert.Equal(t, SortDateDescending, SortCriterion("bogus").Next())
}

func TestSortCriterion_Label(t *testing.T) {
	assert.Equal(t, "Date (Most Recent)", SortDateDescending.Label())
	assert.Equal(t, "bogus", SortCriterion("bogus").Label())
}
