package app

import (
	"time"

	"github.com/alexanderramin/fitlog/internal/stats"
)

type StatsRequest struct {
	// Days caps the per-day chart. Zero or less selects the default.
	Days int
	// Location decides where one day ends. Nil means local time.
	Location *time.Location
	// TypeFilter restricts every figure to one workout type when set.
	TypeFilter string
	Now        *time.Time
}

func NewStatsRequest() StatsRequest {
	return StatsRequest{
		Days:     stats.DefaultChartDays,
		Location: time.Local,
	}
}

type StatsResponse struct {
	GeneratedAt time.Time
	Summary     stats.Summary
	ByType      []stats.TypeCount
	ByDay       []stats.DayDuration
}
