package domain

import "math"

// Stored data may be partially corrupt. Aggregation never fails on a bad
// record; instead these helpers map unusable numbers to zero so a single
// record can only skew a total, not break it.

// SanitizeDistance maps NaN, infinities and negative values to 0.
func SanitizeDistance(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SanitizeDuration maps negative minute counts to 0.
func SanitizeDuration(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
