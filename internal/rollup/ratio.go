// Package rollup derives the summary metrics shown across views from raw
// records: financial totals, habit completion, key-result progress, project
// completion and the dashboard snapshot. Every function is pure — records in,
// metrics out — so the whole layer is testable without a database or session.
package rollup

import "math"

// SafePercent returns part/whole*100, or 0 when whole is zero. It is the
// single divide-by-zero guard for every ratio in this package; NaN and Inf
// never leave the rollup layer.
func SafePercent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Clamp restricts v to the [lo, hi] range
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundPercent rounds a percentage to the nearest integer
func RoundPercent(v float64) int {
	return int(math.Round(v))
}
