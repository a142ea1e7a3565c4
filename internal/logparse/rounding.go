package logparse

import (
	"strconv"
	"strings"
)

// DefaultRoundingUnit is used whenever the configured unit is unusable.
const DefaultRoundingUnit = 1

// RoundingUnits lists the accepted rounding units in minutes.
var RoundingUnits = []int{1, 5, 10, 15, 30, 60}

// ValidRoundingUnit reports whether v is one of RoundingUnits.
func ValidRoundingUnit(v int) bool {
	for _, u := range RoundingUnits {
		if u == v {
			return true
		}
	}
	return false
}

// NormalizeRoundingUnit returns v when it is an accepted unit and
// DefaultRoundingUnit otherwise.
func NormalizeRoundingUnit(v int) int {
	if ValidRoundingUnit(v) {
		return v
	}
	return DefaultRoundingUnit
}

// ParseRoundingUnit normalizes a stored or user supplied value. Missing
// and non-numeric input resolve to DefaultRoundingUnit.
func ParseRoundingUnit(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return NormalizeRoundingUnit(n)
	}
	// "15.0" and similar numeric spellings still name a unit.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return DefaultRoundingUnit
	}
	return NormalizeRoundingUnit(int(f))
}

// RoundHours converts minutes to hours. Whole hours are kept as they are;
// the sub-hour remainder is rounded half-up to the nearest multiple of
// unit and expressed as a fraction of an hour with two decimal places.
func RoundHours(minutes, unit int) float64 {
	unit = NormalizeRoundingUnit(unit)
	if minutes < 0 {
		minutes = 0
	}
	whole := minutes / 60
	rem := minutes % 60

	steps := (2*rem + unit) / (2 * unit)
	// Hundredths of an hour, rounded half-up: steps*unit/60 to 2 places.
	hundredths := (steps*unit*100*2 + 60) / 120

	return float64(whole*100+hundredths) / 100
}

// FormatHours renders hours in their shortest decimal form: 1, 0.75, 1.5.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
