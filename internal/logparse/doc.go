// Package logparse turns raw log text into per-category time totals.
//
// A log is a sequence of "\n"-separated records. Each record starts with a
// fixed-width 16 byte timestamp ("YYYY-MM-DD HH:MM") followed by a
// category and an optional ";detail" suffix:
//
//	2024-01-01 09:00Work;Coding
//	2024-01-01 09:30Work;Review
//	2024-01-01 10:00^Break;Coffee
//
// The time between two consecutive records is attributed to the category
// of the earlier one. Parsing is total: malformed records produce odd
// categories or zero durations, never errors.
package logparse
