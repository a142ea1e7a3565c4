package repository

import (
	"time"
)

// timeLayout is how timestamps are stored, in UTC. The fixed-width
// fraction keeps stored values sortable as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseStoredTime parses a stored timestamp, returning the zero time when
// the value is empty or malformed.
func parseStoredTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatStoredTime formats t for storage.
func formatStoredTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatStoredTime(time.Now())
}
