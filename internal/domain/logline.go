package domain

// BreakMark prefixes categories that are not counted as actual work.
const BreakMark = "^"

// LogLine is one record of the raw log split into its fixed-width parts.
// It is derived on every parse and never stored.
type LogLine struct {
	Timestamp string
	Category  string
	Detail    string
}

// IsBreak reports whether the category carries the break marker.
func IsBreak(category string) bool {
	return len(category) > 0 && category[:1] == BreakMark
}
