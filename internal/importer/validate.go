// Package importer checks log text before it replaces the stored log.
package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/logbook/internal/logparse"
)

// LineError is a problem found in one record. Line is 1-based.
type LineError struct {
	Line   int
	Record string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ValidateLog checks every record of text and returns all problems found.
// Parsing never fails on these records; the checks only point out lines
// whose durations are likely not what the user meant. An empty log is
// valid.
func ValidateLog(text string) []error {
	if text == "" {
		return nil
	}

	var errs []error
	var prev time.Time
	prevLine := 0

	for i, record := range strings.Split(text, logparse.RecordSeparator) {
		line := i + 1
		if strings.TrimSpace(record) == "" {
			errs = append(errs, &LineError{Line: line, Record: record, Reason: "blank record"})
			continue
		}
		if len(record) < logparse.TimestampLength {
			errs = append(errs, &LineError{Line: line, Record: record,
				Reason: fmt.Sprintf("record is shorter than the %d-character timestamp", logparse.TimestampLength)})
			continue
		}

		ll := logparse.SplitRecord(record)
		ts, err := time.Parse(logparse.TimestampLayout, ll.Timestamp)
		if err != nil {
			errs = append(errs, &LineError{Line: line, Record: record,
				Reason: fmt.Sprintf("invalid timestamp %q (expected YYYY-MM-DD HH:MM)", ll.Timestamp)})
		}
		if ll.Category == "" {
			errs = append(errs, &LineError{Line: line, Record: record, Reason: "empty category"})
		}

		if err != nil {
			continue
		}
		if prevLine > 0 && ts.Before(prev) {
			errs = append(errs, &LineError{Line: line, Record: record,
				Reason: fmt.Sprintf("%s is earlier than line %d; the gap is counted as crossing midnight", ll.Timestamp, prevLine)})
		}
		prev, prevLine = ts, line
	}

	return errs
}
