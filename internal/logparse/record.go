package logparse

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/logbook/internal/domain"
)

const (
	// TimestampLength is the fixed width of the timestamp prefix.
	TimestampLength = 16

	// FieldSeparator splits the category from the detail.
	FieldSeparator = ";"

	// RecordSeparator splits records.
	RecordSeparator = "\n"

	// TimestampLayout is the layout new entries are stamped with.
	TimestampLayout = "2006-01-02 15:04"
)

// SplitRecord slices one record into timestamp, category and detail.
// The timestamp is the first TimestampLength characters, not bytes, so a
// malformed record is never cut inside a multibyte character. Short or
// malformed records are sliced the same way and never rejected.
func SplitRecord(line string) domain.LogLine {
	tsEnd := runeOffset(line, TimestampLength)
	ll := domain.LogLine{Timestamp: line[:tsEnd]}

	junction := strings.Index(line, FieldSeparator)
	if junction < 0 {
		ll.Category = line[tsEnd:]
		return ll
	}
	if junction > tsEnd {
		ll.Category = line[tsEnd:junction]
	}
	ll.Detail = line[junction+len(FieldSeparator):]
	return ll
}

// MinutesBetween returns the minutes elapsed from timestamp a to b. Only
// the hour and minute fields are read, so a b that looks earlier than a
// is taken to be on the following day.
func MinutesBetween(a, b string) int {
	hours := clockField(b, 11) - clockField(a, 11)
	if hours < 0 {
		hours += 24
	}
	mins := clockField(b, 14) - clockField(a, 14)
	if mins < 0 {
		hours--
		mins += 60
	}
	// 09:30 -> 09:10 borrows below zero; that is also a day rollover.
	if hours < 0 {
		hours += 24
	}
	return hours*60 + mins
}

// clockField reads the two-digit number at offset in a timestamp. An
// unreadable field counts as zero.
func clockField(ts string, offset int) int {
	n, err := strconv.Atoi(clip(ts, offset, offset+2))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// clip returns the characters of s from index from up to to, with both
// bounds clamped to the string, and "" when the range is empty or inverted.
func clip(s string, from, to int) string {
	if from >= to {
		return ""
	}
	return s[runeOffset(s, from):runeOffset(s, to)]
}

// runeOffset returns the byte offset of the n-th character of s, or len(s)
// when s has fewer characters.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
