package logparse

import (
	"strings"

	"github.com/alexanderramin/logbook/internal/domain"
)

// Parse aggregates a raw log into a summary using the given rounding unit
// (normalized with NormalizeRoundingUnit).
//
// Every record registers its category and detail; the minutes up to the
// next record are added to its category, so the last record contributes
// a category but no time. Empty text is a single empty record and yields
// one empty category with zero minutes.
func Parse(text string, unit int) *domain.Summary {
	unit = NormalizeRoundingUnit(unit)

	records := strings.Split(text, RecordSeparator)
	lines := make([]domain.LogLine, 0, len(records))
	summary := domain.NewSummary()
	for _, rec := range records {
		ll := SplitRecord(rec)
		lines = append(lines, ll)
		c := summary.Ensure(ll.Category)
		c.Details = append(c.Details, ll.Detail)
	}

	for i := 1; i < len(lines); i++ {
		prev := lines[i-1]
		c, _ := summary.Get(prev.Category)
		c.TotalMinutes += MinutesBetween(prev.Timestamp, lines[i].Timestamp)
	}

	for _, c := range summary.Categories() {
		c.Details = dedupe(c.Details)
		c.RoundedHours = RoundHours(c.TotalMinutes, unit)
	}
	return summary
}

// dedupe drops repeated strings, keeping the first occurrence of each.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
