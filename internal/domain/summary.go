package domain

import (
	"sort"
	"strings"
	"unicode/utf16"
)

// DetailSeparator joins deduplicated details for display.
const DetailSeparator = ", "

// CategoryAggregate holds the computed totals for one category.
type CategoryAggregate struct {
	Name         string
	TotalMinutes int
	Details      []string
	RoundedHours float64
}

// Detail returns the deduplicated details joined for display.
func (c *CategoryAggregate) Detail() string {
	return strings.Join(c.Details, DetailSeparator)
}

// Summary is an insertion-ordered set of category aggregates. Categories
// appear in the order they were first seen in the log.
type Summary struct {
	order []string
	byKey map[string]*CategoryAggregate
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{byKey: make(map[string]*CategoryAggregate)}
}

// Ensure returns the aggregate for name, creating it at the end of the
// iteration order when it does not exist yet.
func (s *Summary) Ensure(name string) *CategoryAggregate {
	if c, ok := s.byKey[name]; ok {
		return c
	}
	c := &CategoryAggregate{Name: name}
	s.byKey[name] = c
	s.order = append(s.order, name)
	return c
}

// Get looks up a category by exact name.
func (s *Summary) Get(name string) (*CategoryAggregate, bool) {
	c, ok := s.byKey[name]
	return c, ok
}

// Len returns the number of categories.
func (s *Summary) Len() int {
	return len(s.order)
}

// Names returns category names in first-seen order.
func (s *Summary) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Categories returns aggregates in first-seen order.
func (s *Summary) Categories() []*CategoryAggregate {
	out := make([]*CategoryAggregate, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byKey[name])
	}
	return out
}

// Sorted returns aggregates ordered by category name, comparing UTF-16
// code units like a JavaScript default sort. This equals byte order except
// between supplementary-plane characters and U+E000..U+FFFF.
func (s *Summary) Sorted() []*CategoryAggregate {
	out := s.Categories()
	sort.SliceStable(out, func(i, j int) bool { return lessUTF16(out[i].Name, out[j].Name) })
	return out
}

func lessUTF16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

// Totals returns the minutes spent on actual work (break categories
// excluded) and the minutes across every category.
func (s *Summary) Totals() (sum, total int) {
	for _, c := range s.byKey {
		if !IsBreak(c.Name) {
			sum += c.TotalMinutes
		}
		total += c.TotalMinutes
	}
	return sum, total
}
