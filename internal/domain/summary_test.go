package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_EnsureKeepsFirstSeenOrder(t *testing.T) {
	s := NewSummary()
	s.Ensure("Work")
	s.Ensure("^Break")
	s.Ensure("Work")
	s.Ensure("Admin")

	assert.Equal(t, []string{"Work", "^Break", "Admin"}, s.Names())
	assert.Equal(t, 3, s.Len())
}

func TestSummary_SortedIsCodeUnitOrder(t *testing.T) {
	s := NewSummary()
	for _, name := range []string{"work", "Work", "^Break", "@home"} {
		s.Ensure(name)
	}

	var names []string
	for _, c := range s.Sorted() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"@home", "Work", "^Break", "work"}, names)
	assert.Equal(t, []string{"work", "Work", "^Break", "@home"}, s.Names(), "sorting must not reorder the summary itself")
}

func TestSummary_SortedSupplementaryBeforeFullwidth(t *testing.T) {
	s := NewSummary()
	for _, name := range []string{"Ｗｏｒｋ", "😀Fun", "会議", "Work"} {
		s.Ensure(name)
	}

	var names []string
	for _, c := range s.Sorted() {
		names = append(names, c.Name)
	}
	// U+1F600 encodes as the surrogate 0xD83D, below U+FF37 but above U+4F1A.
	assert.Equal(t, []string{"Work", "会議", "😀Fun", "Ｗｏｒｋ"}, names)
}

func TestSummary_TotalsExcludeBreaks(t *testing.T) {
	s := NewSummary()
	s.Ensure("Work").TotalMinutes = 45
	s.Ensure("^Break").TotalMinutes = 15
	s.Ensure("^Lunch").TotalMinutes = 60

	sum, total := s.Totals()
	assert.Equal(t, 45, sum)
	assert.Equal(t, 120, total)
	assert.Equal(t, 75, total-sum)
}

func TestSummary_Get(t *testing.T) {
	s := NewSummary()
	s.Ensure("Work").Details = []string{"Coding", "Review"}

	c, ok := s.Get("Work")
	require.True(t, ok)
	assert.Equal(t, "Coding, Review", c.Detail())

	_, ok = s.Get("work")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestIsBreak(t *testing.T) {
	assert.True(t, IsBreak("^Break"))
	assert.True(t, IsBreak("^"))
	assert.False(t, IsBreak("Break^"))
	assert.False(t, IsBreak(""))
}
