package logparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "2024-01-01 09:00Work;Coding\n" +
	"2024-01-01 09:30Work;Review\n" +
	"2024-01-01 10:00^Break;Coffee\n" +
	"2024-01-01 10:15Work;Coding"

func TestParse_SampleLog(t *testing.T) {
	s := Parse(sampleLog, 15)

	assert.Equal(t, []string{"Work", "^Break"}, s.Names())

	// 09:00->09:30 and 09:30->10:00 belong to Work, 10:00->10:15 to the
	// break; the final Work record only registers its detail.
	work, ok := s.Get("Work")
	require.True(t, ok)
	assert.Equal(t, 60, work.TotalMinutes)
	assert.Equal(t, "Coding, Review", work.Detail())
	assert.Equal(t, 1.0, work.RoundedHours)

	brk, ok := s.Get("^Break")
	require.True(t, ok)
	assert.Equal(t, 15, brk.TotalMinutes)
	assert.Equal(t, "Coffee", brk.Detail())
	assert.Equal(t, 0.25, brk.RoundedHours)

	sum, total := s.Totals()
	assert.Equal(t, 60, sum)
	assert.Equal(t, 75, total)
	assert.Equal(t, brk.TotalMinutes, total-sum)
}

func TestParse_LastRecordHasNoDuration(t *testing.T) {
	s := Parse("2024-01-01 09:00Work;a\n2024-01-01 17:00Home;commute", 1)

	home, ok := s.Get("Home")
	require.True(t, ok)
	assert.Equal(t, 0, home.TotalMinutes)
	assert.Equal(t, "commute", home.Detail())

	work, _ := s.Get("Work")
	assert.Equal(t, 480, work.TotalMinutes)
}

func TestParse_DetailDedupKeepsFirstSeenOrder(t *testing.T) {
	log := "2024-01-01 09:00Dev;a\n" +
		"2024-01-01 09:10Dev;b\n" +
		"2024-01-01 09:20Dev;a\n" +
		"2024-01-01 09:30Dev;c\n" +
		"2024-01-01 09:40Dev;b"

	dev, ok := Parse(log, 1).Get("Dev")
	require.True(t, ok)
	assert.Equal(t, "a, b, c", dev.Detail())
	assert.Equal(t, 40, dev.TotalMinutes)
}

func TestParse_CrossesMidnight(t *testing.T) {
	s := Parse("2024-01-01 23:50Night;deploy\n2024-01-02 00:10Sleep", 1)

	night, _ := s.Get("Night")
	assert.Equal(t, 20, night.TotalMinutes)
}

func TestParse_NoSeparatorMeansEmptyDetail(t *testing.T) {
	s := Parse("2024-01-01 09:00Meeting\n2024-01-01 09:45Meeting;retro", 1)

	m, ok := s.Get("Meeting")
	require.True(t, ok)
	assert.Equal(t, []string{"", "retro"}, m.Details)
	assert.Equal(t, ", retro", m.Detail())
	assert.Equal(t, 45, m.TotalMinutes)
}

func TestParse_CategoriesAreCaseSensitive(t *testing.T) {
	s := Parse("2024-01-01 09:00work\n2024-01-01 09:10Work\n2024-01-01 09:20x", 1)

	assert.Equal(t, []string{"work", "Work", "x"}, s.Names())
}

// Empty input is one empty record. Downstream renderers show it as a
// single blank row, so the degenerate entry is kept rather than dropped.
func TestParse_EmptyTextYieldsOneDegenerateEntry(t *testing.T) {
	s := Parse("", 1)

	require.Equal(t, 1, s.Len())
	c, ok := s.Get("")
	require.True(t, ok)
	assert.Equal(t, 0, c.TotalMinutes)
	assert.Equal(t, []string{""}, c.Details)
	assert.Equal(t, 0.0, c.RoundedHours)
}

func TestParse_MalformedRecordsDoNotFail(t *testing.T) {
	log := "short\n" +
		";only detail\n" +
		"2024-01-01 xx:yyBroken;clock\n" +
		"2024-01-01 10:00Work"

	var names []string
	require.NotPanics(t, func() {
		names = Parse(log, 1).Names()
	})
	assert.Equal(t, []string{"", "Broken", "Work"}, names)
}

func TestParse_InvalidUnitFallsBackToOneMinute(t *testing.T) {
	s := Parse("2024-01-01 09:00Work\n2024-01-01 09:07End", 20)

	work, _ := s.Get("Work")
	assert.Equal(t, 0.12, work.RoundedHours)
}

func TestParse_WindowsLineEndingsStayInDetail(t *testing.T) {
	s := Parse("2024-01-01 09:00Work;x\r\n2024-01-01 09:05End", 1)

	work, _ := s.Get("Work")
	assert.Equal(t, "x\r", work.Detail())
}
