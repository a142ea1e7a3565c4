package logparse

import (
	"testing"
	"unicode/utf8"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitRecord(t *testing.T) {
	cases := []struct {
		name string
		line string
		want domain.LogLine
	}{
		{
			name: "category and detail",
			line: "2024-01-01 09:00Work;Coding",
			want: domain.LogLine{Timestamp: "2024-01-01 09:00", Category: "Work", Detail: "Coding"},
		},
		{
			name: "category only",
			line: "2024-01-01 09:00Work",
			want: domain.LogLine{Timestamp: "2024-01-01 09:00", Category: "Work"},
		},
		{
			name: "detail keeps later separators",
			line: "2024-01-01 09:00Work;a;b",
			want: domain.LogLine{Timestamp: "2024-01-01 09:00", Category: "Work", Detail: "a;b"},
		},
		{
			name: "empty category",
			line: "2024-01-01 09:00;note",
			want: domain.LogLine{Timestamp: "2024-01-01 09:00", Detail: "note"},
		},
		{
			name: "shorter than a timestamp",
			line: "09:00",
			want: domain.LogLine{Timestamp: "09:00"},
		},
		{
			name: "separator inside the timestamp",
			line: "2024;01-01 09:00Work",
			want: domain.LogLine{Timestamp: "2024;01-01 09:00", Detail: "01-01 09:00Work"},
		},
		{
			name: "short timestamp followed by multibyte text",
			line: "2024-01-01 9:00作業;資料",
			want: domain.LogLine{Timestamp: "2024-01-01 9:00作", Category: "業", Detail: "資料"},
		},
		{
			name: "multibyte text without a timestamp",
			line: "会議中のメモ",
			want: domain.LogLine{Timestamp: "会議中のメモ"},
		},
		{
			name: "multibyte category",
			line: "2024-01-01 09:00作業;資料",
			want: domain.LogLine{Timestamp: "2024-01-01 09:00", Category: "作業", Detail: "資料"},
		},
		{
			name: "empty",
			line: "",
			want: domain.LogLine{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitRecord(tc.line)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got.Timestamp), "timestamp %q", got.Timestamp)
			assert.True(t, utf8.ValidString(got.Category), "category %q", got.Category)
		})
	}
}

func TestParse_MultibyteRecordsStayValidUTF8(t *testing.T) {
	s := Parse("2024-01-01 9:00作業;資料\n2024-01-01 10:00End", 1)

	for _, c := range s.Categories() {
		assert.True(t, utf8.ValidString(c.Name), "category %q", c.Name)
	}
	c, ok := s.Get("業")
	if assert.True(t, ok) {
		assert.Equal(t, []string{"資料"}, c.Details)
	}
}

func TestMinutesBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01-01 09:00", "2024-01-01 09:30", 30},
		{"2024-01-01 09:45", "2024-01-01 10:15", 30},
		{"2024-01-01 23:50", "2024-01-02 00:10", 20},
		{"2024-01-01 22:00", "2024-01-02 01:30", 210},
		{"2024-01-01 09:00", "2024-01-01 09:00", 0},
		{"2024-01-01 09:30", "2024-01-01 09:10", 1420},
		{"garbage", "2024-01-01 01:05", 65},
		{"", "", 0},
	}
	for _, tc := range cases {
		got := MinutesBetween(tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q -> %q", tc.a, tc.b)
		assert.GreaterOrEqual(t, got, 0)
	}
}

func TestMinutesBetween_NeverNegative(t *testing.T) {
	for h1 := 0; h1 < 24; h1 += 5 {
		for m1 := 0; m1 < 60; m1 += 7 {
			for h2 := 0; h2 < 24; h2 += 3 {
				for m2 := 0; m2 < 60; m2 += 11 {
					a := stamp(h1, m1)
					b := stamp(h2, m2)
					got := MinutesBetween(a, b)
					assert.GreaterOrEqual(t, got, 0, "%s -> %s", a, b)
					assert.Less(t, got, 24*60, "%s -> %s", a, b)
				}
			}
		}
	}
}

func stamp(h, m int) string {
	const digits = "0123456789"
	return "2024-01-01 " + string([]byte{digits[h/10], digits[h%10], ':', digits[m/10], digits[m%10]})
}
