package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_RenderMarkdown(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	out, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "Work | Coding, Review | 1 | 60\n^Break | Coffee | 0.25 | 15")
	assert.Contains(t, out, "Actual work： 1 h (60 min(s).)")
	assert.Contains(t, out, "Total： 1.25 h (75 min(s).)")
}

func TestReportService_RenderUsesRoundingUnit(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, "2024-01-01 09:00Work\n2024-01-01 09:20End")
	require.NoError(t, err)

	out, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "Work |  | 0.33 | 20")

	require.NoError(t, f.settings.SetRoundingUnit(ctx, 30))
	out, err = f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "Work |  | 0.5 | 20")
}

func TestReportService_RenderFormats(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	html, err := f.reports.Render(ctx, domain.FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, html, "<td>Coding, Review</td>")

	text, err := f.reports.Render(ctx, domain.FormatText)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleLog, text)

	page, err := f.reports.Render(ctx, domain.FormatPage)
	require.NoError(t, err)
	assert.Contains(t, page, "<!DOCTYPE html>")

	_, err = f.reports.Render(ctx, domain.FormatTable)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReportService_CacheInvalidatesOnNewText(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	first, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	again, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	var cached []bool
	for _, e := range f.observer.events {
		if e.Name == "render-report" {
			_, hit := e.Fields["cached"]
			cached = append(cached, hit)
		}
	}
	assert.Equal(t, []bool{false, true}, cached)

	_, err = f.logs.Append(ctx, "Review")
	require.NoError(t, err)
	changed, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
	assert.Contains(t, changed, "Review |  | 0 | 0")
}

func TestReportService_CacheDisabled(t *testing.T) {
	f := newFixture(t, "en")
	reports, err := NewReportService(f.logs, f.settings, 0)
	require.NoError(t, err)

	out, err := reports.Render(context.Background(), domain.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestReportService_Japanese(t *testing.T) {
	f := newFixture(t, "ja")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	out, err := f.reports.Render(ctx, domain.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "業務名")
	assert.Contains(t, out, "総計： 1.25 h (75 分)")
}

func TestReportService_Summary(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)
	require.NoError(t, f.settings.SetRoundingUnit(ctx, 15))

	s, unit, err := f.reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, unit)
	assert.Equal(t, []string{"Work", "^Break"}, s.Names())

	sum, total := s.Totals()
	assert.Equal(t, 60, sum)
	assert.Equal(t, 75, total)
}
