package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Fast_logbook_2024-03-09.html", ExportFilename("Fast logbook", day, domain.FormatHTML))
	assert.Equal(t, "Fast_logbook_2024-03-09.md", ExportFilename("Fast logbook", day, domain.FormatMarkdown))
	assert.Equal(t, "log_2024-03-09.txt", ExportFilename("log", day, domain.FormatText))
	assert.Equal(t, "log_2024-03-09.html", ExportFilename("log", day, domain.FormatPage))
}

func TestExportService_ExportWritesFileAndHistory(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	svc := NewExportService(f.reports, f.exports, "en", f.clock.Now, nil, f.observer)
	dir := filepath.Join(t.TempDir(), "out")

	path, err := svc.Export(ctx, domain.FormatMarkdown, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Fast_logbook_2024-01-01.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Work | Coding, Review | 1 | 60")

	history, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Fast_logbook_2024-01-01.md", history[0].Filename)
	assert.Equal(t, domain.FormatMarkdown, history[0].Format)
	assert.Equal(t, len(data), history[0].Bytes)
	assert.NotEmpty(t, history[0].ID)
}

func TestExportService_ExportRejectsTable(t *testing.T) {
	f := newFixture(t, "en")
	svc := NewExportService(f.reports, f.exports, "en", f.clock.Now, nil)

	_, err := svc.Export(context.Background(), domain.FormatTable, t.TempDir())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	history, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExportService_Copy(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()
	_, err := f.logs.Save(ctx, testutil.SampleLog)
	require.NoError(t, err)

	var copied string
	clip := func(text string) error {
		copied = text
		return nil
	}
	svc := NewExportService(f.reports, f.exports, "en", f.clock.Now, clip)

	require.NoError(t, svc.Copy(ctx, domain.FormatText))
	assert.Equal(t, testutil.SampleLog, copied)
}

func TestExportService_CopyFailure(t *testing.T) {
	f := newFixture(t, "en")
	clip := func(string) error { return errors.New("no clipboard utility") }
	svc := NewExportService(f.reports, f.exports, "en", f.clock.Now, clip, f.observer)

	err := svc.Copy(context.Background(), domain.FormatHTML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard")

	names := f.observer.names()
	assert.Equal(t, "copy-report", names[len(names)-1])
}
