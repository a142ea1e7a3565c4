package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/repository"
	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter func(text string) error

// SystemClipboard writes through the platform clipboard utility.
var SystemClipboard ClipboardWriter = clipboard.WriteAll

type exportService struct {
	reports   ReportService
	exports   repository.ExportRepo
	lang      string
	now       func() time.Time
	clipboard ClipboardWriter
	observer  UseCaseObserver
}

// NewExportService creates an ExportService. A nil now means time.Now and
// a nil clip means SystemClipboard.
func NewExportService(
	reports ReportService,
	exports repository.ExportRepo,
	lang string,
	now func() time.Time,
	clip ClipboardWriter,
	observers ...UseCaseObserver,
) ExportService {
	if now == nil {
		now = time.Now
	}
	if clip == nil {
		clip = SystemClipboard
	}
	return &exportService{
		reports:   reports,
		exports:   exports,
		lang:      lang,
		now:       now,
		clipboard: clip,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Export renders format into dir and records it in the history. It
// returns the written path.
func (s *exportService) Export(ctx context.Context, format domain.ReportFormat, dir string) (path string, err error) {
	startedAt := timeNow()
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "export-report", startedAt, fields, &err)

	content, err := s.reports.Render(ctx, format)
	if err != nil {
		return "", err
	}

	now := s.now()
	name := ExportFilename(i18n.Translate(s.lang, "app_name"), now, format)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path = filepath.Join(dir, name)
	if err = os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	fields["path"] = path

	rec := &domain.ExportRecord{
		ID:        uuid.New().String(),
		Filename:  name,
		Format:    format,
		Bytes:     len(content),
		CreatedAt: now.UTC(),
	}
	if err = s.exports.Create(ctx, rec); err != nil {
		return "", err
	}
	return path, nil
}

// Copy renders format and puts it on the clipboard.
func (s *exportService) Copy(ctx context.Context, format domain.ReportFormat) (err error) {
	startedAt := timeNow()
	defer observe(ctx, s.observer, "copy-report", startedAt, map[string]any{"format": string(format)}, &err)

	content, err := s.reports.Render(ctx, format)
	if err != nil {
		return err
	}
	if err = s.clipboard(content); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

func (s *exportService) List(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	return s.exports.List(ctx, limit)
}

// ExportFilename builds "<app>_<YYYY-MM-DD>.<ext>" with blanks in the app
// name replaced by underscores.
func ExportFilename(appName string, day time.Time, format domain.ReportFormat) string {
	app := strings.Join(strings.Fields(appName), "_")
	return fmt.Sprintf("%s_%s.%s", app, day.Format("2006-01-02"), format.Extension())
}
