package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/logparse"
	"github.com/alexanderramin/logbook/internal/report"
	lru "github.com/hashicorp/golang-lru/v2"
)

type reportService struct {
	logs     LogService
	settings SettingsService
	cache    *lru.Cache[string, string]
	observer UseCaseObserver
}

// NewReportService creates a ReportService that memoizes up to cacheSize
// rendered reports. A cacheSize of zero disables the cache.
func NewReportService(logs LogService, settings SettingsService, cacheSize int, observers ...UseCaseObserver) (ReportService, error) {
	s := &reportService{
		logs:     logs,
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, string](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating report cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

func (s *reportService) Render(ctx context.Context, format domain.ReportFormat) (out string, err error) {
	startedAt := timeNow()
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "render-report", startedAt, fields, &err)

	text, err := s.logs.Load(ctx)
	if err != nil {
		return "", err
	}
	unit, err := s.settings.RoundingUnit(ctx)
	if err != nil {
		return "", err
	}
	lang := s.settings.Language()

	key := fmt.Sprintf("%s|%d|%s|%s", format, unit, lang, contentHash(text))
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			fields["cached"] = true
			return cached, nil
		}
	}

	labels := i18n.LabelsFor(lang)
	switch format {
	case domain.FormatHTML:
		out = report.ToHTML(text, unit, labels)
	case domain.FormatMarkdown:
		out = report.ToMarkdown(text, unit, labels)
	case domain.FormatText:
		out = report.ToPlaintext(text)
	case domain.FormatPage:
		out = report.Page(text, unit, labels)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if s.cache != nil {
		s.cache.Add(key, out)
	}
	return out, nil
}

// Summary parses the current log with the stored rounding unit and
// returns both.
func (s *reportService) Summary(ctx context.Context) (*domain.Summary, int, error) {
	text, err := s.logs.Load(ctx)
	if err != nil {
		return nil, 0, err
	}
	unit, err := s.settings.RoundingUnit(ctx)
	if err != nil {
		return nil, 0, err
	}
	return logparse.Parse(text, unit), unit, nil
}
