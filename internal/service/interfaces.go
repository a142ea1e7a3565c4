package service

import (
	"context"

	"github.com/alexanderramin/logbook/internal/domain"
)

type LogService interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) (string, error)
	Append(ctx context.Context, tag string) (string, error)
	Clear(ctx context.Context) error
}

type SettingsService interface {
	Language() string
	RoundingUnit(ctx context.Context) (int, error)
	SetRoundingUnit(ctx context.Context, unit int) error
	Shortcut(ctx context.Context, n int) (string, error)
	SetShortcut(ctx context.Context, n int, tag string) error
	Shortcuts(ctx context.Context) ([]string, error)
	Update(ctx context.Context, s Settings) error
}

type ReportService interface {
	Render(ctx context.Context, format domain.ReportFormat) (string, error)
	Summary(ctx context.Context) (*domain.Summary, int, error)
}

type ExportService interface {
	Export(ctx context.Context, format domain.ReportFormat, dir string) (string, error)
	Copy(ctx context.Context, format domain.ReportFormat) error
	List(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}

// Settings is the full set of user preferences edited together.
type Settings struct {
	RoundingUnit int
	Shortcuts    [ShortcutCount]string
}
