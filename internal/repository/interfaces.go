package repository

import (
	"context"

	"github.com/alexanderramin/logbook/internal/domain"
)

// Well-known keys of the key-value store.
const (
	KeyLog          = "log"
	KeyRoundingUnit = "rounding_mins"
	// Shortcut keys are KeyShortcutPrefix followed by 1..9.
	KeyShortcutPrefix = "shortcut_"
)

// KVStore is the system of record for the raw log and the settings.
// Get returns ErrNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
}

// ExportRepo keeps the history of written reports.
type ExportRepo interface {
	Create(ctx context.Context, e *domain.ExportRecord) error
	List(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}
