package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/google/uuid"
)

// SampleLog is a short day with one break, used across packages.
const SampleLog = "2024-01-01 09:00Work;Coding\n" +
	"2024-01-01 09:30Work;Review\n" +
	"2024-01-01 10:00^Break;Coffee\n" +
	"2024-01-01 10:15Work;Coding"

// Clock is a manually advanced clock for services that stamp entries.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock fixed at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fixed time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// ExportOption customizes a test export record.
type ExportOption func(*domain.ExportRecord)

func WithExportFormat(f domain.ReportFormat) ExportOption {
	return func(e *domain.ExportRecord) {
		e.Format = f
	}
}

func WithCreatedAt(t time.Time) ExportOption {
	return func(e *domain.ExportRecord) {
		e.CreatedAt = t
	}
}

// NewTestExport builds an export record with a fresh ID.
func NewTestExport(filename string, opts ...ExportOption) *domain.ExportRecord {
	e := &domain.ExportRecord{
		ID:        uuid.New().String(),
		Filename:  filename,
		Format:    domain.FormatHTML,
		Bytes:     128,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
