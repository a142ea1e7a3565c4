package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/logbook/internal/repository"
	"github.com/alexanderramin/logbook/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

type fixture struct {
	store    *repository.SQLiteKVStore
	exports  *repository.SQLiteExportRepo
	clock    *testutil.Clock
	logs     LogService
	settings SettingsService
	reports  ReportService
	observer *recordingObserver
}

func newFixture(t *testing.T, lang string) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &fixture{
		store:    repository.NewSQLiteKVStore(database),
		exports:  repository.NewSQLiteExportRepo(database),
		clock:    testutil.NewClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		observer: &recordingObserver{},
	}
	f.logs = NewLogService(f.store, f.clock.Now, f.observer)
	f.settings = NewSettingsService(f.store, lang, f.observer)
	reports, err := NewReportService(f.logs, f.settings, 8, f.observer)
	if err != nil {
		t.Fatalf("creating report service: %v", err)
	}
	f.reports = reports
	return f
}
