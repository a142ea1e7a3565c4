package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/logbook/internal/logparse"
	"github.com/alexanderramin/logbook/internal/repository"
)

type logService struct {
	store    repository.KVStore
	now      func() time.Time
	observer UseCaseObserver
}

// NewLogService creates a LogService. now supplies the stamp time for
// Append; nil means time.Now.
func NewLogService(store repository.KVStore, now func() time.Time, observers ...UseCaseObserver) LogService {
	if now == nil {
		now = time.Now
	}
	return &logService{
		store:    store,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Load returns the stored log, or "" when nothing has been saved yet.
func (s *logService) Load(ctx context.Context) (string, error) {
	text, err := s.store.Get(ctx, repository.KeyLog)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("loading log: %w", err)
	}
	return text, nil
}

// Save stores text after TrimNewlines and returns what was stored.
func (s *logService) Save(ctx context.Context, text string) (saved string, err error) {
	startedAt := timeNow()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "save-log", startedAt, fields, &err)

	saved = TrimNewlines(text)
	fields["bytes"] = len(saved)
	if err = s.store.Set(ctx, repository.KeyLog, saved); err != nil {
		return "", fmt.Errorf("saving log: %w", err)
	}
	return saved, nil
}

// Append stamps tag with the current minute and adds it as the last
// record. It returns the new log.
func (s *logService) Append(ctx context.Context, tag string) (text string, err error) {
	startedAt := timeNow()
	fields := map[string]any{"tag": tag}
	defer observe(ctx, s.observer, "append-log", startedAt, fields, &err)

	if strings.TrimSpace(tag) == "" {
		return "", ErrEmptyTag
	}

	current, err := s.Load(ctx)
	if err != nil {
		return "", err
	}

	text = TrimNewlines(current + "\n" + Stamp(s.now(), tag))
	if err = s.store.Set(ctx, repository.KeyLog, text); err != nil {
		return "", fmt.Errorf("saving log: %w", err)
	}
	return text, nil
}

func (s *logService) Clear(ctx context.Context) (err error) {
	startedAt := timeNow()
	defer observe(ctx, s.observer, "clear-log", startedAt, nil, &err)

	if err = s.store.Delete(ctx, repository.KeyLog); err != nil {
		return fmt.Errorf("clearing log: %w", err)
	}
	return nil
}

// Stamp prefixes tag with the local date and minute of t. There is no
// separator: the timestamp is fixed-width.
func Stamp(t time.Time, tag string) string {
	return t.Format(logparse.TimestampLayout) + tag
}

var newlineRuns = regexp.MustCompile(`\n{2,}`)

// TrimNewlines collapses blank lines and then removes a single leading
// newline, or failing that a single trailing one.
func TrimNewlines(text string) string {
	text = newlineRuns.ReplaceAllString(text, "\n")
	if strings.HasPrefix(text, "\n") {
		return text[1:]
	}
	return strings.TrimSuffix(text, "\n")
}
