package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/logparse"
	"github.com/alexanderramin/logbook/internal/repository"
)

// ShortcutCount is the number of shortcut slots, bound to digit keys 1-9.
const ShortcutCount = 9

type settingsService struct {
	store    repository.KVStore
	lang     string
	observer UseCaseObserver
}

func NewSettingsService(store repository.KVStore, lang string, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		store:    store,
		lang:     lang,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Language() string {
	return s.lang
}

// RoundingUnit returns the stored unit. An absent value is initialized to
// the default and an unusable one reads as the default.
func (s *settingsService) RoundingUnit(ctx context.Context) (int, error) {
	v, err := s.store.Get(ctx, repository.KeyRoundingUnit)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("reading rounding unit: %w", err)
		}
		def := strconv.Itoa(logparse.DefaultRoundingUnit)
		if err := s.store.Set(ctx, repository.KeyRoundingUnit, def); err != nil {
			return 0, fmt.Errorf("initializing rounding unit: %w", err)
		}
		return logparse.DefaultRoundingUnit, nil
	}
	return logparse.ParseRoundingUnit(v), nil
}

func (s *settingsService) SetRoundingUnit(ctx context.Context, unit int) (err error) {
	startedAt := timeNow()
	defer observe(ctx, s.observer, "set-rounding-unit", startedAt, map[string]any{"unit": unit}, &err)

	if !logparse.ValidRoundingUnit(unit) {
		return fmt.Errorf("%w: got %d", ErrInvalidRoundingUnit, unit)
	}
	if err = s.store.Set(ctx, repository.KeyRoundingUnit, strconv.Itoa(unit)); err != nil {
		return fmt.Errorf("saving rounding unit: %w", err)
	}
	return nil
}

// Shortcut returns slot n, falling back to the language's default tag
// when the slot was never set.
func (s *settingsService) Shortcut(ctx context.Context, n int) (string, error) {
	if err := checkShortcut(n); err != nil {
		return "", err
	}
	v, err := s.store.Get(ctx, shortcutKey(n))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return i18n.Translate(s.lang, shortcutKey(n)), nil
		}
		return "", fmt.Errorf("reading shortcut %d: %w", n, err)
	}
	return v, nil
}

func (s *settingsService) SetShortcut(ctx context.Context, n int, tag string) (err error) {
	startedAt := timeNow()
	defer observe(ctx, s.observer, "set-shortcut", startedAt, map[string]any{"slot": n}, &err)

	if err = checkShortcut(n); err != nil {
		return err
	}
	if err = s.store.Set(ctx, shortcutKey(n), strings.TrimSpace(tag)); err != nil {
		return fmt.Errorf("saving shortcut %d: %w", n, err)
	}
	return nil
}

// Shortcuts returns all slots in order; index 0 is slot 1.
func (s *settingsService) Shortcuts(ctx context.Context) ([]string, error) {
	out := make([]string, ShortcutCount)
	for i := range out {
		v, err := s.Shortcut(ctx, i+1)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Update writes the rounding unit and every shortcut in one batch.
func (s *settingsService) Update(ctx context.Context, settings Settings) (err error) {
	startedAt := timeNow()
	defer observe(ctx, s.observer, "update-settings", startedAt, map[string]any{"unit": settings.RoundingUnit}, &err)

	if !logparse.ValidRoundingUnit(settings.RoundingUnit) {
		return fmt.Errorf("%w: got %d", ErrInvalidRoundingUnit, settings.RoundingUnit)
	}
	values := map[string]string{
		repository.KeyRoundingUnit: strconv.Itoa(settings.RoundingUnit),
	}
	for i, tag := range settings.Shortcuts {
		values[shortcutKey(i+1)] = strings.TrimSpace(tag)
	}
	if err = s.store.SetMany(ctx, values); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func checkShortcut(n int) error {
	if n < 1 || n > ShortcutCount {
		return fmt.Errorf("%w: got %d", ErrInvalidShortcut, n)
	}
	return nil
}

func shortcutKey(n int) string {
	return repository.KeyShortcutPrefix + strconv.Itoa(n)
}
