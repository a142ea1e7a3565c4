// Package app is the composition root: it turns a loaded configuration
// into a ready cli.App.
package app

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/logbook/internal/cli"
	"github.com/alexanderramin/logbook/internal/config"
	"github.com/alexanderramin/logbook/internal/db"
	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/logging"
	"github.com/alexanderramin/logbook/internal/repository"
	"github.com/alexanderramin/logbook/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Backend is an opened store plus its export history.
type Backend struct {
	KV      repository.KVStore
	Exports repository.ExportRepo
	Close   func() error
}

// OpenBackend opens the storage selected by cfg.
func OpenBackend(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case config.StorageRedis:
		client, err := repository.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Backend{
			KV:      repository.NewRedisKVStore(client, cfg.Redis.Prefix),
			Exports: repository.NewRedisExportRepo(client, cfg.Redis.Prefix),
			Close:   client.Close,
		}, nil
	case config.StorageSQLite, "":
		database, err := db.OpenDB(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return &Backend{
			KV:      repository.NewSQLiteKVStore(database),
			Exports: repository.NewSQLiteExportRepo(database),
			Close:   database.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage.type %q", config.ErrInvalidConfig, cfg.Type)
	}
}

// Language resolves the configured language, falling back to $LANG.
func Language(cfg *config.Config) string {
	return i18n.Detect(cmp.Or(cfg.Lang, os.Getenv("LANG")))
}

// Wire builds every service over the configured backend. Logs go to
// logOut.
func Wire(ctx context.Context, cfg *config.Config, logOut io.Writer) (*cli.App, func() error, error) {
	logger := logging.New(cfg.Logging, logOut)

	backend, err := OpenBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	store := repository.NewObservedStore(backend.KV)
	store.Subscribe(logChanges(logger))

	lang := Language(cfg)
	observer := service.NewLogUseCaseObserver(logger)

	logs := service.NewLogService(store, nil, observer)
	settings := service.NewSettingsService(store, lang, observer)
	reports, err := service.NewReportService(logs, settings, cfg.Cache.Size, observer)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("creating report service: %w", err)
	}
	exports := service.NewExportService(reports, backend.Exports, lang, nil, service.SystemClipboard, observer)

	logger.Debug().
		Str("storage", cfg.Storage.Type).
		Str("lang", lang).
		Msg("wired")

	return &cli.App{
		Logs:          logs,
		Settings:      settings,
		Reports:       reports,
		Exports:       exports,
		Lang:          lang,
		ExportDir:     cfg.Export.Dir,
		IsInteractive: stdinIsTerminal,
	}, backend.Close, nil
}

// Wiring adapts Wire to the root command.
func Wiring(ctx context.Context, logOut io.Writer) cli.Wiring {
	return func(cfg *config.Config) (*cli.App, func() error, error) {
		return Wire(ctx, cfg, logOut)
	}
}

func logChanges(logger zerolog.Logger) func(repository.Change) {
	return func(c repository.Change) {
		logger.Debug().
			Str("key", c.Key).
			Int("bytes", len(c.Value)).
			Bool("deleted", c.Deleted).
			Msg("store_change")
	}
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
