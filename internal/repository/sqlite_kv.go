package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/logbook/internal/db"
)

// SQLiteKVStore implements KVStore on the kv_store table.
type SQLiteKVStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteKVStore creates a store on an open database. SetMany runs in a
// single transaction.
func NewSQLiteKVStore(database *sql.DB) *SQLiteKVStore {
	return &SQLiteKVStore{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	return upsertKey(ctx, s.db, key, value)
}

func (s *SQLiteKVStore) SetMany(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, k := range keys {
			if err := upsertKey(ctx, tx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteKVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

func upsertKey(ctx context.Context, conn db.DBTX, key, value string) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := conn.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
