package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/logbook/internal/db"
	"github.com/alexanderramin/logbook/internal/domain"
)

// SQLiteExportRepo implements ExportRepo on the exports table.
type SQLiteExportRepo struct {
	db db.DBTX
}

// NewSQLiteExportRepo creates a new SQLiteExportRepo.
func NewSQLiteExportRepo(conn db.DBTX) *SQLiteExportRepo {
	return &SQLiteExportRepo{db: conn}
}

func (r *SQLiteExportRepo) Create(ctx context.Context, e *domain.ExportRecord) error {
	query := `INSERT INTO exports (id, filename, format, bytes, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Filename,
		string(e.Format),
		e.Bytes,
		formatStoredTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

// List returns the newest records first. A limit of zero or less returns
// every record.
func (r *SQLiteExportRepo) List(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	query := `SELECT id, filename, format, bytes, created_at FROM exports
		ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	defer rows.Close()

	var out []*domain.ExportRecord
	for rows.Next() {
		e, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exports: %w", err)
	}
	return out, nil
}

func scanExport(rows *sql.Rows) (*domain.ExportRecord, error) {
	var e domain.ExportRecord
	var format, createdAt string
	if err := rows.Scan(&e.ID, &e.Filename, &format, &e.Bytes, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning export: %w", err)
	}
	e.Format = domain.ReportFormat(format)
	e.CreatedAt = parseStoredTime(createdAt)
	return &e, nil
}
