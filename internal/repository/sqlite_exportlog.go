package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteExportLogRepo implements ExportLogRepo using a SQLite database.
type SQLiteExportLogRepo struct {
	db *sql.DB
}

// NewSQLiteExportLogRepo creates a new SQLiteExportLogRepo.
func NewSQLiteExportLogRepo(db *sql.DB) *SQLiteExportLogRepo {
	return &SQLiteExportLogRepo{db: db}
}

func (r *SQLiteExportLogRepo) Add(ctx context.Context, rec *ExportRecord) error {
	query := `INSERT INTO export_log (id, format, path, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Format,
		rec.Path,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

func (r *SQLiteExportLogRepo) ListRecent(ctx context.Context, limit int) ([]*ExportRecord, error) {
	query := `SELECT id, format, path, created_at FROM export_log ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing export records: %w", err)
	}
	defer rows.Close()

	var records []*ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.Format, &rec.Path, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export records: %w", err)
	}
	return records, nil
}
