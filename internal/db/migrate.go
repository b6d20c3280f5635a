package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates are tolerated since the whole list re-runs on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// brief_state is a single-row key-value store: one brief per slot,
	// payload is the JSON-encoded document. The engine only uses the
	// "current" slot; extra slots are reserved for named snapshots.
	`CREATE TABLE IF NOT EXISTS brief_state (
		slot       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		step_index INTEGER NOT NULL DEFAULT 0,
		saved_at   TEXT NOT NULL
	)`,

	// export_log records generated artifacts, for the status display.
	`CREATE TABLE IF NOT EXISTS export_log (
		id        TEXT PRIMARY KEY,
		format    TEXT NOT NULL,
		path      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}
