package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
)

// currentSlot is the fixed key for the single in-progress brief.
const currentSlot = "current"

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db *sql.DB
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(db *sql.DB) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db}
}

func (r *SQLiteStateRepo) Save(ctx context.Context, s *SavedState) error {
	payload, err := json.Marshal(s.Brief)
	if err != nil {
		return fmt.Errorf("encoding brief: %w", err)
	}

	query := `INSERT INTO brief_state (slot, payload, role, step_index, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			role = excluded.role,
			step_index = excluded.step_index,
			saved_at = excluded.saved_at`
	_, err = r.db.ExecContext(ctx, query,
		currentSlot,
		string(payload),
		string(s.Role),
		s.StepIndex,
		s.SavedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving brief state: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepo) Load(ctx context.Context) (*SavedState, error) {
	query := `SELECT payload, role, step_index, saved_at FROM brief_state WHERE slot = ?`
	row := r.db.QueryRowContext(ctx, query, currentSlot)

	var payload, roleStr, savedAtStr string
	var stepIndex int
	err := row.Scan(&payload, &roleStr, &stepIndex, &savedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("loading brief state: %w", err)
	}

	var brief domain.Brief
	if err := json.Unmarshal([]byte(payload), &brief); err != nil {
		// Corrupt payload: treat as no saved state rather than failing
		// the whole wizard.
		return nil, nil
	}

	savedAt, err := time.Parse(time.RFC3339, savedAtStr)
	if err != nil {
		savedAt = time.Time{}
	}

	return &SavedState{
		Brief:     &brief,
		Role:      role.Role(roleStr),
		StepIndex: stepIndex,
		SavedAt:   savedAt,
	}, nil
}

func (r *SQLiteStateRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM brief_state WHERE slot = ?`, currentSlot)
	if err != nil {
		return fmt.Errorf("clearing brief state: %w", err)
	}
	return nil
}
