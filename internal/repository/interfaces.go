package repository

import (
	"context"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
)

// SavedState is the durable shape of one editing session: the full document
// plus the navigation state needed to resume where the user left off.
type SavedState struct {
	Brief     *domain.Brief
	Role      role.Role
	StepIndex int
	SavedAt   time.Time
}

// StateRepo persists the single current brief under a fixed slot.
type StateRepo interface {
	// Save writes the full state. The write replaces the previous snapshot.
	Save(ctx context.Context, s *SavedState) error

	// Load returns the stored state, or (nil, nil) when nothing has been
	// saved yet. A corrupt payload also yields (nil, nil): rehydration
	// failures fall back to an empty document, never a hard error.
	Load(ctx context.Context) (*SavedState, error)

	// Clear removes the stored state.
	Clear(ctx context.Context) error
}

// ExportRecord is one logged export artifact.
type ExportRecord struct {
	ID        string
	Format    string
	Path      string
	CreatedAt time.Time
}

// ExportLogRepo records generated artifacts for the status display.
type ExportLogRepo interface {
	Add(ctx context.Context, rec *ExportRecord) error
	ListRecent(ctx context.Context, limit int) ([]*ExportRecord, error)
}
