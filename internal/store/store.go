// Package store owns the in-memory editing state for one brief: the document,
// the selected role, the wizard position, and the dirty flag. It is the only
// writer; every mutation stamps the document and marks it dirty so the
// auto-saver knows to persist. There is exactly one Store per process,
// constructed in main and passed down — no package-level globals.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/listops"
	"github.com/averyhale/briefer/internal/repository"
	"github.com/averyhale/briefer/internal/role"
)

// Store is the constructed state container for one editing session.
type Store struct {
	mu        sync.Mutex
	repo      repository.StateRepo
	brief     *domain.Brief
	role      role.Role
	stepIndex int
	dirty     bool
	gen       uint64
	lastSaved time.Time
	alloc     *listops.Allocator
}

// New creates a store holding the empty initial document.
func New(repo repository.StateRepo) *Store {
	return &Store{
		repo:  repo,
		brief: domain.NewBrief(),
		alloc: listops.NewAllocator(0),
	}
}

// Hydrate loads the persisted session, if any. Absence or corruption of
// stored state silently keeps the empty initial document; the worst visible
// outcome is an empty form. Returns whether a saved session was restored.
func (s *Store) Hydrate(ctx context.Context) (bool, error) {
	saved, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if saved == nil || saved.Brief == nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.brief = saved.Brief
	s.role = saved.Role
	s.stepIndex = saved.StepIndex
	s.lastSaved = saved.SavedAt
	s.dirty = false

	// Restore the allocator floor so removed IDs are never reissued, even
	// if the persisted high-water mark predates some additions.
	s.alloc.Seed(saved.Brief.LastID)
	s.alloc.Seed(listops.MaxKey(saved.Brief.ShotList))
	s.alloc.Seed(listops.MaxKey(saved.Brief.Crew))
	s.alloc.Seed(listops.MaxKey(saved.Brief.BudgetLineItems))
	s.alloc.Seed(listops.MaxKey(saved.Brief.Equipment))
	return true, nil
}

// Snapshot returns a deep copy of the document. Exporters and renderers work
// from snapshots so they always observe a complete, consistent state.
func (s *Store) Snapshot() *domain.Brief {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brief.Clone()
}

// Role returns the selected role ("" before selection).
func (s *Store) Role() role.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole selects or switches the active role. Field values already entered
// are preserved; only the persisted role changes.
func (s *Store) SetRole(r role.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = r
	s.brief.Touch()
	s.dirty = true
	s.gen++
}

// StepIndex returns the persisted wizard position.
func (s *Store) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepIndex
}

// SetStepIndex records the wizard position for resume. Navigation alone does
// not dirty the document; the position rides along with the next save.
func (s *Store) SetStepIndex(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepIndex = i
}

// UpdateField merges one value into the document through the field registry.
// Calls are applied in invocation order; a later write to the same field wins.
func (s *Store) UpdateField(f domain.Field, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := domain.Apply(s.brief, f, value); err != nil {
		return err
	}
	s.brief.Touch()
	s.dirty = true
	s.gen++
	return nil
}

// Dirty reports whether there are unsaved changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSaved returns the time of the last successful save (zero before any).
func (s *Store) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// SaveNow persists the full session state immediately. The dirty flag is
// cleared only when no mutation landed while the write was in flight, so an
// edit made mid-save is still picked up by the next save.
func (s *Store) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	s.brief.LastID = s.alloc.Last()
	saved := s.gen
	state := &repository.SavedState{
		Brief:     s.brief.Clone(),
		Role:      s.role,
		StepIndex: s.stepIndex,
		SavedAt:   time.Now().UTC(),
	}
	s.mu.Unlock()

	if err := s.repo.Save(ctx, state); err != nil {
		return err
	}

	s.mu.Lock()
	if s.gen == saved {
		s.dirty = false
	}
	s.lastSaved = state.SavedAt
	s.mu.Unlock()
	return nil
}

// Reset clears the session back to the empty initial shape and removes the
// persisted state. The document is never hard-deleted beyond this.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brief = domain.NewBrief()
	s.role = ""
	s.stepIndex = 0
	s.dirty = false
	s.lastSaved = time.Time{}
	s.alloc = listops.NewAllocator(0)
	return nil
}

// mutate runs fn against the document under the lock and marks it dirty.
func (s *Store) mutate(fn func(b *domain.Brief)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.brief)
	s.brief.Touch()
	s.dirty = true
	s.gen++
}
