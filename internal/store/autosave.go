package store

import (
	"context"
	"time"
)

// DefaultAutoSaveInterval is the background save cadence.
const DefaultAutoSaveInterval = 30 * time.Second

// AutoSaver periodically persists the store when it is dirty. A tick with a
// clean store does nothing; an explicit SaveNow elsewhere simply means the
// next tick sees a clean store.
type AutoSaver struct {
	store    *Store
	interval time.Duration

	// OnError receives save failures; a failed tick leaves the store dirty
	// so the next tick retries. Nil means failures are dropped.
	OnError func(error)
}

// NewAutoSaver creates an AutoSaver with the given interval; zero or negative
// means DefaultAutoSaveInterval.
func NewAutoSaver(s *Store, interval time.Duration) *AutoSaver {
	if interval <= 0 {
		interval = DefaultAutoSaveInterval
	}
	return &AutoSaver{store: s, interval: interval}
}

// Run ticks until ctx is cancelled. Intended to run as a goroutine alongside
// the wizard loop.
func (a *AutoSaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !a.store.Dirty() {
				continue
			}
			if err := a.store.SaveNow(ctx); err != nil && a.OnError != nil {
				a.OnError(err)
			}
		}
	}
}
