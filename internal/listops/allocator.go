package listops

import "sync"

// Allocator hands out unique list-item IDs. It is a plain monotonic counter:
// an ID is never reissued, including IDs of items removed earlier in the
// session. Seed it from the document's persisted high-water mark on load so
// uniqueness holds across restarts too.
type Allocator struct {
	mu   sync.Mutex
	last int64
}

// NewAllocator returns an allocator whose first ID is floor+1.
func NewAllocator(floor int64) *Allocator {
	return &Allocator{last: floor}
}

// NextID returns the next unused ID.
func (a *Allocator) NextID() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last++
	return a.last
}

// Seed raises the allocator floor to n. Lower values are ignored, so seeding
// is safe to repeat with any observed ID.
func (a *Allocator) Seed(n int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n > a.last {
		a.last = n
	}
}

// Last returns the most recently issued (or seeded) ID. Persisted with the
// document as the high-water mark.
func (a *Allocator) Last() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}
