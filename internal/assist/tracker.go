package assist

import "sync"

// Tracker guards against concurrent generation calls for the same target.
// Begin returns false while a call for the key is already in flight, so the
// UI can disable the triggering control instead of stacking requests.
type Tracker struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{inFlight: make(map[string]bool)}
}

// Begin marks key as in flight. The returned release func must be called
// exactly once when the call completes; ok is false if the key is busy.
func (t *Tracker) Begin(key string) (release func(), ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight[key] {
		return nil, false
	}
	t.inFlight[key] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.inFlight, key)
			t.mu.Unlock()
		})
	}, true
}

// Busy reports whether a call for key is currently in flight.
func (t *Tracker) Busy(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight[key]
}
