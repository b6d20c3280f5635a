package assist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerBeginAndRelease(t *testing.T) {
	tr := NewTracker()

	release, ok := tr.Begin("shot-draft")
	require.True(t, ok)
	assert.True(t, tr.Busy("shot-draft"))

	release()
	assert.False(t, tr.Busy("shot-draft"))
}

func TestTrackerSecondBeginFailsWhileInFlight(t *testing.T) {
	tr := NewTracker()

	release, ok := tr.Begin("shot-draft")
	require.True(t, ok)

	_, ok = tr.Begin("shot-draft")
	assert.False(t, ok)

	release()

	_, ok = tr.Begin("shot-draft")
	assert.True(t, ok)
}

func TestTrackerKeysAreIndependent(t *testing.T) {
	tr := NewTracker()

	_, ok := tr.Begin("shot-draft")
	require.True(t, ok)

	_, ok = tr.Begin("overview-draft")
	assert.True(t, ok)
}

func TestTrackerReleaseIsIdempotent(t *testing.T) {
	tr := NewTracker()

	release, ok := tr.Begin("shot-draft")
	require.True(t, ok)

	release()
	release() // second call is a no-op

	r2, ok := tr.Begin("shot-draft")
	require.True(t, ok)
	assert.True(t, tr.Busy("shot-draft"))
	r2()
}

func TestTrackerConcurrentBegin(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := tr.Begin("shot-draft"); ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted, "only one caller may hold the key")
}
