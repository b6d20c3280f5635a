package listops

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_MonotonicFromFloor(t *testing.T) {
	alloc := NewAllocator(5)

	assert.Equal(t, int64(6), alloc.NextID())
	assert.Equal(t, int64(7), alloc.NextID())
	assert.Equal(t, int64(7), alloc.Last())
}

func TestAllocator_SeedOnlyRaises(t *testing.T) {
	alloc := NewAllocator(0)
	alloc.Seed(10)
	alloc.Seed(3)

	assert.Equal(t, int64(10), alloc.Last(), "lower seed must be ignored")
	assert.Equal(t, int64(11), alloc.NextID())
}

func TestAllocator_ConcurrentIDsAreUnique(t *testing.T) {
	alloc := NewAllocator(0)
	const n = 100

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- alloc.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, int64(n), alloc.Last())
}
