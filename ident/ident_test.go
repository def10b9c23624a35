package ident

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSequenceIsASource(t *testing.T) {
	var instance interface{} = NewSequence()
	_, ok := instance.(Source)
	require.True(t, ok)
}

// IDs start at the construction timestamp and increase strictly, so a
// sequence built after a process restart never repeats an ID from before
// it.
func TestSequenceStartsAtConstructionTime(t *testing.T) {
	before := time.Now().UnixNano()
	seq := NewSequence()
	first := seq.NextID()
	second := seq.NextID()
	require.GreaterOrEqual(t, first, before)
	require.Equal(t, first+1, second)
}

// Concurrent callers never observe a duplicate ID.
func TestSequenceIsUniqueUnderConcurrency(t *testing.T) {
	seq := NewSequence()
	const goroutines, perGoroutine = 8, 1000

	ids := make(chan int64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				ids <- seq.NextID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, goroutines*perGoroutine)
}
