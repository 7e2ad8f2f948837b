package nonce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_UsesClockMillis(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_123)
	g := NewWithClock(func() time.Time { return at })

	assert.Equal(t, int64(1_700_000_000_123), g.Next())
	assert.Equal(t, int64(1_700_000_000_123), g.Last())
}

func TestGenerator_StrictlyIncreasingOnFrozenClock(t *testing.T) {
	at := time.UnixMilli(1000)
	g := NewWithClock(func() time.Time { return at })

	assert.Equal(t, int64(1000), g.Next())
	assert.Equal(t, int64(1001), g.Next())
	assert.Equal(t, int64(1002), g.Next())
}

func TestGenerator_ClockGoingBackwards(t *testing.T) {
	times := []int64{5000, 4000, 6000}
	i := 0
	g := NewWithClock(func() time.Time {
		ts := times[i]
		i++
		return time.UnixMilli(ts)
	})

	assert.Equal(t, int64(5000), g.Next())
	assert.Equal(t, int64(5001), g.Next())
	assert.Equal(t, int64(6000), g.Next())
}

func TestGenerator_Concurrent(t *testing.T) {
	g := NewWithClock(func() time.Time { return time.UnixMilli(1) })

	const workers = 50
	const perWorker = 100

	var wg sync.WaitGroup
	results := make(chan int64, workers*perWorker)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results <- g.Next()
			}
		}()
	}

	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, workers*perWorker)
	for n := range results {
		_, dup := seen[n]
		assert.False(t, dup, "nonce %d issued twice", n)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker), g.Last())
}

func TestNew_WallClock(t *testing.T) {
	g := New()
	before := time.Now().UnixMilli()

	n := g.Next()

	assert.GreaterOrEqual(t, n, before)
	assert.Greater(t, g.Next(), n)
}
