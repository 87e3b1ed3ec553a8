package bbp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShardArrayConcurrentAdd hammers a small shard array from many
// goroutines and checks the reduced sum against a sequentially computed
// total, verifying the per-shard mutex genuinely serializes each add.
func TestShardArrayConcurrentAdd(t *testing.T) {
	const shards = 4
	const workers = 32
	const perWorker = 50

	s := newShardArray(shards)
	ring := newShardRing(shards)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.add(ring.take(), newFloat(1))
			}
		}()
	}
	wg.Wait()

	got, _ := s.sum().Float64()
	assert.Equal(t, float64(workers*perWorker), got)
}

func TestNewShardArrayRejectsNonPositiveCount(t *testing.T) {
	s := newShardArray(0)
	assert.Equal(t, 1, s.len())
}
