package bbp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPoolProducesSameTotalRegardlessOfThreadCount(t *testing.T) {
	const upperBound = 500
	const batch = 13

	var totals []float64
	for _, threads := range []int{1, 3, 8} {
		shards := newShardArray(defaultShardCount)
		err := runPool(context.Background(), threads, upperBound, batch, shards)
		require.NoError(t, err)

		f, _ := shards.sum().Float64()
		totals = append(totals, f)
	}

	for i := 1; i < len(totals); i++ {
		assert.InDelta(t, totals[0], totals[i], 1e-9)
	}
}

func TestRunPoolWithSingleShardStillCompletes(t *testing.T) {
	shards := newShardArray(1)
	err := runPool(context.Background(), 4, 200, 10, shards)
	require.NoError(t, err)
	assert.NotNil(t, shards.sum())
}

func TestWorkerLoopRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newDispenser(1000, 10)
	ring := newShardRing(4)
	shards := newShardArray(4)

	err := workerLoop(ctx, d, ring, shards, 1000)
	assert.Error(t, err)
}
