package bbp

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrResourceExhausted names the failure to bring up the worker pool.
// Goroutines, unlike the OS threads in the reference implementation,
// have no launch failure to report, and no code path in this package
// returns this value: runPool only returns worker errors (a cancelled
// context) wrapped by errgroup.
var ErrResourceExhausted = errors.New("bbp: failed to bring up worker pool")

// runPool is component 4.G: it brings up `threads` workers that race
// over a shared dispenser and route every batch result into the shard
// array via the round-robin ring, then blocks until all workers have
// returned. errgroup.Group plays the role of pthread_create/pthread_join
// here - it supervises goroutine launch and join and turns the first
// worker failure into the pool's single returned error, cancelling the
// shared context so the remaining workers stop picking up new batches.
func runPool(ctx context.Context, threads int, upperBound, batch uint64, shards *shardArray) error {
	d := newDispenser(upperBound, batch)
	ring := newShardRing(shards.len())

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			return workerLoop(gctx, d, ring, shards, upperBound)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "worker pool")
	}
	return nil
}

// workerLoop is the Idle -> Fetching -> Working -> (loop | Done) state
// machine of a single worker: fetch a batch, claim a shard via the
// round-robin ring, add the batch's contribution, repeat until the
// dispenser reports no more work.
func workerLoop(ctx context.Context, d *dispenser, ring *shardRing, shards *shardArray, upperBound uint64) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s, ok := d.next()
		if !ok {
			return nil
		}

		i := ring.take()
		shards.add(i, leftBatchOriginal(s, d.batch, upperBound))
	}
}
