package bbp

import "sync"

// dispenser is component 4.F: a mutex-guarded cursor handing out
// batches of work over [0, upperBound) in strictly ascending order.
// Every value it returns corresponds to exactly one batch and is
// returned to exactly one caller - the cursor is read and updated only
// while holding its own mutex.
type dispenser struct {
	mu         sync.Mutex
	cursor     uint64
	batch      uint64
	upperBound uint64
}

func newDispenser(upperBound, batch uint64) *dispenser {
	return &dispenser{batch: batch, upperBound: upperBound}
}

// next returns the start of the next batch and true, or (0, false)
// once the cursor has reached upperBound.
func (d *dispenser) next() (uint64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cursor >= d.upperBound {
		return 0, false
	}

	s := d.cursor
	d.cursor += d.batch
	return s, true
}

// shardRing is the round-robin shard index I: incremented under its
// own mutex, and never held concurrently with a shard's mutex -
// lock-ordering is always index first, then shard, preventing deadlock
// by construction.
type shardRing struct {
	mu    sync.Mutex
	next  int
	count int
}

func newShardRing(count int) *shardRing {
	return &shardRing{count: count}
}

// take returns the next shard index and advances the ring.
func (r *shardRing) take() int {
	r.mu.Lock()
	i := r.next
	r.next = (r.next + 1) % r.count
	r.mu.Unlock()
	return i
}
