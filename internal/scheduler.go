package internal

import "errors"

// ErrInfiniteLoop is returned by Flush when more than maxFlushIterations
// consumers run in a single flush — almost certainly an effect writing
// back to one of its own (transitive) dependencies forever.
var ErrInfiniteLoop = errors.New("reactor: possible infinite update loop detected")

const maxFlushIterations = 100_000

// Enqueue appends n to the scheduler's FIFO queue. Idempotent: a node
// already carrying FlagScheduled is left exactly where it is, so a
// consumer dirtied twice before the next flush still runs once, in the
// position of its first enqueue.
func (r *Runtime) Enqueue(n *Node) {
	if n.HasFlag(FlagScheduled) {
		return
	}
	n.AddFlag(FlagScheduled)
	n.nextScheduled = nil

	if r.schedulerTail == nil {
		r.schedulerHead = n
		r.schedulerTail = n
		return
	}
	r.schedulerTail.nextScheduled = n
	r.schedulerTail = n
}

// dequeueNext pops the head of the scheduler's FIFO queue, or nil if
// empty.
func (r *Runtime) dequeueNext() *Node {
	n := r.schedulerHead
	if n == nil {
		return nil
	}
	r.schedulerHead = n.nextScheduled
	if r.schedulerHead == nil {
		r.schedulerTail = nil
	}
	n.nextScheduled = nil
	return n
}

// RemoveScheduled removes n from the queue if it is currently scheduled
// — used by Dispose so a disposed-but-still-queued consumer's slot is
// reclaimed immediately rather than merely skipped at flush time.
// Removing the head is O(1); since the queue is singly linked, removal
// of any other node walks the queue from the head, which only matters
// in the pathological case of disposing
// something deep in a very long pending queue; disposal itself is rare
// enough on a hot path that this is an acceptable constant-factor cost
// next to the flush loop it avoids.
func (r *Runtime) RemoveScheduled(n *Node) {
	if !n.HasFlag(FlagScheduled) {
		return
	}
	n.RemoveFlag(FlagScheduled)

	if r.schedulerHead == n {
		r.schedulerHead = n.nextScheduled
		if r.schedulerHead == nil {
			r.schedulerTail = nil
		}
		n.nextScheduled = nil
		return
	}
	for cur := r.schedulerHead; cur != nil; cur = cur.nextScheduled {
		if cur.nextScheduled == n {
			cur.nextScheduled = n.nextScheduled
			if r.schedulerTail == n {
				r.schedulerTail = cur
			}
			n.nextScheduled = nil
			return
		}
	}
}

// Schedule flushes immediately unless a batch is currently open, in
// which case the queued consumers wait for the outermost LeaveBatch.
func (r *Runtime) Schedule() {
	if !r.IsBatching() {
		r.Flush()
	}
}

// Flush drains the scheduler queue in FIFO order: consumers enqueued
// while this flush is already running (a consumer that dirties another)
// append to the tail and run within the same flush, per the ordering
// guarantee. Re-entrant calls (a consumer's own write triggering
// Schedule while a Flush is already on the stack) are no-ops — the
// outer loop keeps draining the queue including whatever that write
// just enqueued.
func (r *Runtime) Flush() error {
	if r.flushing {
		return nil
	}
	r.flushing = true
	defer func() { r.flushing = false }()

	iterations := 0
	for {
		n := r.dequeueNext()
		if n == nil {
			return nil
		}

		iterations++
		if iterations > maxFlushIterations {
			return ErrInfiniteLoop
		}

		n.RemoveFlag(FlagScheduled)
		if n.HasFlag(FlagDisposed) {
			continue
		}

		strategy := n.Strategy
		if strategy == nil {
			strategy = SyncStrategy
		}
		strategy.Schedule(func() { r.flushConsumer(n) })
	}
}
