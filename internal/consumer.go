package internal

// NewConsumer allocates a consumer (effect) node and runs it once,
// synchronously, before returning — the initial run is never deferred by
// strategy, only re-runs triggered by later dependency changes are.
// fn receives the node itself and returns the cleanup to invoke before
// the next run or on disposal; a nil cleanup is legal and common.
func NewConsumer(rt *Runtime, fn func(*Node) func(), strategy *Strategy) *Node {
	n := &Node{
		Kind:     KindConsumer,
		flags:    FlagConsumer,
		Fn:       fn,
		Strategy: strategy,
		Owner:    NewOwner(),
		Runtime:  rt,
	}
	if parent := rt.CurrentOwner(); parent != nil {
		parent.AddChild(n.Owner)
	}

	// Fires exactly once, whether this node is disposed directly or
	// transitively as someone else's child — detaching it from the
	// dependency graph and the scheduler even when nothing ever calls
	// DisposeConsumer on it explicitly.
	n.Owner.onTeardown(func() {
		n.AddFlag(FlagDisposed)
		rt.RemoveScheduled(n)
		n.DetachAll()
		if inst := rt.Instrument(); inst != nil && inst.OnEffectDispose != nil {
			inst.OnEffectDispose(n)
		}
	})

	rt.runConsumer(n)
	return n
}

// flushConsumer is called by the scheduler for a dequeued, dirty
// consumer. It verifies, via the same exhaustive pull used by derived
// reads, that an upstream value actually changed before paying for a
// re-run: a consumer reachable only through a derived whose recompute
// turned out equal to its previous value is cleared without running.
func (r *Runtime) flushConsumer(n *Node) {
	if n.HasFlag(FlagDisposed) || !n.HasFlag(FlagDirty) {
		return
	}

	if r.PullUpdates(n) {
		r.runConsumer(n)
		return
	}

	n.RemoveFlag(FlagDirty)
	n.AddFlag(FlagClean)
}

// runConsumer disposes the child scope and dependency edges left by the
// previous run, invokes the previous run's cleanup, then tracks a fresh
// run of n.Fn.
func (r *Runtime) runConsumer(n *Node) {
	if n.HasFlag(FlagDisposed) {
		return
	}

	// Dirty is cleared before the run, not after it, so a write the body
	// makes to one of its own dependencies leaves the node dirty and its
	// queued re-run is not skipped.
	n.AddFlag(FlagRunning)
	n.RemoveFlag(FlagDirty)
	n.Owner.DisposeChildren()
	n.Owner.RunCleanups()
	n.DetachAll()

	prevOwner := r.SetOwnerScope(n.Owner)
	func() {
		defer func() {
			r.ownerScope = prevOwner
			if rec := recover(); rec != nil {
				n.RemoveFlag(FlagRunning)
				n.Owner.RecoverPanic(rec)
			}
		}()
		r.Track(n, func() {
			if cleanup := n.Fn(n); cleanup != nil {
				n.Owner.OnCleanup(cleanup)
			}
		})
	}()

	n.RemoveFlag(FlagRunning)
	if !n.HasFlag(FlagDirty) {
		n.AddFlag(FlagClean)
	}

	if inst := r.Instrument(); inst != nil && inst.OnEffectRun != nil {
		inst.OnEffectRun(n)
	}
}

// DisposeConsumer tears down a consumer for good: its owner (and
// everything created inside its body) is disposed, which in turn
// detaches its dependency edges and removes it from the scheduler via
// the teardown hook registered at construction. Idempotent.
func (r *Runtime) DisposeConsumer(n *Node) {
	n.Owner.Dispose()
}
