package internal

// NewDerived allocates a derived (computed) node and runs compute once,
// synchronously, before returning — like a consumer's initial run, a
// derived's first value is never deferred. Compute receives the node
// itself so it can, for instance, be wrapped by an Effect without a
// second allocation. The node owns a lifecycle scope so reactive work
// created inside compute (nested effects) is disposed before every
// re-run.
func NewDerived(rt *Runtime, compute func(*Node) any) *Node {
	n := &Node{
		Kind:    KindDerived,
		flags:   FlagDerived | FlagDirty,
		Compute: compute,
		Equal:   DefaultEqual,
		Owner:   NewOwner(),
		Runtime: rt,
	}
	if parent := rt.CurrentOwner(); parent != nil {
		parent.AddChild(n.Owner)
	}

	n.Owner.onTeardown(func() {
		n.AddFlag(FlagDisposed)
		n.DetachAll()
	})

	rt.recompute(n)
	return n
}

// ReadDerived returns the derived node's up-to-date cached value,
// recomputing it first if necessary, and records a dependency edge if a
// consumer scope is currently tracking.
func (n *Node) ReadDerived() any {
	r := n.Runtime

	if n.HasFlag(FlagDisposed) {
		return n.Value
	}

	if n.HasFlag(FlagRunning) {
		panic(cycleError{n})
	}

	r.resolveNode(n)

	r.TrackDependency(n)

	if inst := r.Instrument(); inst != nil && inst.OnComputed != nil {
		inst.OnComputed(n, n.Value)
	}

	return n.Value
}

// PeekDerived reads the value like ReadDerived but without tracking a
// dependency, by running the read inside Untrack.
func (n *Node) PeekDerived() any {
	r := n.Runtime
	var v any
	r.Untrack(func() { v = n.ReadDerived() })
	return v
}

// resolveNode brings a derived node's cached value up to date: Dirty
// (never successfully computed, or its dependencies are unknown) always
// recomputes; Pending recomputes only if PullUpdates finds an actual
// upstream change, otherwise it's just demoted back to Clean. A node that
// is neither is already current and left untouched.
func (r *Runtime) resolveNode(n *Node) {
	if n.HasFlag(FlagDisposed) {
		return
	}
	if n.HasFlag(FlagDirty) || (n.HasFlag(FlagPending) && r.PullUpdates(n)) {
		r.recompute(n)
	} else if n.HasFlag(FlagPending) {
		n.RemoveFlag(FlagPending)
		n.AddFlag(FlagClean)
	}
}

// recompute runs node's compute body under a fresh tracking generation,
// disposing any reactive work the previous run created first. If the new
// value differs from the old one (or this is the first successful run),
// the node's version is bumped; its subscribers were already marked by
// propagate's mark pass (or, for a node reached only via PullUpdates'
// own recursive resolution, will observe the bumped version directly
// through their dependency edge), so no further notification is needed
// here.
func (r *Runtime) recompute(n *Node) {
	if n.HasFlag(FlagDisposed) {
		return
	}
	if n.HasFlag(FlagRunning) {
		panic(cycleError{n})
	}

	n.AddFlag(FlagRunning)
	n.Owner.DisposeChildren()
	n.Owner.RunCleanups()
	n.DetachAll()

	prevOwner := r.SetOwnerScope(n.Owner)
	old := n.Value

	var newValue any
	func() {
		defer func() {
			r.ownerScope = prevOwner
			if rec := recover(); rec != nil {
				n.RemoveFlag(FlagRunning)
				n.Owner.RecoverPanic(rec)
			}
		}()
		r.Track(n, func() { newValue = n.Compute(n) })
	}()

	changed := !n.initialized || !n.Equal(old, newValue)
	n.initialized = true
	n.Value = newValue

	if changed {
		n.Version++
		if inst := r.Instrument(); inst != nil && inst.OnComputed != nil {
			inst.OnComputed(n, newValue)
		}
	}

	n.RemoveFlag(FlagRunning | FlagDirty | FlagPending)
	n.AddFlag(FlagClean)
}

// DisposeDerived tears down a derived node for good: its owner (and
// everything created inside its compute body) is disposed, which
// detaches its dependency edges via the teardown hook registered at
// construction. Idempotent.
func DisposeDerived(n *Node) {
	n.Owner.Dispose()
}

// cycleError is panicked when a node's own RUNNING flag is observed by a
// read originating from within its own compute body.
type cycleError struct{ node *Node }

func (e cycleError) Error() string {
	return "reactor: cycle detected while reading a reactive node"
}

func (e cycleError) Unwrap() error { return ErrCycleDetected }
