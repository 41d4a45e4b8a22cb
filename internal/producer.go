package internal

// NewProducer allocates a producer (signal) node holding initial as its
// current value, using equal to decide whether a write actually changes
// the value.
func NewProducer(rt *Runtime, initial any, equal func(a, b any) bool) *Node {
	return &Node{
		Kind:    KindProducer,
		flags:   FlagProducer | FlagClean,
		Value:   initial,
		Equal:   equal,
		Runtime: rt,
	}
}

// Read returns the producer's current value, recording a dependency edge
// if a consumer scope is currently tracking.
func (n *Node) ReadProducer() any {
	r := n.Runtime
	r.TrackDependency(n)
	if inst := r.Instrument(); inst != nil && inst.OnRead != nil {
		inst.OnRead(n, n.Value)
	}
	return n.Value
}

// Write stores v if it differs from the current value by n.Equal,
// bumping both the producer's local version and the runtime's global
// version, then propagating the change downstream. A same-value write
// is a complete no-op: no version bump, no propagation, no consumer
// invoked.
func (n *Node) WriteProducer(v any) {
	r := n.Runtime

	if n.Equal(n.Value, v) {
		return
	}

	n.Value = v
	n.Version++
	r.BumpGlobalVersion()

	if inst := r.Instrument(); inst != nil && inst.OnWrite != nil {
		inst.OnWrite(n, v)
	}

	r.propagate(n)
	r.Schedule()
}

// propagate walks a producer's entire transitively-reachable subscriber
// graph in two passes after a value-changing write. The first pass (mark)
// visits every reachable node exactly once: Consumers are marked Dirty and
// enqueued for deferred execution; Derived nodes are marked Pending and the
// walk continues through their own subscribers, so a node with several
// stale predecessors is only ever marked once regardless of how many paths
// reach it. The second pass (resolve) then recomputes every marked Derived
// node — eagerly, so that by the time WriteProducer returns every derived
// value is already consistent, unless a batch is open, in which case the
// frontier is instead queued on the runtime and resolved once when the
// outermost batch closes (LeaveBatch), so a Derived read by several
// producers written in the same batch recomputes once at the end rather
// than once per write. Only consumer (effect) re-runs are ever deferred to
// the scheduler. Resolution is safe to run in any order: PullUpdates
// recursively resolves a node's own Pending dependencies before deciding
// whether that node itself needs to recompute, so a node reached earlier
// in the mark pass than one of its own dependencies still observes that
// dependency's final value.
func (r *Runtime) propagate(p *Node) {
	var frontier []*Node

	var mark func(n *Node)
	mark = func(n *Node) {
		if n.Kind == KindConsumer {
			n.AddFlag(FlagDirty)
			n.RemoveFlag(FlagClean)
			if !n.HasFlag(FlagScheduled) {
				r.Enqueue(n)
			}
			return
		}

		// Derived: frontier already covered by a previous push in this
		// same propagation wave.
		if n.HasFlag(FlagPending) || n.HasFlag(FlagDirty) {
			return
		}

		n.AddFlag(FlagPending)
		n.RemoveFlag(FlagClean)
		frontier = append(frontier, n)

		for e := n.subsHead; e != nil; e = e.nextSub {
			mark(e.Consumer)
		}
	}

	for e := p.subsHead; e != nil; e = e.nextSub {
		mark(e.Consumer)
	}

	if r.IsBatching() {
		r.pendingDerived = append(r.pendingDerived, frontier...)
		return
	}

	for _, n := range frontier {
		r.resolveNode(n)
	}
}
