package internal

// pullFrame is one level of the explicit work-stack PullUpdates uses in
// place of recursion, so that deep dependency chains (hundreds or
// thousands of derived nodes) cannot overflow the goroutine stack.
type pullFrame struct {
	node    *Node
	edge    *Edge // next dependency edge of node still to visit
	changed bool

	// triggerEdge is the edge, in the frame below this one, whose
	// producer is node. Nil for the root frame (the node PullUpdates
	// was called on), which is never itself recomputed here — its
	// caller decides what to do with the returned bool.
	triggerEdge *Edge
}

// PullUpdates verifies whether any transitively-reachable producer of a
// Pending derived node has actually changed value, repairing versions
// and recomputing stale upstream derived nodes along the way. It never
// short-circuits: every incoming edge of every visited node is checked,
// because skipping the rest after finding the first changed dependency
// would let a later recompute observe a mix of pre- and post-write
// producer values (a glitch).
func (r *Runtime) PullUpdates(root *Node) bool {
	stack := []*pullFrame{{node: root, edge: root.depsHead}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.edge == nil {
			stack = stack[:len(stack)-1]

			if top.triggerEdge == nil {
				return top.changed
			}

			if top.changed {
				r.recompute(top.node)
			} else if top.node.HasFlag(FlagPending) {
				top.node.RemoveFlag(FlagPending)
				top.node.AddFlag(FlagClean)
			}

			parent := stack[len(stack)-1]
			if top.triggerEdge.ObservedVersion != top.node.Version {
				top.triggerEdge.ObservedVersion = top.node.Version
				parent.changed = true
			}
			parent.edge = parent.edge.nextDep
			continue
		}

		e := top.edge
		p := e.Producer

		if p.Kind == KindDerived {
			if p.HasFlag(FlagDirty) {
				r.recompute(p)
			} else if p.HasFlag(FlagPending) {
				stack = append(stack, &pullFrame{node: p, edge: p.depsHead, triggerEdge: e})
				continue
			}
		}

		if e.ObservedVersion != p.Version {
			e.ObservedVersion = p.Version
			top.changed = true
		}
		top.edge = e.nextDep
	}

	return false
}
