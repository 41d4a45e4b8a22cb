package internal

import "iter"

// Kind tags the specialized body a node carries. Dispatch on a node is by
// kind, not by virtual method, so producer/derived/consumer share one
// record instead of an embedding chain.
type Kind uint8

const (
	KindProducer Kind = iota
	KindDerived
	KindConsumer
)

// Flags is the node status bitfield described in the node model: role
// flags (Producer/Consumer/Derived) and validity flags (Clean/Dirty/
// Pending/Running/Scheduled/Disposed) share one word.
type Flags uint16

const (
	FlagProducer Flags = 1 << iota
	FlagConsumer
	FlagScheduled
	FlagClean
	FlagDirty
	FlagPending
	FlagRunning
	FlagDisposed
)

// FlagDerived is the role flag for nodes that are both producer and
// consumer: a cached function of other nodes.
const FlagDerived = FlagProducer | FlagConsumer

// Node is the single record every reactive entity is built from: a flags
// word, a monotonic local version, and the doubly-linked intrusive edge
// lists (incoming dependencies, outgoing subscribers). Signal, Computed
// and Effect in the public package are thin typed views over a *Node
// that only expose the operations legal for that Kind.
type Node struct {
	Kind  Kind
	flags Flags

	// Version bumps on every value-changing write (producer) or every
	// successful recompute that changed the cached value (derived).
	Version uint32

	// TrackingVersion is the generation counter bumped each time this
	// node (as a consumer) begins a new tracked run; edges stamp the
	// generation they were seen in so stale ones can be detached.
	TrackingVersion uint32

	depsHead *Edge // incoming edges (this node as consumer)
	subsHead *Edge // outgoing edges (this node as producer)

	// nextScheduled links this node into the scheduler's intrusive FIFO
	// queue. Valid only while FlagScheduled is set.
	nextScheduled *Node

	// Producer payload.
	Value any
	Equal func(a, b any) bool

	// initialized is set after a Derived's first successful recompute,
	// so that run is always treated as a value change regardless of
	// what the zero value of its cache happens to compare equal to.
	initialized bool

	// Derived payload: Compute returns the new value given the owning
	// node (so it can recurse into Runtime helpers without a closure
	// over *Runtime).
	Compute func(*Node) any

	// Consumer payload: Fn runs the tracked body and may return a
	// cleanup, registered against the node's own Owner exactly as an
	// OnCleanup call from within the body would be, so both run at the
	// same point (before the next run, or at disposal). Strategy governs
	// how re-runs (not the initial run) are scheduled.
	Fn       func(*Node) func()
	Strategy *Strategy

	// Owner is the lifecycle scope this node (if Derived or Consumer)
	// establishes for reactive work created inside its body.
	Owner *Owner

	Runtime *Runtime
}

// HasFlag reports whether the given flag is set.
func (n *Node) HasFlag(f Flags) bool { return n.flags&f != 0 }

// AddFlag sets the given flag(s).
func (n *Node) AddFlag(f Flags) { n.flags |= f }

// RemoveFlag clears the given flag(s).
func (n *Node) RemoveFlag(f Flags) { n.flags &^= f }

// SetFlags replaces the flags word wholesale.
func (n *Node) SetFlags(f Flags) { n.flags = f }

// Edge connects one producer node to one consumer node. It is linked into
// both the producer's subscriber list and the consumer's dependency list;
// invariant: an edge is present in both lists or in neither.
type Edge struct {
	Producer *Node
	Consumer *Node

	// ObservedVersion is the producer's Version last time this edge was
	// confirmed current; ObservedVersion <= Producer.Version always.
	ObservedVersion uint32

	// TrackingVersion mirrors the consumer's generation at last track;
	// an edge whose stamp doesn't match the consumer's current
	// generation after a track() call is stale and gets detached.
	TrackingVersion uint32

	prevDep, nextDep *Edge
	prevSub, nextSub *Edge
}

// addDep appends the edge to the consumer's dependency list (tail-O(1)
// via a circular prev pointer, nil-terminated next).
func (n *Node) addDep(e *Edge) {
	if n.depsHead == nil {
		n.depsHead = e
		e.prevDep = e
		e.nextDep = nil
		return
	}
	tail := n.depsHead.prevDep
	tail.nextDep = e
	e.prevDep = tail
	e.nextDep = nil
	n.depsHead.prevDep = e
}

// addSub appends the edge to the producer's subscriber list.
func (n *Node) addSub(e *Edge) {
	if n.subsHead == nil {
		n.subsHead = e
		e.prevSub = e
		e.nextSub = nil
		return
	}
	tail := n.subsHead.prevSub
	tail.nextSub = e
	e.prevSub = tail
	e.nextSub = nil
	n.subsHead.prevSub = e
}

// removeDep unlinks the edge from this node's dependency list.
func (n *Node) removeDep(e *Edge) {
	if e.prevDep == e {
		n.depsHead = nil
		e.prevDep, e.nextDep = nil, nil
		return
	}
	if e == n.depsHead {
		n.depsHead = e.nextDep
	} else {
		e.prevDep.nextDep = e.nextDep
	}
	if e.nextDep != nil {
		e.nextDep.prevDep = e.prevDep
	} else {
		n.depsHead.prevDep = e.prevDep
	}
	e.prevDep, e.nextDep = nil, nil
}

// removeSub unlinks the edge from this node's subscriber list.
func (n *Node) removeSub(e *Edge) {
	if e.prevSub == e {
		n.subsHead = nil
		e.prevSub, e.nextSub = nil, nil
		return
	}
	if e == n.subsHead {
		n.subsHead = e.nextSub
	} else {
		e.prevSub.nextSub = e.nextSub
	}
	if e.nextSub != nil {
		e.nextSub.prevSub = e.prevSub
	} else {
		n.subsHead.prevSub = e.prevSub
	}
	e.prevSub, e.nextSub = nil, nil
}

// moveDepToTail relinks an already-linked dependency edge to the tail of
// the consumer's dependency list, used when a dependency is re-observed
// out of its previous relative order.
func (n *Node) moveDepToTail(e *Edge) {
	n.removeDep(e)
	n.addDep(e)
}

// Deps iterates this node's incoming edges' producers in link order.
func (n *Node) Deps() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for e := n.depsHead; e != nil; e = e.nextDep {
			if !yield(e.Producer) {
				return
			}
		}
	}
}

// DepEdges iterates this node's incoming edges themselves.
func (n *Node) DepEdges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for e := n.depsHead; e != nil; e = e.nextDep {
			if !yield(e) {
				return
			}
		}
	}
}

// Subs iterates this node's outgoing edges' consumers in insertion order.
func (n *Node) Subs() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for e := n.subsHead; e != nil; e = e.nextSub {
			if !yield(e.Consumer) {
				return
			}
		}
	}
}

// DetachAll unlinks every incoming edge of this node from both sides,
// leaving the node with no recorded dependencies.
func (n *Node) DetachAll() {
	for e := n.depsHead; e != nil; {
		next := e.nextDep
		e.Producer.removeSub(e)
		e = next
	}
	n.depsHead = nil
}

