package internal

import "github.com/google/uuid"

// Instrument is a set of optional callbacks an embedding devtools
// collaborator can attach to a Runtime to observe graph activity. Every
// field is independently nil-checkable; a Runtime with no Instrument
// pays nothing beyond the single pointer nil-check at each call site.
type Instrument struct {
	// OnRead fires whenever a producer's value is read, tracked or not.
	OnRead func(node *Node, value any)

	// OnWrite fires after a producer write that actually changed the
	// value, before propagation begins.
	OnWrite func(node *Node, value any)

	// OnComputed fires whenever a derived node's value is returned by a
	// read, whether or not that read triggered a recompute, and also
	// whenever a recompute changes the cached value.
	OnComputed func(node *Node, value any)

	// OnEffectRun fires after a consumer's body (and any replacement
	// cleanup) has finished running.
	OnEffectRun func(node *Node)

	// OnEffectDispose fires once, when a consumer node is disposed.
	OnEffectDispose func(node *Node)

	// OnGraphSnapshot, if set, is called with a freshly minted snapshot
	// id whenever the caller asks the runtime to stamp one — e.g. before
	// serializing the graph for a devtools panel.
	OnGraphSnapshot func(snapshotID string)
}

// Snapshot mints a new snapshot id and, if an instrument with an
// OnGraphSnapshot hook is attached, reports it.
func (r *Runtime) Snapshot() string {
	id := uuid.NewString()
	if r.instrument != nil && r.instrument.OnGraphSnapshot != nil {
		r.instrument.OnGraphSnapshot(id)
	}
	return id
}
