package reactor

import "github.com/flowgraph/reactor/internal"

// Node is an opaque handle to a reactive node, passed to Instrument
// callbacks so a devtools collaborator can correlate events across a
// run without the core exposing any typed accessor on it.
type Node struct {
	n *internal.Node
}

// Host bridges a deferred flush strategy (microtask, animation frame,
// debounce) to whatever event loop the embedding program runs. See
// WithMicrotaskFlush, WithAnimationFrameFlush, WithDebounceFlush.
type Host = internal.Host

// SyncHost is the default Host: every deferral runs immediately and
// synchronously, the right choice for a program with no event loop of
// its own.
type SyncHost = internal.SyncHost

// Instrument is a set of optional devtools hooks attached to the
// calling goroutine's runtime via Configure(WithInstrument(...)): reads,
// writes, recomputes, effect runs/disposals, and graph snapshots. Every
// field is independently nil-checkable; a Runtime with no Instrument
// pays nothing beyond a nil check at each call site.
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

	// OnGraphSnapshot fires with a freshly minted snapshot id whenever
	// Snapshot is called.
	OnGraphSnapshot func(snapshotID string)
}

func (i *Instrument) toInternal() *internal.Instrument {
	if i == nil {
		return nil
	}

	ii := &internal.Instrument{OnGraphSnapshot: i.OnGraphSnapshot}

	if i.OnRead != nil {
		ii.OnRead = func(n *internal.Node, v any) { i.OnRead(&Node{n: n}, v) }
	}
	if i.OnWrite != nil {
		ii.OnWrite = func(n *internal.Node, v any) { i.OnWrite(&Node{n: n}, v) }
	}
	if i.OnComputed != nil {
		ii.OnComputed = func(n *internal.Node, v any) { i.OnComputed(&Node{n: n}, v) }
	}
	if i.OnEffectRun != nil {
		ii.OnEffectRun = func(n *internal.Node) { i.OnEffectRun(&Node{n: n}) }
	}
	if i.OnEffectDispose != nil {
		ii.OnEffectDispose = func(n *internal.Node) { i.OnEffectDispose(&Node{n: n}) }
	}

	return ii
}

// Option configures the calling goroutine's Runtime. See Configure.
type Option = internal.RuntimeOption

// WithInstrument attaches an Instrument to the runtime being configured.
func WithInstrument(i *Instrument) Option {
	return internal.WithInstrument(i.toInternal())
}

// WithHost stores h on the runtime being configured. The flush-strategy
// options (WithMicrotaskFlush, WithAnimationFrameFlush,
// WithDebounceFlush) take their Host as an argument and do not read
// this setting.
func WithHost(h Host) Option {
	return internal.WithHost(h)
}

// Configure applies opts to the calling goroutine's runtime, creating it
// first if this is the goroutine's first reactive call. Safe to call
// before or after any signal, effect, or derived has been created on
// this goroutine — an instrument attached late simply misses whatever
// already happened.
func Configure(opts ...Option) {
	internal.GetRuntime().Configure(opts...)
}

// Snapshot mints a new graph snapshot id for the calling goroutine's
// runtime, reporting it to an attached Instrument's OnGraphSnapshot hook
// if one is set.
func Snapshot() string {
	return internal.GetRuntime().Snapshot()
}
