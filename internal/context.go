package internal

// RuntimeOption configures a Runtime at construction.
type RuntimeOption func(*Runtime)

// WithInstrument attaches an instrumentation hook to the runtime.
func WithInstrument(i *Instrument) RuntimeOption {
	return func(r *Runtime) { r.instrument = i }
}

// WithHost stores a host bridge on the runtime. The strategy
// constructors take their Host as an argument and do not read it.
func WithHost(h Host) RuntimeOption {
	return func(r *Runtime) { r.host = h }
}

// Runtime is the process/instance-wide reactive state: the currently
// tracking consumer scope, the global version counter, the batch depth,
// and the scheduler's FIFO queue pointers.
type Runtime struct {
	// consumerScope is the node whose compute body is currently
	// executing under track(); non-nil only inside a track() call.
	consumerScope *Node

	// ownerScope is the lifecycle scope new reactive nodes and cleanups
	// attach to; it tracks consumerScope's owner but also exists
	// outside of tracked reads, e.g. inside a plain Owner.Run().
	ownerScope *Owner

	// tracking disables dependency recording for the duration of an
	// untrack() call even when a consumerScope is active.
	tracking bool

	// globalVersion is bumped on every value-changing producer write.
	globalVersion uint32

	batchDepth int

	// pendingDerived accumulates Derived nodes a propagate() mark pass
	// reached while a batch is open, so resolving them (and paying for
	// their recompute) can wait until the outermost batch closes instead
	// of happening once per individual write inside it.
	pendingDerived []*Node

	schedulerHead *Node
	schedulerTail *Node

	// flushing guards re-entrant flush() calls and the loop guard count.
	flushing bool

	instrument *Instrument
	host       Host
}

// NewRuntime constructs a Runtime with the given options applied.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		tracking: true,
		host:     SyncHost{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configure applies opts to an already-constructed Runtime, so a caller
// holding the per-goroutine Runtime returned by GetRuntime can attach an
// instrument or host after the fact, not only at construction.
func (r *Runtime) Configure(opts ...RuntimeOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// Instrument returns the runtime's instrumentation hook, if any.
func (r *Runtime) Instrument() *Instrument { return r.instrument }

// CurrentConsumer returns the node currently executing a tracked body, or
// nil if none.
func (r *Runtime) CurrentConsumer() *Node { return r.consumerScope }

// ShouldTrack reports whether a read occurring right now should record a
// dependency edge.
func (r *Runtime) ShouldTrack() bool {
	return r.consumerScope != nil && r.tracking
}

// SetConsumerScope installs node as the current consumer scope and
// returns the previous scope so the caller can restore it.
func (r *Runtime) SetConsumerScope(n *Node) *Node {
	prev := r.consumerScope
	r.consumerScope = n
	return prev
}

// CurrentOwner returns the owner scope new reactive work should attach
// to, or nil if none is active.
func (r *Runtime) CurrentOwner() *Owner { return r.ownerScope }

// SetOwnerScope installs o as the current owner scope and returns the
// previous one so the caller can restore it.
func (r *Runtime) SetOwnerScope(o *Owner) *Owner {
	prev := r.ownerScope
	r.ownerScope = o
	return prev
}

// OnCleanup registers fn against the current owner scope, if any.
func (r *Runtime) OnCleanup(fn func()) {
	if o := r.ownerScope; o != nil {
		o.OnCleanup(fn)
	}
}

// BumpGlobalVersion increments and returns the global version counter.
func (r *Runtime) BumpGlobalVersion() uint32 {
	r.globalVersion++
	return r.globalVersion
}

// GlobalVersion returns the current global version counter.
func (r *Runtime) GlobalVersion() uint32 { return r.globalVersion }

// EnterBatch increments the batch depth.
func (r *Runtime) EnterBatch() { r.batchDepth++ }

// LeaveBatch decrements the batch depth. Once it returns to zero, every
// Derived a write inside the batch left Pending is resolved (so derived
// values are consistent by the time LeaveBatch returns, exactly as they
// are outside a batch), then the scheduler is flushed. Safe to call from
// a deferred statement so that a panicking batched function still
// resolves and flushes before the panic unwinds further (finally
// semantics).
func (r *Runtime) LeaveBatch() {
	r.batchDepth--
	if r.batchDepth != 0 {
		return
	}

	pending := r.pendingDerived
	r.pendingDerived = nil
	for _, n := range pending {
		r.resolveNode(n)
	}

	r.Flush()
}

// IsBatching reports whether writes are currently deferred.
func (r *Runtime) IsBatching() bool { return r.batchDepth > 0 }

// Untrack runs fn with dependency tracking disabled, restoring the
// previous tracking state afterward. A nested track() call inside fn
// re-enables tracking for its own nested scope.
func (r *Runtime) Untrack(fn func()) {
	prev := r.tracking
	r.tracking = false
	defer func() { r.tracking = prev }()
	fn()
}
