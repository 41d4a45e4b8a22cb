package reactor

import "github.com/flowgraph/reactor/internal"

// Owner is an explicit lifecycle scope: reactive work created while
// running inside it becomes its child, and is disposed along with it.
type Owner struct {
	owner *internal.Owner
}

// NewOwner allocates a new owner. If called from within another
// owner's Run (or a Computed/Effect body), the new owner becomes a
// child of that enclosing scope and is disposed along with it even if
// Dispose is never called on it directly.
func NewOwner() *Owner {
	return &Owner{owner: internal.NewStandaloneOwner(internal.GetRuntime())}
}

// Run executes fn with this owner installed as the current scope, so
// every signal, computed, effect, and nested owner created inside fn
// belongs to it. fn's returned error is passed through unchanged; a
// panic inside fn is recovered and routed to the nearest ancestor
// owner with a registered OnError handler.
func (o *Owner) Run(fn func() error) error {
	var err error
	o.owner.Run(func() { err = fn() })
	return err
}

// Dispose disposes every child owner and reactive node created within
// this owner's scope (most recently created first), then runs this
// owner's own OnCleanup/OnDispose callbacks. Idempotent.
func (o *Owner) Dispose() {
	o.owner.Dispose()
}

// OnCleanup registers fn to run once, when this owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.owner.OnCleanup(fn)
}

// OnDispose registers fn to run once, when this owner is disposed. It
// behaves identically to OnCleanup; both names are provided because
// code reads more naturally one way or the other depending on whether
// it holds the Owner directly or is calling the package-level
// OnCleanup from inside a reactive body.
func (o *Owner) OnDispose(fn func()) {
	o.owner.OnCleanup(fn)
}

// OnError registers fn as a panic handler: a panic raised by any
// descendant reactive work (now or on a later re-run) that isn't caught
// by a closer OnError handler is routed here instead of propagating.
func (o *Owner) OnError(fn func(any)) {
	o.owner.OnError(fn)
}
