package reactor

import "github.com/flowgraph/reactor/internal"

// Computed is a cached function of other reactive values — a derived
// node that is itself both a consumer (of whatever it reads) and a
// producer (of whatever it returns). It is evaluated eagerly: once at
// construction and again as part of every write that reaches it (or at
// the end of the enclosing batch), not deferred until the next Read.
type Computed[T any] struct {
	node *internal.Node
}

// NewComputed allocates a computed value and runs compute once,
// immediately, to produce its initial value. It runs again only when a
// dependency it read last time has actually changed.
func NewComputed[T any](compute func() T) *Computed[T] {
	rt := internal.GetRuntime()
	return &Computed[T]{
		node: internal.NewDerived(rt, func(*internal.Node) any { return compute() }),
	}
}

// Read returns the computed's up-to-date value, recomputing first if
// necessary, and records a dependency if called from within a tracked
// scope.
func (c *Computed[T]) Read() T {
	return as[T](c.node.ReadDerived())
}

// Peek reads the computed's value without recording a dependency, even
// from within a tracked scope.
func (c *Computed[T]) Peek() T {
	return as[T](c.node.PeekDerived())
}

// Dispose tears down this computed and anything reactive created inside
// its compute body.
func (c *Computed[T]) Dispose() {
	internal.DisposeDerived(c.node)
}
