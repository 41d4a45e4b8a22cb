package reactor

import "github.com/flowgraph/reactor/internal"

// Signal is a read/write reactive value: the producer at the root of
// the dependency graph.
type Signal[T any] struct {
	node *internal.Node
}

// NewSignal allocates a signal holding initial, bound to the calling
// goroutine's runtime.
func NewSignal[T any](initial T) *Signal[T] {
	rt := internal.GetRuntime()
	return &Signal[T]{
		node: internal.NewProducer(rt, initial, internal.DefaultEqual),
	}
}

// Read returns the signal's current value, recording a dependency if
// called from within a tracked scope (a Computed's compute body or an
// effect).
func (s *Signal[T]) Read() T {
	return as[T](s.node.ReadProducer())
}

// Write stores v, triggering every downstream derived and effect whose
// value actually depends on it. A write that doesn't change the value
// (per ==) is a no-op.
func (s *Signal[T]) Write(v T) {
	s.node.WriteProducer(v)
}
