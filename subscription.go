package reactor

import "github.com/flowgraph/reactor/internal"

// Subscription is the selective source+callback effect variant: only
// reading source establishes a dependency, so anything callback itself
// reads does not.
type Subscription struct {
	node *internal.Node
}

// NewSubscription builds a subscription that calls callback with the
// previous and current value of source, once immediately (with T's zero
// value as the previous value) and again every time a reactive value
// read by source changes. Callback is not skipped when source then
// returns a value equal to the previous one.
func NewSubscription[T any](source func() T, callback func(prev, next T) func()) *Subscription {
	rt := internal.GetRuntime()
	node := internal.NewSubscription(rt,
		func() any { return source() },
		func(prev, next any) func() {
			return callback(as[T](prev), as[T](next))
		},
	)
	return &Subscription{node: node}
}

// Dispose stops this subscription from running again.
func (s *Subscription) Dispose() {
	internal.GetRuntime().DisposeConsumer(s.node)
}
