package reactor

import (
	"time"

	"github.com/flowgraph/reactor/internal"
)

// Effect is a reactive side effect: it runs once immediately, then again
// every time a dependency it read on its last run actually changes.
type Effect struct {
	node *internal.Node
}

// EffectOption configures how an Effect's re-runs (never its initial
// run, which is always synchronous) are scheduled.
type EffectOption func(*effectConfig)

type effectConfig struct {
	strategy *internal.Strategy
}

// WithMicrotaskFlush defers re-runs to host's microtask-equivalent
// queue, coalescing repeated dependency changes into a single re-run.
func WithMicrotaskFlush(host Host) EffectOption {
	return func(c *effectConfig) { c.strategy = internal.MicrotaskStrategy(host) }
}

// WithAnimationFrameFlush defers re-runs to host's next animation frame.
func WithAnimationFrameFlush(host Host) EffectOption {
	return func(c *effectConfig) { c.strategy = internal.AnimationFrameStrategy(host) }
}

// WithDebounceFlush defers a re-run until d has elapsed with no further
// triggering change, restarting the timer on every new one.
func WithDebounceFlush(host Host, d time.Duration) EffectOption {
	return func(c *effectConfig) { c.strategy = internal.DebounceStrategy(host, d) }
}

// NewEffect creates and immediately runs a reactive effect. Use
// OnCleanup from within fn to register teardown for the previous run's
// side effects; it runs again right before the next re-run, and once
// more when the effect is disposed.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	cfg := effectConfig{strategy: internal.SyncStrategy}
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := internal.GetRuntime()
	node := internal.NewConsumer(rt, func(*internal.Node) func() {
		fn()
		return nil
	}, cfg.strategy)

	return &Effect{node: node}
}

// Dispose stops this effect from ever running again and disposes
// anything reactive created inside its most recent run.
func (e *Effect) Dispose() {
	internal.GetRuntime().DisposeConsumer(e.node)
}
