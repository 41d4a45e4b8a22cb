package internal

import (
	"sync"
	"time"
)

// Strategy governs how a consumer's re-runs (never its initial run,
// which is always synchronous) are scheduled once the consumer is
// enqueued. It is a plain function value rather than an interface
// hierarchy, per the design note against dynamic dispatch for
// strategies.
type Strategy struct {
	// Schedule arranges for run to eventually execute; it may run run
	// synchronously (the default) or hand it to a Host.
	Schedule func(run func())
}

// SyncStrategy runs the consumer inline, as part of the current flush.
// This is the default for every newly created consumer.
var SyncStrategy = &Strategy{Schedule: func(run func()) { run() }}

// MicrotaskStrategy defers the re-run to the host's microtask-equivalent
// queue, coalescing any re-runs requested before the posted run actually
// executes into that single run.
func MicrotaskStrategy(host Host) *Strategy {
	return coalescing(host.Post)
}

// AnimationFrameStrategy defers the re-run to the host's next
// animation-frame callback, coalescing repeated requests the same way.
func AnimationFrameStrategy(host Host) *Strategy {
	return coalescing(host.PostAnimationFrame)
}

// DebounceStrategy defers the re-run until d has elapsed with no further
// request, restarting the timer on every new request.
func DebounceStrategy(host Host, d time.Duration) *Strategy {
	var mu sync.Mutex
	var generation uint64

	return &Strategy{
		Schedule: func(run func()) {
			mu.Lock()
			generation++
			my := generation
			mu.Unlock()

			host.After(d, func() {
				mu.Lock()
				stale := my != generation
				mu.Unlock()
				if stale {
					return
				}
				run()
			})
		},
	}
}

// coalescing wraps post so that multiple Schedule calls before the
// posted run fires only result in one actual invocation of run.
func coalescing(post func(func())) *Strategy {
	var mu sync.Mutex
	var pending bool

	return &Strategy{
		Schedule: func(run func()) {
			mu.Lock()
			if pending {
				mu.Unlock()
				return
			}
			pending = true
			mu.Unlock()

			post(func() {
				mu.Lock()
				pending = false
				mu.Unlock()
				run()
			})
		},
	}
}
