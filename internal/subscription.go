package internal

// NewSubscription builds the selective source+callback consumer variant:
// source is read under tracking (so the subscription re-runs whenever a
// producer that source read changes, even if source then returns the
// same value as before), but callback itself runs untracked, so
// anything callback happens to read does not become a dependency of the
// subscription. This is the shape to reach for when a consumer's
// reaction depends on more producers than it should react to — e.g.
// reading a second signal only to log it alongside the one that matters.
func NewSubscription(rt *Runtime, source func() any, callback func(prev, next any) func()) *Node {
	var (
		prev    any
		started bool
	)

	return NewConsumer(rt, func(*Node) func() {
		next := source()

		var cleanup func()
		rt.Untrack(func() {
			if !started {
				cleanup = callback(nil, next)
				started = true
			} else {
				cleanup = callback(prev, next)
			}
		})
		prev = next
		return cleanup
	}, SyncStrategy)
}
