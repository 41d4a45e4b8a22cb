package reactor

import "github.com/flowgraph/reactor/internal"

// Untrack runs fn without recording any dependency edges for reads that
// happen inside it, even if called from within a tracked scope, and
// returns fn's result.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers fn against the current owner scope (the
// enclosing effect or computed's body), to run right before that
// scope's next re-run or when it is disposed, whichever comes first. A
// call outside of any reactive scope is a no-op.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}
