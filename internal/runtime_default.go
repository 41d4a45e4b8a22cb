//go:build !(js && wasm)

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map // goroutine id (int64) -> *Runtime

// GetRuntime returns the Runtime bound to the calling goroutine, creating
// one on first use. Every cooperating goroutine gets its own graph; there
// is no cross-goroutine synchronization inside a single Runtime, matching
// the single-threaded cooperative scheduling model.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}
