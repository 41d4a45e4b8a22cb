//go:build js && wasm

package internal

import "sync"

// In a browser WASM build there is exactly one real OS thread and no
// goroutine-id-keyed registry is needed: every goroutine shares the same
// event loop, so a single process-wide Runtime is both correct and
// avoids a sync.Map lookup on every call.
var (
	once     sync.Once
	instance *Runtime
)

// GetRuntime returns the single process-wide Runtime.
func GetRuntime() *Runtime {
	once.Do(func() { instance = NewRuntime() })
	return instance
}
