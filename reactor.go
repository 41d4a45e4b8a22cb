// Package reactor is a fine-grained reactive runtime: signals, derived
// values, and effects wired together by a dependency graph that
// recomputes only what a write actually affects.
package reactor

import "github.com/flowgraph/reactor/internal"

// as recovers a typed value from the untyped storage internal nodes
// use, treating a stored nil as T's zero value.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
