package reactor

import "github.com/flowgraph/reactor/internal"

// Context is an owner-scoped value: Set stores a value against the
// current owner, Value reads it back by walking up through parent
// owners, falling back to the context's default if never set on any
// ancestor (or if there is no owner scope active at all). A Context
// read never creates a reactive dependency.
type Context[T any] struct {
	key     *int
	initial T
}

// NewContext creates a context carrying initial as its default value.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{key: new(int), initial: initial}
}

// Value returns the value set on the nearest owner ancestor (including
// the current one), or the context's default if none is active or none
// set it.
func (c *Context[T]) Value() T {
	owner := internal.GetRuntime().CurrentOwner()
	if owner == nil {
		return c.initial
	}
	v, ok := owner.Value(c.key)
	if !ok {
		return c.initial
	}
	return as[T](v)
}

// Set stores value against the current owner scope. A call with no
// owner scope active has nothing to attach the value to and is a
// no-op.
func (c *Context[T]) Set(value T) {
	owner := internal.GetRuntime().CurrentOwner()
	if owner == nil {
		return
	}
	owner.Set(c.key, value)
}
