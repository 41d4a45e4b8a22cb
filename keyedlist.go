package reactor

import (
	"iter"

	"github.com/flowgraph/reactor/internal"
)

// KeyedList is a reactive ordered container keyed by a stable identity
// derived from each value via keyFn: each item is its own producer, so a
// consumer reading one item doesn't re-run when a different item is
// added, removed, or moved. Reconcile re-derives the whole order from a
// fresh slice in one pass, reusing and relocating existing items with
// the fewest possible moves.
type KeyedList[K comparable, V any] struct {
	list  *internal.KeyedList
	keyFn func(V) K
}

// NewKeyedList allocates a keyed list that derives each item's key from
// its value via keyFn, optionally seeded with initial items. A duplicate
// key among initial is dropped silently, as if appended after an
// earlier item with the same key.
func NewKeyedList[K comparable, V any](keyFn func(V) K, initial ...V) *KeyedList[K, V] {
	l := &KeyedList[K, V]{
		list:  internal.NewKeyedList(internal.GetRuntime()),
		keyFn: keyFn,
	}
	for _, v := range initial {
		_ = l.list.Append(keyFn(v), v)
	}
	return l
}

// Length returns the current item count, tracked like a signal read.
func (l *KeyedList[K, V]) Length() int { return l.list.Length() }

// Has reports whether key currently has an item in the list.
func (l *KeyedList[K, V]) Has(key K) bool { return l.list.Has(key) }

// Get reads the value stored under key, tracking a dependency on that
// item alone.
func (l *KeyedList[K, V]) Get(key K) (V, bool) {
	v, ok := l.list.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return as[V](v), true
}

// Peek reads the value stored under key without tracking.
func (l *KeyedList[K, V]) Peek(key K) (V, bool) {
	v, ok := l.list.Peek(key)
	if !ok {
		var zero V
		return zero, false
	}
	return as[V](v), true
}

// Append adds value at the tail, keyed by keyFn(value).
func (l *KeyedList[K, V]) Append(value V) error {
	return l.list.Append(l.keyFn(value), value)
}

// Prepend adds value at the head, keyed by keyFn(value).
func (l *KeyedList[K, V]) Prepend(value V) error {
	return l.list.Prepend(l.keyFn(value), value)
}

// InsertBefore adds value immediately before beforeKey's item, keyed by
// keyFn(value).
func (l *KeyedList[K, V]) InsertBefore(beforeKey K, value V) error {
	return l.list.InsertBefore(beforeKey, l.keyFn(value), value)
}

// MoveBefore relocates the existing item at key to just before
// beforeKey's item, preserving its identity (and its subscribers).
func (l *KeyedList[K, V]) MoveBefore(key, beforeKey K) error {
	return l.list.MoveBefore(key, beforeKey)
}

// MoveToEnd relocates the existing item at key to the tail.
func (l *KeyedList[K, V]) MoveToEnd(key K) error {
	return l.list.MoveToEnd(key)
}

// Remove deletes the item at key.
func (l *KeyedList[K, V]) Remove(key K) error {
	return l.list.Remove(key)
}

// Update writes value into the existing item keyed by keyFn(value),
// notifying only that item's own subscribers.
func (l *KeyedList[K, V]) Update(value V) error {
	return l.list.Update(l.keyFn(value), value)
}

// ReconcileCallbacks reports the minimal edit sequence Reconcile applies
// to move the list from its current contents to the new one: inserts
// and removes for keys that appeared or disappeared, moves for
// surviving keys outside the longest-increasing-subsequence of unmoved
// positions, and updates for surviving keys whose value changed. Any
// field left nil is simply not called for that kind of edit.
type ReconcileCallbacks[K comparable, V any] struct {
	OnInsert func(key K, value V)
	OnRemove func(key K)
	OnMove   func(key K)
	OnUpdate func(key K, value V)
}

// Reconcile replaces the list's contents with values (each keyed via
// keyFn), keeping existing items' identity (and their subscribers)
// stable across the positions that don't need to move, and relinking
// everything else in one right-to-left pass driven by a
// longest-increasing-subsequence of unmoved positions. Every edit is
// reported through callbacks as it happens.
func (l *KeyedList[K, V]) Reconcile(values []V, callbacks ReconcileCallbacks[K, V]) error {
	entries := make([]internal.Entry, len(values))
	for i, v := range values {
		entries[i] = internal.Entry{Key: l.keyFn(v), Value: v}
	}

	return l.list.Reconcile(entries, internal.ReconcileCallbacks{
		OnInsert: func(key, value any) {
			if callbacks.OnInsert != nil {
				callbacks.OnInsert(key.(K), as[V](value))
			}
		},
		OnRemove: func(key any) {
			if callbacks.OnRemove != nil {
				callbacks.OnRemove(key.(K))
			}
		},
		OnMove: func(key any) {
			if callbacks.OnMove != nil {
				callbacks.OnMove(key.(K))
			}
		},
		OnUpdate: func(key, value any) {
			if callbacks.OnUpdate != nil {
				callbacks.OnUpdate(key.(K), as[V](value))
			}
		},
	})
}

// Keys iterates the current keys in list order. The only dependency it
// records is on the list's length: a consumer iterating Keys re-runs
// when the item count changes, but not when items are reordered or
// replaced without changing the count.
func (l *KeyedList[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		l.list.Length() // record a dependency on the list's length
		for k := range l.list.Keys() {
			if !yield(k.(K)) {
				return
			}
		}
	}
}
