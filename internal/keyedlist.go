package internal

import "iter"

// KeyedItem is one element of a KeyedList: a stable key paired with a
// producer node holding its current value. Consumers subscribe to a
// single item's Node without depending on the list's shape, so an
// insertion or move elsewhere in the list never dirties them.
type KeyedItem struct {
	Key  any
	Node *Node

	prev, next *KeyedItem
}

// KeyedList is the ordered, keyed container described by the
// reconciliation model: a doubly-linked sequence of KeyedItems plus a
// key index for O(1) lookup, with its Length exposed as its own
// producer so a consumer that only cares about item count doesn't
// re-run on an in-place value update.
type KeyedList struct {
	rt    *Runtime
	lenp  *Node
	byKey map[any]*KeyedItem

	head, tail *KeyedItem
}

// Entry is one (key, value) pair supplied to Reconcile.
type Entry struct {
	Key   any
	Value any
}

// NewKeyedList allocates an empty keyed list bound to rt.
func NewKeyedList(rt *Runtime) *KeyedList {
	return &KeyedList{
		rt:    rt,
		lenp:  NewProducer(rt, 0, DefaultEqual),
		byKey: make(map[any]*KeyedItem),
	}
}

// Length returns the current item count, tracked like any producer read.
func (l *KeyedList) Length() int {
	return l.lenp.ReadProducer().(int)
}

func (l *KeyedList) setLength(n int) {
	l.lenp.WriteProducer(n)
}

// Has reports whether key currently has an item in the list.
func (l *KeyedList) Has(key any) bool {
	_, ok := l.byKey[key]
	return ok
}

// Get reads the current value stored under key, tracking a dependency
// on that item's node. The second return is false if key is absent.
func (l *KeyedList) Get(key any) (any, bool) {
	it, ok := l.byKey[key]
	if !ok {
		return nil, false
	}
	return it.Node.ReadProducer(), true
}

// Peek reads the current value stored under key without tracking.
func (l *KeyedList) Peek(key any) (any, bool) {
	it, ok := l.byKey[key]
	if !ok {
		return nil, false
	}
	var v any
	l.rt.Untrack(func() { v = it.Node.ReadProducer() })
	return v, true
}

// Keys iterates the current keys in list order.
func (l *KeyedList) Keys() iter.Seq[any] {
	return func(yield func(any) bool) {
		for it := l.head; it != nil; it = it.next {
			if !yield(it.Key) {
				return
			}
		}
	}
}

// Items iterates the current items in list order.
func (l *KeyedList) Items() iter.Seq[*KeyedItem] {
	return func(yield func(*KeyedItem) bool) {
		for it := l.head; it != nil; it = it.next {
			if !yield(it) {
				return
			}
		}
	}
}

func (l *KeyedList) linkTail(it *KeyedItem) {
	it.prev = l.tail
	it.next = nil
	if l.tail != nil {
		l.tail.next = it
	} else {
		l.head = it
	}
	l.tail = it
}

func (l *KeyedList) linkHead(it *KeyedItem) {
	it.next = l.head
	it.prev = nil
	if l.head != nil {
		l.head.prev = it
	} else {
		l.tail = it
	}
	l.head = it
}

func (l *KeyedList) unlink(it *KeyedItem) {
	if it.prev != nil {
		it.prev.next = it.next
	} else {
		l.head = it.next
	}
	if it.next != nil {
		it.next.prev = it.prev
	} else {
		l.tail = it.prev
	}
	it.prev, it.next = nil, nil
}

// insertBefore links it directly before anchor, or at the tail if
// anchor is nil.
func (l *KeyedList) insertBefore(anchor, it *KeyedItem) {
	if anchor == nil {
		l.linkTail(it)
		return
	}
	it.prev = anchor.prev
	it.next = anchor
	if anchor.prev != nil {
		anchor.prev.next = it
	} else {
		l.head = it
	}
	anchor.prev = it
}

// Append adds a new item at the tail. Returns ErrDuplicateKey if key is
// already present.
func (l *KeyedList) Append(key, value any) error {
	if l.Has(key) {
		return ErrDuplicateKey
	}
	it := &KeyedItem{Key: key, Node: NewProducer(l.rt, value, DefaultEqual)}
	l.byKey[key] = it
	l.linkTail(it)
	l.setLength(len(l.byKey))
	return nil
}

// Prepend adds a new item at the head. Returns ErrDuplicateKey if key is
// already present.
func (l *KeyedList) Prepend(key, value any) error {
	if l.Has(key) {
		return ErrDuplicateKey
	}
	it := &KeyedItem{Key: key, Node: NewProducer(l.rt, value, DefaultEqual)}
	l.byKey[key] = it
	l.linkHead(it)
	l.setLength(len(l.byKey))
	return nil
}

// InsertBefore adds a new item immediately before beforeKey's item.
// Returns ErrDuplicateKey if key already exists, ErrKeyNotFound if
// beforeKey does not.
func (l *KeyedList) InsertBefore(beforeKey, key, value any) error {
	if l.Has(key) {
		return ErrDuplicateKey
	}
	anchor, ok := l.byKey[beforeKey]
	if !ok {
		return ErrKeyNotFound
	}
	it := &KeyedItem{Key: key, Node: NewProducer(l.rt, value, DefaultEqual)}
	l.byKey[key] = it
	l.insertBefore(anchor, it)
	l.setLength(len(l.byKey))
	return nil
}

// MoveBefore relocates the existing item at key to just before
// beforeKey's item, without disturbing its node's identity (so existing
// subscribers to that item keep their edge). Returns ErrKeyNotFound if
// either key is absent, without moving anything; to move an item to the
// tail, use MoveToEnd.
func (l *KeyedList) MoveBefore(key, beforeKey any) error {
	it, ok := l.byKey[key]
	if !ok {
		return ErrKeyNotFound
	}
	anchor, ok := l.byKey[beforeKey]
	if !ok {
		return ErrKeyNotFound
	}
	if it == anchor {
		return nil
	}
	l.unlink(it)
	l.insertBefore(anchor, it)
	return nil
}

// MoveToEnd relocates the existing item at key to the tail of the list.
func (l *KeyedList) MoveToEnd(key any) error {
	it, ok := l.byKey[key]
	if !ok {
		return ErrKeyNotFound
	}
	l.unlink(it)
	l.linkTail(it)
	return nil
}

// Remove deletes the item at key. Returns ErrKeyNotFound if absent.
func (l *KeyedList) Remove(key any) error {
	it, ok := l.byKey[key]
	if !ok {
		return ErrKeyNotFound
	}
	l.unlink(it)
	delete(l.byKey, key)
	l.setLength(len(l.byKey))
	return nil
}

// Update writes a new value into the existing item at key, notifying
// only that item's own subscribers. Returns ErrKeyNotFound if absent.
func (l *KeyedList) Update(key, value any) error {
	it, ok := l.byKey[key]
	if !ok {
		return ErrKeyNotFound
	}
	it.Node.WriteProducer(value)
	return nil
}

// ReconcileCallbacks reports the minimal edit sequence Reconcile applies:
// removals first (in no particular order), then inserts, moves and
// updates in the order new entries are visited (right to left). Any
// field left nil is simply not called for that kind of edit.
type ReconcileCallbacks struct {
	OnInsert func(key, value any)
	OnRemove func(key any)
	OnMove   func(key any)
	OnUpdate func(key, value any)
}

// Reconcile replaces the list's contents with entries using the minimal
// move strategy: keys present in both the old and new order keep their
// Node (so subscribers to an unmoved, unchanged item see nothing at
// all), a maximal run of keys already in relative order is left
// untouched, and every other key is relinked to its new position in a
// single right-to-left pass, each edit reported through callbacks.
// Duplicate keys within entries return ErrDuplicateKey without mutating
// the list.
func (l *KeyedList) Reconcile(entries []Entry, callbacks ReconcileCallbacks) error {
	seen := make(map[any]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key] {
			return ErrDuplicateKey
		}
		seen[e.Key] = true
	}

	for key := range l.byKey {
		if !seen[key] {
			it := l.byKey[key]
			l.unlink(it)
			delete(l.byKey, key)
			if callbacks.OnRemove != nil {
				callbacks.OnRemove(key)
			}
		}
	}

	oldIndexOf := make(map[any]int, len(l.byKey))
	i := 0
	for it := l.head; it != nil; it = it.next {
		oldIndexOf[it.Key] = i
		i++
	}

	sources := make([]int, len(entries))
	for i, e := range entries {
		if idx, ok := oldIndexOf[e.Key]; ok {
			sources[i] = idx
		} else {
			sources[i] = -1
		}
	}

	keep := make(map[int]bool, len(entries))
	for _, i := range longestIncreasingSubsequence(sources) {
		keep[i] = true
	}

	var anchor *KeyedItem
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		if it, ok := l.byKey[e.Key]; ok {
			old := it.Node.Value
			it.Node.WriteProducer(e.Value)
			if !it.Node.Equal(old, e.Value) && callbacks.OnUpdate != nil {
				callbacks.OnUpdate(e.Key, e.Value)
			}

			if keep[i] {
				anchor = it
				continue
			}
			l.unlink(it)
			l.insertBefore(anchor, it)
			anchor = it
			if callbacks.OnMove != nil {
				callbacks.OnMove(e.Key)
			}
			continue
		}

		it := &KeyedItem{Key: e.Key, Node: NewProducer(l.rt, e.Value, DefaultEqual)}
		l.byKey[e.Key] = it
		l.insertBefore(anchor, it)
		anchor = it
		if callbacks.OnInsert != nil {
			callbacks.OnInsert(e.Key, e.Value)
		}
	}

	l.setLength(len(entries))
	return nil
}
