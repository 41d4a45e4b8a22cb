package reactor

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row is a value carrying its own identity, the shape every KeyedList
// item takes in these tests: the key function projects out id.
type row struct {
	id    string
	value int
}

func rowKey(r row) string { return r.id }

func keys(l *KeyedList[string, row]) []string {
	var out []string
	for k := range l.Keys() {
		out = append(out, k)
	}
	return out
}

func TestKeyedList(t *testing.T) {
	t.Run("append and get", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))

		assert.Equal(t, 2, l.Length())
		v, ok := l.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v.value)

		_, ok = l.Get("missing")
		assert.False(t, ok)
	})

	t.Run("constructor accepts initial items", func(t *testing.T) {
		l := NewKeyedList(rowKey, row{"a", 1}, row{"b", 2}, row{"c", 3})

		assert.Equal(t, 3, l.Length())
		if diff := cmp.Diff([]string{"a", "b", "c"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("append rejects duplicate key", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))

		err := l.Append(row{"a", 2})
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("prepend and insert before", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"b", 2}))
		require.NoError(t, l.Prepend(row{"a", 1}))
		require.NoError(t, l.InsertBefore("b", row{"ab", 15}))

		if diff := cmp.Diff([]string{"a", "ab", "b"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("insert before missing anchor fails", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		err := l.InsertBefore("ghost", row{"a", 1})
		assert.ErrorContains(t, err, "key not found")
	})

	t.Run("move before preserves item identity", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))
		require.NoError(t, l.Append(row{"c", 3}))

		log := []int{}
		NewEffect(func() {
			v, _ := l.Get("a")
			log = append(log, v.value)
		})

		require.NoError(t, l.MoveBefore("a", "c"))
		if diff := cmp.Diff([]string{"b", "a", "c"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}

		// moving "a" never wrote to its own node, so the effect that only
		// reads "a" must not have re-run.
		assert.Equal(t, []int{1}, log)
	})

	t.Run("move to end", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))

		require.NoError(t, l.MoveToEnd("a"))
		if diff := cmp.Diff([]string{"b", "a"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("remove", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))

		require.NoError(t, l.Remove("a"))
		assert.False(t, l.Has("a"))
		assert.Equal(t, 1, l.Length())

		assert.ErrorContains(t, l.Remove("a"), "key not found")
	})

	t.Run("update notifies only that item", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))

		logA, logB := []int{}, []int{}
		NewEffect(func() {
			v, _ := l.Get("a")
			logA = append(logA, v.value)
		})
		NewEffect(func() {
			v, _ := l.Get("b")
			logB = append(logB, v.value)
		})

		require.NoError(t, l.Update(row{"a", 10}))

		assert.Equal(t, []int{1, 10}, logA)
		assert.Equal(t, []int{2}, logB)
	})

	t.Run("reconcile keeps unmoved identity stable", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))
		require.NoError(t, l.Append(row{"c", 3}))

		logB := []int{}
		NewEffect(func() {
			v, _ := l.Get("b")
			logB = append(logB, v.value)
		})

		require.NoError(t, l.Reconcile([]row{
			{"c", 3},
			{"a", 1},
			{"b", 2},
		}, ReconcileCallbacks[string, row]{}))

		if diff := cmp.Diff([]string{"c", "a", "b"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
		// "b" kept the same value across the reconcile, so its subscriber
		// must not have re-run even though its position changed.
		assert.Equal(t, []int{2}, logB)
	})

	t.Run("reconcile drops missing keys and adds new ones", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		require.NoError(t, l.Append(row{"a", 1}))
		require.NoError(t, l.Append(row{"b", 2}))

		var inserted, removed []string
		require.NoError(t, l.Reconcile([]row{
			{"b", 20},
			{"c", 3},
		}, ReconcileCallbacks[string, row]{
			OnInsert: func(key string, _ row) { inserted = append(inserted, key) },
			OnRemove: func(key string) { removed = append(removed, key) },
		}))

		assert.False(t, l.Has("a"))
		if diff := cmp.Diff([]string{"b", "c"}, keys(l)); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
		v, _ := l.Get("b")
		assert.Equal(t, 20, v.value)

		assert.Equal(t, []string{"a"}, removed)
		assert.Equal(t, []string{"c"}, inserted)
	})

	t.Run("reconcile rejects duplicate keys in input", func(t *testing.T) {
		l := NewKeyedList(rowKey)
		err := l.Reconcile([]row{
			{"a", 1},
			{"a", 2},
		}, ReconcileCallbacks[string, row]{})
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("reconcile reports the minimal number of moves", func(t *testing.T) {
		// keyed by id = [1,2,3,4,5], reconciled to [1,3,5,2,4]: the LIS of
		// old positions [0,2,4,1,3] is [0,2,4] (keys 1,3,5), so only keys
		// 2 and 4 need to move.
		identity := func(v int) int { return v }
		l := NewKeyedList(identity, 1, 2, 3, 4, 5)

		var moved []int
		var updated []int
		require.NoError(t, l.Reconcile([]int{1, 3, 5, 2, 4}, ReconcileCallbacks[int, int]{
			OnMove:   func(key int) { moved = append(moved, key) },
			OnUpdate: func(key, _ int) { updated = append(updated, key) },
		}))

		if diff := cmp.Diff([]int{1, 3, 5, 2, 4}, slices.Collect(l.Keys())); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
		assert.Len(t, moved, 2)
		assert.ElementsMatch(t, []int{2, 4}, moved)
		assert.Empty(t, updated) // no value in this reconcile actually changed
	})
}

func ExampleKeyedList() {
	l := NewKeyedList(rowKey)
	l.Append(row{"a", 1})
	l.Append(row{"b", 2})
	l.Append(row{"c", 3})

	l.Reconcile([]row{
		{"c", 3},
		{"a", 1},
		{"b", 2},
	}, ReconcileCallbacks[string, row]{})

	fmt.Println(slices.Collect(l.Keys()))

	// Output:
	// [c a b]
}
