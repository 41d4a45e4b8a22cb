package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))
		})

		NewBatch(func() {
			count.Write(1)
			count.Write(2)
			count.Write(3)
		})

		assert.Equal(t, []string{
			"changed 0",
			"changed 3",
		}, log)
	})

	t.Run("batches multiple signals", func(t *testing.T) {
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d %d", a.Read(), b.Read()))
		})

		NewBatch(func() {
			a.Write(1)
			b.Write(2)
		})

		assert.Equal(t, []string{
			"changed 0 0",
			"changed 1 2",
		}, log)
	})

	t.Run("derived resolves once per batch, not once per write", func(t *testing.T) {
		a := NewSignal(1)
		b := NewSignal(2)

		runs := 0
		sum := NewComputed(func() int {
			runs++
			return a.Read() + b.Read()
		})
		runs = 0 // construction itself recomputes once

		NewBatch(func() {
			a.Write(10)
			b.Write(20)
		})

		assert.Equal(t, 30, sum.Read())
		assert.Equal(t, 1, runs)
	})

	t.Run("nested batches", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))
		})

		NewBatch(func() {
			count.Write(1)
			NewBatch(func() {
				count.Write(2)
				count.Write(3)
			})
			count.Write(4)
		})

		assert.Equal(t, []string{
			"changed 0",
			"changed 4",
		}, log)
	})
}

func ExampleNewBatch() {
	count := NewSignal(0)
	NewEffect(func() {
		fmt.Println("changed", count.Read())
	})

	NewBatch(func() {
		count.Write(1)
		count.Write(2)
		count.Write(3)
	})

	// Output:
	// changed 0
	// changed 3
}

func ExampleNewBatch_double() {
	a := NewSignal(0)
	b := NewSignal(0)
	NewEffect(func() {
		fmt.Println("changed", a.Read(), b.Read())
	})

	NewBatch(func() {
		a.Write(1)
		b.Write(2)
	})

	// Output:
	// changed 0 0
	// changed 1 2
}

func ExampleNewBatch_nested() {
	count := NewSignal(0)
	NewEffect(func() {
		fmt.Println("changed", count.Read())
	})

	NewBatch(func() {
		count.Write(1)
		NewBatch(func() {
			count.Write(2)
			count.Write(3)
		})
		count.Write(4)
	})

	// Output:
	// changed 0
	// changed 4
}
