// Command reactordemo is a small runnable tour of the reactor package:
// a batched write observed once by an effect, and a keyed-list
// reconciliation that moves items without recreating them.
package main

import (
	"fmt"

	"github.com/flowgraph/reactor"
)

func main() {
	owner := reactor.NewOwner()
	owner.Run(func() error {
		a := reactor.NewSignal(1)
		b := reactor.NewSignal(2)

		sum := reactor.NewComputed(func() int {
			result := a.Read() + b.Read()
			fmt.Println("  [computed] sum:", result)
			return result
		})

		reactor.NewEffect(func() {
			fmt.Println("  [effect] sum is:", sum.Read())
		})

		fmt.Println("\nupdating a and b in a batch...")
		reactor.NewBatch(func() {
			a.Write(10)
			b.Write(20)
		})

		fmt.Println("\nexpected: one computed run and one effect run, sum=30")
		return nil
	})
	owner.Dispose()

	fmt.Println("\nreconciling a keyed list...")

	type row struct {
		id string
		n  int
	}
	rowKey := func(r row) string { return r.id }

	list := reactor.NewKeyedList(rowKey,
		row{"a", 1}, row{"b", 2}, row{"c", 3}, row{"d", 4}, row{"e", 5},
	)

	reactor.NewEffect(func() {
		var order []string
		for k := range list.Keys() {
			order = append(order, k)
		}
		fmt.Println("  [effect] order:", order)
	})

	var moved []string
	list.Reconcile([]row{
		{"a", 1}, {"c", 3}, {"e", 5}, {"b", 2}, {"d", 4},
	}, reactor.ReconcileCallbacks[string, row]{
		OnMove: func(key string) { moved = append(moved, key) },
	})
	fmt.Println("  [reconcile] moved:", moved)
}
