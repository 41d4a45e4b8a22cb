package reactor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		err := o.Run(func() error {
			log = append(log, "running")
			OnCleanup(func() {
				log = append(log, "cleanup")
			})
			return nil
		})
		assert.NoError(t, err)

		o.Dispose()
		o.Dispose() // idempotent

		assert.Equal(t, []string{
			"running",
			"cleanup",
		}, log)
	})

	t.Run("nested owners", func(t *testing.T) {
		log := []string{}

		parent := NewOwner()
		parent.Run(func() error {
			child := NewOwner()
			child.Run(func() error {
				OnCleanup(func() {
					log = append(log, "child cleanup")
				})
				return nil
			})

			OnCleanup(func() {
				log = append(log, "parent cleanup")
			})
			return nil
		})

		parent.Dispose()

		assert.Equal(t, []string{
			"child cleanup",
			"parent cleanup",
		}, log)
	})

	t.Run("sibling effects disposal order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.Run(func() error {
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "cleanup 1") })
			})
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "cleanup 2") })
			})
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "cleanup 3") })
			})
			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{
			"cleanup 3",
			"cleanup 2",
			"cleanup 1",
		}, log)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		var caught any

		o := NewOwner()
		o.OnError(func(err any) {
			caught = err
		})

		o.Run(func() error {
			NewEffect(func() {
				panic(errors.New("boom"))
			})
			return nil
		})

		assert.EqualError(t, caught.(error), "boom")
	})

	t.Run("disposal prevents effect re-runs", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		o := NewOwner()
		o.Run(func() error {
			NewEffect(func() {
				log = append(log, fmt.Sprintf("changed %d", count.Read()))
			})
			return nil
		})

		count.Write(1)
		o.Dispose()
		count.Write(2)

		assert.Equal(t, []string{
			"changed 0",
			"changed 1",
		}, log)
	})

	t.Run("disposal during effect execution", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		var o *Owner

		NewEffect(func() {
			log = append(log, fmt.Sprintf("outer %d", count.Read()))
			if count.Read() == 1 {
				o.Dispose()
			}
		})

		o = NewOwner()
		o.Run(func() error {
			NewEffect(func() {
				log = append(log, fmt.Sprintf("inner %d", count.Read()))
			})
			return nil
		})

		count.Write(1)

		assert.Equal(t, []string{
			"outer 0",
			"inner 0",
			"outer 1",
		}, log)
	})
}
