package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstrument(t *testing.T) {
	var reads, writes, computes []any
	var effectRuns, effectDisposes int
	var snapshotIDs []string

	Configure(WithInstrument(&Instrument{
		OnRead:          func(_ *Node, v any) { reads = append(reads, v) },
		OnWrite:         func(_ *Node, v any) { writes = append(writes, v) },
		OnComputed:      func(_ *Node, v any) { computes = append(computes, v) },
		OnEffectRun:     func(*Node) { effectRuns++ },
		OnEffectDispose: func(*Node) { effectDisposes++ },
		OnGraphSnapshot: func(id string) { snapshotIDs = append(snapshotIDs, id) },
	}))
	t.Cleanup(func() { Configure(WithInstrument(nil)) })

	count := NewSignal(0)
	doubled := NewComputed(func() int { return count.Read() * 2 })

	effect := NewEffect(func() {
		_ = doubled.Read()
	})

	count.Write(1)
	effect.Dispose()

	assert.Contains(t, reads, 0)
	assert.Contains(t, reads, 1)
	assert.Contains(t, writes, 1)
	assert.Contains(t, computes, 0)
	assert.Contains(t, computes, 2)
	assert.Equal(t, 2, effectRuns) // initial run, then the re-run after count.Write
	assert.Equal(t, 1, effectDisposes)

	id := Snapshot()
	assert.NotEmpty(t, id)
	assert.Contains(t, snapshotIDs, id)
}

func TestSyncHostDefault(t *testing.T) {
	ran := false
	var host Host = SyncHost{}
	host.Post(func() { ran = true })
	assert.True(t, ran)
}
