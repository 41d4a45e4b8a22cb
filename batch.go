package reactor

import "github.com/flowgraph/reactor/internal"

// NewBatch runs fn with downstream recomputation and effect re-runs
// deferred until fn returns, so a sequence of writes that individually
// would each trigger a flush instead triggers exactly one. Batches
// nest: only the outermost one flushes.
func NewBatch(fn func()) {
	rt := internal.GetRuntime()
	rt.EnterBatch()
	defer rt.LeaveBatch()
	fn()
}
