package internal

import "time"

// Host bridges a flush strategy to whatever event loop the embedding
// program actually has (a browser's microtask queue and
// requestAnimationFrame, a UI toolkit's main loop, a plain timer). The
// core never depends on a concrete event loop — only on this interface.
type Host interface {
	// Post runs fn on the host's microtask-equivalent queue.
	Post(fn func())
	// PostAnimationFrame runs fn before the host's next paint/frame.
	PostAnimationFrame(fn func())
	// After runs fn once, no sooner than d from now.
	After(d time.Duration, fn func())
}

// SyncHost is the default Host: every deferred call runs immediately, on
// the same goroutine, before the call that scheduled it returns. This
// keeps the single-threaded cooperative model intact with no event loop
// wired up — a program that wants real deferral (so the initial paint
// isn't blocked by every subsequent effect re-run) supplies its own Host.
type SyncHost struct{}

func (SyncHost) Post(fn func())                        { fn() }
func (SyncHost) PostAnimationFrame(fn func())           { fn() }
func (SyncHost) After(_ time.Duration, fn func())       { fn() }
