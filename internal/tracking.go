package internal

// Track runs fn with consumer installed as the current tracking scope.
// Every producer read inside fn records or refreshes an edge from
// consumer to that producer. Once fn returns normally, any edge that
// wasn't touched during this run (its TrackingVersion didn't advance to
// consumer's new generation) is stale and gets detached — this is how
// dynamic dependencies shrink when a body stops reading something it
// used to. Tracking is switched on for the duration of fn even when Track
// is called from inside an Untrack, and the previous state is restored
// afterward.
//
// If fn panics, the scope is still restored (so the call stack unwinds
// coherently) but stale-edge cleanup is skipped: the dependency set is
// left exactly as it was tracked up to the point of the panic, per the
// partial-tracking tolerance for user errors.
func (r *Runtime) Track(consumer *Node, fn func()) {
	prev := r.SetConsumerScope(consumer)
	prevTracking := r.tracking
	r.tracking = true
	consumer.TrackingVersion++
	defer func() {
		r.consumerScope = prev
		r.tracking = prevTracking
	}()

	fn()

	r.detachStaleDeps(consumer)
}

func (r *Runtime) detachStaleDeps(consumer *Node) {
	for e := consumer.depsHead; e != nil; {
		next := e.nextDep
		if e.TrackingVersion != consumer.TrackingVersion {
			consumer.removeDep(e)
			e.Producer.removeSub(e)
		}
		e = next
	}
}

// TrackDependency records (or refreshes) an edge from producer to the
// currently active consumer scope. Called from a producer's Read.
func (r *Runtime) TrackDependency(producer *Node) {
	if !r.ShouldTrack() {
		return
	}
	r.trackDependency(producer, r.consumerScope)
}

func (r *Runtime) trackDependency(producer, consumer *Node) {
	// Common sequential case: the most recently tracked dependency is
	// this same producer again — nothing to relink.
	if consumer.depsHead != nil {
		tail := consumer.depsHead.prevDep
		if tail.Producer == producer {
			tail.TrackingVersion = consumer.TrackingVersion
			tail.ObservedVersion = producer.Version
			return
		}
	}

	// Otherwise look for an existing edge to this producer anywhere in
	// the dependency list and move it to the tail.
	for e := consumer.depsHead; e != nil; e = e.nextDep {
		if e.Producer == producer {
			consumer.moveDepToTail(e)
			e.TrackingVersion = consumer.TrackingVersion
			e.ObservedVersion = producer.Version
			return
		}
	}

	// First time this run: allocate a fresh edge.
	e := &Edge{
		Producer:        producer,
		Consumer:        consumer,
		ObservedVersion: producer.Version,
		TrackingVersion: consumer.TrackingVersion,
	}
	consumer.addDep(e)
	producer.addSub(e)
}
