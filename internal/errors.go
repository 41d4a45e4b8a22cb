package internal

import "errors"

// Sentinel errors for the failure kinds described in the error handling
// design: cycle detection, and the keyed list's duplicate/missing key
// cases. Checked with errors.Is; CycleDetected additionally carries the
// offending node via cycleError (see derived.go) for callers that want
// it, unwrapped through errors.As.
var (
	ErrCycleDetected = errors.New("reactor: cycle detected")
	ErrDuplicateKey  = errors.New("reactor: duplicate key")
	ErrKeyNotFound   = errors.New("reactor: key not found")
)
