package expr

import "sync/atomic"

// nextID is the process-wide unique id counter for variables and
// expression nodes, per spec.md §9 ("The library holds process-wide the
// next available unique id... thread-local counters suffice if concurrent
// construction is permitted"). A single atomic counter is used instead of
// per-goroutine counters since ids only need to be globally unique, not
// partitioned; this mirrors the teacher's atomic edge-id counter in
// core/methods.go.
var nextID uint64

// newID returns a fresh, process-wide unique identifier.
func newID() uint64 {
	return atomic.AddUint64(&nextID, 1)
}
