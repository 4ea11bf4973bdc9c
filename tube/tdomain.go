package tube

import (
	"sync"

	"github.com/damien-masse/codac-sub002/interval"
)

// TSlice is one element of a TDomain: a time subinterval, possibly a
// degenerate gate, linked to its neighbors. Per spec.md §3, slices are
// disjoint except at shared boundaries and their union is exactly
// [t0, tf]. TSlice carries a type-erased handle per registered tube
// (mirrors core.Graph's per-vertex adjacency map) so SlicedTube[T] can
// recover its own typed Slice[T] via a type assertion.
type TSlice struct {
	tMin, tMax float64
	gate       bool
	prev, next *TSlice
	tubes      map[uint64]any
}

// TMin returns the slice's lower time bound.
func (s *TSlice) TMin() float64 { return s.tMin }

// TMax returns the slice's upper time bound.
func (s *TSlice) TMax() float64 { return s.tMax }

// IsGate reports whether s is a degenerate gate slice.
func (s *TSlice) IsGate() bool { return s.gate }

// Prev returns the preceding slice, or nil if s is the domain's first.
func (s *TSlice) Prev() *TSlice { return s.prev }

// Next returns the following slice, or nil if s is the domain's last.
func (s *TSlice) Next() *TSlice { return s.next }

// Domain returns s's time span as an interval.Interval.
func (s *TSlice) Domain() interval.Interval { return interval.NewInterval(s.tMin, s.tMax) }

// splitHook is registered per tube id; it propagates a parent slice's
// per-tube handle onto the slices that replace it after a Sample split.
type splitHook func(parent *TSlice, created []*TSlice)

// TDomain is the ordered doubly-linked list of TSlices covering
// [t0, tf], per spec.md §3. Every tube registered on a TDomain shares its
// slicing exactly; the mutex here protects both the slice list and the
// registration table, matching core.Graph's single-Graph-wide locking
// granularity rather than per-slice locks (slice count is expected to be
// orders of magnitude smaller than typical vertex counts, so finer
// locking would not pay for itself).
type TDomain struct {
	mu            sync.RWMutex
	head, tail    *TSlice
	nextTubeID    uint64
	registrations map[uint64]splitHook
}

// NewTDomain creates a TDomain over [t0, tf] with a single slice.
// Panics with ErrNonPositiveSpan if t0 >= tf.
func NewTDomain(t0, tf float64) *TDomain {
	if t0 >= tf {
		panic(ErrNonPositiveSpan)
	}
	s := &TSlice{tMin: t0, tMax: tf, tubes: make(map[uint64]any)}
	return &TDomain{head: s, tail: s, registrations: make(map[uint64]splitHook)}
}

// NewSampledTDomain creates a TDomain over [t0, tf] uniformly sampled
// every dt, optionally inserting a gate at each sample point. Panics with
// ErrNonPositiveSpan/ErrNonPositiveStep on invalid bounds.
func NewSampledTDomain(t0, tf, dt float64, withGates bool) *TDomain {
	if t0 >= tf {
		panic(ErrNonPositiveSpan)
	}
	if dt <= 0 {
		panic(ErrNonPositiveStep)
	}
	d := NewTDomain(t0, tf)
	for t := t0 + dt; t < tf; t += dt {
		if err := d.Sample(t, withGates); err != nil {
			panic(err)
		}
	}
	return d
}

// T0 returns the domain's lower bound.
func (d *TDomain) T0() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.head.tMin
}

// Tf returns the domain's upper bound.
func (d *TDomain) Tf() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tail.tMax
}

// Slices returns every TSlice in time order.
func (d *TDomain) Slices() []*TSlice {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*TSlice, 0)
	for s := d.head; s != nil; s = s.next {
		out = append(out, s)
	}
	return out
}

// TSliceAt returns the TSlice containing t, preferring a gate over its
// neighbors when t falls exactly on a gate's instant.
func (d *TDomain) TSliceAt(t float64) (*TSlice, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.findLocked(t)
}

func (d *TDomain) findLocked(t float64) (*TSlice, error) {
	if t < d.head.tMin || t > d.tail.tMax {
		return nil, ErrTimeOutOfDomain
	}
	var candidate *TSlice
	for s := d.head; s != nil; s = s.next {
		if t >= s.tMin && t <= s.tMax {
			if s.gate {
				return s, nil
			}
			candidate = s
		}
	}
	return candidate, nil
}

// register records hook under a fresh tube id and returns it.
// NewSlicedTube does not call it; it performs the same registration inline.
func (d *TDomain) register(hook splitHook) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextTubeID
	d.nextTubeID++
	d.registrations[id] = hook
	return id
}

// Sample splits the slice containing t into two slices at t (inserting a
// degenerate gate between them if withGate is set), per spec.md §4.3.
// Every registered tube receives new per-tube handles on the created
// slices, initialized by copying the parent's value (preserving every
// TDomain/SlicedTube invariant; a subsequent contraction may narrow them
// further). Sampling exactly on an existing gate is a no-op.
func (d *TDomain) Sample(t float64, withGate bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	target, err := d.findLocked(t)
	if err != nil {
		return err
	}
	if target.gate {
		return nil
	}
	if t == target.tMin || t == target.tMax {
		// Already a slice boundary; nothing to split.
		return nil
	}

	left := &TSlice{tMin: target.tMin, tMax: t, prev: target.prev, tubes: make(map[uint64]any)}
	var mid *TSlice
	right := &TSlice{tMin: t, tMax: target.tMax, next: target.next, tubes: make(map[uint64]any)}

	if withGate {
		mid = &TSlice{tMin: t, tMax: t, gate: true, prev: left, next: right, tubes: make(map[uint64]any)}
		left.next = mid
		right.prev = mid
	} else {
		left.next = right
		right.prev = left
	}

	if target.prev != nil {
		target.prev.next = left
	} else {
		d.head = left
	}
	if target.next != nil {
		target.next.prev = right
	} else {
		d.tail = right
	}

	created := []*TSlice{left, right}
	if mid != nil {
		created = []*TSlice{left, mid, right}
	}
	for _, hook := range d.registrations {
		hook(target, created)
	}

	return nil
}
