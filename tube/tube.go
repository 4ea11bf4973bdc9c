package tube

import "github.com/damien-masse/codac-sub002/interval"

// SlicedTube is a time-indexed interval-valued trajectory over a TDomain,
// per spec.md §3. Every slice's codomain is held as a type-erased handle
// on the underlying TSlice so the TDomain can propagate splits without
// depending on T; SlicedTube recovers its own typed Slice[T] per slice via
// a cheap type assertion.
type SlicedTube[T Domain] struct {
	domain *TDomain
	id     uint64
}

// NewSlicedTube registers a new tube on d, initializing every existing
// slice's codomain via init (a constant closure, an AnalyticFunction
// evaluation over the slice's time span, or a sampled-trajectory lookup —
// spec.md §4.3's three construction modes all reduce to this one hook).
// Future TDomain.Sample splits copy the parent slice's value onto both
// (or all three, with a gate) of the slices that replace it.
func NewSlicedTube[T Domain](d *TDomain, init func(ts *TSlice) T) *SlicedTube[T] {
	st := &SlicedTube[T]{domain: d}

	d.mu.Lock()
	id := d.nextTubeID
	d.nextTubeID++
	for ts := d.head; ts != nil; ts = ts.next {
		ts.tubes[id] = &Slice[T]{ts: ts, codomain: init(ts)}
	}
	d.registrations[id] = func(parent *TSlice, created []*TSlice) {
		parentSlice := parent.tubes[id].(*Slice[T])
		for _, ts := range created {
			ts.tubes[id] = &Slice[T]{ts: ts, codomain: parentSlice.codomain}
		}
	}
	d.mu.Unlock()

	st.id = id
	return st
}

// NewConstantSlicedTube initializes every slice to the same constant
// codomain.
func NewConstantSlicedTube[T Domain](d *TDomain, v T) *SlicedTube[T] {
	return NewSlicedTube(d, func(*TSlice) T { return v })
}

// Domain returns the shared TDomain this tube is registered on.
func (st *SlicedTube[T]) Domain() *TDomain { return st.domain }

// SliceAt returns the typed Slice[T] bound to ts. Panics if ts does not
// belong to st's TDomain (programmer error, per spec.md §7.5).
func (st *SlicedTube[T]) SliceAt(ts *TSlice) *Slice[T] {
	h, ok := ts.tubes[st.id]
	if !ok {
		panic(ErrTDomainMismatch)
	}
	return h.(*Slice[T])
}

// Slices returns every Slice[T] in time order.
func (st *SlicedTube[T]) Slices() []*Slice[T] {
	out := make([]*Slice[T], 0)
	for ts := st.domain.head; ts != nil; ts = ts.next {
		out = append(out, st.SliceAt(ts))
	}
	return out
}

// At returns the codomain of the slice containing t (a gate's singleton
// value, if t lands on one) — spec.md §4.3's point evaluation x(t).
func (st *SlicedTube[T]) At(t float64) (T, error) {
	var zero T
	ts, err := st.domain.TSliceAt(t)
	if err != nil {
		return zero, err
	}
	return st.SliceAt(ts).codomain, nil
}

// Eval returns the hull of every slice codomain intersecting span — the
// interval evaluation x([t1,t2]) of spec.md §4.3.
func (st *SlicedTube[T]) Eval(span interval.Interval) T {
	var acc T
	first := true
	for ts := st.domain.head; ts != nil; ts = ts.next {
		if !ts.Domain().Intersects(span) {
			continue
		}
		v := st.SliceAt(ts).codomain
		if first {
			acc = v
			first = false
			continue
		}
		acc = hullD(acc, v)
	}
	if first {
		return emptyLikeD(st.SliceAt(st.domain.head).codomain)
	}
	return acc
}

// Codomain returns the hull of every slice's codomain, the whole tube's
// value range.
func (st *SlicedTube[T]) Codomain() T {
	return st.Eval(interval.NewInterval(st.domain.T0(), st.domain.Tf()))
}

// IsEmpty reports whether every slice is empty (spec.md §4.3's
// "Emptiness propagation").
func (st *SlicedTube[T]) IsEmpty() bool {
	for ts := st.domain.head; ts != nil; ts = ts.next {
		if !st.SliceAt(ts).IsEmpty() {
			return false
		}
	}
	return true
}
