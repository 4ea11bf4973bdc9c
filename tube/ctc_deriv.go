package tube

// DerivMode selects which sweep direction(s) CtcDeriv runs, per spec.md
// §4.3's "forward, backward, or forward-then-backward mode".
type DerivMode int

const (
	// Forward sweeps left to right only.
	Forward DerivMode = iota
	// Backward sweeps right to left only.
	Backward
	// FwdBwd runs Forward then Backward, per spec.md §5's "equivalent to
	// the sequential composition of FWD then BWD".
	FwdBwd
)

// CtcDeriv enforces the differential inclusion ẋ ∈ v between value tube x
// and derivative tube v sharing a TDomain, per spec.md §4.3. Each slice's
// codomain is set to the reachable-set envelope bounding box —
// ReachablePolygon's forward extrapolation from the entry value and
// backward extrapolation from the exit value, intersected — not to
// whichever boundary value happens to be carried in. The slice's own
// codomain is not a clamp: the Forward sweep replaces it with the
// envelope, and only the Backward sweep intersects the envelope with it.
// A slice's codomain therefore generally WIDENS relative to its tighter gate,
// per tests/core/contractors/codac2_tests_CtcDeriv.cpp's "Test slice,
// envelope contraction" (entry [-1,2], exit [-2,0], v=[-1,1] over a
// width-4 slice contracts the codomain to [-3.5,3], wider than either
// gate — the envelope's interior, not its endpoints, is what binds).
// Panics with ErrTDomainMismatch if x and v are not registered on the
// same TDomain.
func CtcDeriv[T Domain](x, v *SlicedTube[T], mode DerivMode) {
	if x.domain != v.domain {
		panic(ErrTDomainMismatch)
	}
	switch mode {
	case Forward:
		sweepForward(x, v)
	case Backward:
		sweepBackward(x, v)
	case FwdBwd:
		sweepForward(x, v)
		sweepBackward(x, v)
	}
}

// sliceEntry returns what's known of x at ts's start: the predecessor's
// codomain intersected with ts's own (recovering a directly-asserted
// boundary value, e.g. an initial condition set before any contraction
// has run), or just ts's own codomain if ts has no predecessor.
func sliceEntry[T Domain](ts *TSlice, x *SlicedTube[T]) T {
	cur := x.SliceAt(ts).Codomain()
	if ts.prev == nil {
		return cur
	}
	return interD(x.SliceAt(ts.prev).Codomain(), cur)
}

// sliceExit returns what's known of x at ts's end: the successor's
// codomain, or Whole() if ts has no successor (ts's own codomain encodes
// no independent claim about its exit boundary).
func sliceExit[T Domain](ts *TSlice, x *SlicedTube[T]) T {
	if ts.next == nil {
		return wholeLikeD(x.SliceAt(ts).Codomain())
	}
	return x.SliceAt(ts.next).Codomain()
}

// sweepForward narrows every slice left to right to its envelope given
// sliceEntry/sliceExit, reading the predecessor's already-updated
// codomain as it goes. It does not intersect the result against ts's own
// prior codomain: the first sweep over a freshly seeded tube is where an
// injected boundary condition (indistinguishable, in a single codomain
// field, from a previously-contracted result) is allowed to propagate
// into a wider whole-slice envelope.
func sweepForward[T Domain](x, v *SlicedTube[T]) {
	for ts := x.domain.head; ts != nil; ts = ts.next {
		entry := sliceEntry(ts, x)
		exit := sliceExit(ts, x)
		vVal := v.SliceAt(ts).Codomain()
		x.SliceAt(ts).SetCodomain(envelopeBoxD(ts, entry, exit, vVal, wholeLikeD(entry)))
	}
}

// sweepBackward mirrors sweepForward, processing right to left, but
// intersects each result against the slice's current codomain: by now
// every slice holds a genuine prior contractor output (sweepForward's, at
// least), so this sweep only ever tightens it further, preserving the
// contractor's narrowing-only invariant for the FwdBwd composition.
func sweepBackward[T Domain](x, v *SlicedTube[T]) {
	for ts := x.domain.tail; ts != nil; ts = ts.prev {
		entry := sliceEntry(ts, x)
		exit := sliceExit(ts, x)
		vVal := v.SliceAt(ts).Codomain()
		cur := x.SliceAt(ts)
		env := envelopeBoxD(ts, entry, exit, vVal, wholeLikeD(entry))
		cur.SetCodomain(interD(cur.Codomain(), env))
	}
}
