package tube

import "github.com/damien-masse/codac-sub002/interval"

// CtcEval couples a scalar tube's value to an observation (t, y), per
// spec.md §4.3's evaluation contractor: grounded on
// tests/core/contractors/codac2_tests_CtcEval.cpp. It first narrows t,
// dropping any overlapping slice whose reachable-set envelope (the same
// ReachablePolygon-based bound CtcDeriv narrows with) cannot intersect y
// at all — that slice's span could not be where the observation happened.
// It then narrows y to the hull of the surviving slices' raw codomains
// over the tightened t, and narrows exactly those surviving slices against
// that y.
type CtcEval struct{}

// Contract runs the narrowing described above, then propagates the
// tightened x through v via CtcDeriv's forward/backward sweeps so
// neighboring slices stay consistent.
func (CtcEval) Contract(t, y *interval.Interval, x, v *SlicedTube[interval.Interval]) {
	if t.IsEmpty() || y.IsEmpty() {
		*y = interval.Empty()
		return
	}

	survivors, tHull, ok := reachableWindow(*t, *y, x, v)
	if !ok {
		*t = interval.Empty()
		*y = interval.Empty()
		return
	}
	*t = t.Inter(tHull)

	reach := interval.Empty()
	for _, ts := range survivors {
		reach = reach.Hull(x.SliceAt(ts).Codomain())
	}
	*y = y.Inter(reach)
	if y.IsEmpty() {
		return
	}

	for _, ts := range survivors {
		s := x.SliceAt(ts)
		s.SetCodomain(s.Codomain().Inter(*y))
	}

	CtcDeriv(x, v, FwdBwd)
}

// reachableWindow scans every non-gate slice overlapping t and keeps only
// those whose reachable-set envelope over the overlap — computed via
// envelopeScalar from the slice's entry/exit neighbors and v, mirroring
// CtcDeriv's per-slice contraction — can still contain y. survivors lists
// the qualifying slices in time order (so the caller narrows exactly
// those, not every slice merely touching the shrunk t at a boundary
// point); tHull is the hull of their overlaps with t; ok is false when no
// slice survives, meaning (t, y) is inconsistent with x and v.
func reachableWindow(t, y interval.Interval, x, v *SlicedTube[interval.Interval]) (survivors []*TSlice, tHull interval.Interval, ok bool) {
	for ts := x.domain.head; ts != nil; ts = ts.next {
		if ts.gate {
			continue
		}
		win := ts.Domain().Inter(t)
		if win.IsEmpty() {
			continue
		}

		entry := sliceEntry(ts, x)
		exit := sliceExit(ts, x)
		vVal := v.SliceAt(ts).Codomain()
		sub := &TSlice{tMin: win.Lo(), tMax: win.Hi()}
		env := envelopeScalar(sub, entry, exit, vVal, interval.Whole())
		if env.Inter(y).IsEmpty() {
			continue
		}

		survivors = append(survivors, ts)
		if !ok {
			tHull, ok = win, true
			continue
		}
		tHull = tHull.Hull(win)
	}
	return survivors, tHull, ok
}
