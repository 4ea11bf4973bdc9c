package tube

import "github.com/damien-masse/codac-sub002/interval"

// Integral returns a sound enclosure of ∫ t0→t1 x(s) ds, by summing each
// slice intersecting [t0,t1] scaled by its exact overlap width — the
// slice-wise rectangle rule named (but deferred to a TubeVector sibling
// not retained in this module's reference set) by
// original_source/src/dynamics/tubex_Tube.cpp's integral family. Per
// spec.md §8 scenario 6: reversing t0/t1 negates the result, matching
// the original's signed-integral convention.
func Integral(x *SlicedTube[interval.Interval], t0, t1 float64) interval.Interval {
	lo, hi, neg := t0, t1, false
	if lo > hi {
		lo, hi, neg = hi, lo, true
	}
	span := interval.NewInterval(lo, hi)

	acc := interval.NewInterval(0, 0)
	for ts := x.domain.head; ts != nil; ts = ts.next {
		if ts.gate {
			continue
		}
		overlap := ts.Domain().Inter(span)
		if overlap.IsEmpty() {
			continue
		}
		width := overlap.Hi() - overlap.Lo()
		contrib := x.SliceAt(ts).Codomain().Mul(interval.NewInterval(width, width))
		acc = acc.Add(contrib)
	}
	if neg {
		acc = acc.Neg()
	}
	return acc
}

// Primitive builds a new scalar tube P on v's TDomain with P(t0) = x0
// (t0 the domain's lower bound) and ẋ ∈ v enforced by forward CtcDeriv,
// grounded on tubex_Tube.cpp's primitive(): "Tube primitive(*this,
// ALL_REALS); primitive.set(0, domain.lb()); ctc_deriv.contractFwd(...)".
func Primitive(v *SlicedTube[interval.Interval], x0 interval.Interval) *SlicedTube[interval.Interval] {
	p := NewConstantSlicedTube(v.domain, interval.Whole())
	if first := v.domain.head; first != nil {
		p.SliceAt(first).SetCodomain(x0)
	}
	CtcDeriv(p, v, Forward)
	return p
}

// TimeInterval holds one sub-domain of [t0,tf] returned by Invert, the
// result shape of spec.md §4.3's invert(). It carries no tube value.
type TimeInterval struct {
	T interval.Interval
}

// Invert returns every maximal time sub-interval over which x's slice
// codomain intersects y, per spec.md §4.3 "Inversion". When v is
// non-nil, each candidate slice's span is first tightened to the part the
// forward envelope from its entry value, extrapolated by v, can reach y
// (the "uses slopes to tighten" variant spec.md calls out), narrowing
// which sub-span of a slice can actually witness y.
func Invert(x *SlicedTube[interval.Interval], y interval.Interval, v *SlicedTube[interval.Interval]) []TimeInterval {
	var out []TimeInterval
	for ts := x.domain.head; ts != nil; ts = ts.next {
		if ts.gate {
			continue
		}
		codomain := x.SliceAt(ts).Codomain()
		if !codomain.Intersects(y) {
			continue
		}
		span := ts.Domain()
		if v != nil {
			span = tightenInvertSpan(ts, x, v, y)
			if span.IsEmpty() {
				continue
			}
		}
		out = append(out, TimeInterval{T: span})
	}
	return mergeAdjacent(out)
}

// tightenInvertSpan narrows ts's full time span to the portion over which
// the forward envelope from the entry value, extrapolated by v as in
// CtcDeriv, can reach y. The exit value is not used.
func tightenInvertSpan(ts *TSlice, x, v *SlicedTube[interval.Interval], y interval.Interval) interval.Interval {
	entry := entryValueOf(ts, x)
	vVal := v.SliceAt(ts).Codomain()
	t0, t1 := ts.tMin, ts.tMax

	fwdLo, fwdHi := entry.Lo(), entry.Hi()
	mLo, mHi := minOf(vVal.Lo(), 0), maxOf(vVal.Hi(), 0)

	// The forward envelope only widens as t grows, so it can meet y only
	// from the later of two times on: when its upper line reaches up to
	// y.Lo(), and when its lower line reaches down to y.Hi().
	loT, hiT := t0, t1
	if mHi > 0 {
		tNeed := t0 + (y.Lo()-fwdHi)/mHi
		if tNeed > loT {
			loT = tNeed
		}
	}
	if mLo < 0 {
		tNeed := t0 + (y.Hi()-fwdLo)/mLo
		if tNeed > loT {
			loT = tNeed
		}
	}
	if loT > hiT {
		return interval.Empty()
	}
	if loT < t0 {
		loT = t0
	}
	if hiT > t1 {
		hiT = t1
	}
	return interval.NewInterval(loT, hiT)
}

// entryValueOf returns the value x carries into ts: its predecessor's
// codomain, or ts's own codomain if ts is the domain's first slice.
func entryValueOf(ts *TSlice, x *SlicedTube[interval.Interval]) interval.Interval {
	if p := ts.prev; p != nil {
		return x.SliceAt(p).Codomain()
	}
	return x.SliceAt(ts).Codomain()
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// mergeAdjacent coalesces consecutive TimeIntervals sharing an endpoint,
// since Invert walks slices one at a time and a witness often spans
// several.
func mergeAdjacent(ts []TimeInterval) []TimeInterval {
	if len(ts) == 0 {
		return ts
	}
	out := make([]TimeInterval, 0, len(ts))
	cur := ts[0].T
	for _, t := range ts[1:] {
		if cur.Hi() == t.T.Lo() {
			cur = interval.NewInterval(cur.Lo(), t.T.Hi())
			continue
		}
		out = append(out, TimeInterval{T: cur})
		cur = t.T
	}
	out = append(out, TimeInterval{T: cur})
	return out
}
