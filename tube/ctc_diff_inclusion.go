package tube

import "github.com/damien-masse/codac-sub002/interval"

// MaxDiffInclusionIterations bounds CtcDiffInclusion's fixpoint loop.
const MaxDiffInclusionIterations = 50

// CtcDiffInclusion couples a value tube x to a differential inclusion
// ẋ(t) ∈ F(t, x(t)) for a user-supplied enclosure F, grounded on
// src/core/2/contractors/codac2_CtcDiffInclusion.cpp's constructor-holds-f
// shape (that file's contract bodies are themselves unimplemented
// placeholders upstream, so the fixpoint loop below is a deliberate
// generalization rather than a transcription).
//
// F is supplied as a plain closure instead of an AnalyticFunction so
// CtcDiffInclusion stays generic over both scalar and vector tubes; a
// caller wanting AEG-backed evaluation builds F by closing over an
// AnalyticFunction and its own Eval/NATURAL call.
type CtcDiffInclusion[T Domain] struct {
	F func(t interval.Interval, x T) T
}

// NewCtcDiffInclusion wraps f as a CtcDiffInclusion.
func NewCtcDiffInclusion[T Domain](f func(t interval.Interval, x T) T) *CtcDiffInclusion[T] {
	return &CtcDiffInclusion[T]{F: f}
}

// Contract derives a derivative enclosure tube from x.F at every slice and
// runs CtcDeriv against it, repeating until x stops narrowing (by volume
// proxy: the hull of every slice's codomain is unchanged) or the iteration
// cap is reached. Every pass after the first intersects each slice with
// its value before that pass, so repeated passes never widen x.
func (d *CtcDiffInclusion[T]) Contract(x *SlicedTube[T], mode DerivMode) {
	v := NewSlicedTube(x.domain, func(ts *TSlice) T {
		return d.F(ts.Domain(), x.SliceAt(ts).Codomain())
	})

	prev := x.Codomain()
	for i := 0; i < MaxDiffInclusionIterations; i++ {
		for ts := x.domain.head; ts != nil; ts = ts.next {
			if ts.gate {
				continue
			}
			vs := v.SliceAt(ts)
			vs.SetCodomain(d.F(ts.Domain(), x.SliceAt(ts).Codomain()))
		}

		before := make([]T, 0)
		for ts := x.domain.head; ts != nil; ts = ts.next {
			before = append(before, x.SliceAt(ts).Codomain())
		}
		CtcDeriv(x, v, mode)
		if i > 0 {
			k := 0
			for ts := x.domain.head; ts != nil; ts, k = ts.next, k+1 {
				s := x.SliceAt(ts)
				s.SetCodomain(interD(s.Codomain(), before[k]))
			}
		}

		cur := x.Codomain()
		if isEmptyD(cur) || sameD(cur, prev) {
			break
		}
		prev = cur
	}
}

// sameD reports whether a and b are bitwise-equal bounds (used only to
// detect fixpoint convergence, where exact equality after narrowing is the
// correct stopping test).
func sameD[T Domain](a, b T) bool {
	switch av := any(a).(type) {
	case interval.Interval:
		bv := any(b).(interval.Interval)
		return av.Lo() == bv.Lo() && av.Hi() == bv.Hi()
	case interval.IntervalVector:
		bv := any(b).(interval.IntervalVector)
		if av.Size() != bv.Size() {
			return false
		}
		for i := 0; i < av.Size(); i++ {
			ai, bi := av.At(i), bv.At(i)
			if ai.Lo() != bi.Lo() || ai.Hi() != bi.Hi() {
				return false
			}
		}
		return true
	default:
		return false
	}
}
