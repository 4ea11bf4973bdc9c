package contractor

import "github.com/damien-masse/codac-sub002/interval"

// SepProj builds the Separator for the existential projection of s's
// constraint onto x, quantifying out the y block: x is "in" if some y in
// yDomain makes (x,y) certainly in s, and "out" if no y in yDomain can.
// eps bounds the y-bisection depth used to resolve the quantifier (a
// smaller eps gives a tighter but slower projection).
func SepProj(s Separator, yDomain interval.IntervalVector, eps float64) Separator {
	if yDomain.Size() == 0 {
		return s
	}
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		nx := x.Size()
		stack := []interval.IntervalVector{concatVec(x, yDomain)}
		resultOut := emptyBox(nx)
		resultIn := x

		for len(stack) > 0 {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			wIn, wOut := s.Separate(w)
			if extractX(w, nx).Equal(x) {
				resultIn = resultIn.Inter(extractX(wIn, nx))
			}

			if wOut.IsEmpty() {
				continue
			}

			wy := extractY(wOut, nx)
			yi := wy.WidestDim()
			if wy.At(yi).Diam() > eps {
				b1, b2 := wOut.Bisect(nx+yi, 0.5)
				stack = append(stack, b1, b2)
			} else {
				resultOut = resultOut.Hull(extractX(wOut, nx))
			}

			if !resultIn.IsEmpty() {
				wMid := concatVec(x, midDegenerate(extractY(wOut, nx)))
				wMidIn, _ := s.Separate(wMid)
				resultIn = resultIn.Inter(extractX(wMidIn, nx))
			}
		}

		return resultIn, resultOut
	})
}

// concatVec concatenates a and b's components into one vector.
func concatVec(a, b interval.IntervalVector) interval.IntervalVector {
	comps := make([]interval.Interval, 0, a.Size()+b.Size())
	comps = append(comps, a.Components()...)
	comps = append(comps, b.Components()...)
	return interval.NewIntervalVector(comps...)
}

// extractX returns the leading nx components of w (the non-quantified
// block).
func extractX(w interval.IntervalVector, nx int) interval.IntervalVector {
	return w.Subvector(0, nx-1)
}

// extractY returns the trailing components of w after the first nx (the
// quantified block).
func extractY(w interval.IntervalVector, nx int) interval.IntervalVector {
	return w.Subvector(nx, w.Size()-1)
}

// midDegenerate collapses every component of v to its midpoint.
func midDegenerate(v interval.IntervalVector) interval.IntervalVector {
	mids := v.Mid()
	comps := make([]interval.Interval, len(mids))
	for i, m := range mids {
		comps[i] = interval.Degenerate(m)
	}
	return interval.NewIntervalVector(comps...)
}
