package contractor

import "github.com/damien-masse/codac-sub002/interval"

// SepCtcPair builds a Separator from an independent pair of Contractors:
// ctcIn narrows x while keeping every point inside the set, ctcOut narrows
// x while keeping every point outside it. Points neither contractor removes
// stay in both halves and form the boundary.
func SepCtcPair(ctcIn, ctcOut Contractor) Separator {
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		return ctcIn.Contract(x), ctcOut.Contract(x)
	})
}
