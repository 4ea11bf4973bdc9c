package contractor

import "github.com/damien-masse/codac-sub002/interval"

// Separator classifies a box x against a set S, returning xIn (a sub-box
// of x holding every point of x that lies in S) and xOut (a sub-box holding
// every point of x outside S). Both are sound contractions of x, so
// together they cover x; the part of x left in both halves is the
// undetermined "boundary" region (see BoundaryClassifier).
type Separator interface {
	Separate(x interval.IntervalVector) (xIn, xOut interval.IntervalVector)
}

// SeparatorFunc adapts a plain function to the Separator interface.
type SeparatorFunc func(interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector)

// Separate calls f(x).
func (f SeparatorFunc) Separate(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
	return f(x)
}

// InnerContractor returns the Contractor that keeps only s's "in" half.
func InnerContractor(s Separator) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		in, _ := s.Separate(x)
		return in
	})
}

// OuterContractor returns the Contractor that keeps only s's "out" half.
func OuterContractor(s Separator) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		_, out := s.Separate(x)
		return out
	})
}
