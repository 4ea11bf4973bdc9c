package contractor

import "github.com/damien-masse/codac-sub002/interval"

// SepNot builds the negation of a Separator by swapping its in/out halves.
func SepNot(s Separator) Separator {
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		in, out := s.Separate(x)
		return out, in
	})
}
