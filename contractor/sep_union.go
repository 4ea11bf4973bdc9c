package contractor

import "github.com/damien-masse/codac-sub002/interval"

// SepUnion builds the Separator for the disjunction of its members: a
// point is out of the union only if every member agrees it is out, and in
// the union as soon as any single member says it is in. Panics with
// ErrEmptyCombinator if seps is empty.
func SepUnion(seps ...Separator) Separator {
	if len(seps) == 0 {
		panic(ErrEmptyCombinator)
	}
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		in := emptyBox(x.Size())
		out := x
		for _, s := range seps {
			si, so := s.Separate(x)
			in = in.Hull(si)
			out = out.Inter(so)
		}
		return in, out
	})
}
