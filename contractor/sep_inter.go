package contractor

import "github.com/damien-masse/codac-sub002/interval"

// SepInter builds the Separator for the conjunction of its members: a
// point is in the intersection only if every member agrees it is in, and
// out of the intersection as soon as any single member says it is out.
// Panics with ErrEmptyCombinator if seps is empty.
func SepInter(seps ...Separator) Separator {
	if len(seps) == 0 {
		panic(ErrEmptyCombinator)
	}
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		in := x
		out := emptyBox(x.Size())
		for _, s := range seps {
			si, so := s.Separate(x)
			in = in.Inter(si)
			out = out.Hull(so)
		}
		return in, out
	})
}
