package contractor

import (
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// SepTransform builds the Separator obtained by running s in a
// transformed coordinate frame: x is first mapped to y=fInv(x), separated
// by s, then both halves are mapped back through f. f and fInv must be
// single-vector-argument, vector-valued, and mutually inverse; neither
// mapping narrows anything beyond s's own contraction and the bound that
// the result stays within x.
func SepTransform(s Separator, f, fInv *expr.AnalyticFunction) Separator {
	return SeparatorFunc(func(x interval.IntervalVector) (interval.IntervalVector, interval.IntervalVector) {
		y := fInv.Eval(expr.NATURAL, x).(interval.IntervalVector)
		yIn, yOut := s.Separate(y)
		xIn := f.Eval(expr.NATURAL, yIn).(interval.IntervalVector).Inter(x)
		xOut := f.Eval(expr.NATURAL, yOut).(interval.IntervalVector).Inter(x)
		return xIn, xOut
	})
}
