package contractor

import "github.com/damien-masse/codac-sub002/expr"

// SepInverse builds the Separator dual of CtcInverse: the "in" half
// narrows towards f(x) in y, the "out" half narrows towards f(x) not-in y,
// by pairing CtcInverse and CtcInverseNotIn over the same constraint.
func SepInverse(f *expr.AnalyticFunction, y expr.Value) Separator {
	return SepCtcPair(CtcInverse(f, y), CtcInverseNotIn(f, y))
}
