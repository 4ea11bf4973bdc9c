package contractor

import (
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// CtcInverseNotIn builds the Contractor for the complement constraint
// f(x) not-subset-of y: a box x is proven infeasible (emptied) only once
// f's natural enclosure of x is entirely contained in y, i.e. every point
// of x is certainly excluded. Unlike CtcInverse this does not narrow a
// feasible box further — outside of the all-or-nothing infeasibility test,
// f(x) not-in y gives no componentwise direction to contract along.
func CtcInverseNotIn(f *expr.AnalyticFunction, y expr.Value) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		if x.IsEmpty() {
			return x
		}
		vals := splitBox(f.Args(), x)
		natural := f.Eval(expr.NATURAL, vals...)
		if containsGeneric(y, natural) {
			return emptyBox(x.Size())
		}
		return x
	})
}
