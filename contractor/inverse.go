package contractor

import (
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// CtcInverse builds the Contractor for the constraint f(x) in y: given a
// box x, it narrows x to the sub-box consistent with f(x) landing inside y,
// using f's forward evaluation to detect infeasibility, f's DAG backward
// pass to propagate the tightened output back onto x, and — when f is
// square and carries a first-order model over x — one further
// Gauss-Seidel sweep against its centered-form
// linearization, per spec.md §4.2's CtcInverse centered-form step.
func CtcInverse(f *expr.AnalyticFunction, y expr.Value) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		if x.IsEmpty() {
			return x
		}
		args := f.Args()
		vals := splitBox(args, x)
		natural := f.Eval(expr.NATURAL, vals...)
		tightened := intersectGeneric(natural, y)
		if tightened.IsEmpty() {
			return emptyBox(x.Size())
		}
		narrowed := f.Backward(tightened, vals...)
		out := joinBox(narrowed)
		if out.IsEmpty() {
			return out
		}
		return centeredNarrow(f, x, vals, tightened, out)
	})
}

// centeredNarrow refines out (the DAG backward pass's result) against the
// centered form f(x) ∈ f(m) + J(x)*(x-m), m = mid(x), J(x) the interval
// Jacobian over the whole box: solving J(x)*dx = (tightened-flattened -
// f(m)) for dx by one
// CtcLinearInterval (Gauss-Seidel) sweep narrows the enclosure of x-m,
// which is then shifted back by m and intersected with out. This only
// applies when f is square (its flattened input and output have the same
// width — anything else isn't a linear system CtcLinearInterval can pose)
// and when f.Diff has a first-order model over this box; Diff panics when
// it doesn't, which is an ordinary "centered form unavailable here"
// outcome in this context rather than a programmer error, so it's
// recovered rather than left to propagate.
func centeredNarrow(f *expr.AnalyticFunction, x interval.IntervalVector, vals []expr.Value, tightened expr.Value, out interval.IntervalVector) (result interval.IntervalVector) {
	result = out

	n := x.Size()
	tFlat := joinBox([]expr.Value{tightened})
	if f.InputSize() != n || tFlat.Size() != n {
		return out
	}

	defer func() {
		if recover() != nil {
			result = out
		}
	}()

	a := f.Diff(vals...)
	if a.Rows() != n || a.Cols() != n {
		return out
	}

	mid := x.Mid()
	mComps := make([]interval.Interval, n)
	for i, c := range mid {
		mComps[i] = interval.Degenerate(c)
	}
	m := interval.NewIntervalVector(mComps...)

	fMid := f.RealEval(vals...)
	rhsComps := make([]interval.Interval, n)
	for i := 0; i < n; i++ {
		rhsComps[i] = tFlat.At(i).Sub(interval.Degenerate(fMid[i]))
	}
	b := interval.NewIntervalVector(rhsComps...)

	dx := out.Sub(m)
	narrowedDx := CtcLinearInterval(a, b).Contract(dx)
	return out.Inter(narrowedDx.Add(m))
}
