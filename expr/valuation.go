package expr

import "github.com/damien-masse/codac-sub002/interval"

// valuation is the cached per-node result of one evaluation pass, per
// spec.md §3 "each node carries... a cached valuation": the natural hull
// `a`, the centered-form midpoint `m` (flattened) and Jacobian `da` w.r.t.
// the flattened total input, and the def_domain flag. da is nil when the
// centered form is unavailable for this node (e.g. it or a descendant hit
// a non-differentiable operator), matching spec.md §4.1's "Default
// evaluation... falls back to natural" rule.
type valuation struct {
	a         Value
	m         []float64
	da        *interval.IntervalMatrix
	defDomain bool
}

// centeredAvailable reports whether this valuation carries a usable
// first-order model.
func (v valuation) centeredAvailable() bool {
	return v.da != nil && v.defDomain
}

// centeredValue returns m + da*(x - mid(x)) raised to kind k, where
// flatInput is the current flattened, un-centered argument box.
func (v valuation) centeredValue(k ValueKind, rows, cols int, flatInput interval.IntervalVector) Value {
	midVec := flatInput.Mid()
	delta := make([]interval.Interval, len(midVec))
	for i, mi := range midVec {
		delta[i] = flatInput.At(i).Sub(interval.Degenerate(mi))
	}
	deltaVec := interval.NewIntervalVector(delta...)
	correction := v.da.MulVector(deltaVec)

	mFlat := make([]interval.Interval, len(v.m))
	for i, mi := range v.m {
		mFlat[i] = interval.Degenerate(mi)
	}
	sum := interval.NewIntervalVector(mFlat...).Add(correction)
	return unflatten(k, rows, cols, sum)
}

// composeJacobian implements the chain rule: given, for each child, its
// local partial derivative of this node's output w.r.t. that child
// (localJacs[i], shape outSize x childSize[i]) and the child's own
// Jacobian w.r.t. the flattened total input (childDas[i], shape
// childSize[i] x n), returns the node's Jacobian w.r.t. the same total
// input (shape outSize x n): da = sum_i localJacs[i] * childDas[i].
//
// Returns nil if any child lacks a Jacobian (centered form unavailable),
// propagating unavailability up the DAG per spec.md §4.1.
func composeJacobian(outSize int, localJacs []interval.IntervalMatrix, childDas []*interval.IntervalMatrix) *interval.IntervalMatrix {
	if len(childDas) == 0 {
		return nil
	}
	n := -1
	for _, d := range childDas {
		if d == nil {
			return nil
		}
		if n == -1 {
			n = d.Cols()
		} else if d.Cols() != n {
			return nil
		}
	}
	acc := interval.NewIntervalMatrix(outSize, n)
	for i := range childDas {
		contribution := localJacs[i].Mul(*childDas[i])
		acc = acc.Add(contribution)
	}
	return &acc
}

// leafJacobian returns the n-wide Jacobian of a variable leaf placed at
// flattened offset [offset, offset+size) within a
// total input of width n: identity on that slice, zero elsewhere, per
// codac2_AnalyticFunction_impl.h's add_value_to_arg_map.
func leafJacobian(size, offset, n int) interval.IntervalMatrix {
	m := interval.NewIntervalMatrix(size, n)
	for i := 0; i < size; i++ {
		m = m.Set(i, offset+i, interval.Degenerate(1))
	}
	return m
}

// zeroJacobian returns a size x n matrix of zero intervals, used for
// constants (whose derivative w.r.t. every input is 0).
func zeroJacobian(size, n int) interval.IntervalMatrix {
	m := interval.NewIntervalMatrix(size, n)
	for i := 0; i < size; i++ {
		for j := 0; j < n; j++ {
			m = m.Set(i, j, interval.Zero())
		}
	}
	return m
}
