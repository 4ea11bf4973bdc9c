package contractor

import (
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// splitBox slices a single flattened box into one expr.Value per argument
// of args, in declaration order and shape, mirroring
// expr.AnalyticFunction.bindArgs's expectations.
func splitBox(args []*expr.Variable, box interval.IntervalVector) []expr.Value {
	vals := make([]expr.Value, len(args))
	offset := 0
	for i, a := range args {
		n := a.Size()
		sub := box.Subvector(offset, offset+n-1)
		switch a.Kind() {
		case expr.KindScalar:
			vals[i] = sub.At(0)
		case expr.KindVector:
			vals[i] = sub
		case expr.KindMatrix:
			m := interval.NewIntervalMatrix(a.Rows(), a.Cols())
			idx := 0
			for r := 0; r < a.Rows(); r++ {
				for c := 0; c < a.Cols(); c++ {
					m = m.Set(r, c, sub.At(idx))
					idx++
				}
			}
			vals[i] = m
		}
		offset += n
	}
	return vals
}

// joinBox concatenates per-argument values back into one flattened box, the
// inverse of splitBox.
func joinBox(vals []expr.Value) interval.IntervalVector {
	comps := make([]interval.Interval, 0, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case interval.Interval:
			comps = append(comps, x)
		case interval.IntervalVector:
			comps = append(comps, x.Components()...)
		case interval.IntervalMatrix:
			for r := 0; r < x.Rows(); r++ {
				for c := 0; c < x.Cols(); c++ {
					comps = append(comps, x.At(r, c))
				}
			}
		}
	}
	return interval.NewIntervalVector(comps...)
}

// intersectGeneric intersects two expr.Value of identical shape,
// componentwise.
func intersectGeneric(a, b expr.Value) expr.Value {
	switch av := a.(type) {
	case interval.Interval:
		return av.Inter(b.(interval.Interval))
	case interval.IntervalVector:
		return av.Inter(b.(interval.IntervalVector))
	case interval.IntervalMatrix:
		bv := b.(interval.IntervalMatrix)
		out := interval.NewIntervalMatrix(av.Rows(), av.Cols())
		for i := 0; i < av.Rows(); i++ {
			for j := 0; j < av.Cols(); j++ {
				out = out.Set(i, j, av.At(i, j).Inter(bv.At(i, j)))
			}
		}
		return out
	default:
		panic("contractor: unsupported value kind")
	}
}

// hullGeneric returns the componentwise hull of two expr.Value of
// identical shape.
func hullGeneric(a, b expr.Value) expr.Value {
	switch av := a.(type) {
	case interval.Interval:
		return av.Hull(b.(interval.Interval))
	case interval.IntervalVector:
		return av.Hull(b.(interval.IntervalVector))
	case interval.IntervalMatrix:
		bv := b.(interval.IntervalMatrix)
		out := interval.NewIntervalMatrix(av.Rows(), av.Cols())
		for i := 0; i < av.Rows(); i++ {
			for j := 0; j < av.Cols(); j++ {
				out = out.Set(i, j, av.At(i, j).Hull(bv.At(i, j)))
			}
		}
		return out
	default:
		panic("contractor: unsupported value kind")
	}
}

// containsGeneric reports whether outer contains inner, componentwise.
func containsGeneric(outer, inner expr.Value) bool {
	switch ov := outer.(type) {
	case interval.Interval:
		return ov.ContainsInterval(inner.(interval.Interval))
	case interval.IntervalVector:
		return ov.ContainsVector(inner.(interval.IntervalVector))
	case interval.IntervalMatrix:
		iv := inner.(interval.IntervalMatrix)
		for i := 0; i < ov.Rows(); i++ {
			for j := 0; j < ov.Cols(); j++ {
				if !ov.At(i, j).ContainsInterval(iv.At(i, j)) {
					return false
				}
			}
		}
		return true
	default:
		panic("contractor: unsupported value kind")
	}
}

// emptyBox returns an n-wide box guaranteed to report IsEmpty() true.
func emptyBox(n int) interval.IntervalVector {
	return interval.ConstantVector(n, interval.Empty())
}
