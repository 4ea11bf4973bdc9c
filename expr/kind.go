package expr

import (
	"fmt"

	"github.com/damien-masse/codac-sub002/interval"
)

// ValueKind tags the result type of an expression node, playing the role
// spec.md §3 assigns to "scalar/vector/matrix kind".
type ValueKind int

const (
	// KindScalar marks a node producing an interval.Interval.
	KindScalar ValueKind = iota
	// KindVector marks a node producing an interval.IntervalVector.
	KindVector
	// KindMatrix marks a node producing an interval.IntervalMatrix.
	KindMatrix
)

func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating a node: an interval.Interval,
// interval.IntervalVector, or interval.IntervalMatrix. It is intentionally
// a closed, three-member sum (enforced by construction, not by the Go type
// system) rather than an open interface, mirroring spec.md §3's "Point
// value" variants.
type Value interface {
	IsEmpty() bool
}

// valueShape reports a Value's shape as (rows,cols) in flattened form:
// scalar -> (1,1), vector(n) -> (n,1), matrix(r,c) -> (r,c).
func valueShape(v Value) (rows, cols int) {
	switch x := v.(type) {
	case interval.Interval:
		return 1, 1
	case interval.IntervalVector:
		return x.Size(), 1
	case interval.IntervalMatrix:
		return x.Rows(), x.Cols()
	default:
		panic(fmt.Sprintf("expr: unsupported Value type %T", v))
	}
}

// valueSize returns the flattened length of v (rows*cols).
func valueSize(v Value) int {
	r, c := valueShape(v)
	return r * c
}

// flatten lowers any Value to a column IntervalVector (matrices flattened
// row-major), used to build the Jacobian's input axis.
func flatten(v Value) interval.IntervalVector {
	switch x := v.(type) {
	case interval.Interval:
		return interval.NewIntervalVector(x)
	case interval.IntervalVector:
		return x
	case interval.IntervalMatrix:
		comps := make([]interval.Interval, 0, x.Rows()*x.Cols())
		for i := 0; i < x.Rows(); i++ {
			for j := 0; j < x.Cols(); j++ {
				comps = append(comps, x.At(i, j))
			}
		}
		return interval.NewIntervalVector(comps...)
	default:
		panic(fmt.Sprintf("expr: unsupported Value type %T", v))
	}
}

// flattenMid lowers any Value to its flattened midpoint, real-valued.
func flattenMid(v Value) []float64 {
	return flatten(v).Mid()
}

// unflatten raises a flattened IntervalVector back to kind k (matrices use
// the given row count; r*c must equal flat.Size()).
func unflatten(k ValueKind, rows, cols int, flat interval.IntervalVector) Value {
	switch k {
	case KindScalar:
		return flat.At(0)
	case KindVector:
		return flat
	case KindMatrix:
		m := interval.NewIntervalMatrix(rows, cols)
		idx := 0
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				m = m.Set(i, j, flat.At(idx))
				idx++
			}
		}
		return m
	default:
		panic(fmt.Sprintf("expr: unsupported ValueKind %v", k))
	}
}

// asScalar, asVector, asMatrix are convenience accessors that panic
// (programmer error, per spec.md §7) on a kind mismatch — callers are
// expected to have already checked Kind().
func asScalar(v Value) interval.Interval { return v.(interval.Interval) }
func asVector(v Value) interval.IntervalVector { return v.(interval.IntervalVector) }
func asMatrix(v Value) interval.IntervalMatrix { return v.(interval.IntervalMatrix) }
