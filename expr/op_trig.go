package expr

import (
	"math"

	"github.com/damien-masse/codac-sub002/interval"
)

// Cos returns cos(x).
func Cos(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "cos",
		fwd:      always(interval.Interval.Cos),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Cos().Mid() },
		deriv:    func(x interval.Interval) (interval.Interval, bool) { return x.Sin().Neg(), true },
		backward: interval.BwdCos,
	})
}

// Sin returns sin(x).
func Sin(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "sin",
		fwd:      always(interval.Interval.Sin),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Sin().Mid() },
		deriv:    func(x interval.Interval) (interval.Interval, bool) { return x.Cos(), true },
		backward: interval.BwdSin,
	})
}

// Tan returns tan(x); undefined where x spans a pole (π/2 + kπ).
func Tan(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "tan",
		fwd:  interval.Interval.Tan,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Tan()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			t, ok := x.Tan()
			if !ok {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Add(t.Sqr()), true
		},
		backward: bwdTan,
	})
}

// bwdTan narrows x given z ⊇ tan(x) by inverting onto the branch of atan
// closest to x's current midpoint and intersecting, assuming x does not
// already span a pole (tan's own domain check already excludes that case).
func bwdTan(z, x interval.Interval) interval.Interval {
	if x.IsEmpty() || z.IsEmpty() {
		return interval.Empty()
	}
	k := math.Round((x.Mid() - math.Atan(z.Mid())) / math.Pi)
	shifted := z.Atan().Add(interval.Degenerate(k * math.Pi))
	return x.Inter(shifted)
}

// Acos returns acos(x ∩ [-1,1]).
func Acos(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "acos",
		fwd:  interval.Interval.Acos,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Acos()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			clamped := x.Inter(interval.NewInterval(-1, 1))
			if clamped.IsEmpty() || clamped.Lo() <= -1 || clamped.Hi() >= 1 {
				return interval.Interval{}, false
			}
			s := interval.Degenerate(1).Sub(clamped.Sqr())
			root, ok := s.Sqrt()
			if !ok {
				return interval.Interval{}, false
			}
			return interval.Degenerate(-1).Div(root), true
		},
		backward: interval.BwdAcos,
	})
}

// Asin returns asin(x ∩ [-1,1]).
func Asin(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "asin",
		fwd:  interval.Interval.Asin,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Asin()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			clamped := x.Inter(interval.NewInterval(-1, 1))
			if clamped.IsEmpty() || clamped.Lo() <= -1 || clamped.Hi() >= 1 {
				return interval.Interval{}, false
			}
			s := interval.Degenerate(1).Sub(clamped.Sqr())
			root, ok := s.Sqrt()
			if !ok {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Div(root), true
		},
		backward: interval.BwdAsin,
	})
}

// Atan returns atan(x), defined everywhere.
func Atan(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "atan",
		fwd:    always(interval.Interval.Atan),
		fwdMid: func(v float64) float64 { return interval.Degenerate(v).Atan().Mid() },
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			return interval.Degenerate(1).Div(interval.Degenerate(1).Add(x.Sqr())), true
		},
		backward: interval.BwdAtan,
	})
}

// atan2Op implements atan2(y,x) over two scalar children; matches
// math.Atan2(y,x)'s argument order (first child is the y-coordinate).
type atan2Op struct{}

func (atan2Op) Name() string                       { return "atan2" }
func (atan2Op) OutShape(shapes [][2]int) (int, int) { return 1, 1 }

func (atan2Op) Forward(children []Value) (Value, bool) {
	y, x := asScalar(children[0]), asScalar(children[1])
	return y.Atan2(x), true
}

func (atan2Op) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	y, x := interval.Degenerate(mids[0][0]), interval.Degenerate(mids[1][0])
	return []float64{y.Atan2(x).Mid()}
}

func (atan2Op) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	y, x := asScalar(children[0]), asScalar(children[1])
	denom := x.Sqr().Add(y.Sqr())
	if denom.Contains(0) {
		return nil
	}
	jy := interval.NewIntervalMatrix(1, 1)
	jy = jy.Set(0, 0, x.Div(denom))
	jx := interval.NewIntervalMatrix(1, 1)
	jx = jx.Set(0, 0, y.Neg().Div(denom))
	return []interval.IntervalMatrix{jy, jx}
}

func (atan2Op) Backward(y Value, children []Value) []Value {
	z := asScalar(y)
	yy, xx := asScalar(children[0]), asScalar(children[1])
	ny, nx := interval.BwdAtan2(z, yy, xx)
	return []Value{ny, nx}
}

// Atan2 returns atan2(y,x).
func Atan2(y, x *Node) *Node { return opNode(atan2Op{}, y, x) }
