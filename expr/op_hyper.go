package expr

import "github.com/damien-masse/codac-sub002/interval"

// Cosh returns cosh(x).
func Cosh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "cosh",
		fwd:      always(interval.Interval.Cosh),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Cosh().Mid() },
		deriv:    func(x interval.Interval) (interval.Interval, bool) { return x.Sinh(), true },
		backward: bwdCosh,
	})
}

func bwdCosh(z, x interval.Interval) interval.Interval {
	if z.Hi() < 1 {
		return interval.Empty()
	}
	zc := interval.NewInterval(maxf(1, z.Lo()), z.Hi())
	pos, _ := zc.Acosh()
	neg := pos.Neg()
	return x.Inter(pos.Hull(neg))
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Sinh returns sinh(x).
func Sinh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "sinh",
		fwd:    always(interval.Interval.Sinh),
		fwdMid: func(v float64) float64 { return interval.Degenerate(v).Sinh().Mid() },
		deriv:  func(x interval.Interval) (interval.Interval, bool) { return x.Cosh(), true },
		backward: func(z, x interval.Interval) interval.Interval {
			return x.Inter(z.Asinh())
		},
	})
}

// Tanh returns tanh(x).
func Tanh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "tanh",
		fwd:    always(interval.Interval.Tanh),
		fwdMid: func(v float64) float64 { return interval.Degenerate(v).Tanh().Mid() },
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			return interval.Degenerate(1).Sub(x.Tanh().Sqr()), true
		},
		backward: func(z, x interval.Interval) interval.Interval {
			at, ok := z.Atanh()
			if !ok {
				return x
			}
			return x.Inter(at)
		},
	})
}

// Acosh returns acosh(x ∩ [1,+inf)).
func Acosh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "acosh",
		fwd:  interval.Interval.Acosh,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Acosh()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			if x.Lo() <= 1 {
				return interval.Interval{}, false
			}
			s := x.Sqr().Sub(interval.Degenerate(1))
			root, ok := s.Sqrt()
			if !ok {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Div(root), true
		},
		backward: func(z, x interval.Interval) interval.Interval { return x.Inter(z.Cosh()) },
	})
}

// Asinh returns asinh(x), defined everywhere.
func Asinh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "asinh",
		fwd:    always(interval.Interval.Asinh),
		fwdMid: func(v float64) float64 { return interval.Degenerate(v).Asinh().Mid() },
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			s := x.Sqr().Add(interval.Degenerate(1))
			root, _ := s.Sqrt()
			return interval.Degenerate(1).Div(root), true
		},
		backward: func(z, x interval.Interval) interval.Interval { return x.Inter(z.Sinh()) },
	})
}

// Atanh returns atanh(x ∩ (-1,1)).
func Atanh(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "atanh",
		fwd:  interval.Interval.Atanh,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Atanh()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			clamped := x.Inter(interval.NewInterval(-1, 1))
			if clamped.IsEmpty() || clamped.Lo() <= -1 || clamped.Hi() >= 1 {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Div(interval.Degenerate(1).Sub(clamped.Sqr())), true
		},
		backward: func(z, x interval.Interval) interval.Interval { return x.Inter(z.Tanh()) },
	})
}
