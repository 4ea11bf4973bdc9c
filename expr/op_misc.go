package expr

import "github.com/damien-masse/codac-sub002/interval"

// Abs returns |x|; not differentiable at 0, so LocalJacobians returns nil
// whenever the operand's hull straddles zero.
func Abs(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "abs",
		fwd:    always(interval.Interval.Abs),
		fwdMid: func(v float64) float64 { return interval.Degenerate(v).Abs().Mid() },
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			if x.Contains(0) {
				return interval.Interval{}, false
			}
			if x.Lo() > 0 {
				return interval.Degenerate(1), true
			}
			return interval.Degenerate(-1), true
		},
		backward: interval.BwdAbs,
	})
}

// Sign returns the enclosure of sign(x) ({-1,0,1} or a hull thereof);
// piecewise-constant, so it carries no first-order model.
func Sign(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "sign",
		fwd:      always(interval.Interval.Sign),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Sign().Mid() },
		deriv:    nil,
		backward: func(z, x interval.Interval) interval.Interval { return x },
	})
}

// Floor returns the enclosure of floor(x); piecewise-constant.
func Floor(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "floor",
		fwd:      always(interval.Interval.Floor),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Floor().Mid() },
		deriv:    nil,
		backward: func(z, x interval.Interval) interval.Interval { return x },
	})
}

// Ceil returns the enclosure of ceil(x); piecewise-constant.
func Ceil(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "ceil",
		fwd:      always(interval.Interval.Ceil),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Ceil().Mid() },
		deriv:    nil,
		backward: func(z, x interval.Interval) interval.Interval { return x },
	})
}

// minMaxOp implements scalar min/max, both non-differentiable at the
// crossover and without a sound general backward rule (matches
// interval.BwdMin/BwdMax's conservative no-op).
type minMaxOp struct {
	isMax bool
}

func (m minMaxOp) Name() string {
	if m.isMax {
		return "max"
	}
	return "min"
}
func (m minMaxOp) OutShape(shapes [][2]int) (int, int) { return 1, 1 }

func (m minMaxOp) Forward(children []Value) (Value, bool) {
	x, y := asScalar(children[0]), asScalar(children[1])
	if m.isMax {
		return x.Max(y), true
	}
	return x.Min(y), true
}

func (m minMaxOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	x, y := mids[0][0], mids[1][0]
	if m.isMax {
		if x > y {
			return []float64{x}
		}
		return []float64{y}
	}
	if x < y {
		return []float64{x}
	}
	return []float64{y}
}

func (minMaxOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	return nil
}

func (m minMaxOp) Backward(y Value, children []Value) []Value {
	x0, x1 := asScalar(children[0]), asScalar(children[1])
	var n0, n1 interval.Interval
	if m.isMax {
		n0, n1 = interval.BwdMax(asScalar(y), x0, x1)
	} else {
		n0, n1 = interval.BwdMin(asScalar(y), x0, x1)
	}
	return []Value{n0, n1}
}

// Min returns min(a,b).
func Min(a, b *Node) *Node { return opNode(minMaxOp{isMax: false}, a, b) }

// Max returns max(a,b).
func Max(a, b *Node) *Node { return opNode(minMaxOp{isMax: true}, a, b) }

// chiOp implements chi(mask,a,b): a where mask<0, b where mask>=0, and the
// hull of both where the sign of mask is undetermined, matching the
// original codac selector used to express piecewise analytic functions.
type chiOp struct{}

func (chiOp) Name() string { return "chi" }

func (chiOp) OutShape(shapes [][2]int) (int, int) { return shapes[1][0], shapes[1][1] }

func (chiOp) Forward(children []Value) (Value, bool) {
	mask := asScalar(children[0])
	a, b := children[1], children[2]
	switch {
	case mask.Hi() < 0:
		return a, true
	case mask.Lo() >= 0:
		return b, true
	default:
		af, bf := flatten(a), flatten(b)
		out := make([]interval.Interval, af.Size())
		for i := range out {
			out[i] = af.At(i).Hull(bf.At(i))
		}
		r, c := valueShape(a)
		return unflatten(kindOf(a), r, c, interval.NewIntervalVector(out...)), true
	}
}

func (chiOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	if mids[0][0] < 0 {
		return mids[1]
	}
	return mids[2]
}

func (chiOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	// chi switches branch discontinuously; no first-order model in general.
	return nil
}

func (chiOp) Backward(y Value, children []Value) []Value {
	mask, a, b := children[0], children[1], children[2]
	ms := asScalar(mask)
	switch {
	case ms.Hi() < 0:
		return []Value{mask, intersectValue(a, y), b}
	case ms.Lo() >= 0:
		return []Value{mask, a, intersectValue(b, y)}
	default:
		return []Value{mask, a, b}
	}
}

func intersectValue(x, y Value) Value {
	xf, yf := flatten(x), flatten(y)
	out := make([]interval.Interval, xf.Size())
	for i := range out {
		out[i] = xf.At(i).Inter(yf.At(i))
	}
	r, c := valueShape(x)
	return unflatten(kindOf(x), r, c, interval.NewIntervalVector(out...))
}

// Chi returns chi(mask,a,b): a selector returning a where mask<0 and b
// where mask>=0 (a and b must share a(kind,shape)).
func Chi(mask, a, b *Node) *Node { return opNode(chiOp{}, mask, a, b) }
