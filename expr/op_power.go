package expr

import "github.com/damien-masse/codac-sub002/interval"

// unaryScalarOp implements the unary scalar-to-scalar operator family
// (sqr, sqrt, exp, log, abs, sign, trig, hyperbolic...): each instance
// wraps a forward function returning (result, within-domain), a real-valued
// midpoint counterpart, a local derivative function (nil disables the
// centered form for this operator, e.g. sign/abs at 0), and a backward
// contraction function.
type unaryScalarOp struct {
	name     string
	fwd      func(interval.Interval) (interval.Interval, bool)
	fwdMid   func(float64) float64
	deriv    func(interval.Interval) (interval.Interval, bool) // ok=false: no first-order model
	backward func(y, x interval.Interval) interval.Interval
}

func (u unaryScalarOp) Name() string                       { return u.name }
func (u unaryScalarOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0], shapes[0][1] }

func (u unaryScalarOp) Forward(children []Value) (Value, bool) {
	x := asScalar(children[0])
	y, ok := u.fwd(x)
	return y, ok
}

func (u unaryScalarOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids[0]))
	for i, v := range mids[0] {
		out[i] = u.fwdMid(v)
	}
	return out
}

func (u unaryScalarOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	if u.deriv == nil {
		return nil
	}
	x := asScalar(children[0])
	d, ok := u.deriv(x)
	if !ok {
		return nil
	}
	m := interval.NewIntervalMatrix(1, 1)
	m = m.Set(0, 0, d)
	return []interval.IntervalMatrix{m}
}

func (u unaryScalarOp) Backward(y Value, children []Value) []Value {
	x := asScalar(children[0])
	return []Value{u.backward(asScalar(y), x)}
}

func unaryScalar(n *Node, op unaryScalarOp) *Node { return opNode(op, n) }

func always(f func(interval.Interval) interval.Interval) func(interval.Interval) (interval.Interval, bool) {
	return func(x interval.Interval) (interval.Interval, bool) { return f(x), true }
}

// Sqr returns x^2.
func Sqr(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "sqr",
		fwd:    always(interval.Interval.Sqr),
		fwdMid: func(v float64) float64 { return v * v },
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			return x.Mul(interval.Degenerate(2)), true
		},
		backward: interval.BwdSqr,
	})
}

// Sqrt returns sqrt(x), defined for x>=0.
func Sqrt(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:   "sqrt",
		fwd:    interval.Interval.Sqrt,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Sqrt()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			if x.Lo() <= 0 {
				return interval.Interval{}, false
			}
			r, ok := x.Sqrt()
			if !ok {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Div(interval.Degenerate(2).Mul(r)), true
		},
		backward: interval.BwdSqrt,
	})
}

// Exp returns e^x.
func Exp(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name:     "exp",
		fwd:      always(interval.Interval.Exp),
		fwdMid:   func(v float64) float64 { return interval.Degenerate(v).Exp().Mid() },
		deriv:    func(x interval.Interval) (interval.Interval, bool) { return x.Exp(), true },
		backward: interval.BwdExp,
	})
}

// Log returns ln(x), defined for x>0.
func Log(x *Node) *Node {
	return unaryScalar(x, unaryScalarOp{
		name: "log",
		fwd:  interval.Interval.Log,
		fwdMid: func(v float64) float64 {
			r, _ := interval.Degenerate(v).Log()
			return r.Mid()
		},
		deriv: func(x interval.Interval) (interval.Interval, bool) {
			if x.Lo() <= 0 {
				return interval.Interval{}, false
			}
			return interval.Degenerate(1).Div(x), true
		},
		backward: interval.BwdLog,
	})
}

// powIntOp implements x^p for a fixed integer exponent p (spec.md's
// "pow(x,int)"); defined for every base including negative x, per
// interval.Interval.Pow.
type powIntOp struct {
	p int
}

func (p powIntOp) Name() string                       { return "pow_int" }
func (p powIntOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0], shapes[0][1] }

func (p powIntOp) Forward(children []Value) (Value, bool) {
	x := asScalar(children[0])
	y := x.Pow(p.p)
	return y, !y.IsEmpty()
}

func (p powIntOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids[0]))
	for i, v := range mids[0] {
		out[i] = interval.Degenerate(v).Pow(p.p).Mid()
	}
	return out
}

func (p powIntOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	x := asScalar(children[0])
	m := interval.NewIntervalMatrix(1, 1)
	if p.p == 0 {
		m = m.Set(0, 0, interval.Zero())
		return []interval.IntervalMatrix{m}
	}
	d := interval.Degenerate(float64(p.p)).Mul(x.Pow(p.p - 1))
	m = m.Set(0, 0, d)
	return []interval.IntervalMatrix{m}
}

func (p powIntOp) Backward(y Value, children []Value) []Value {
	x := asScalar(children[0])
	return []Value{interval.BwdPow(asScalar(y), x, p.p)}
}

// Pow raises x to the fixed integer power p.
func Pow(x *Node, p int) *Node { return opNode(powIntOp{p: p}, x) }

// powRealOp implements x^p for a fixed real (non-integer) exponent,
// defined only where x>0.
type powRealOp struct {
	p float64
}

func (p powRealOp) Name() string                       { return "pow_real" }
func (p powRealOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0], shapes[0][1] }

func (p powRealOp) Forward(children []Value) (Value, bool) {
	x := asScalar(children[0])
	y, ok := x.PowReal(p.p)
	return y, ok
}

func (p powRealOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids[0]))
	for i, v := range mids[0] {
		r, ok := interval.Degenerate(v).PowReal(p.p)
		if !ok {
			out[i] = 0
			continue
		}
		out[i] = r.Mid()
	}
	return out
}

func (p powRealOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	x := asScalar(children[0])
	if x.Lo() <= 0 {
		return nil
	}
	d0, ok := x.PowReal(p.p - 1)
	if !ok {
		return nil
	}
	d := interval.Degenerate(p.p).Mul(d0)
	m := interval.NewIntervalMatrix(1, 1)
	m = m.Set(0, 0, d)
	return []interval.IntervalMatrix{m}
}

func (p powRealOp) Backward(y Value, children []Value) []Value {
	// No closed-form sound narrowing implemented for real exponents beyond
	// the trivial no-op; PowReal's forward domain already excludes x<=0.
	return []Value{children[0]}
}

// PowReal raises x to the fixed real power p (x>0 required).
func PowReal(x *Node, p float64) *Node { return opNode(powRealOp{p: p}, x) }

// rootOp implements the n-th root of x, x>=0 (n even) or all x (n odd, via
// interval.Interval.Root).
type rootOp struct {
	n int
}

func (r rootOp) Name() string                       { return "root" }
func (r rootOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0], shapes[0][1] }

func (r rootOp) Forward(children []Value) (Value, bool) {
	x := asScalar(children[0])
	y, ok := x.Root(r.n)
	return y, ok
}

func (r rootOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids[0]))
	for i, v := range mids[0] {
		y, ok := interval.Degenerate(v).Root(r.n)
		if !ok {
			out[i] = 0
			continue
		}
		out[i] = y.Mid()
	}
	return out
}

func (r rootOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	x := asScalar(children[0])
	y, ok := x.Root(r.n)
	if !ok || y.IsEmpty() || (y.Lo() == 0 && y.Hi() == 0) {
		return nil
	}
	// d/dx x^(1/n) = (1/n) * y^(1-n) = (1/n) / y^(n-1).
	d := interval.Degenerate(1.0 / float64(r.n)).Div(y.Pow(r.n - 1))
	m := interval.NewIntervalMatrix(1, 1)
	m = m.Set(0, 0, d)
	return []interval.IntervalMatrix{m}
}

func (r rootOp) Backward(y Value, children []Value) []Value {
	x := asScalar(children[0])
	yi := asScalar(y)
	return []Value{x.Inter(yi.Pow(r.n))}
}

// Root returns the n-th root of x (n > 0).
func Root(x *Node, n int) *Node { return opNode(rootOp{n: n}, x) }
