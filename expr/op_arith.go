package expr

import "github.com/damien-masse/codac-sub002/interval"

// arithKind distinguishes the four elementwise arithmetic operators that
// share forward/backward/shape-broadcast plumbing.
type arithKind int

const (
	arithAdd arithKind = iota
	arithSub
	arithMul
	arithDiv
)

// binaryElementwise implements `+ − × ÷` on compatible kinds per
// spec.md §3: same-shape operands (scalar/scalar, vector/vector, or
// matrix/matrix of equal size) apply componentwise; for × and ÷ a scalar
// operand broadcasts against a vector or matrix operand.
type binaryElementwise struct {
	kind arithKind
}

func (b binaryElementwise) Name() string {
	switch b.kind {
	case arithAdd:
		return "+"
	case arithSub:
		return "-"
	case arithMul:
		return "*"
	default:
		return "/"
	}
}

func isScalarShape(s [2]int) bool { return s[0] == 1 && s[1] == 1 }

func (b binaryElementwise) OutShape(shapes [][2]int) (int, int) {
	a, c := shapes[0], shapes[1]
	if a == c {
		return a[0], a[1]
	}
	if (b.kind == arithMul || b.kind == arithDiv) && isScalarShape(a) {
		return c[0], c[1]
	}
	if (b.kind == arithMul || b.kind == arithDiv) && isScalarShape(c) {
		return a[0], a[1]
	}
	if a == c {
		return a[0], a[1]
	}
	panic("expr: incompatible shapes for " + b.Name())
}

func scalarOf(v Value) (interval.Interval, bool) {
	s, ok := v.(interval.Interval)
	return s, ok
}

// elementwiseCompute applies f componentwise to two same-shape or
// scalar-broadcast operands, flattened.
func elementwiseCompute(x, y Value, f func(a, b interval.Interval) interval.Interval) Value {
	xs, xScalar := scalarOf(x)
	ys, yScalar := scalarOf(y)

	if xScalar && yScalar {
		return f(xs, ys)
	}
	xf, yf := flatten(x), flatten(y)
	if xScalar {
		out := make([]interval.Interval, yf.Size())
		for i := range out {
			out[i] = f(xs, yf.At(i))
		}
		r, c := valueShape(y)
		return unflatten(kindOf(y), r, c, interval.NewIntervalVector(out...))
	}
	if yScalar {
		out := make([]interval.Interval, xf.Size())
		for i := range out {
			out[i] = f(xf.At(i), ys)
		}
		r, c := valueShape(x)
		return unflatten(kindOf(x), r, c, interval.NewIntervalVector(out...))
	}
	if xf.Size() != yf.Size() {
		panic("expr: elementwise op on mismatched sizes")
	}
	out := make([]interval.Interval, xf.Size())
	for i := range out {
		out[i] = f(xf.At(i), yf.At(i))
	}
	r, c := valueShape(x)
	return unflatten(kindOf(x), r, c, interval.NewIntervalVector(out...))
}

func (b binaryElementwise) Forward(children []Value) (Value, bool) {
	x, y := children[0], children[1]
	var result Value
	switch b.kind {
	case arithAdd:
		result = elementwiseCompute(x, y, func(a, c interval.Interval) interval.Interval { return a.Add(c) })
	case arithSub:
		result = elementwiseCompute(x, y, func(a, c interval.Interval) interval.Interval { return a.Sub(c) })
	case arithMul:
		result = elementwiseCompute(x, y, func(a, c interval.Interval) interval.Interval { return a.Mul(c) })
	case arithDiv:
		result = elementwiseCompute(x, y, func(a, c interval.Interval) interval.Interval { return a.Div(c) })
	}
	return result, true
}

func (b binaryElementwise) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	xm, ym := mids[0], mids[1]
	n := len(xm)
	if len(ym) > n {
		n = len(ym)
	}
	at := func(s []float64, i int) float64 {
		if len(s) == 1 {
			return s[0]
		}
		return s[i]
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		xv, yv := at(xm, i), at(ym, i)
		switch b.kind {
		case arithAdd:
			out[i] = xv + yv
		case arithSub:
			out[i] = xv - yv
		case arithMul:
			out[i] = xv * yv
		case arithDiv:
			out[i] = xv / yv
		}
	}
	return out
}

func (b binaryElementwise) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	x, y := children[0], children[1]
	xs, xScalar := scalarOf(x)
	ys, yScalar := scalarOf(y)
	outSize := outRows * outCols
	xSize, ySize := valueSize(x), valueSize(y)

	jx := interval.NewIntervalMatrix(outSize, xSize)
	jy := interval.NewIntervalMatrix(outSize, ySize)

	switch b.kind {
	case arithAdd, arithSub:
		sign := interval.Degenerate(1.0)
		if b.kind == arithSub {
			sign = interval.Degenerate(-1.0)
		}
		for i := 0; i < outSize; i++ {
			jx = jx.Set(i, i, interval.Degenerate(1))
			jy = jy.Set(i, i, sign)
		}
	case arithMul:
		yf := flatten(y)
		xf := flatten(x)
		for i := 0; i < outSize; i++ {
			if xScalar {
				jx = jx.Set(i, 0, yf.At(i))
			} else {
				jx = jx.Set(i, i, yf.At(boolToIdx(yScalar, 0, i)))
			}
			if yScalar {
				jy = jy.Set(i, 0, xf.At(i))
			} else {
				jy = jy.Set(i, i, xf.At(boolToIdx(xScalar, 0, i)))
			}
		}
	case arithDiv:
		yf := flatten(y)
		xf := flatten(x)
		for i := 0; i < outSize; i++ {
			var yi interval.Interval
			if yScalar {
				yi = ys
			} else {
				yi = yf.At(i)
			}
			jx = jx.Set(i, boolToIdx(xScalar, 0, i), interval.Degenerate(1).Div(yi))
			var xi interval.Interval
			if xScalar {
				xi = xs
			} else {
				xi = xf.At(i)
			}
			jy = jy.Set(i, boolToIdx(yScalar, 0, i), xi.Neg().Div(yi.Sqr()))
		}
	}
	return []interval.IntervalMatrix{jx, jy}
}

func boolToIdx(scalar bool, zero, idx int) int {
	if scalar {
		return zero
	}
	return idx
}

func (b binaryElementwise) Backward(y Value, children []Value) []Value {
	x0, x1 := children[0], children[1]
	_, x0s := scalarOf(x0)
	_, x1s := scalarOf(x1)
	if x0s && x1s {
		yi := y.(interval.Interval)
		xi0 := x0.(interval.Interval)
		xi1 := x1.(interval.Interval)
		switch b.kind {
		case arithAdd:
			a, c := interval.BwdAdd(yi, xi0, xi1)
			return []Value{a, c}
		case arithSub:
			a, c := interval.BwdSub(yi, xi0, xi1)
			return []Value{a, c}
		case arithMul:
			a, c := interval.BwdMul(yi, xi0, xi1)
			return []Value{a, c}
		case arithDiv:
			a, c := interval.BwdDiv(yi, xi0, xi1)
			return []Value{a, c}
		}
	}
	// Vector/matrix or broadcast case: narrow componentwise where shapes
	// align 1:1, otherwise leave children unchanged (sound no-op).
	yf := flatten(y)
	x0f, x1f := flatten(x0), flatten(x1)
	if x0f.Size() != yf.Size() || x1f.Size() != yf.Size() {
		return []Value{x0, x1}
	}
	out0 := make([]interval.Interval, yf.Size())
	out1 := make([]interval.Interval, yf.Size())
	for i := 0; i < yf.Size(); i++ {
		switch b.kind {
		case arithAdd:
			out0[i], out1[i] = interval.BwdAdd(yf.At(i), x0f.At(i), x1f.At(i))
		case arithSub:
			out0[i], out1[i] = interval.BwdSub(yf.At(i), x0f.At(i), x1f.At(i))
		case arithMul:
			out0[i], out1[i] = interval.BwdMul(yf.At(i), x0f.At(i), x1f.At(i))
		case arithDiv:
			out0[i], out1[i] = interval.BwdDiv(yf.At(i), x0f.At(i), x1f.At(i))
		}
	}
	r0, c0 := valueShape(x0)
	r1, c1 := valueShape(x1)
	return []Value{
		unflatten(kindOf(x0), r0, c0, interval.NewIntervalVector(out0...)),
		unflatten(kindOf(x1), r1, c1, interval.NewIntervalVector(out1...)),
	}
}

// Add returns a+b (scalar/vector/matrix of matching shape).
func Add(a, b *Node) *Node { return opNode(binaryElementwise{arithAdd}, a, b) }

// Sub returns a-b.
func Sub(a, b *Node) *Node { return opNode(binaryElementwise{arithSub}, a, b) }

// Mul returns a*b (scalar*scalar, or scalar broadcast against a vector or
// matrix); matrix-vector multiplication is a dedicated operator, MatVecMul.
func Mul(a, b *Node) *Node { return opNode(binaryElementwise{arithMul}, a, b) }

// Div returns a/b (scalar/scalar, same-shape componentwise, or a scalar
// broadcast against a vector or matrix on either side).
func Div(a, b *Node) *Node { return opNode(binaryElementwise{arithDiv}, a, b) }

// negOp implements unary negation.
type negOp struct{}

func (negOp) Name() string                           { return "-" }
func (negOp) OutShape(shapes [][2]int) (int, int)     { return shapes[0][0], shapes[0][1] }
func (negOp) Forward(children []Value) (Value, bool) {
	x := children[0]
	flat := flatten(x)
	out := make([]interval.Interval, flat.Size())
	for i := range out {
		out[i] = flat.At(i).Neg()
	}
	r, c := valueShape(x)
	return unflatten(kindOf(x), r, c, interval.NewIntervalVector(out...)), true
}
func (negOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids[0]))
	for i, v := range mids[0] {
		out[i] = -v
	}
	return out
}
func (negOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := outRows * outCols
	m := interval.NewIntervalMatrix(n, n)
	for i := 0; i < n; i++ {
		m = m.Set(i, i, interval.Degenerate(-1))
	}
	return []interval.IntervalMatrix{m}
}
func (negOp) Backward(y Value, children []Value) []Value {
	x := children[0]
	yf, xf := flatten(y), flatten(x)
	out := make([]interval.Interval, xf.Size())
	for i := range out {
		out[i] = interval.BwdNeg(yf.At(i), xf.At(i))
	}
	r, c := valueShape(x)
	return []Value{unflatten(kindOf(x), r, c, interval.NewIntervalVector(out...))}
}

// Neg returns -a.
func Neg(a *Node) *Node { return opNode(negOp{}, a) }
