package expr_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArithmeticNaturalEval(t *testing.T) {
	x := expr.ScalarVar("x")
	y := expr.ScalarVar("y")
	two := expr.Const(interval.Degenerate(2))
	f := expr.NewFunction([]*expr.Variable{x, y}, expr.Add(x.AsNode(), expr.Mul(expr.Sub(y.AsNode(), x.AsNode()), two)))

	result := f.Eval(expr.NATURAL, interval.NewInterval(1, 2), interval.NewInterval(3, 4))
	got := result.(interval.Interval)
	// x + 2*(y-x), sampled across the box.
	assert.True(t, got.Contains(1+2*(3-1)))
	assert.True(t, got.Contains(2+2*(4-2)))
}

func TestDefaultEvalFallsBackToNaturalOnNonDifferentiableOp(t *testing.T) {
	x := expr.ScalarVar("x")
	f := expr.NewFunction([]*expr.Variable{x}, expr.Sign(x.AsNode()))

	result := f.Eval(expr.DEFAULT, interval.NewInterval(-1, 1))
	got := result.(interval.Interval)
	assert.True(t, got.Contains(-1))
	assert.True(t, got.Contains(1))
}

func TestCenteredNarrowerThanNaturalForWideBox(t *testing.T) {
	x := expr.ScalarVar("x")
	f := expr.NewFunction([]*expr.Variable{x}, expr.Sqr(x.AsNode()))

	box := interval.NewInterval(9, 11)
	natural := f.Eval(expr.NATURAL, box).(interval.Interval)
	centered := f.Eval(expr.CENTERED, box).(interval.Interval)

	assert.True(t, natural.ContainsInterval(centered))
	assert.True(t, centered.Contains(100))
}

func TestDiffMatchesAnalyticDerivative(t *testing.T) {
	x := expr.ScalarVar("x")
	f := expr.NewFunction([]*expr.Variable{x}, expr.Sqr(x.AsNode()))

	j := f.Diff(interval.Degenerate(5))
	require.Equal(t, 1, j.Rows())
	require.Equal(t, 1, j.Cols())
	assert.InDelta(t, 10, j.At(0, 0).Mid(), 1e-9)
}

func TestBackwardNarrowsSharedSubexpression(t *testing.T) {
	x := expr.ScalarVar("x")
	xNode := x.AsNode()
	// f(x) = x + x, shared node referenced twice.
	f := expr.NewFunction([]*expr.Variable{x}, expr.Add(xNode, xNode))

	narrowed := f.Backward(interval.Degenerate(4), interval.NewInterval(-10, 10))
	got := narrowed[0].(interval.Interval)
	// A single backward pass over a shared node is sound but not exploiting
	// the x+x aliasing to its tightest bound; it must still contain the
	// true solution and narrow away values outside [-6,10].
	assert.True(t, got.Contains(2))
	assert.False(t, got.Contains(-8))
}

func TestArityMismatchPanics(t *testing.T) {
	x := expr.ScalarVar("x")
	f := expr.NewFunction([]*expr.Variable{x}, x.AsNode())
	assert.Panics(t, func() {
		f.Eval(expr.NATURAL, interval.Zero(), interval.Zero())
	})
}

func TestVecAndComponentRoundTrip(t *testing.T) {
	x := expr.ScalarVar("x")
	y := expr.ScalarVar("y")
	v := expr.Vec(x.AsNode(), y.AsNode())
	f := expr.NewFunction([]*expr.Variable{x, y}, expr.Component(v, 1))

	result := f.Eval(expr.NATURAL, interval.Degenerate(3), interval.Degenerate(7))
	assert.True(t, result.(interval.Interval).Equal(interval.Degenerate(7)))
}

func TestMatVecMulShape(t *testing.T) {
	m := expr.MatrixVar("M", 2, 2)
	v := expr.VectorVar("v", 2)
	f := expr.NewFunction([]*expr.Variable{m, v}, expr.MatVecMul(m.AsNode(), v.AsNode()))

	mv := interval.NewIntervalMatrix(2, 2)
	mv = mv.Set(0, 0, interval.Degenerate(1))
	mv = mv.Set(0, 1, interval.Degenerate(0))
	mv = mv.Set(1, 0, interval.Degenerate(0))
	mv = mv.Set(1, 1, interval.Degenerate(1))
	vv := interval.NewIntervalVector(interval.Degenerate(2), interval.Degenerate(5))

	result := f.Eval(expr.NATURAL, mv, vv).(interval.IntervalVector)
	assert.True(t, result.At(0).Contains(2))
	assert.InDelta(t, 0, result.At(0).Diam(), 1e-12)
	assert.True(t, result.At(1).Contains(5))
	assert.InDelta(t, 0, result.At(1).Diam(), 1e-12)
}

func TestDetTwoByTwo(t *testing.T) {
	m := expr.MatrixVar("M", 2, 2)
	f := expr.NewFunction([]*expr.Variable{m}, expr.Det(m.AsNode()))

	mv := interval.NewIntervalMatrix(2, 2)
	mv = mv.Set(0, 0, interval.Degenerate(1))
	mv = mv.Set(0, 1, interval.Degenerate(2))
	mv = mv.Set(1, 0, interval.Degenerate(3))
	mv = mv.Set(1, 1, interval.Degenerate(4))

	result := f.Eval(expr.NATURAL, mv).(interval.Interval)
	assert.True(t, result.Contains(1*4-2*3))
}
