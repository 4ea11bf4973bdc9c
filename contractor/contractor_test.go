package contractor_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/contractor"
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
	"github.com/damien-masse/codac-sub002/interval/ops"
	"github.com/stretchr/testify/assert"
)

func sumFunction() *expr.AnalyticFunction {
	xy := expr.VectorVar("xy", 2)
	sum := expr.Add(expr.Component(xy.AsNode(), 0), expr.Component(xy.AsNode(), 1))
	return expr.NewFunction([]*expr.Variable{xy}, sum)
}

func TestCtcInverseNarrowsSumConstraint(t *testing.T) {
	f := sumFunction()
	c := contractor.CtcInverse(f, interval.Degenerate(4))

	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	out := c.Contract(box)

	assert.False(t, out.IsEmpty())
	assert.False(t, out.Contains([]float64{-10, -10}))
}

func TestCtcInverseDetectsInfeasibleBox(t *testing.T) {
	f := sumFunction()
	c := contractor.CtcInverse(f, interval.Degenerate(100))

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	out := c.Contract(box)

	assert.True(t, out.IsEmpty())
}

func TestCtcInverseNotInEmptiesWhenAlwaysInY(t *testing.T) {
	f := sumFunction()
	c := contractor.CtcInverseNotIn(f, interval.NewInterval(-100, 100))

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	out := c.Contract(box)

	assert.True(t, out.IsEmpty())
}

func TestCtcInverseNotInKeepsBoxWhenPossiblyOutside(t *testing.T) {
	f := sumFunction()
	c := contractor.CtcInverseNotIn(f, interval.Degenerate(0))

	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	out := c.Contract(box)

	assert.Equal(t, box.String(), out.String())
}

func TestCtcInterStopsAtFirstEmptyMember(t *testing.T) {
	f := sumFunction()
	lower := contractor.CtcInverse(f, interval.Degenerate(4))
	infeasible := contractor.CtcInverse(f, interval.Degenerate(1000))
	combined := contractor.CtcInter(lower, infeasible)

	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	out := combined.Contract(box)

	assert.True(t, out.IsEmpty())
}

func TestCtcUnionIsHullOfMembers(t *testing.T) {
	f := sumFunction()
	a := contractor.CtcInverse(f, interval.Degenerate(4))
	b := contractor.CtcInverse(f, interval.Degenerate(-4))
	u := contractor.CtcUnion(a, b)

	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	out := u.Contract(box)

	assert.False(t, out.IsEmpty())
	assert.Equal(t, a.Contract(box).Hull(b.Contract(box)).String(), out.String())
}

func TestCtcFixpointStopsOnEmpty(t *testing.T) {
	f := sumFunction()
	infeasible := contractor.CtcInverse(f, interval.Degenerate(1000))
	fp := contractor.CtcFixpoint(infeasible, 0.99)

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	out := fp.Contract(box)

	assert.True(t, out.IsEmpty())
}

func TestSepInverseClassifiesInAndOut(t *testing.T) {
	f := sumFunction()
	s := contractor.SepInverse(f, interval.NewInterval(-100, 100))

	insideBox := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	in, out := s.Separate(insideBox)
	assert.False(t, in.IsEmpty())
	assert.True(t, out.IsEmpty())
}

func TestSepNotSwapsHalves(t *testing.T) {
	f := sumFunction()
	s := contractor.SepInverse(f, interval.NewInterval(-100, 100))
	notS := contractor.SepNot(s)

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	sIn, sOut := s.Separate(box)
	nIn, nOut := notS.Separate(box)

	assert.Equal(t, sIn.String(), nOut.String())
	assert.Equal(t, sOut.String(), nIn.String())
}

func TestCtcPolarRecoversCartesianPoint(t *testing.T) {
	c := contractor.CtcPolar()

	box := interval.NewIntervalVector(
		interval.NewInterval(0.9, 1.1),
		interval.NewInterval(-0.1, 0.1),
		interval.NewInterval(-10, 10),
		interval.NewInterval(-10, 10),
	)
	out := c.Contract(box)

	assert.False(t, out.IsEmpty())
	assert.True(t, out.At(2).Contains(1))
	assert.True(t, out.At(3).Contains(0))
}

func TestCtcLinearIntervalNarrowsDiagonalSystem(t *testing.T) {
	a := interval.NewIntervalMatrix(2, 2)
	a = a.Set(0, 0, interval.Degenerate(2))
	a = a.Set(1, 1, interval.Degenerate(3))
	a = a.Set(0, 1, interval.Degenerate(0))
	a = a.Set(1, 0, interval.Degenerate(0))
	b := interval.NewIntervalVector(interval.Degenerate(4), interval.Degenerate(9))

	c := contractor.CtcLinearInterval(a, b)
	fp := contractor.CtcFixpoint(c, 0.999)

	box := interval.NewIntervalVector(interval.NewInterval(-100, 100), interval.NewInterval(-100, 100))
	out := fp.Contract(box)

	assert.True(t, out.At(0).Contains(2))
	assert.True(t, out.At(1).Contains(3))
	assert.Less(t, out.At(0).Diam(), 200.0)
}

func TestGaussSeidelDirectNarrowsDiagonalSystem(t *testing.T) {
	a := interval.NewIntervalMatrix(1, 1)
	a = a.Set(0, 0, interval.Degenerate(5))
	b := interval.NewIntervalVector(interval.Degenerate(10))
	x := interval.NewIntervalVector(interval.NewInterval(-100, 100))

	out, err := ops.GaussSeidel(a, b, x)
	assert.NoError(t, err)
	assert.True(t, out.At(0).Contains(2))
}

// squareSumDiffFunction is a 2-in/2-out function (x0+x1, x0-x1), square
// enough for CtcInverse's centered-form step to engage: f.Diff has a
// first-order model everywhere (both component ops are exactly linear), so
// every call exercises the CtcLinearInterval/GaussSeidel sweep on top of
// the DAG backward pass, not just the pass alone.
func squareSumDiffFunction() *expr.AnalyticFunction {
	x0 := expr.ScalarVar("x0")
	x1 := expr.ScalarVar("x1")
	root := expr.Vec(expr.Add(x0.AsNode(), x1.AsNode()), expr.Sub(x0.AsNode(), x1.AsNode()))
	return expr.NewFunction([]*expr.Variable{x0, x1}, root)
}

// The only point consistent with x0+x1=4 and x0-x1=2 is (3,1); the
// contracted box must still contain it and must be no wider than the input
// box in either component.
func TestCtcInverseSquareSystemNarrowsViaCenteredForm(t *testing.T) {
	f := squareSumDiffFunction()
	y := interval.NewIntervalVector(interval.Degenerate(4), interval.Degenerate(2))

	c := contractor.CtcInverse(f, y)
	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	out := c.Contract(box)

	assert.True(t, out.At(0).Contains(3))
	assert.True(t, out.At(1).Contains(1))
	assert.LessOrEqual(t, out.At(0).Diam(), box.At(0).Diam())
	assert.LessOrEqual(t, out.At(1).Diam(), box.At(1).Diam())
}
