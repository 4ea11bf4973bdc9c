package paver_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/contractor"
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
	"github.com/damien-masse/codac-sub002/paver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ellipseFunction() *expr.AnalyticFunction {
	xy := expr.VectorVar("xy", 2)
	x1 := expr.Component(xy.AsNode(), 0)
	x2 := expr.Component(xy.AsNode(), 1)
	seven := expr.Const(interval.Degenerate(7))
	three := expr.Const(interval.Degenerate(3))
	term1 := expr.Sqr(expr.Div(x1, seven))
	term2 := expr.Sqr(expr.Div(x2, three))
	return expr.NewFunction([]*expr.Variable{xy}, expr.Add(term1, term2))
}

func TestPaveSeparatorClassifiesFarFromCurve(t *testing.T) {
	// The constraint set is the ellipse's boundary curve f(x)=1; a small
	// box around the origin never reaches it (f stays near 0 there).
	f := ellipseFunction()
	s := contractor.SepInverse(f, interval.Degenerate(1))

	box := interval.NewIntervalVector(interval.NewInterval(-0.5, 0.5), interval.NewInterval(-0.5, 0.5))
	p, err := paver.PaveSeparator(box, s, 0.1)
	require.NoError(t, err)
	require.NotNil(t, p.Root)
	assert.Equal(t, paver.Outside, p.Root.Label)
}

func TestSiviaProducesBoundaryAndOutsideLeaves(t *testing.T) {
	f := ellipseFunction()
	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))

	p, err := paver.Sivia(box, f, interval.Degenerate(1), 0.5)
	require.NoError(t, err)

	boundary := p.Subpaving(paver.Boundary)
	outside := p.Subpaving(paver.Outside)
	assert.NotEmpty(t, boundary.Boxes())
	assert.NotEmpty(t, outside.Boxes())

	assert.True(t, outside.Contains([]float64{9, 9}))
}

func TestPaveContractorEmptiesInfeasibleBox(t *testing.T) {
	xy := expr.VectorVar("xy", 2)
	sum := expr.Add(expr.Component(xy.AsNode(), 0), expr.Component(xy.AsNode(), 1))
	f := expr.NewFunction([]*expr.Variable{xy}, sum)
	c := contractor.CtcInverse(f, interval.Degenerate(1000))

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	p, err := paver.Pave(box, c, 0.1)
	require.NoError(t, err)
	assert.Equal(t, paver.Outside, p.Root.Label)
}

func TestPaveRejectsNonPositiveEps(t *testing.T) {
	xy := expr.VectorVar("xy", 2)
	f := expr.NewFunction([]*expr.Variable{xy}, expr.Component(xy.AsNode(), 0))
	c := contractor.CtcInverse(f, interval.Degenerate(0))

	box := interval.NewIntervalVector(interval.NewInterval(-1, 1), interval.NewInterval(-1, 1))
	_, err := paver.Pave(box, c, 0)
	assert.ErrorIs(t, err, paver.ErrNonPositiveEps)
}

func TestMaxDepthBoundsRecursion(t *testing.T) {
	xy := expr.VectorVar("xy", 2)
	sum := expr.Add(expr.Component(xy.AsNode(), 0), expr.Component(xy.AsNode(), 1))
	f := expr.NewFunction([]*expr.Variable{xy}, sum)
	s := contractor.SepInverse(f, interval.Degenerate(0))

	box := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))
	p, err := paver.PaveSeparator(box, s, 1e-9, paver.WithMaxDepth(3))
	require.NoError(t, err)

	var leaves int
	var walk func(n *paver.Node)
	walk = func(n *paver.Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			leaves++
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(p.Root)
	assert.LessOrEqual(t, leaves, 1<<3)
}
