package ops_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/damien-masse/codac-sub002/interval/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussSeidelNarrowsDiagonalSystem(t *testing.T) {
	a := interval.IdentityMatrix(2)
	b := interval.NewIntervalVector(interval.NewInterval(2, 2), interval.NewInterval(4, 4))
	x := interval.WholeVector(2)

	out, err := ops.GaussSeidel(a, b, x)
	require.NoError(t, err)
	assert.True(t, out.At(0).Contains(2))
	assert.True(t, out.At(1).Contains(4))
	assert.Less(t, out.Diam(), x.Diam())
}

func TestGaussSeidelCoupledSystem(t *testing.T) {
	// [2 1; 1 3] x = [5, 10], exact solution x=(1,3).
	a := interval.NewIntervalMatrix(2, 2).
		Set(0, 0, interval.Degenerate(2)).
		Set(0, 1, interval.Degenerate(1)).
		Set(1, 0, interval.Degenerate(1)).
		Set(1, 1, interval.Degenerate(3))
	b := interval.NewIntervalVector(interval.Degenerate(5), interval.Degenerate(10))
	x := interval.NewIntervalVector(interval.NewInterval(-10, 10), interval.NewInterval(-10, 10))

	out, err := ops.GaussSeidel(a, b, x)
	require.NoError(t, err)
	assert.True(t, out.At(0).Contains(1))
	assert.True(t, out.At(1).Contains(3))
}

func TestGaussSeidelDimensionMismatch(t *testing.T) {
	a := interval.IdentityMatrix(2)
	b := interval.NewIntervalVector(interval.Degenerate(1), interval.Degenerate(2), interval.Degenerate(3))
	x := interval.WholeVector(2)
	_, err := ops.GaussSeidel(a, b, x)
	assert.Error(t, err)
}
