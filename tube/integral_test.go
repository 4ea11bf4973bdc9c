package tube

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Primitive's Forward-only sweep envelopes each slice over its whole span,
// not just at its entry instant: starting from the degenerate point x(0)=0
// with v=[-1,1] and no exit information yet (Forward never looks ahead),
// slice 0's reachable set fans out to [-1,1] by its own far edge, and
// slice 1 carries that [-1,1] entry out to [-2,2] over its own width-1
// span — both slices end up wider than their originating boundary value,
// per the same envelope-contraction design CtcDeriv itself documents.
func TestPrimitiveAndIntegralOnTwoSlices(t *testing.T) {
	d := NewSampledTDomain(0, 2, 1, false)
	v := NewConstantSlicedTube(d, newIv(-1, 1))

	x := Primitive(v, newIv(0, 0))

	slices := x.Slices()
	require.Len(t, slices, 2)
	assert.Equal(t, newIv(-1, 1), slices[0].Codomain())
	assert.Equal(t, newIv(-2, 2), slices[1].Codomain())

	got := Integral(x, 0, 2)
	assert.True(t, got.Contains(-3) && got.Contains(3))
	assert.InDelta(t, -3, got.Lo(), 1e-9)
	assert.InDelta(t, 3, got.Hi(), 1e-9)
}

func TestIntegralReversedBoundsNegatesResult(t *testing.T) {
	d := NewSampledTDomain(0, 2, 1, false)
	v := NewConstantSlicedTube(d, newIv(-1, 1))
	x := Primitive(v, newIv(0, 0))

	fwd := Integral(x, 0, 2)
	bwd := Integral(x, 2, 0)
	assert.Equal(t, fwd.Neg(), bwd)
}

func TestIntegralPartialOverlapUsesExactWidth(t *testing.T) {
	d := NewSampledTDomain(0, 4, 1, false)
	x := NewConstantSlicedTube(d, newIv(2, 2))

	got := Integral(x, 1, 3)
	assert.True(t, got.Contains(4))
	assert.InDelta(t, 4, got.Lo(), 1e-9)
	assert.InDelta(t, 4, got.Hi(), 1e-9)
}

func TestInvertFindsWitnessSlices(t *testing.T) {
	d := NewSampledTDomain(0, 4, 1, false)
	x := NewSlicedTube(d, func(ts *TSlice) interval.Interval {
		if ts.TMin() < 2 {
			return newIv(0, 1)
		}
		return newIv(5, 6)
	})

	hits := Invert(x, newIv(0, 1), nil)
	require.Len(t, hits, 1)
	assert.Equal(t, newIv(0, 2), hits[0].T)

	miss := Invert(x, newIv(10, 11), nil)
	assert.Empty(t, miss)
}
