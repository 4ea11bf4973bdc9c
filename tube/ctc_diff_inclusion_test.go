package tube

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CtcDiffInclusion with F(t,x) = v (a constant enclosure) must behave
// exactly like CtcDeriv against that constant derivative tube, since the
// derived v-tube it builds internally is that same constant at every
// slice.
func TestCtcDiffInclusionMatchesConstantCtcDeriv(t *testing.T) {
	d := NewTDomain(0, 4)
	require.NoError(t, d.Sample(2, false))

	x1 := NewConstantSlicedTube(d, newIv(-50, 50))
	slices := d.Slices()
	x1.SliceAt(slices[0]).SetCodomain(newIv(0, 0))

	v := NewConstantSlicedTube(d, newIv(1, 1))
	CtcDeriv(x1, v, FwdBwd)

	d2 := NewTDomain(0, 4)
	require.NoError(t, d2.Sample(2, false))
	x2 := NewConstantSlicedTube(d2, newIv(-50, 50))
	slices2 := d2.Slices()
	x2.SliceAt(slices2[0]).SetCodomain(newIv(0, 0))

	cdi := NewCtcDiffInclusion(func(_ interval.Interval, _ interval.Interval) interval.Interval {
		return newIv(1, 1)
	})
	cdi.Contract(x2, FwdBwd)

	got1 := x1.SliceAt(slices[1]).Codomain()
	got2 := x2.SliceAt(slices2[1]).Codomain()
	assert.InDelta(t, got1.Lo(), got2.Lo(), 1e-9)
	assert.InDelta(t, got1.Hi(), got2.Hi(), 1e-9)
}

func TestCtcDiffInclusionStopsOnFixpoint(t *testing.T) {
	d := NewTDomain(0, 2)
	x := NewConstantSlicedTube(d, newIv(0, 0))

	cdi := NewCtcDiffInclusion(func(_ interval.Interval, cur interval.Interval) interval.Interval {
		return cur
	})
	assert.NotPanics(t, func() { cdi.Contract(x, Forward) })
}
