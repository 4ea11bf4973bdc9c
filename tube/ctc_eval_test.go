package tube

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtcEvalNarrowsYToReachableHull(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(5, false))
	x := NewSlicedTube(d, func(ts *TSlice) interval.Interval {
		if ts.TMin() == 0 {
			return newIv(0, 2)
		}
		return newIv(4, 6)
	})
	v := NewConstantSlicedTube(d, newIv(0, 0))

	tWindow := newIv(0, 10)
	yWindow := newIv(-100, 100)

	CtcEval{}.Contract(&tWindow, &yWindow, x, v)

	assert.Equal(t, newIv(0, 6), yWindow)
}

func TestCtcEvalNarrowsSlicesAgainstObservation(t *testing.T) {
	d := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d, newIv(-10, 10))
	v := NewConstantSlicedTube(d, newIv(0, 0))

	tWindow := newIv(0, 10)
	yWindow := newIv(2, 4)

	CtcEval{}.Contract(&tWindow, &yWindow, x, v)

	assert.Equal(t, newIv(2, 4), x.SliceAt(d.Slices()[0]).Codomain())
}

func TestCtcEvalEmptiesOnDisjointObservation(t *testing.T) {
	d := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d, newIv(-1, 1))
	v := NewConstantSlicedTube(d, newIv(0, 0))

	tWindow := newIv(0, 10)
	yWindow := newIv(5, 6)

	CtcEval{}.Contract(&tWindow, &yWindow, x, v)

	assert.True(t, yWindow.IsEmpty())
}

// With a constant positive derivative and a value pinned far out of y's
// reach on the last slice, that slice's reachable-set envelope — forward
// extrapolated from its own pinned value, which sliceEntry recovers as its
// entry — can't contain y, and neither
// can the middle slice's (backward extrapolated from the last slice's
// pin). Only the first slice survives, so t contracts from the full
// [0,15] domain down to that slice's span.
func TestCtcEvalNarrowsTimeWindowByEnvelope(t *testing.T) {
	d := NewTDomain(0, 15)
	require.NoError(t, d.Sample(5, false))
	require.NoError(t, d.Sample(10, false))
	x := NewConstantSlicedTube(d, interval.Whole())
	v := NewConstantSlicedTube(d, newIv(10, 10))

	slices := d.Slices()
	x.SliceAt(slices[2]).SetCodomain(newIv(1000, 1000))

	tWindow := newIv(0, 15)
	yWindow := newIv(0, 1)

	CtcEval{}.Contract(&tWindow, &yWindow, x, v)

	assert.Equal(t, newIv(0, 5), tWindow)
	assert.Equal(t, newIv(0, 1), yWindow)
}
