package tube

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIv(lo, hi float64) interval.Interval { return interval.NewInterval(lo, hi) }

func TestNewConstantSlicedTubeInitializesEverySlice(t *testing.T) {
	d := NewSampledTDomain(0, 10, 2, false)
	x := NewConstantSlicedTube(d, newIv(-1, 1))
	for _, s := range x.Slices() {
		assert.Equal(t, newIv(-1, 1), s.Codomain())
	}
}

func TestSlicedTubeAtReturnsContainingSliceValue(t *testing.T) {
	d := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d, newIv(2, 3))
	v, err := x.At(5)
	require.NoError(t, err)
	assert.Equal(t, newIv(2, 3), v)
}

func TestSlicedTubeEvalHullsOverlappingSlices(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(4, false))
	x := NewSlicedTube(d, func(ts *TSlice) interval.Interval {
		if ts.TMin() == 0 {
			return newIv(0, 1)
		}
		return newIv(5, 6)
	})

	got := x.Eval(newIv(0, 10))
	assert.Equal(t, 0.0, got.Lo())
	assert.Equal(t, 6.0, got.Hi())
}

func TestSlicedTubeCodomainIsHullOfAllSlices(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(4, false))
	x := NewSlicedTube(d, func(ts *TSlice) interval.Interval {
		if ts.TMin() == 0 {
			return newIv(-1, 0)
		}
		return newIv(0, 2)
	})
	assert.Equal(t, newIv(-1, 2), x.Codomain())
}

func TestSlicedTubeIsEmptyWhenAllSlicesEmpty(t *testing.T) {
	d := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d, interval.Empty())
	assert.True(t, x.IsEmpty())
}

func TestSlicedTubeIsNotEmptyWhenOneSliceNonEmpty(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(4, false))
	x := NewSlicedTube(d, func(ts *TSlice) interval.Interval {
		if ts.TMin() == 0 {
			return interval.Empty()
		}
		return newIv(0, 1)
	})
	assert.False(t, x.IsEmpty())
}

func TestSliceAtPanicsOnForeignTSlice(t *testing.T) {
	d1 := NewTDomain(0, 10)
	d2 := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d1, newIv(0, 1))
	foreign := d2.Slices()[0]
	assert.Panics(t, func() { x.SliceAt(foreign) })
}
