package interval_test

import (
	"math"
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntervalEmptyOnInvertedBounds(t *testing.T) {
	x := interval.NewInterval(3, 1)
	assert.True(t, x.IsEmpty())
}

func TestSoundnessOfArithmetic(t *testing.T) {
	x := interval.NewInterval(-2, 3)
	y := interval.NewInterval(1, 4)

	samplesX := []float64{-2, -1, 0, 1.5, 3}
	samplesY := []float64{1, 2, 3, 4}

	add := x.Add(y)
	sub := x.Sub(y)
	mul := x.Mul(y)

	for _, sx := range samplesX {
		for _, sy := range samplesY {
			assert.True(t, add.Contains(sx+sy), "add %v %v", sx, sy)
			assert.True(t, sub.Contains(sx-sy), "sub %v %v", sx, sy)
			assert.True(t, mul.Contains(sx*sy), "mul %v %v", sx, sy)
		}
	}
}

func TestDivWideningOnZeroStraddle(t *testing.T) {
	x := interval.NewInterval(1, 2)
	y := interval.NewInterval(-1, 1)
	got := x.Div(y)
	assert.True(t, got.IsUnbounded())
}

func TestSqrtDefDomain(t *testing.T) {
	x := interval.NewInterval(-4, 9)
	r, ok := x.Sqrt()
	assert.False(t, ok)
	assert.Equal(t, 0.0, r.Lo())
	assert.GreaterOrEqual(t, r.Hi(), 3.0)
	assert.InDelta(t, 3.0, r.Hi(), 1e-12)

	neg := interval.NewInterval(-4, -1)
	_, ok = neg.Sqrt()
	assert.False(t, ok)
	r2, _ := neg.Sqrt()
	assert.True(t, r2.IsEmpty())
}

func TestHullAndInter(t *testing.T) {
	x := interval.NewInterval(0, 2)
	y := interval.NewInterval(1, 4)
	require.Equal(t, interval.NewInterval(1, 2), x.Inter(y))
	require.Equal(t, interval.NewInterval(0, 4), x.Hull(y))

	empty := interval.Empty()
	assert.True(t, x.Inter(empty).IsEmpty())
	assert.Equal(t, x, x.Hull(empty))
}

func TestBisect(t *testing.T) {
	x := interval.NewInterval(0, 10)
	a, b := x.Bisect(0.5)
	assert.Equal(t, 0.0, a.Lo())
	assert.Equal(t, 5.0, a.Hi())
	assert.Equal(t, 5.0, b.Lo())
	assert.Equal(t, 10.0, b.Hi())
}

func TestCosSinSoundness(t *testing.T) {
	x := interval.NewInterval(0, math.Pi/2)
	cos := x.Cos()
	sin := x.Sin()
	for _, s := range []float64{0, 0.3, 1, math.Pi / 2} {
		assert.True(t, cos.Contains(math.Cos(s)))
		assert.True(t, sin.Contains(math.Sin(s)))
	}
	// cos hits its max (1) and min (0) across [0, pi/2]: enclosure must
	// include both without being the full [-1,1] (interval is narrow).
	assert.InDelta(t, 0, cos.Lo(), 1e-6)
	assert.InDelta(t, 1, cos.Hi(), 1e-6)
}

func TestBwdAddRecoversNarrowerInputs(t *testing.T) {
	x := interval.NewInterval(-10, 10)
	y := interval.NewInterval(-10, 10)
	z := interval.NewInterval(4, 6) // x + y in [4,6]
	nx, ny := interval.BwdAdd(z, x, y)
	assert.True(t, nx.ContainsInterval(interval.Degenerate(5)))
	assert.True(t, ny.ContainsInterval(interval.Degenerate(0)))
	assert.LessOrEqual(t, nx.Diam(), x.Diam())
}

func TestBwdSqrNarrowsToSignedRoots(t *testing.T) {
	x := interval.NewInterval(-10, 10)
	z := interval.NewInterval(4, 9) // x^2 in [4,9] => x in [-3,-2] U [2,3]
	nx := interval.BwdSqr(z, x)
	assert.True(t, nx.ContainsInterval(interval.NewInterval(2, 3)))
	assert.True(t, nx.ContainsInterval(interval.NewInterval(-3, -2)))
}
