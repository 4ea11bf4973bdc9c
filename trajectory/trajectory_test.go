package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

func iv(lo, hi float64) interval.Interval { return interval.NewInterval(lo, hi) }

func TestSampledTrajectoryAtInterpolatesLinearly(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{
		0: 0,
		2: 4,
	})
	v, err := st.At(1)
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-12)
}

func TestSampledTrajectoryAtExactSample(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: 1, 1: 5, 2: 9})
	v, err := st.At(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestSampledTrajectoryAtOutOfDomain(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: 0, 1: 1})
	_, err := st.At(2)
	assert.ErrorIs(t, err, ErrTimeOutOfDomain)
}

func TestSampledTrajectoryEmptyAt(t *testing.T) {
	st := NewSampledTrajectory[float64](nil)
	_, err := st.At(0)
	assert.ErrorIs(t, err, ErrEmptyTrajectory)
	assert.True(t, st.TDomain().IsEmpty())
}

func TestSampledTrajectoryVectorInterpolation(t *testing.T) {
	st := NewSampledTrajectory(map[float64][]float64{
		0: {0, 0},
		2: {2, 4},
	})
	v, err := st.At(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, v, 1e-12)
}

func TestSampledTrajectoryDimensionMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSampledTrajectory(map[float64][]float64{
			0: {0, 0},
			1: {1, 1, 1},
		})
	})
}

func TestSampledTrajectoryCodomainIsHullOfSamples(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: -1, 1: 3, 2: 0})
	cod := st.Codomain().(interval.Interval)
	assert.Equal(t, -1.0, cod.Lo())
	assert.Equal(t, 3.0, cod.Hi())
}

func TestSampledTrajectoryEvalOverSubSpan(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: 0, 1: 10, 2: 0})
	cod, err := st.Eval(iv(0, 1))
	require.NoError(t, err)
	c := cod.(interval.Interval)
	assert.Equal(t, 0.0, c.Lo())
	assert.Equal(t, 10.0, c.Hi())
}

func TestAnalyticTrajectoryAtAndCodomain(t *testing.T) {
	tm := expr.ScalarVar("t")
	f := expr.NewFunction([]*expr.Variable{tm}, expr.Add(expr.Mul(expr.Const(iv(2, 2)), tm.AsNode()), expr.Const(iv(1, 1))))
	at := NewAnalyticTrajectory(f, iv(0, 3))

	v, err := at.At(2)
	require.NoError(t, err)
	assert.InDelta(t, 5, v, 1e-9)

	assert.Equal(t, 1, at.Size())

	cod := at.Codomain().(interval.Interval)
	assert.InDelta(t, 1, cod.Lo(), 1e-9)
	assert.InDelta(t, 7, cod.Hi(), 1e-9)
}

func TestAnalyticTrajectoryAtOutOfDomain(t *testing.T) {
	tm := expr.ScalarVar("t")
	f := expr.NewFunction([]*expr.Variable{tm}, tm.AsNode())
	at := NewAnalyticTrajectory(f, iv(0, 1))
	_, err := at.At(5)
	assert.ErrorIs(t, err, ErrTimeOutOfDomain)
}
