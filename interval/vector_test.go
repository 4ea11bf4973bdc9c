package interval_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
)

func TestIntervalVectorBasics(t *testing.T) {
	v := interval.NewIntervalVector(
		interval.NewInterval(0, 1),
		interval.NewInterval(-1, 1),
	)
	assert.Equal(t, 2, v.Size())
	assert.False(t, v.IsEmpty())
	assert.Equal(t, []float64{0.5, 0}, v.Mid())
}

func TestIntervalVectorEmptyPropagation(t *testing.T) {
	v := interval.NewIntervalVector(interval.NewInterval(0, 1), interval.Empty())
	assert.True(t, v.IsEmpty())
}

func TestIntervalVectorBisectWidest(t *testing.T) {
	v := interval.NewIntervalVector(interval.NewInterval(0, 1), interval.NewInterval(-5, 5))
	assert.Equal(t, 1, v.WidestDim())
	a, b := v.BisectWidest(0.5)
	assert.Equal(t, interval.NewInterval(0, 1), a.At(0))
	assert.Equal(t, 0.0, a.At(1).Hi())
	assert.Equal(t, 0.0, b.At(1).Lo())
}

func TestIntervalVectorContainsAndSubset(t *testing.T) {
	v := interval.NewIntervalVector(interval.NewInterval(0, 10), interval.NewInterval(0, 10))
	w := interval.NewIntervalVector(interval.NewInterval(2, 3), interval.NewInterval(4, 5))
	assert.True(t, v.ContainsVector(w))
	assert.True(t, v.Contains([]float64{5, 5}))
	assert.False(t, v.Contains([]float64{11, 5}))
}
