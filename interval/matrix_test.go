package interval_test

import (
	"testing"

	"github.com/damien-masse/codac-sub002/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalMatrixMulVector(t *testing.T) {
	m := interval.IdentityMatrix(2)
	v := interval.NewIntervalVector(interval.NewInterval(1, 2), interval.NewInterval(3, 4))
	got := m.MulVector(v)
	for i := 0; i < v.Size(); i++ {
		require.True(t, got.At(i).Contains(v.At(i).Lo()) && got.At(i).Contains(v.At(i).Hi()))
		require.InDelta(t, v.At(i).Lo(), got.At(i).Lo(), 1e-12)
		require.InDelta(t, v.At(i).Hi(), got.At(i).Hi(), 1e-12)
	}
}

func TestIntervalMatrixMulSoundness(t *testing.T) {
	m := interval.NewIntervalMatrix(1, 2).
		Set(0, 0, interval.NewInterval(1, 2)).
		Set(0, 1, interval.NewInterval(-1, 1))
	v := interval.NewIntervalVector(interval.NewInterval(0, 1), interval.NewInterval(2, 3))
	got := m.MulVector(v)
	// sample points
	for _, a := range []float64{1, 2} {
		for _, b := range []float64{-1, 0, 1} {
			for _, x := range []float64{0, 1} {
				for _, y := range []float64{2, 3} {
					val := a*x + b*y
					assert.True(t, got.At(0).Contains(val))
				}
			}
		}
	}
}

func TestIntervalMatrixTranspose(t *testing.T) {
	m := interval.NewIntervalMatrix(2, 3)
	m = m.Set(0, 2, interval.Degenerate(5))
	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, interval.Degenerate(5), tr.At(2, 0))
}
