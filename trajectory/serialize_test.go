package trajectory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampledTrajectoryScalarRoundTrip(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: 1, 1.5: 2.5, 3: -1})

	var buf bytes.Buffer
	require.NoError(t, WriteSampledTrajectory(&buf, st))

	got, err := ReadSampledTrajectory[float64](&buf)
	require.NoError(t, err)

	assert.Equal(t, st.NbSamples(), got.NbSamples())
	assert.Equal(t, st.Size(), got.Size())
	for _, tm := range st.times {
		v, err := got.At(tm)
		require.NoError(t, err)
		assert.Equal(t, st.values[tm], v)
	}
}

func TestSampledTrajectoryVectorRoundTrip(t *testing.T) {
	st := NewSampledTrajectory(map[float64][]float64{
		0: {0, 0, 0},
		1: {1, 2, 3},
		2: {-1, -2, -3},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteSampledTrajectory(&buf, st))

	got, err := ReadSampledTrajectory[[]float64](&buf)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Size())
	for _, tm := range st.times {
		v, err := got.At(tm)
		require.NoError(t, err)
		assert.Equal(t, st.values[tm], v)
	}
}

func TestReadSampledTrajectoryTruncatedStreamErrors(t *testing.T) {
	st := NewSampledTrajectory(map[float64]float64{0: 1, 1: 2})
	var buf bytes.Buffer
	require.NoError(t, WriteSampledTrajectory(&buf, st))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	_, err := ReadSampledTrajectory[float64](truncated)
	assert.Error(t, err)
}
