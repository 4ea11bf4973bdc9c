package tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTDomainRejectsNonPositiveSpan(t *testing.T) {
	assert.Panics(t, func() { NewTDomain(5, 5) })
	assert.Panics(t, func() { NewTDomain(5, 1) })
}

func TestNewTDomainSingleSlice(t *testing.T) {
	d := NewTDomain(0, 10)
	assert.Equal(t, 0.0, d.T0())
	assert.Equal(t, 10.0, d.Tf())
	assert.Len(t, d.Slices(), 1)
}

func TestNewSampledTDomainCreatesUniformSlices(t *testing.T) {
	d := NewSampledTDomain(0, 10, 2, false)
	slices := d.Slices()
	require.Len(t, slices, 5)
	assert.Equal(t, 0.0, slices[0].TMin())
	assert.Equal(t, 10.0, slices[4].TMax())
}

func TestNewSampledTDomainWithGatesInsertsDegenerateSlices(t *testing.T) {
	d := NewSampledTDomain(0, 4, 2, true)
	slices := d.Slices()
	gateCount := 0
	for _, s := range slices {
		if s.IsGate() {
			gateCount++
		}
	}
	assert.Equal(t, 1, gateCount)
}

func TestTSliceAtFindsContainingSlice(t *testing.T) {
	d := NewTDomain(0, 10)
	ts, err := d.TSliceAt(5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ts.TMin())
	assert.Equal(t, 10.0, ts.TMax())
}

func TestTSliceAtRejectsOutOfDomain(t *testing.T) {
	d := NewTDomain(0, 10)
	_, err := d.TSliceAt(11)
	assert.ErrorIs(t, err, ErrTimeOutOfDomain)
}

func TestSampleSplitsSliceAndLinksNeighbors(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(4, false))

	slices := d.Slices()
	require.Len(t, slices, 2)
	assert.Equal(t, 4.0, slices[0].TMax())
	assert.Equal(t, 4.0, slices[1].TMin())
	assert.Same(t, slices[1], slices[0].Next())
	assert.Same(t, slices[0], slices[1].Prev())
}

func TestSampleWithGateInsertsDegenerateMiddleSlice(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(4, true))

	slices := d.Slices()
	require.Len(t, slices, 3)
	assert.True(t, slices[1].IsGate())
	assert.Equal(t, 4.0, slices[1].TMin())
	assert.Equal(t, 4.0, slices[1].TMax())
}

func TestSampleOnExistingBoundaryIsNoop(t *testing.T) {
	d := NewTDomain(0, 10)
	require.NoError(t, d.Sample(0, false))
	assert.Len(t, d.Slices(), 1)
}

func TestSamplePropagatesToRegisteredTube(t *testing.T) {
	d := NewTDomain(0, 10)
	x := NewConstantSlicedTube(d, newIv(1, 2))

	require.NoError(t, d.Sample(4, false))

	slices := x.Slices()
	require.Len(t, slices, 2)
	assert.Equal(t, 1.0, slices[0].Codomain().Lo())
	assert.Equal(t, 1.0, slices[1].Codomain().Lo())
}
