package tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Grounded on tests/core/domains/tube/codac2_tests_Slice_polygon.cpp's
// "Test polygon, 1": tdomain=[-1,3], entry=[-1,2], exit=[-2,0],
// v=[-1,1] constant, box=the slice's declared codomain (wide enough not
// to clamp here).
func TestReachablePolygonHexagonFromEntryExit(t *testing.T) {
	d := NewTDomain(-1, 3)
	ts := d.Slices()[0]

	entry := newIv(-1, 2)
	exit := newIv(-2, 0)
	v := newIv(-1, 1)
	box := newIv(-100, 100)

	pts := ReachablePolygon(ts, entry, exit, v, box)

	want := []Point2D{
		{T: -1, X: -1}, {T: -1, X: 2}, {T: 0, X: 3},
		{T: 3, X: 0}, {T: 3, X: -2}, {T: 1.5, X: -3.5},
	}
	require.Len(t, pts, len(want))
	for i, w := range want {
		assert.InDelta(t, w.T, pts[i].T, 1e-9)
		assert.InDelta(t, w.X, pts[i].X, 1e-9)
	}
}

func TestReachablePolygonClampsToDeclaredBox(t *testing.T) {
	d := NewTDomain(0, 4)
	ts := d.Slices()[0]

	entry := newIv(2, 3)
	exit := newIv(3, 4)
	v := newIv(-1.5, 4)
	box := newIv(-1, 7)

	pts := ReachablePolygon(ts, entry, exit, v, box)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0-1e-9)
		assert.LessOrEqual(t, p.X, 7.0+1e-9)
	}
}

func TestReachablePolygonDegenerateCollapsesVertices(t *testing.T) {
	d := NewTDomain(-1, 3)
	ts := d.Slices()[0]

	entry := newIv(-1, -1)
	exit := newIv(-3, -3)
	v := newIv(-0.5, -0.5)
	box := newIv(-100, 100)

	pts := ReachablePolygon(ts, entry, exit, v, box)
	assert.LessOrEqual(t, len(pts), 4)
}
