package tube

import (
	"math"
	"sort"

	"github.com/damien-masse/codac-sub002/interval"
)

// Point2D is one vertex of a reachable-set polygon, (time, value).
type Point2D struct {
	T, X float64
}

// line is an affine function of t: value = a + b*t.
type line struct{ a, b float64 }

func (l line) at(t float64) float64 { return l.a + l.b*t }

// crossing returns the t where l1 and l2 agree, and whether one exists
// (they are not parallel).
func crossing(l1, l2 line) (float64, bool) {
	if l1.b == l2.b {
		return 0, false
	}
	return (l2.a - l1.a) / (l1.b - l2.b), true
}

// ReachablePolygon builds the convex polygon enclosing the reachable set
// of a scalar slice x([t0,t1]) under derivative v, per spec.md §4.3's
// "Polygon form": the envelope of forward extrapolation from the entry
// value, backward extrapolation from the exit value, and the slice's own
// declared codomain bound, grounded on
// tests/core/domains/tube/codac2_tests_Slice_polygon.cpp's worked
// examples.
func ReachablePolygon(ts *TSlice, entry, exit, v, box interval.Interval) []Point2D {
	t0, t1 := ts.tMin, ts.tMax

	// fwd(t) = entry + [0,t-t0]*v, bwd(t) = exit - [0,t1-t]*v. Both are
	// affine in t; mLo/mHi are the two slope magnitudes interval
	// multiplication by [0,Δ] can contribute, reused by both envelopes
	// (bwd's subtraction flips which one binds the upper vs lower side).
	mLo := math.Min(v.Lo(), 0)
	mHi := math.Max(v.Hi(), 0)

	fwdHi := line{a: entry.Hi() - mHi*t0, b: mHi}
	fwdLo := line{a: entry.Lo() - mLo*t0, b: mLo}
	bwdHi := line{a: exit.Hi() - mLo*t1, b: mLo}
	bwdLo := line{a: exit.Lo() - mHi*t1, b: mHi}
	clampHi := line{a: box.Hi(), b: 0}
	clampLo := line{a: box.Lo(), b: 0}

	upperLines := []line{fwdHi, bwdHi, clampHi}
	lowerLines := []line{fwdLo, bwdLo, clampLo}

	upperTs := breakpoints(t0, t1, upperLines)
	lowerTs := breakpoints(t0, t1, lowerLines)

	pts := make([]Point2D, 0, len(upperTs)+len(lowerTs)+2)
	pts = append(pts, Point2D{T: t0, X: envelope(lowerLines, t0, false)})
	pts = append(pts, Point2D{T: t0, X: envelope(upperLines, t0, true)})
	for _, t := range upperTs {
		if t > t0 && t < t1 {
			pts = append(pts, Point2D{T: t, X: envelope(upperLines, t, true)})
		}
	}
	pts = append(pts, Point2D{T: t1, X: envelope(upperLines, t1, true)})
	pts = append(pts, Point2D{T: t1, X: envelope(lowerLines, t1, false)})
	for i := len(lowerTs) - 1; i >= 0; i-- {
		t := lowerTs[i]
		if t > t0 && t < t1 {
			pts = append(pts, Point2D{T: t, X: envelope(lowerLines, t, false)})
		}
	}

	return dedupCollinear(pts)
}

// envelope evaluates min (upper=true picks the tightest upper bound, i.e.
// the minimum of the candidate lines) or max (lower bound) of ls at t.
func envelope(ls []line, t float64, upper bool) float64 {
	best := ls[0].at(t)
	for _, l := range ls[1:] {
		v := l.at(t)
		if upper && v < best {
			best = v
		}
		if !upper && v > best {
			best = v
		}
	}
	return best
}

// breakpoints collects t0, t1, and every pairwise crossing of ls that
// falls strictly inside (t0,t1), sorted ascending.
func breakpoints(t0, t1 float64, ls []line) []float64 {
	out := []float64{t0, t1}
	for i := 0; i < len(ls); i++ {
		for j := i + 1; j < len(ls); j++ {
			if t, ok := crossing(ls[i], ls[j]); ok && t > t0 && t < t1 {
				out = append(out, t)
			}
		}
	}
	sort.Float64s(out)
	return out
}

// boundingBox returns the [min X, max X] enclosure of a reachable-set
// polygon's vertices.
func boundingBox(pts []Point2D) interval.Interval {
	lo, hi := pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		if p.X < lo {
			lo = p.X
		}
		if p.X > hi {
			hi = p.X
		}
	}
	return interval.NewInterval(lo, hi)
}

// envelopeScalar is ReachablePolygon's bounding box, guarding against an
// empty entry/exit/v (treating an empty boundary as "no information"
// rather than letting IsEmpty's NaN bounds poison the min/max scan).
func envelopeScalar(ts *TSlice, entry, exit, v, box interval.Interval) interval.Interval {
	if v.IsEmpty() || box.IsEmpty() {
		return interval.Empty()
	}
	if entry.IsEmpty() {
		entry = interval.Whole()
	}
	if exit.IsEmpty() {
		exit = interval.Whole()
	}
	return boundingBox(ReachablePolygon(ts, entry, exit, v, box))
}

// envelopeBoxD narrows a slice's codomain to the reachable-set envelope
// bounding box given its entry and exit boundary values and the
// derivative's enclosure over the slice, per spec.md §4.3. box is folded
// into ReachablePolygon's candidate lines as an additional a priori
// clamp — CtcDeriv always passes Whole() here, relying on its own
// monotonicity handling instead (see ctc_deriv.go). Generalizes
// ReachablePolygon (scalar) to IntervalVector componentwise, mirroring
// hullD/interD's type-switch dispatch.
func envelopeBoxD[T Domain](ts *TSlice, entry, exit, v, box T) T {
	switch bv := any(box).(type) {
	case interval.Interval:
		return any(envelopeScalar(ts, any(entry).(interval.Interval), any(exit).(interval.Interval), any(v).(interval.Interval), bv)).(T)
	case interval.IntervalVector:
		ev := any(entry).(interval.IntervalVector)
		xv := any(exit).(interval.IntervalVector)
		vv := any(v).(interval.IntervalVector)
		comps := make([]interval.Interval, bv.Size())
		for i := range comps {
			comps[i] = envelopeScalar(ts, ev.At(i), xv.At(i), vv.At(i), bv.At(i))
		}
		return any(interval.NewIntervalVector(comps...)).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// dedupCollinear drops consecutive points that lie on the same straight
// segment as their neighbors, keeping the polygon close to minimal.
func dedupCollinear(pts []Point2D) []Point2D {
	if len(pts) < 3 {
		return pts
	}
	out := make([]Point2D, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		a, b, c := out[len(out)-1], pts[i], pts[i+1]
		cross := (b.T-a.T)*(c.X-a.X) - (b.X-a.X)*(c.T-a.T)
		if math.Abs(cross) > 1e-12 {
			out = append(out, b)
		}
	}
	out = append(out, pts[len(pts)-1])
	return out
}
