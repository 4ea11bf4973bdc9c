package contractor

import "github.com/damien-masse/codac-sub002/interval"

// BoundaryClassifier pairs a Contractor that proves a box lies wholly in
// a set's interior neighborhood with a cheap, user-supplied point-in-set
// test, letting a paver resolve a small undecided box into an inside or
// outside leaf once bisection alone can no longer separate it from the
// boundary.
type BoundaryClassifier struct {
	Interior Contractor
	Tester   func(pt []float64) bool
}

// Resolved reports whether x has been proven to lie in Interior's
// confined neighborhood (so Tester's verdict on x's midpoint can be
// trusted as the label for the whole box).
func (b BoundaryClassifier) Resolved(x interval.IntervalVector) bool {
	return !b.Interior.Contract(x).IsEmpty()
}

// Classify reports the inside/outside verdict for a box already proven
// Resolved.
func (b BoundaryClassifier) Classify(x interval.IntervalVector) bool {
	return b.Tester(x.Mid())
}
