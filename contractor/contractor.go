package contractor

import "github.com/damien-masse/codac-sub002/interval"

// Contractor narrows a box to a (possibly much smaller) sub-box that still
// contains every point of the box consistent with the contractor's
// constraint. A sound Contractor never removes a point that satisfies the
// constraint; it may return interval.IntervalVector values with an Empty()
// component when the whole box is proven infeasible.
type Contractor interface {
	Contract(x interval.IntervalVector) interval.IntervalVector
}

// ContractorFunc adapts a plain function to the Contractor interface.
type ContractorFunc func(interval.IntervalVector) interval.IntervalVector

// Contract calls f(x).
func (f ContractorFunc) Contract(x interval.IntervalVector) interval.IntervalVector { return f(x) }
