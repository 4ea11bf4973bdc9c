package contractor

import "github.com/damien-masse/codac-sub002/interval"

// CtcProj builds the existential-projection Contractor dual of SepProj:
// it keeps s's "in" half after quantifying the y block out of x.
func CtcProj(s Separator, yDomain interval.IntervalVector, eps float64) Contractor {
	return InnerContractor(SepProj(s, yDomain, eps))
}
