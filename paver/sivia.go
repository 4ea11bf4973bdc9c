package paver

import (
	"github.com/damien-masse/codac-sub002/contractor"
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// Sivia is shorthand for PaveSeparator driven by contractor.SepInverse(f, y),
// per spec.md §4.2's sivia(x0, f, y, eps).
func Sivia(x0 interval.IntervalVector, f *expr.AnalyticFunction, y expr.Value, eps float64, opts ...Option) (*Paving, error) {
	return PaveSeparator(x0, contractor.SepInverse(f, y), eps, opts...)
}
