package contractor

import (
	"github.com/damien-masse/codac-sub002/interval"
	"github.com/damien-masse/codac-sub002/interval/ops"
)

// CtcLinearInterval builds the Contractor for the linear system a*x = b,
// narrowing x by one forward/backward Gauss-Seidel sweep. Wrap it with
// CtcFixpoint for repeated sweeps until convergence. Panics if a is not
// square or its size disagrees with b (programmer error).
func CtcLinearInterval(a interval.IntervalMatrix, b interval.IntervalVector) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		narrowed, err := ops.GaussSeidel(a, b, x)
		if err != nil {
			panic(err)
		}
		return narrowed
	})
}
