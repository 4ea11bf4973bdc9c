package contractor

import (
	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// CtcPolar builds the Contractor coupling Cartesian and polar coordinates:
// over a 4-vector box (rho, theta, x, y), it enforces x = rho*cos(theta)
// and y = rho*sin(theta) by wrapping the residual as an AnalyticFunction
// and inverting it against {0}, reusing CtcInverse's DAG backward pass
// rather than a hand-rolled polar/Cartesian narrowing rule.
func CtcPolar() Contractor {
	rho := expr.ScalarVar("rho")
	theta := expr.ScalarVar("theta")
	x := expr.ScalarVar("x")
	y := expr.ScalarVar("y")

	xResidual := expr.Sub(x.AsNode(), expr.Mul(rho.AsNode(), expr.Cos(theta.AsNode())))
	yResidual := expr.Sub(y.AsNode(), expr.Mul(rho.AsNode(), expr.Sin(theta.AsNode())))
	root := expr.Vec(xResidual, yResidual)

	f := expr.NewFunction([]*expr.Variable{rho, theta, x, y}, root)
	zero := interval.ConstantVector(2, interval.Zero())
	inner := CtcInverse(f, zero)

	return ContractorFunc(func(box interval.IntervalVector) interval.IntervalVector {
		return inner.Contract(box)
	})
}
