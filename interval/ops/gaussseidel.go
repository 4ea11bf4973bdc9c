package ops

import (
	"fmt"

	"github.com/damien-masse/codac-sub002/interval"
)

// ErrDimensionMismatch signals incompatible shapes between the system
// matrix, right-hand side, and the box being narrowed.
var ErrDimensionMismatch = fmt.Errorf("ops: dimension mismatch")

// GaussSeidel narrows x (an enclosure of the solution set) of the square
// interval linear system a*x = b by interval Gauss-Seidel iteration (no
// preconditioning), per spec.md §4.2's CtcInverse centered-form step. It
// mutates nothing; it returns the narrowed box.
//
// Stage 1 (Validate): a must be square and match b, x in size.
// Stage 2 (Order): pick the order in which rows are visited from the real
// (midpoint) matrix via Doolittle LU with partial pivoting (matrix/ops/lu.go
// style); row i is still solved for x_i through its diagonal entry.
// Stage 3 (Iterate): for each row, solve for x_k using the other
// components' current enclosure, contracting via division; intersect
// with the existing enclosure.
// Stage 4 (Repeat): sweep forward then backward, once per call (callers
// wrap repeated sweeps with a fixed-point driver, per CtcFixpoint).
func GaussSeidel(a interval.IntervalMatrix, b interval.IntervalVector, x interval.IntervalVector) (interval.IntervalVector, error) {
	n := a.Rows()
	if a.Cols() != n {
		return x, fmt.Errorf("GaussSeidel: %w", interval.ErrNonSquare)
	}
	if b.Size() != n || x.Size() != n {
		return x, fmt.Errorf("GaussSeidel: %w", ErrDimensionMismatch)
	}
	if x.IsEmpty() {
		return x, nil
	}

	perm, err := midpointPivotOrder(a.Mid(), n)
	if err != nil {
		// Singular midpoint: fall back to declared row order, still sound
		// (just possibly slower to converge), rather than failing.
		perm = make([]int, n)
		for i := range perm {
			perm[i] = i
		}
	}

	out := x.Clone()

	sweep := func(order []int) bool {
		changed := false
		for _, i := range order {
			aii := a.At(i, i)
			if aii.Contains(0) && !aii.IsDegenerate() {
				continue // cannot divide soundly; skip this equation
			}
			sum := b.At(i)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				sum = sum.Sub(a.At(i, j).Mul(out.At(j)))
			}
			candidate := sum.Div(aii)
			narrowed := out.At(i).Inter(candidate)
			if narrowed.IsEmpty() {
				out = out.Set(i, narrowed)
				return true
			}
			if narrowed.Diam() < out.At(i).Diam() {
				changed = true
			}
			out = out.Set(i, narrowed)
		}
		return changed
	}

	sweep(perm)
	if out.IsEmpty() {
		return out, nil
	}
	rev := make([]int, n)
	for i, p := range perm {
		rev[n-1-i] = p
	}
	sweep(rev)

	return out, nil
}
