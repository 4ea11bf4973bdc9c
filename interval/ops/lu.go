package ops

import (
	"fmt"
	"math"
)

// ErrSingular is returned when the midpoint matrix has no usable pivot.
var ErrSingular = fmt.Errorf("ops: singular midpoint matrix")

// midpointPivotOrder performs a partial-pivoting Doolittle LU decomposition
// of the real (midpoint) n×n matrix a (row-major), following the staged
// structure of the teacher's matrix/ops/lu.go, but tracking the row
// permutation so GaussSeidel can visit equations in a well-conditioned
// order instead of declared order. Returns the permutation perm such that
// perm[i] is the original row assigned to pivot position i.
func midpointPivotOrder(a []float64, n int) ([]int, error) {
	// Stage 1: copy into a scratch buffer we can eliminate in place.
	scratch := make([]float64, len(a))
	copy(scratch, a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	at := func(i, j int) float64 { return scratch[i*n+j] }
	set := func(i, j int, v float64) { scratch[i*n+j] = v }

	// Stage 2: eliminate column by column with partial pivoting.
	for k := 0; k < n; k++ {
		// Find the largest-magnitude entry in column k at or below row k.
		best, bestRow := math.Abs(at(k, k)), k
		for i := k + 1; i < n; i++ {
			if v := math.Abs(at(i, k)); v > best {
				best, bestRow = v, i
			}
		}
		if best == 0 {
			return nil, ErrSingular
		}
		if bestRow != k {
			for j := 0; j < n; j++ {
				scratch[k*n+j], scratch[bestRow*n+j] = scratch[bestRow*n+j], scratch[k*n+j]
			}
			perm[k], perm[bestRow] = perm[bestRow], perm[k]
		}
		// Eliminate below the pivot.
		for i := k + 1; i < n; i++ {
			factor := at(i, k) / at(k, k)
			for j := k; j < n; j++ {
				set(i, j, at(i, j)-factor*at(k, j))
			}
		}
	}
	return perm, nil
}
