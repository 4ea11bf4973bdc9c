// Package ops provides interval linear-algebra routines built on top of
// the interval package: pivot selection via a real (midpoint) LU
// decomposition, and the interval Gauss-Seidel iteration spec.md §4.2
// requires for CtcInverse's centered-form narrowing step
// ("solve the linear interval system J·Δ ⊆ (y ∩ a) − m with an interval
// Gauss–Seidel").
package ops
