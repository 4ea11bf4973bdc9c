// Package codac implements constraint propagation over interval domains:
// an Analytic Expression Graph for sound interval/centered-form evaluation
// and DAG backward contraction, a Contractor/Separator Algebra for
// composing narrowing operators, a Generic Paver for set inversion via
// bisection, and a Sliced Tube System for time-indexed interval-valued
// trajectories coupled to their derivatives.
//
// The library is organized under:
//
//	interval/   — outward-rounded interval, vector, and matrix arithmetic
//	expr/       — Analytic Expression Graph (AnalyticFunction, operators)
//	contractor/ — Contractor/Separator Algebra (CtcInverse, SepInverse, ...)
//	paver/      — Pave/PaveSeparator/Sivia set inversion
//	tube/       — Sliced Tube System (SlicedTube, CtcDeriv, CtcEval, ...)
//	trajectory/ — crisp time-indexed values (SampledTrajectory, AnalyticTrajectory)
package codac
