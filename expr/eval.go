package expr

import "github.com/damien-masse/codac-sub002/interval"

// EvalMode selects which interval-evaluation strategy AnalyticFunction.Eval
// uses, per spec.md §4.1. The two bits can be combined: DEFAULT tries
// CENTERED first (tighter when it is available and the argument box is
// already fairly narrow) and falls back to NATURAL, since the centered
// form requires every node on the path to the root to carry a first-order
// model (see Operator.LocalJacobians).
type EvalMode uint8

const (
	// NATURAL forces the forward, bottom-up interval evaluation.
	NATURAL EvalMode = 1 << iota
	// CENTERED forces first-order (mean-value) evaluation and panics if a
	// node lacks a usable Jacobian anywhere on the path to the root.
	CENTERED
	// DEFAULT tries CENTERED then falls back to NATURAL, per spec.md §4.1.
	DEFAULT = NATURAL | CENTERED
)

// evalNode evaluates root under mode, given already-bound vars and the
// same arguments' concatenation flatInput (in the Jacobian's column
// order — see function.go's bindArgs), returning the natural hull,
// intersected with the centered form when mode uses it.
// A fresh cache is used per call so a shared sub-DAG is visited once
// (spec.md §4.1's structural-sharing rule).
func evalNode(root *Node, vars ValuesMap, flatInput interval.IntervalVector, mode EvalMode, n int) Value {
	cache := make(map[uint64]valuation, 16)
	v := root.fwdEval(vars, cache, n)

	if mode == CENTERED && !v.centeredAvailable() {
		panic("expr: CENTERED evaluation requested but no first-order model is available for this expression")
	}
	useCentered := mode&CENTERED != 0 && v.centeredAvailable()
	if !useCentered {
		return v.a
	}

	centered := v.centeredValue(root.kind, root.rows, root.cols, flatInput)
	// Intersecting with the natural hull keeps the centered result at
	// least as tight as (never wider than) the forward evaluation.
	return intersectValue(v.a, centered)
}
