package expr

import "errors"

// Sentinel errors for the expr package. Per spec.md §7, wrong arity / nil
// expression / negative size are programmer errors and fail fast via
// panic: AnalyticFunction's Eval, RealEval, Diff and Backward panic with
// an error wrapping one of these sentinels when their arguments do not
// match the declared variable list, while operator constructors panic
// with a plain message on incompatible operand shapes.
var (
	// ErrKindMismatch indicates an argument whose ValueKind or size does
	// not match the corresponding declared variable.
	ErrKindMismatch = errors.New("expr: value kind mismatch")

	// ErrArityMismatch indicates a Function was evaluated with a different
	// number of arguments than its declared variable list.
	ErrArityMismatch = errors.New("expr: wrong number of input arguments")
)
