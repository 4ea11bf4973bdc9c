package expr

import (
	"fmt"

	"github.com/damien-masse/codac-sub002/interval"
)

// AnalyticFunction is a named, ordered list of input Variables plus a root
// expression Node, the unit of evaluation and differentiation exposed to
// callers (spec.md §6 "Function"). Construction only checks that the
// argument list is non-empty and the root is non-nil; Eval/Diff validate
// arity.
type AnalyticFunction struct {
	args []*Variable
	root *Node
}

// NewFunction builds a function over the given ordered arguments and
// root expression. Panics if args is empty or root is nil (programmer
// error, per spec.md §7).
func NewFunction(args []*Variable, root *Node) *AnalyticFunction {
	if len(args) == 0 {
		panic("expr: NewFunction: at least one argument is required")
	}
	if root == nil {
		panic("expr: NewFunction: nil root expression")
	}
	return &AnalyticFunction{args: args, root: root}
}

// Args returns the function's ordered argument list.
func (f *AnalyticFunction) Args() []*Variable { return f.args }

// OutKind returns the ValueKind of the function's result.
func (f *AnalyticFunction) OutKind() ValueKind { return f.root.Kind() }

// InputSize returns the total flattened width of the argument list (the
// Jacobian's column count).
func (f *AnalyticFunction) InputSize() int {
	n := 0
	for _, a := range f.args {
		n += a.Size()
	}
	return n
}

// bindArgs validates arity/shape of vals against f.args, and returns both
// the ValuesMap fwdEval needs and the flattened concatenation of vals in
// argument order (the centered form's input axis).
func (f *AnalyticFunction) bindArgs(vals []Value) (ValuesMap, interval.IntervalVector, error) {
	if len(vals) != len(f.args) {
		return nil, interval.IntervalVector{}, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(vals), len(f.args))
	}
	vars := make(ValuesMap, len(f.args))
	n := f.InputSize()
	flat := make([]interval.Interval, 0, n)
	offset := 0
	for i, a := range f.args {
		v := vals[i]
		if kindOf(v) != a.Kind() || valueSize(v) != a.Size() {
			return nil, interval.IntervalVector{}, fmt.Errorf("%w: argument %d (%s): expected %s of size %d", ErrKindMismatch, i, a.String(), a.Kind(), a.Size())
		}
		da := leafJacobian(a.Size(), offset, n)
		vars[a.id] = valuation{a: v, m: flattenMid(v), da: &da, defDomain: true}
		flat = append(flat, flatten(v).Components()...)
		offset += a.Size()
	}
	return vars, interval.NewIntervalVector(flat...), nil
}

// Eval evaluates f at vals using the given EvalMode, returning an
// outward-rounded enclosure of the result: the natural hull, intersected
// with the centered form when mode includes CENTERED and a first-order
// model is available. Panics on arity/kind
// mismatch (programmer error, per spec.md §7) and on CENTERED mode when
// no first-order model is available.
func (f *AnalyticFunction) Eval(mode EvalMode, vals ...Value) Value {
	vars, flat, err := f.bindArgs(vals)
	if err != nil {
		panic(err)
	}
	return evalNode(f.root, vars, flat, mode, f.InputSize())
}

// RealEval evaluates f at the midpoint of vals, returning a flattened
// real-valued result (spec.md §6's "point evaluation" convenience, used
// e.g. to seed numerical integrators or to sanity-check a contraction).
func (f *AnalyticFunction) RealEval(vals ...Value) []float64 {
	vars, _, err := f.bindArgs(vals)
	if err != nil {
		panic(err)
	}
	cache := make(map[uint64]valuation, 16)
	v := f.root.fwdEval(vars, cache, f.InputSize())
	return v.m
}

// Diff evaluates f's Jacobian at vals (CENTERED semantics only — the
// natural form carries no derivative). Panics if no first-order model is
// available anywhere in the DAG for this argument box.
func (f *AnalyticFunction) Diff(vals ...Value) interval.IntervalMatrix {
	vars, _, err := f.bindArgs(vals)
	if err != nil {
		panic(err)
	}
	cache := make(map[uint64]valuation, 16)
	v := f.root.fwdEval(vars, cache, f.InputSize())
	if !v.centeredAvailable() {
		panic("expr: Diff: no first-order model available for this expression/argument box")
	}
	return *v.da
}

// Backward contracts vals given a tightened enclosure y of f's output,
// per spec.md §4.1's DAG-level backward pass (see backward.go), returning
// the narrowed arguments in the same order as f.Args(). It never widens
// an input and never discards a real solution.
func (f *AnalyticFunction) Backward(y Value, vals ...Value) []Value {
	vars, _, err := f.bindArgs(vals)
	if err != nil {
		panic(err)
	}
	return backwardPass(f.root, f.args, vars, y)
}
