package expr

import "fmt"

// Variable is a leaf of the expression DAG: a globally unique id plus a
// declared arity, per spec.md §3. ScalarVar/VectorVar/MatrixVar are the
// only constructors; Variable itself carries no mutable state after
// construction (immutable, per spec.md §4.1 "Construction").
type Variable struct {
	id   uint64
	kind ValueKind
	rows int // vector length, or matrix rows
	cols int // 1 for scalar/vector, matrix cols otherwise
	name string
}

// ID returns the variable's process-wide unique id.
func (v *Variable) ID() uint64 { return v.id }

// Kind returns the variable's declared ValueKind.
func (v *Variable) Kind() ValueKind { return v.kind }

// Size returns the flattened size of the variable (rows*cols).
func (v *Variable) Size() int { return v.rows * v.cols }

// Rows returns the declared row count (vector length for vectors).
func (v *Variable) Rows() int { return v.rows }

// Cols returns the declared column count (1 for scalar/vector).
func (v *Variable) Cols() int { return v.cols }

// Name returns the variable's display name, used by String().
func (v *Variable) Name() string { return v.name }

func (v *Variable) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("var#%d", v.id)
}

// asNode wraps the variable as a leaf expression Node.
func (v *Variable) asNode() *Node {
	return &Node{id: newID(), kind: v.kind, rows: v.rows, cols: v.cols, variable: v}
}

// AsNode wraps v as a leaf expression Node, for use as an operator operand.
func (v *Variable) AsNode() *Node { return v.asNode() }

// ScalarVar declares a new scalar variable, e.g. for use as an
// AnalyticFunction argument.
func ScalarVar(name string) *Variable {
	return &Variable{id: newID(), kind: KindScalar, rows: 1, cols: 1, name: name}
}

// VectorVar declares a new vector variable of dimension n (n > 0).
func VectorVar(name string, n int) *Variable {
	if n <= 0 {
		panic("expr: VectorVar: non-positive dimension")
	}
	return &Variable{id: newID(), kind: KindVector, rows: n, cols: 1, name: name}
}

// MatrixVar declares a new matrix variable of shape r×c (r,c > 0).
func MatrixVar(name string, r, c int) *Variable {
	if r <= 0 || c <= 0 {
		panic("expr: MatrixVar: non-positive dimension")
	}
	return &Variable{id: newID(), kind: KindMatrix, rows: r, cols: c, name: name}
}
