package expr

import "github.com/damien-masse/codac-sub002/interval"

// Operator is the per-node forward/backward/diff-contribution contract
// every operator application implements, per spec.md §9's design note
// ("in a language with dynamic dispatch, a trait object per node
// suffices"). Node wraps one Operator per non-leaf node; see op_*.go for
// concrete implementations (one family per file, mirroring the teacher's
// builder/impl_*.go one-file-per-shape convention).
type Operator interface {
	// Name returns the operator's symbolic name, used by Node.String().
	Name() string

	// OutShape computes this operator's output (rows,cols) from its
	// children's shapes.
	OutShape(childShapes [][2]int) (rows, cols int)

	// Forward computes the natural-form hull from the children's natural
	// hulls, and reports whether every input stayed within this
	// operator's definition domain.
	Forward(children []Value) (Value, bool)

	// ForwardMid computes the real (midpoint) result, flattened, from the
	// children's flattened midpoints — used to seed the centered form.
	ForwardMid(childrenMid [][]float64, childShapes [][2]int) []float64

	// LocalJacobians returns, per child, the partial derivative of this
	// node's flattened output w.r.t. that child's flattened value,
	// evaluated (soundly, as an interval enclosure) over the children's
	// current natural hulls. Returns nil if this operator has no
	// first-order model (e.g. floor/ceil/sign/chi), which makes the
	// centered form unavailable for this node and everything above it.
	LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix

	// Backward narrows each child's current hull given a tightened
	// enclosure y of this node's output, per spec.md §4.1's "Backward
	// (contracting) evaluation".
	Backward(y Value, children []Value) []Value
}

// Node is an immutable DAG node: a variable reference, a constant, or an
// operator application over child nodes, per spec.md §3. Cycles are
// impossible since operators only ever consume already-built *Node values.
type Node struct {
	id       uint64
	kind     ValueKind
	rows     int
	cols     int
	variable *Variable
	constant Value
	op       Operator
	children []*Node
}

// ID returns the node's process-wide unique id.
func (nd *Node) ID() uint64 { return nd.id }

// Kind returns the node's result ValueKind.
func (nd *Node) Kind() ValueKind { return nd.kind }

// Args returns the node's children (empty for a leaf).
func (nd *Node) Args() []*Node { return nd.children }

// IsLeaf reports whether nd is a variable or constant.
func (nd *Node) IsLeaf() bool { return nd.op == nil }

// IsVariable reports whether nd is a variable reference.
func (nd *Node) IsVariable() bool { return nd.variable != nil }

func (nd *Node) String() string {
	switch {
	case nd.variable != nil:
		return nd.variable.String()
	case nd.op != nil:
		return nd.op.Name()
	default:
		return "const"
	}
}

// constNode builds a leaf constant node wrapping v.
func constNode(v Value) *Node {
	r, c := valueShape(v)
	return &Node{id: newID(), kind: kindOf(v), rows: r, cols: c, constant: v}
}

// Const wraps a fixed Value (Interval, IntervalVector, or IntervalMatrix)
// as a leaf constant node, for use as an operator operand.
func Const(v Value) *Node { return constNode(v) }

func kindOf(v Value) ValueKind {
	switch v.(type) {
	case interval.Interval:
		return KindScalar
	case interval.IntervalVector:
		return KindVector
	default:
		return KindMatrix
	}
}

// opNode builds an operator-application node over children.
func opNode(op Operator, children ...*Node) *Node {
	shapes := make([][2]int, len(children))
	for i, c := range children {
		shapes[i] = [2]int{c.rows, c.cols}
	}
	rows, cols := op.OutShape(shapes)
	kind := KindMatrix
	switch {
	case rows == 1 && cols == 1:
		kind = KindScalar
	case cols == 1:
		kind = KindVector
	}
	return &Node{id: newID(), kind: kind, rows: rows, cols: cols, op: op, children: children}
}

// ValuesMap binds variable ids to their currently-assigned valuation
// during one AnalyticFunction evaluation call, per spec.md §4.1 /
// codac2_AnalyticFunction_impl.h's ValuesMap.
type ValuesMap map[uint64]valuation

// fwdEval recursively evaluates nd bottom-up, memoizing per node id in
// cache so a shared sub-DAG is evaluated once per top-level call
// (spec.md §4.1 "structural sharing is intentional and must not cause
// double evaluation"). n is the total flattened input size (Jacobian
// width); vars binds each Variable's unique id to its argument valuation.
func (nd *Node) fwdEval(vars ValuesMap, cache map[uint64]valuation, n int) valuation {
	if v, ok := cache[nd.id]; ok {
		return v
	}

	var result valuation
	switch {
	case nd.variable != nil:
		v, ok := vars[nd.variable.id]
		if !ok {
			panic("expr: variable not bound in ValuesMap: " + nd.variable.String())
		}
		result = v

	case nd.constant != nil:
		size := valueSize(nd.constant)
		da := zeroJacobian(size, n)
		result = valuation{
			a:         nd.constant,
			m:         flattenMid(nd.constant),
			da:        &da,
			defDomain: true,
		}

	default:
		childVals := make([]valuation, len(nd.children))
		childA := make([]Value, len(nd.children))
		childMid := make([][]float64, len(nd.children))
		childDas := make([]*interval.IntervalMatrix, len(nd.children))
		defDomain := true
		for i, c := range nd.children {
			cv := c.fwdEval(vars, cache, n)
			childVals[i] = cv
			childA[i] = cv.a
			childMid[i] = cv.m
			childDas[i] = cv.da
			if !cv.defDomain {
				defDomain = false
			}
		}

		a, ok := nd.op.Forward(childA)
		defDomain = defDomain && ok

		outSize := nd.rows * nd.cols
		mFlat := nd.op.ForwardMid(childMid, shapesOf(nd.children))

		var da *interval.IntervalMatrix
		if defDomain {
			localJacs := nd.op.LocalJacobians(childA, nd.rows, nd.cols)
			if localJacs != nil {
				da = composeJacobian(outSize, localJacs, childDas)
			}
		}

		result = valuation{a: a, m: mFlat, da: da, defDomain: defDomain}
	}

	cache[nd.id] = result
	return result
}

func shapesOf(children []*Node) [][2]int {
	shapes := make([][2]int, len(children))
	for i, c := range children {
		shapes[i] = [2]int{c.rows, c.cols}
	}
	return shapes
}
