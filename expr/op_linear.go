package expr

import "github.com/damien-masse/codac-sub002/interval"

// componentOp extracts a single scalar from a vector at a fixed index.
type componentOp struct {
	i int
}

func (c componentOp) Name() string                       { return "component" }
func (c componentOp) OutShape(shapes [][2]int) (int, int) { return 1, 1 }

func (c componentOp) Forward(children []Value) (Value, bool) {
	v := asVector(children[0])
	return v.At(c.i), true
}

func (c componentOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	return []float64{mids[0][c.i]}
}

func (c componentOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := valueSize(children[0])
	m := interval.NewIntervalMatrix(1, n)
	m = m.Set(0, c.i, interval.Degenerate(1))
	return []interval.IntervalMatrix{m}
}

func (c componentOp) Backward(y Value, children []Value) []Value {
	v := asVector(children[0])
	narrowed := v.Set(c.i, v.At(c.i).Inter(asScalar(y)))
	return []Value{narrowed}
}

// Component extracts the i-th scalar component of vector v.
func Component(v *Node, i int) *Node { return opNode(componentOp{i: i}, v) }

// matComponentOp extracts a single scalar from a matrix at (i,j).
type matComponentOp struct {
	i, j int
}

func (c matComponentOp) Name() string                       { return "mat_component" }
func (c matComponentOp) OutShape(shapes [][2]int) (int, int) { return 1, 1 }

func (c matComponentOp) Forward(children []Value) (Value, bool) {
	m := asMatrix(children[0])
	return m.At(c.i, c.j), true
}

func (c matComponentOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	cols := shapes[0][1]
	return []float64{mids[0][c.i*cols+c.j]}
}

func (c matComponentOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	_, cols := valueShape(children[0])
	n := valueSize(children[0])
	m := interval.NewIntervalMatrix(1, n)
	m = m.Set(0, c.i*cols+c.j, interval.Degenerate(1))
	return []interval.IntervalMatrix{m}
}

func (c matComponentOp) Backward(y Value, children []Value) []Value {
	mtx := asMatrix(children[0])
	narrowed := mtx.Set(c.i, c.j, mtx.At(c.i, c.j).Inter(asScalar(y)))
	return []Value{narrowed}
}

// MatComponent extracts the (i,j) scalar entry of matrix m.
func MatComponent(m *Node, i, j int) *Node { return opNode(matComponentOp{i: i, j: j}, m) }

// subvectorOp extracts components [lo,hi] of a vector.
type subvectorOp struct {
	lo, hi int
}

func (s subvectorOp) Name() string                       { return "subvector" }
func (s subvectorOp) OutShape(shapes [][2]int) (int, int) { return s.hi - s.lo + 1, 1 }

func (s subvectorOp) Forward(children []Value) (Value, bool) {
	v := asVector(children[0])
	return v.Subvector(s.lo, s.hi), true
}

func (s subvectorOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	return append([]float64(nil), mids[0][s.lo:s.hi+1]...)
}

func (s subvectorOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := valueSize(children[0])
	m := interval.NewIntervalMatrix(outRows, n)
	for k := 0; k < outRows; k++ {
		m = m.Set(k, s.lo+k, interval.Degenerate(1))
	}
	return []interval.IntervalMatrix{m}
}

func (s subvectorOp) Backward(y Value, children []Value) []Value {
	v := asVector(children[0])
	yv := asVector(y)
	for k := s.lo; k <= s.hi; k++ {
		v = v.Set(k, v.At(k).Inter(yv.At(k-s.lo)))
	}
	return []Value{v}
}

// Subvector extracts components [lo,hi] (inclusive) of vector v.
func Subvector(v *Node, lo, hi int) *Node { return opNode(subvectorOp{lo: lo, hi: hi}, v) }

// vecOp assembles n scalar children into a vector.
type vecOp struct{}

func (vecOp) Name() string                       { return "vec" }
func (vecOp) OutShape(shapes [][2]int) (int, int) { return len(shapes), 1 }

func (vecOp) Forward(children []Value) (Value, bool) {
	out := make([]interval.Interval, len(children))
	for i, c := range children {
		out[i] = asScalar(c)
	}
	return interval.NewIntervalVector(out...), true
}

func (vecOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids))
	for i, m := range mids {
		out[i] = m[0]
	}
	return out
}

func (vecOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	jacs := make([]interval.IntervalMatrix, len(children))
	for i := range children {
		m := interval.NewIntervalMatrix(outRows, 1)
		m = m.Set(i, 0, interval.Degenerate(1))
		jacs[i] = m
	}
	return jacs
}

func (vecOp) Backward(y Value, children []Value) []Value {
	yv := asVector(y)
	out := make([]Value, len(children))
	for i, c := range children {
		out[i] = asScalar(c).Inter(yv.At(i))
	}
	return out
}

// Vec assembles its scalar arguments into a vector, in order.
func Vec(scalars ...*Node) *Node { return opNode(vecOp{}, scalars...) }

// matOp assembles rows*cols scalar children (row-major) into a matrix.
type matOp struct {
	rows, cols int
}

func (m matOp) Name() string                       { return "mat" }
func (m matOp) OutShape(shapes [][2]int) (int, int) { return m.rows, m.cols }

func (m matOp) Forward(children []Value) (Value, bool) {
	out := interval.NewIntervalMatrix(m.rows, m.cols)
	idx := 0
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out = out.Set(i, j, asScalar(children[idx]))
			idx++
		}
	}
	return out, true
}

func (m matOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, len(mids))
	for i, v := range mids {
		out[i] = v[0]
	}
	return out
}

func (m matOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := outRows * outCols
	jacs := make([]interval.IntervalMatrix, len(children))
	for i := range children {
		jm := interval.NewIntervalMatrix(n, 1)
		jm = jm.Set(i, 0, interval.Degenerate(1))
		jacs[i] = jm
	}
	return jacs
}

func (m matOp) Backward(y Value, children []Value) []Value {
	ym := asMatrix(y)
	out := make([]Value, len(children))
	idx := 0
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[idx] = asScalar(children[idx]).Inter(ym.At(i, j))
			idx++
		}
	}
	return out
}

// Mat assembles rows*cols scalar arguments (given row-major) into a matrix.
func Mat(rows, cols int, entries ...*Node) *Node {
	if len(entries) != rows*cols {
		panic("expr: Mat: entries count does not match rows*cols")
	}
	return opNode(matOp{rows: rows, cols: cols}, entries...)
}

// transposeOp implements matrix transpose.
type transposeOp struct{}

func (transposeOp) Name() string                       { return "transpose" }
func (transposeOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][1], shapes[0][0] }

func (transposeOp) Forward(children []Value) (Value, bool) {
	return asMatrix(children[0]).Transpose(), true
}

func (transposeOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	rows, cols := shapes[0][0], shapes[0][1]
	out := make([]float64, len(mids[0]))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = mids[0][i*cols+j]
		}
	}
	return out
}

func (transposeOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := outRows * outCols
	m := interval.NewIntervalMatrix(n, n)
	for i := 0; i < outRows; i++ {
		for j := 0; j < outCols; j++ {
			m = m.Set(i*outCols+j, j*outRows+i, interval.Degenerate(1))
		}
	}
	return []interval.IntervalMatrix{m}
}

func (transposeOp) Backward(y Value, children []Value) []Value {
	return []Value{intersectValue(children[0], asMatrix(y).Transpose())}
}

// Transpose returns mᵀ.
func Transpose(m *Node) *Node { return opNode(transposeOp{}, m) }

// flattenOp lowers a matrix to a row-major vector.
type flattenOp struct{}

func (flattenOp) Name() string                       { return "flatten" }
func (flattenOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0] * shapes[0][1], 1 }

func (flattenOp) Forward(children []Value) (Value, bool) {
	return flatten(children[0]), true
}

func (flattenOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	return append([]float64(nil), mids[0]...)
}

func (flattenOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n := outRows
	m := interval.NewIntervalMatrix(n, n)
	for i := 0; i < n; i++ {
		m = m.Set(i, i, interval.Degenerate(1))
	}
	return []interval.IntervalMatrix{m}
}

func (flattenOp) Backward(y Value, children []Value) []Value {
	r, c := valueShape(children[0])
	return []Value{intersectValue(children[0], unflatten(kindOf(children[0]), r, c, asVector(y)))}
}

// Flatten lowers matrix m to a row-major vector.
func Flatten(m *Node) *Node { return opNode(flattenOp{}, m) }

// extendOp concatenates two vectors.
type extendOp struct{}

func (extendOp) Name() string                       { return "extend" }
func (extendOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0] + shapes[1][0], 1 }

func (extendOp) Forward(children []Value) (Value, bool) {
	return asVector(children[0]).Extend(asVector(children[1])), true
}

func (extendOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	out := make([]float64, 0, len(mids[0])+len(mids[1]))
	out = append(out, mids[0]...)
	out = append(out, mids[1]...)
	return out
}

func (extendOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	n0, n1 := valueSize(children[0]), valueSize(children[1])
	j0 := interval.NewIntervalMatrix(outRows, n0)
	j1 := interval.NewIntervalMatrix(outRows, n1)
	for i := 0; i < n0; i++ {
		j0 = j0.Set(i, i, interval.Degenerate(1))
	}
	for i := 0; i < n1; i++ {
		j1 = j1.Set(n0+i, i, interval.Degenerate(1))
	}
	return []interval.IntervalMatrix{j0, j1}
}

func (extendOp) Backward(y Value, children []Value) []Value {
	yv := asVector(y)
	n0 := valueSize(children[0])
	v0 := asVector(children[0]).Inter(yv.Subvector(0, n0-1))
	v1 := asVector(children[1]).Inter(yv.Subvector(n0, yv.Size()-1))
	return []Value{v0, v1}
}

// Extend concatenates a then b into one vector.
func Extend(a, b *Node) *Node { return opNode(extendOp{}, a, b) }

// matVecMulOp implements matrix-vector multiplication.
type matVecMulOp struct{}

func (matVecMulOp) Name() string                       { return "mat_vec_mul" }
func (matVecMulOp) OutShape(shapes [][2]int) (int, int) { return shapes[0][0], 1 }

func (matVecMulOp) Forward(children []Value) (Value, bool) {
	m, v := asMatrix(children[0]), asVector(children[1])
	return m.MulVector(v), true
}

func (matVecMulOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	rows, cols := shapes[0][0], shapes[0][1]
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += mids[0][i*cols+j] * mids[1][j]
		}
		out[i] = sum
	}
	return out
}

func (matVecMulOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	m, v := asMatrix(children[0]), asVector(children[1])
	rows, cols := m.Rows(), m.Cols()

	// d(out)/d(flatten(M)): out_i depends on row i of M only.
	jm := interval.NewIntervalMatrix(rows, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			jm = jm.Set(i, i*cols+j, v.At(j))
		}
	}
	// d(out)/d(v) = M itself.
	jv := m.Clone()
	return []interval.IntervalMatrix{jm, jv}
}

func (matVecMulOp) Backward(y Value, children []Value) []Value {
	// No general sound narrowing implemented for matrix-vector multiply
	// beyond the no-op; interval Gauss-Seidel (interval/ops package) covers
	// the linear-system case this operator does not attempt to invert.
	return []Value{children[0], children[1]}
}

// MatVecMul returns m*v.
func MatVecMul(m, v *Node) *Node { return opNode(matVecMulOp{}, m, v) }

// crossOp implements the 3-d vector cross product.
type crossOp struct{}

func (crossOp) Name() string                       { return "cross" }
func (crossOp) OutShape(shapes [][2]int) (int, int) { return 3, 1 }

func (crossOp) Forward(children []Value) (Value, bool) {
	a, b := asVector(children[0]), asVector(children[1])
	if a.Size() != 3 || b.Size() != 3 {
		panic("expr: Cross: operands must be 3-vectors")
	}
	c0 := a.At(1).Mul(b.At(2)).Sub(a.At(2).Mul(b.At(1)))
	c1 := a.At(2).Mul(b.At(0)).Sub(a.At(0).Mul(b.At(2)))
	c2 := a.At(0).Mul(b.At(1)).Sub(a.At(1).Mul(b.At(0)))
	return interval.NewIntervalVector(c0, c1, c2), true
}

func (crossOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	a, b := mids[0], mids[1]
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// skew returns the 3x3 skew-symmetric matrix [v]_x such that [v]_x * w = v × w.
func skew(v interval.IntervalVector) interval.IntervalMatrix {
	s := interval.NewIntervalMatrix(3, 3)
	zero := interval.Zero()
	s = s.Set(0, 0, zero)
	s = s.Set(0, 1, v.At(2).Neg())
	s = s.Set(0, 2, v.At(1))
	s = s.Set(1, 0, v.At(2))
	s = s.Set(1, 1, zero)
	s = s.Set(1, 2, v.At(0).Neg())
	s = s.Set(2, 0, v.At(1).Neg())
	s = s.Set(2, 1, v.At(0))
	s = s.Set(2, 2, zero)
	return s
}

func (crossOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	a, b := asVector(children[0]), asVector(children[1])
	// cross(a,b) = -skew(b)*a = skew(a)*b, so d/da = -skew(b), d/db = skew(a).
	skewB := skew(b)
	ja := interval.NewIntervalMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ja = ja.Set(i, j, skewB.At(i, j).Neg())
		}
	}
	jb := skew(a)
	return []interval.IntervalMatrix{ja, jb}
}

func (crossOp) Backward(y Value, children []Value) []Value {
	return []Value{children[0], children[1]}
}

// Cross returns the cross product a × b of two 3-vectors.
func Cross(a, b *Node) *Node { return opNode(crossOp{}, a, b) }

// detOp computes the determinant of a square matrix via cofactor
// expansion along the first row (recursive, sound but exponential —
// adequate for the small matrices this algebra targets, per spec.md §3's
// "small, fixed-size" linear components).
type detOp struct{}

func (detOp) Name() string                       { return "det" }
func (detOp) OutShape(shapes [][2]int) (int, int) { return 1, 1 }

func (detOp) Forward(children []Value) (Value, bool) {
	m := asMatrix(children[0])
	return determinant(m), true
}

func determinant(m interval.IntervalMatrix) interval.Interval {
	n := m.Rows()
	if n != m.Cols() {
		panic("expr: Det: matrix must be square")
	}
	if n == 1 {
		return m.At(0, 0)
	}
	if n == 2 {
		return m.At(0, 0).Mul(m.At(1, 1)).Sub(m.At(0, 1).Mul(m.At(1, 0)))
	}
	sum := interval.Zero()
	sign := 1.0
	for j := 0; j < n; j++ {
		minor := interval.NewIntervalMatrix(n-1, n-1)
		for i := 1; i < n; i++ {
			col := 0
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				minor = minor.Set(i-1, col, m.At(i, k))
				col++
			}
		}
		term := interval.Degenerate(sign).Mul(m.At(0, j)).Mul(determinant(minor))
		sum = sum.Add(term)
		sign = -sign
	}
	return sum
}

func (detOp) ForwardMid(mids [][]float64, shapes [][2]int) []float64 {
	n := shapes[0][0]
	m := interval.NewIntervalMatrix(n, n)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m = m.Set(i, j, interval.Degenerate(mids[0][idx]))
			idx++
		}
	}
	return []float64{determinant(m).Mid()}
}

func (detOp) LocalJacobians(children []Value, outRows, outCols int) []interval.IntervalMatrix {
	// Determinant's derivative w.r.t. each entry is its cofactor; omitted
	// (nil) since this algebra only ever needs det() for feasibility tests
	// (invertibility, orientation), not for centered-form propagation.
	return nil
}

func (detOp) Backward(y Value, children []Value) []Value {
	return []Value{children[0]}
}

// Det returns the determinant of square matrix m.
func Det(m *Node) *Node { return opNode(detOp{}, m) }
