package interval

import "fmt"

// IntervalMatrix is a dense r×c matrix of Interval entries, row-major, in
// the same storage style as the teacher's matrix.Dense (flat backing
// slice, explicit Rows()/Cols()/At()/Set()).
type IntervalMatrix struct {
	r, c  int
	comps []Interval
}

// NewIntervalMatrix builds an r×c matrix filled with Zero(). Panics (a
// programmer error) if r or c is non-positive.
func NewIntervalMatrix(r, c int) IntervalMatrix {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("interval: NewIntervalMatrix(%d,%d): %v", r, c, ErrDimensionMismatch))
	}
	comps := make([]Interval, r*c)
	for i := range comps {
		comps[i] = Zero()
	}
	return IntervalMatrix{r: r, c: c, comps: comps}
}

// IdentityMatrix returns the n×n interval identity matrix.
func IdentityMatrix(n int) IntervalMatrix {
	m := NewIntervalMatrix(n, n)
	for i := 0; i < n; i++ {
		m.comps[i*n+i] = Degenerate(1)
	}
	return m
}

// Rows returns the row count.
func (m IntervalMatrix) Rows() int { return m.r }

// Cols returns the column count.
func (m IntervalMatrix) Cols() int { return m.c }

func (m IntervalMatrix) index(i, j int) int {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		panic(fmt.Sprintf("interval: IntervalMatrix index (%d,%d): %v", i, j, ErrOutOfRange))
	}
	return i*m.c + j
}

// At returns the (i,j) entry.
func (m IntervalMatrix) At(i, j int) Interval {
	return m.comps[m.index(i, j)]
}

// Set returns a copy of m with entry (i,j) replaced by x.
func (m IntervalMatrix) Set(i, j int, x Interval) IntervalMatrix {
	out := m.Clone()
	out.comps[out.index(i, j)] = x
	return out
}

// Clone returns a deep copy of m.
func (m IntervalMatrix) Clone() IntervalMatrix {
	cp := make([]Interval, len(m.comps))
	copy(cp, m.comps)
	return IntervalMatrix{r: m.r, c: m.c, comps: cp}
}

// Row returns row i as an IntervalVector.
func (m IntervalMatrix) Row(i int) IntervalVector {
	out := make([]Interval, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = m.At(i, j)
	}
	return IntervalVector{comps: out}
}

// Col returns column j as an IntervalVector.
func (m IntervalMatrix) Col(j int) IntervalVector {
	out := make([]Interval, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.At(i, j)
	}
	return IntervalVector{comps: out}
}

// IsEmpty reports whether any entry is empty.
func (m IntervalMatrix) IsEmpty() bool {
	for _, c := range m.comps {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// MulVector returns the enclosure of m*v (v of size m.Cols()).
func (m IntervalMatrix) MulVector(v IntervalVector) IntervalVector {
	if v.Size() != m.c {
		panic(fmt.Sprintf("interval: IntervalMatrix.MulVector: %v", ErrDimensionMismatch))
	}
	out := make([]Interval, m.r)
	for i := 0; i < m.r; i++ {
		sum := Zero()
		for j := 0; j < m.c; j++ {
			sum = sum.Add(m.At(i, j).Mul(v.At(j)))
		}
		out[i] = sum
	}
	return IntervalVector{comps: out}
}

// Mul returns the enclosure of m*n (m.Cols() == n.Rows()).
func (m IntervalMatrix) Mul(n IntervalMatrix) IntervalMatrix {
	if m.c != n.r {
		panic(fmt.Sprintf("interval: IntervalMatrix.Mul: %v", ErrDimensionMismatch))
	}
	out := NewIntervalMatrix(m.r, n.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < n.c; j++ {
			sum := Zero()
			for k := 0; k < m.c; k++ {
				sum = sum.Add(m.At(i, k).Mul(n.At(k, j)))
			}
			out = out.Set(i, j, sum)
		}
	}
	return out
}

// Add returns the componentwise sum.
func (m IntervalMatrix) Add(n IntervalMatrix) IntervalMatrix {
	if m.r != n.r || m.c != n.c {
		panic(fmt.Sprintf("interval: IntervalMatrix.Add: %v", ErrDimensionMismatch))
	}
	out := m.Clone()
	for i := range out.comps {
		out.comps[i] = out.comps[i].Add(n.comps[i])
	}
	return out
}

// Transpose returns mᵀ.
func (m IntervalMatrix) Transpose() IntervalMatrix {
	out := NewIntervalMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out = out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Mid returns the componentwise midpoint matrix as plain float64s,
// row-major, used to pick a real pivoting order for interval Gauss-Seidel.
func (m IntervalMatrix) Mid() []float64 {
	out := make([]float64, len(m.comps))
	for i, c := range m.comps {
		out[i] = c.Mid()
	}
	return out
}

func (m IntervalMatrix) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += m.At(i, j).String()
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
