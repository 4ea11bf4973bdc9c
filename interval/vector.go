package interval

import (
	"fmt"
	"math"
	"strings"
)

// IntervalVector is a fixed-size tuple of Interval components, the "box"
// that contractors narrow. A vector is empty iff any component is empty
// (an empty component makes the whole box the empty set, per spec.md §7
// "Mathematical emptiness... propagates naturally").
type IntervalVector struct {
	comps []Interval
}

// NewIntervalVector builds a vector from explicit components.
func NewIntervalVector(comps ...Interval) IntervalVector {
	cp := make([]Interval, len(comps))
	copy(cp, comps)
	return IntervalVector{comps: cp}
}

// ConstantVector returns an n-dimensional vector with every component v.
func ConstantVector(n int, v Interval) IntervalVector {
	if n < 0 {
		panic("interval: negative vector size")
	}
	comps := make([]Interval, n)
	for i := range comps {
		comps[i] = v
	}
	return IntervalVector{comps: comps}
}

// WholeVector returns an n-dimensional vector of Whole() components.
func WholeVector(n int) IntervalVector { return ConstantVector(n, Whole()) }

// Size returns the number of components.
func (v IntervalVector) Size() int { return len(v.comps) }

// At returns the i-th component. Panics (programmer error per spec.md §7)
// if i is out of range.
func (v IntervalVector) At(i int) Interval {
	if i < 0 || i >= len(v.comps) {
		panic(fmt.Sprintf("interval: IntervalVector.At(%d): %v", i, ErrOutOfRange))
	}
	return v.comps[i]
}

// Set returns a copy of v with component i replaced by x.
func (v IntervalVector) Set(i int, x Interval) IntervalVector {
	if i < 0 || i >= len(v.comps) {
		panic(fmt.Sprintf("interval: IntervalVector.Set(%d): %v", i, ErrOutOfRange))
	}
	out := v.Clone()
	out.comps[i] = x
	return out
}

// Clone returns a deep copy of v.
func (v IntervalVector) Clone() IntervalVector {
	cp := make([]Interval, len(v.comps))
	copy(cp, v.comps)
	return IntervalVector{comps: cp}
}

// Components returns a defensive copy of the component slice.
func (v IntervalVector) Components() []Interval {
	out := make([]Interval, len(v.comps))
	copy(out, v.comps)
	return out
}

// IsEmpty reports whether any component is empty.
func (v IntervalVector) IsEmpty() bool {
	for _, c := range v.comps {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// Mid returns the componentwise midpoint.
func (v IntervalVector) Mid() []float64 {
	out := make([]float64, len(v.comps))
	for i, c := range v.comps {
		out[i] = c.Mid()
	}
	return out
}

// Diam returns the maximum componentwise diameter (the box's width along
// its widest dimension).
func (v IntervalVector) Diam() float64 {
	d := 0.0
	for _, c := range v.comps {
		if c.Diam() > d {
			d = c.Diam()
		}
	}
	return d
}

// Volume returns the product of componentwise diameters (0 if any
// dimension is degenerate, +Inf if any is unbounded and non-empty).
func (v IntervalVector) Volume() float64 {
	if v.IsEmpty() {
		return 0
	}
	vol := 1.0
	for _, c := range v.comps {
		vol *= c.Diam()
	}
	return vol
}

// WidestDim returns the index of the component with largest diameter.
func (v IntervalVector) WidestDim() int {
	best, bestDiam := 0, -1.0
	for i, c := range v.comps {
		if c.Diam() > bestDiam {
			best, bestDiam = i, c.Diam()
		}
	}
	return best
}

// Contains reports whether the point p (same dimension as v) lies in v.
func (v IntervalVector) Contains(p []float64) bool {
	if len(p) != len(v.comps) {
		return false
	}
	for i, c := range v.comps {
		if !c.Contains(p[i]) {
			return false
		}
	}
	return true
}

// ContainsVector reports whether w is a subset of v.
func (v IntervalVector) ContainsVector(w IntervalVector) bool {
	if v.Size() != w.Size() {
		return false
	}
	for i := range v.comps {
		if !v.comps[i].ContainsInterval(w.comps[i]) {
			return false
		}
	}
	return true
}

// Equal reports componentwise equality.
func (v IntervalVector) Equal(w IntervalVector) bool {
	if v.Size() != w.Size() {
		return false
	}
	for i := range v.comps {
		if !v.comps[i].Equal(w.comps[i]) {
			return false
		}
	}
	return true
}

// Inter returns the componentwise intersection.
func (v IntervalVector) Inter(w IntervalVector) IntervalVector {
	if v.Size() != w.Size() {
		panic(fmt.Sprintf("interval: IntervalVector.Inter: %v", ErrDimensionMismatch))
	}
	out := make([]Interval, v.Size())
	for i := range v.comps {
		out[i] = v.comps[i].Inter(w.comps[i])
	}
	return IntervalVector{comps: out}
}

// Hull returns the componentwise hull.
func (v IntervalVector) Hull(w IntervalVector) IntervalVector {
	if v.Size() != w.Size() {
		panic(fmt.Sprintf("interval: IntervalVector.Hull: %v", ErrDimensionMismatch))
	}
	out := make([]Interval, v.Size())
	for i := range v.comps {
		out[i] = v.comps[i].Hull(w.comps[i])
	}
	return IntervalVector{comps: out}
}

// Add returns the componentwise sum.
func (v IntervalVector) Add(w IntervalVector) IntervalVector {
	if v.Size() != w.Size() {
		panic(fmt.Sprintf("interval: IntervalVector.Add: %v", ErrDimensionMismatch))
	}
	out := make([]Interval, v.Size())
	for i := range v.comps {
		out[i] = v.comps[i].Add(w.comps[i])
	}
	return IntervalVector{comps: out}
}

// Sub returns the componentwise difference.
func (v IntervalVector) Sub(w IntervalVector) IntervalVector {
	if v.Size() != w.Size() {
		panic(fmt.Sprintf("interval: IntervalVector.Sub: %v", ErrDimensionMismatch))
	}
	out := make([]Interval, v.Size())
	for i := range v.comps {
		out[i] = v.comps[i].Sub(w.comps[i])
	}
	return IntervalVector{comps: out}
}

// ScalarMul returns s*v (s an Interval scalar).
func (v IntervalVector) ScalarMul(s Interval) IntervalVector {
	out := make([]Interval, v.Size())
	for i, c := range v.comps {
		out[i] = s.Mul(c)
	}
	return IntervalVector{comps: out}
}

// Bisect splits v along dimension dim at ratio, returning two boxes
// identical to v except on that dimension.
func (v IntervalVector) Bisect(dim int, ratio float64) (IntervalVector, IntervalVector) {
	lo, hi := v.At(dim).Bisect(ratio)
	return v.Set(dim, lo), v.Set(dim, hi)
}

// BisectWidest bisects v along its widest dimension at ratio.
func (v IntervalVector) BisectWidest(ratio float64) (IntervalVector, IntervalVector) {
	return v.Bisect(v.WidestDim(), ratio)
}

// Subvector extracts components [lo,hi] inclusive.
func (v IntervalVector) Subvector(lo, hi int) IntervalVector {
	if lo < 0 || hi >= v.Size() || lo > hi {
		panic(fmt.Sprintf("interval: Subvector(%d,%d): %v", lo, hi, ErrOutOfRange))
	}
	return NewIntervalVector(v.comps[lo : hi+1]...)
}

// Extend returns v concatenated with w.
func (v IntervalVector) Extend(w IntervalVector) IntervalVector {
	out := make([]Interval, 0, v.Size()+w.Size())
	out = append(out, v.comps...)
	out = append(out, w.comps...)
	return IntervalVector{comps: out}
}

// Norm returns an enclosure of the Euclidean norm of v.
func (v IntervalVector) Norm() Interval {
	sum := Zero()
	for _, c := range v.comps {
		sum = sum.Add(c.Sqr())
	}
	root, _ := sum.Sqrt()
	return root
}

func (v IntervalVector) String() string {
	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ; ") + ")"
}

// RatioVolume returns the ratio of v's volume to w's volume (w being a
// previous, wider box), used by CtcFixpoint's stopping criterion.
// When w's volume is 0 or +Inf the ratio is reported as 1; no
// dimension-wise comparison is made.
func RatioVolume(v, w IntervalVector) float64 {
	wv, wwid := v.Volume(), w.Volume()
	if wwid == 0 {
		return 1
	}
	if math.IsInf(wwid, 1) {
		return 1
	}
	return wv / wwid
}
