package interval

import (
	"fmt"
	"math"
)

// Interval is a closed, connected, possibly empty or unbounded subset of the
// extended reals [lo, hi]. The zero value is the degenerate interval [0,0];
// use Empty() for the empty interval.
type Interval struct {
	lo, hi float64
	empty  bool
}

// ulp returns an outward-rounding step for x: the smallest positive
// adjustment guaranteed to move away from the true value, used after every
// floating-point operation that could otherwise round inward.
func ulp(x float64) float64 {
	if x == 0 {
		return math.SmallestNonzeroFloat64
	}
	return math.Abs(x) * 1e-15
}

func roundDown(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return x - ulp(x)
}

func roundUp(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return x + ulp(x)
}

// NewInterval builds [lo,hi]. If lo > hi the result is Empty().
func NewInterval(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Empty()
	}
	return Interval{lo: lo, hi: hi}
}

// Degenerate returns the singleton interval {x}.
func Degenerate(x float64) Interval {
	if math.IsNaN(x) {
		return Empty()
	}
	return Interval{lo: x, hi: x}
}

// Empty returns the empty interval.
func Empty() Interval {
	return Interval{empty: true}
}

// Whole returns (-inf, +inf).
func Whole() Interval {
	return Interval{lo: math.Inf(-1), hi: math.Inf(1)}
}

// Zero is the degenerate interval {0}.
func Zero() Interval { return Degenerate(0) }

// IsEmpty reports whether x is the empty set.
func (x Interval) IsEmpty() bool { return x.empty }

// IsUnbounded reports whether either bound is infinite.
func (x Interval) IsUnbounded() bool {
	return !x.empty && (math.IsInf(x.lo, -1) || math.IsInf(x.hi, 1))
}

// IsDegenerate reports whether x is a non-empty singleton.
func (x Interval) IsDegenerate() bool { return !x.empty && x.lo == x.hi }

// Lo returns the lower bound (NaN for an empty interval).
func (x Interval) Lo() float64 {
	if x.empty {
		return math.NaN()
	}
	return x.lo
}

// Hi returns the upper bound (NaN for an empty interval).
func (x Interval) Hi() float64 {
	if x.empty {
		return math.NaN()
	}
	return x.hi
}

// Mid returns the midpoint, clamped to a finite representative for
// unbounded intervals (0 if both bounds infinite, the finite bound
// otherwise), since the centered form requires a numeric midpoint.
func (x Interval) Mid() float64 {
	if x.empty {
		return math.NaN()
	}
	if math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1) {
		return 0
	}
	if math.IsInf(x.lo, -1) {
		return x.hi
	}
	if math.IsInf(x.hi, 1) {
		return x.lo
	}
	return 0.5 * (x.lo + x.hi)
}

// Rad returns the radius (half-diameter).
func (x Interval) Rad() float64 {
	if x.empty {
		return math.NaN()
	}
	return 0.5 * (x.hi - x.lo)
}

// Diam returns the diameter (width) of x, +Inf for unbounded x, 0 for empty.
func (x Interval) Diam() float64 {
	if x.empty {
		return 0
	}
	return x.hi - x.lo
}

// Contains reports whether the real value v lies in x.
func (x Interval) Contains(v float64) bool {
	if x.empty {
		return false
	}
	return v >= x.lo && v <= x.hi
}

// ContainsInterval reports whether y is a subset of x.
func (x Interval) ContainsInterval(y Interval) bool {
	if y.empty {
		return true
	}
	if x.empty {
		return false
	}
	return x.lo <= y.lo && y.hi <= x.hi
}

// Equal reports structural equality (both empty, or identical bounds).
func (x Interval) Equal(y Interval) bool {
	if x.empty || y.empty {
		return x.empty == y.empty
	}
	return x.lo == y.lo && x.hi == y.hi
}

// Inter returns the intersection x ∩ y (Empty() if disjoint).
func (x Interval) Inter(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	lo := math.Max(x.lo, y.lo)
	hi := math.Min(x.hi, y.hi)
	if lo > hi {
		return Empty()
	}
	return Interval{lo: lo, hi: hi}
}

// Hull returns the interval hull (convex union) x ∪ y.
func (x Interval) Hull(y Interval) Interval {
	if x.empty {
		return y
	}
	if y.empty {
		return x
	}
	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// Intersects reports whether x and y overlap.
func (x Interval) Intersects(y Interval) bool {
	return !x.Inter(y).IsEmpty()
}

// Bisect splits x at a point ratio∈(0,1) of its width into [lo,m],[m,hi].
// ratio=0.5 bisects at the midpoint; the paver uses ratio=0.49 per spec.md
// to avoid degenerate repeated bisection on symmetric boxes.
func (x Interval) Bisect(ratio float64) (Interval, Interval) {
	if x.empty {
		return Empty(), Empty()
	}
	m := x.lo + ratio*(x.hi-x.lo)
	return Interval{lo: x.lo, hi: m}, Interval{lo: m, hi: x.hi}
}

func (x Interval) String() string {
	if x.empty {
		return "∅"
	}
	return fmt.Sprintf("[%g, %g]", x.lo, x.hi)
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	if x.empty {
		return Empty()
	}
	return Interval{lo: -x.hi, hi: -x.lo}
}

// Add returns x+y with outward rounding.
func (x Interval) Add(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	return NewInterval(roundDown(x.lo+y.lo), roundUp(x.hi+y.hi))
}

// Sub returns x-y with outward rounding.
func (x Interval) Sub(y Interval) Interval {
	return x.Add(y.Neg())
}

// Mul returns x*y with outward rounding.
func (x Interval) Mul(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	products := [4]float64{x.lo * y.lo, x.lo * y.hi, x.hi * y.lo, x.hi * y.hi}
	for i, p := range products {
		// 0 * ±inf is NaN in IEEE arithmetic; in interval arithmetic it is 0.
		if math.IsNaN(p) {
			products[i] = 0
		}
	}
	lo, hi := products[0], products[0]
	for _, p := range products[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return NewInterval(roundDown(lo), roundUp(hi))
}

// Div returns x/y with outward rounding. If y contains zero the result is
// widened to Whole() (or Empty() if x is empty), matching the "Unbounded
// result" error kind of spec.md §7 rather than raising an error.
func (x Interval) Div(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	if y.lo <= 0 && y.hi >= 0 {
		if x.Contains(0) || (x.lo < 0 && x.hi > 0) || y.lo == 0 && y.hi == 0 {
			return Whole()
		}
		// Division by an interval straddling zero with x not containing 0:
		// result is the union of two unbounded rays, over-approximated to
		// the whole line for soundness (no general non-convex interval type
		// here).
		return Whole()
	}
	recip := NewInterval(roundDown(1/y.hi), roundUp(1/y.lo))
	return x.Mul(recip)
}

// Sqr returns x^2.
func (x Interval) Sqr() Interval {
	if x.empty {
		return Empty()
	}
	if x.lo >= 0 {
		return NewInterval(roundDown(x.lo*x.lo), roundUp(x.hi*x.hi))
	}
	if x.hi <= 0 {
		return NewInterval(roundDown(x.hi*x.hi), roundUp(x.lo*x.lo))
	}
	m := math.Max(x.lo*x.lo, x.hi*x.hi)
	return NewInterval(0, roundUp(m))
}

// Sqrt returns sqrt(x) ∩ [0,+inf). def_domain is violated if x.lo < 0.
func (x Interval) Sqrt() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	if x.hi < 0 {
		return Empty(), false
	}
	lo := 0.0
	if x.lo > 0 {
		lo = roundDown(math.Sqrt(x.lo))
	}
	return NewInterval(lo, roundUp(math.Sqrt(x.hi))), x.lo >= 0
}

// Pow raises x to the integer power n (n may be negative or zero).
func (x Interval) Pow(n int) Interval {
	if x.empty {
		return Empty()
	}
	if n == 0 {
		return Degenerate(1)
	}
	if n < 0 {
		return Degenerate(1).Div(x.Pow(-n))
	}
	result := Degenerate(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowReal raises x (must be non-negative) to a real power p, via exp(p*log(x)).
func (x Interval) PowReal(p float64) (Interval, bool) {
	lx, ok := x.Log()
	if !ok {
		return Empty(), false
	}
	return lx.Mul(Degenerate(p)).Exp(), true
}

// Root returns the n-th root of x (n > 0).
func (x Interval) Root(n int) (Interval, bool) {
	if n <= 0 {
		return Empty(), false
	}
	if n == 2 {
		return x.Sqrt()
	}
	if x.empty {
		return Empty(), true
	}
	if x.lo < 0 && n%2 == 0 {
		if x.hi < 0 {
			return Empty(), false
		}
		lo := 0.0
		return NewInterval(lo, roundUp(math.Pow(x.hi, 1/float64(n)))), false
	}
	sign := func(v float64) float64 {
		if v < 0 {
			return -1
		}
		return 1
	}
	rl := sign(x.lo) * math.Pow(math.Abs(x.lo), 1/float64(n))
	rh := sign(x.hi) * math.Pow(math.Abs(x.hi), 1/float64(n))
	return NewInterval(roundDown(math.Min(rl, rh)), roundUp(math.Max(rl, rh))), true
}

// Exp returns exp(x).
func (x Interval) Exp() Interval {
	if x.empty {
		return Empty()
	}
	return NewInterval(roundDown(math.Exp(x.lo)), roundUp(math.Exp(x.hi)))
}

// Log returns log(x) ∩ definition domain (x > 0). ok is false if x.hi <= 0.
func (x Interval) Log() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	if x.hi <= 0 {
		return Empty(), false
	}
	lo := math.Inf(-1)
	if x.lo > 0 {
		lo = roundDown(math.Log(x.lo))
	}
	return NewInterval(lo, roundUp(math.Log(x.hi))), x.lo > 0
}

// Abs returns |x|.
func (x Interval) Abs() Interval {
	if x.empty {
		return Empty()
	}
	if x.lo >= 0 {
		return x
	}
	if x.hi <= 0 {
		return x.Neg()
	}
	return NewInterval(0, math.Max(-x.lo, x.hi))
}

// Sign returns the interval sign enclosure: {-1}, {0}, {1}, or a hull of
// those when x straddles zero.
func (x Interval) Sign() Interval {
	if x.empty {
		return Empty()
	}
	s := Empty()
	if x.lo < 0 {
		s = s.Hull(Degenerate(-1))
	}
	if x.Contains(0) {
		s = s.Hull(Degenerate(0))
	}
	if x.hi > 0 {
		s = s.Hull(Degenerate(1))
	}
	return s
}

// Floor returns the interval enclosure of floor applied pointwise.
func (x Interval) Floor() Interval {
	if x.empty {
		return Empty()
	}
	return NewInterval(math.Floor(x.lo), math.Floor(x.hi))
}

// Ceil returns the interval enclosure of ceil applied pointwise.
func (x Interval) Ceil() Interval {
	if x.empty {
		return Empty()
	}
	return NewInterval(math.Ceil(x.lo), math.Ceil(x.hi))
}

// Min returns the pointwise minimum enclosure of x and y.
func (x Interval) Min(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	return NewInterval(math.Min(x.lo, y.lo), math.Min(x.hi, y.hi))
}

// Max returns the pointwise maximum enclosure of x and y.
func (x Interval) Max(y Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	return NewInterval(math.Max(x.lo, y.lo), math.Max(x.hi, y.hi))
}

// monotoneIncreasing evaluates a monotonically increasing scalar function
// pointwise at the bounds to build a sound enclosure.
func monotoneIncreasing(x Interval, f func(float64) float64) Interval {
	if x.empty {
		return Empty()
	}
	return NewInterval(roundDown(f(x.lo)), roundUp(f(x.hi)))
}

func monotoneDecreasing(x Interval, f func(float64) float64) Interval {
	if x.empty {
		return Empty()
	}
	return NewInterval(roundDown(f(x.hi)), roundUp(f(x.lo)))
}

// Cosh, Sinh, Tanh, Acosh, Asinh, Atanh are monotone or piecewise-monotone
// hyperbolic functions, enclosed the same way trig functions are below.

// Sinh returns sinh(x) (monotone increasing).
func (x Interval) Sinh() Interval { return monotoneIncreasing(x, math.Sinh) }

// Tanh returns tanh(x) (monotone increasing).
func (x Interval) Tanh() Interval { return monotoneIncreasing(x, math.Tanh) }

// Cosh returns cosh(x), minimum 1 at 0.
func (x Interval) Cosh() Interval {
	if x.empty {
		return Empty()
	}
	if x.lo >= 0 {
		return monotoneIncreasing(x, math.Cosh)
	}
	if x.hi <= 0 {
		return monotoneDecreasing(x, math.Cosh)
	}
	hi := math.Max(math.Cosh(x.lo), math.Cosh(x.hi))
	return NewInterval(1, roundUp(hi))
}

// Asinh returns asinh(x) (monotone increasing, defined everywhere).
func (x Interval) Asinh() Interval { return monotoneIncreasing(x, math.Asinh) }

// Acosh returns acosh(x) ∩ domain (x >= 1).
func (x Interval) Acosh() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	if x.hi < 1 {
		return Empty(), false
	}
	lo := 0.0
	if x.lo > 1 {
		lo = roundDown(math.Acosh(x.lo))
	}
	return NewInterval(lo, roundUp(math.Acosh(x.hi))), x.lo >= 1
}

// Atanh returns atanh(x) ∩ domain (-1 < x < 1).
func (x Interval) Atanh() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	d := NewInterval(-1, 1)
	clamped := x.Inter(d)
	if clamped.IsEmpty() {
		return Empty(), false
	}
	lo := math.Inf(-1)
	if clamped.lo > -1 {
		lo = roundDown(math.Atanh(clamped.lo))
	}
	hi := math.Inf(1)
	if clamped.hi < 1 {
		hi = roundUp(math.Atanh(clamped.hi))
	}
	ok := x.lo > -1 && x.hi < 1
	return NewInterval(lo, hi), ok
}

// Atan returns atan(x) (monotone increasing, defined everywhere).
func (x Interval) Atan() Interval { return monotoneIncreasing(x, math.Atan) }

// Asin returns asin(x) ∩ domain ([-1,1]).
func (x Interval) Asin() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	d := NewInterval(-1, 1)
	clamped := x.Inter(d)
	if clamped.IsEmpty() {
		return Empty(), false
	}
	ok := x.lo >= -1 && x.hi <= 1
	return monotoneIncreasing(clamped, math.Asin), ok
}

// Acos returns acos(x) ∩ domain ([-1,1]).
func (x Interval) Acos() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	d := NewInterval(-1, 1)
	clamped := x.Inter(d)
	if clamped.IsEmpty() {
		return Empty(), false
	}
	ok := x.lo >= -1 && x.hi <= 1
	return monotoneDecreasing(clamped, math.Acos), ok
}

// period2pi reports whether x spans at least one full 2π period; sin/cos
// then return the full [-1,1] enclosure, and otherwise are enclosed by
// sampleEnclose's bounds-plus-stationary-points check.
func period2pi(x Interval) bool {
	return x.Diam() >= 2*math.Pi
}

// Cos returns cos(x).
func (x Interval) Cos() Interval {
	if x.empty {
		return Empty()
	}
	if period2pi(x) {
		return NewInterval(-1, 1)
	}
	return sampleEnclose(x, math.Cos)
}

// Sin returns sin(x).
func (x Interval) Sin() Interval {
	if x.empty {
		return Empty()
	}
	if period2pi(x) {
		return NewInterval(-1, 1)
	}
	return sampleEnclose(x, math.Sin)
}

// sampleEnclose builds a sound enclosure of f over [x.lo,x.hi] by checking
// the bounds plus every stationary point of sin/cos (multiples of π/2)
// inside the interval; sin and cos have no other extrema, so this is exact
// up to outward rounding (not merely a dense sample).
func sampleEnclose(x Interval, f func(float64) float64) Interval {
	lo, hi := f(x.lo), f(x.hi)
	if hi < lo {
		lo, hi = hi, lo
	}
	// Walk critical points k*pi/2 within [x.lo, x.hi].
	k := math.Ceil(x.lo / (math.Pi / 2))
	for t := k * (math.Pi / 2); t <= x.hi; t += math.Pi / 2 {
		if t < x.lo {
			continue
		}
		v := f(t)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return NewInterval(roundDown(lo), roundUp(hi))
}

// Tan returns tan(x); def_domain is violated if x spans a pole (π/2 + kπ).
func (x Interval) Tan() (Interval, bool) {
	if x.empty {
		return Empty(), true
	}
	if x.Diam() >= math.Pi {
		return Whole(), false
	}
	// Check for a pole strictly inside (lo,hi).
	k := math.Floor((x.lo - math.Pi/2) / math.Pi)
	for p := (k+1)*math.Pi + math.Pi/2; p <= x.hi+1e-12; p += math.Pi {
		if p > x.lo+1e-12 && p < x.hi-1e-12 {
			return Whole(), false
		}
	}
	lo, hi := math.Tan(x.lo), math.Tan(x.hi)
	if hi < lo {
		lo, hi = hi, lo
	}
	return NewInterval(roundDown(lo), roundUp(hi)), true
}

// Atan2 returns atan2(y,x) for scalar intervals. The receiver y is the
// y-coordinate, matching the math.Atan2(y,x) convention: call as Y.Atan2(X).
func (y Interval) Atan2(x Interval) Interval {
	if x.empty || y.empty {
		return Empty()
	}
	// A box crossing the negative x-axis straddles atan2's branch cut at ±π.
	if x.lo < 0 && y.lo < 0 && y.hi > 0 {
		return NewInterval(-math.Pi, math.Pi)
	}
	// Sample the four corners; atan2 is monotone along rays from the
	// origin but not jointly monotone in (y,x). For a box that neither
	// contains the origin nor crosses the branch cut, the extreme angles
	// are attained at corners.
	corners := []float64{
		math.Atan2(y.lo, x.lo), math.Atan2(y.lo, x.hi),
		math.Atan2(y.hi, x.lo), math.Atan2(y.hi, x.hi),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	if x.Contains(0) && y.Contains(0) {
		return NewInterval(-math.Pi, math.Pi)
	}
	return NewInterval(roundDown(lo), roundUp(hi))
}
