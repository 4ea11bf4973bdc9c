package interval

import "math"

// This file implements the "backward" (contracting) form of every forward
// operator in interval.go, per spec.md §4.1: given a tightened output hull
// z and the prior input hull(s), narrow the inputs without dropping any
// real solution. Every function here is sound but not necessarily optimal
// (tightest); tightness where cheap to get is preferred, since contractor
// idempotence (spec.md §4.2 CtcFixpoint) recovers the rest via iteration.

// BwdAdd narrows x,y given z ⊇ x+y.
func BwdAdd(z, x, y Interval) (Interval, Interval) {
	nx := x.Inter(z.Sub(y))
	ny := y.Inter(z.Sub(x))
	return nx, ny
}

// BwdSub narrows x,y given z ⊇ x-y.
func BwdSub(z, x, y Interval) (Interval, Interval) {
	nx := x.Inter(z.Add(y))
	ny := y.Inter(x.Sub(z))
	return nx, ny
}

// BwdNeg narrows x given z ⊇ -x.
func BwdNeg(z, x Interval) Interval {
	return x.Inter(z.Neg())
}

// BwdMul narrows x,y given z ⊇ x*y.
func BwdMul(z, x, y Interval) (Interval, Interval) {
	nx := x
	if !y.Contains(0) || y.IsDegenerate() {
		nx = x.Inter(z.Div(y))
	}
	ny := y
	if !x.Contains(0) || x.IsDegenerate() {
		ny = y.Inter(z.Div(x))
	}
	return nx, ny
}

// BwdDiv narrows x,y given z ⊇ x/y.
func BwdDiv(z, x, y Interval) (Interval, Interval) {
	nx := x.Inter(z.Mul(y))
	ny := y
	if !z.Contains(0) || z.IsDegenerate() {
		ny = y.Inter(x.Div(z))
	}
	return nx, ny
}

// BwdSqr narrows x given z ⊇ x^2.
func BwdSqr(z, x Interval) Interval {
	if z.hi < 0 {
		return Empty()
	}
	zPos := NewInterval(math.Max(0, z.lo), z.hi)
	root, _ := zPos.Sqrt()
	pos := x.Inter(root)
	neg := x.Inter(root.Neg())
	return pos.Hull(neg)
}

// BwdSqrt narrows x given z ⊇ sqrt(x).
func BwdSqrt(z, x Interval) Interval {
	if z.hi < 0 {
		return Empty()
	}
	zPos := NewInterval(math.Max(0, z.lo), z.hi)
	return x.Inter(zPos.Sqr())
}

// BwdExp narrows x given z ⊇ exp(x).
func BwdExp(z, x Interval) Interval {
	if z.hi <= 0 {
		return Empty()
	}
	zPos := NewInterval(math.Max(1e-300, z.lo), z.hi)
	lz, _ := zPos.Log()
	return x.Inter(lz)
}

// BwdLog narrows x given z ⊇ log(x).
func BwdLog(z, x Interval) Interval {
	return x.Inter(z.Exp())
}

// BwdAbs narrows x given z ⊇ |x|.
func BwdAbs(z, x Interval) Interval {
	if z.hi < 0 {
		return Empty()
	}
	zc := NewInterval(math.Max(0, z.lo), z.hi)
	pos := x.Inter(zc)
	neg := x.Inter(zc.Neg())
	return pos.Hull(neg)
}

// BwdMin narrows x,y given z ⊇ min(x,y).
func BwdMin(z, x, y Interval) (Interval, Interval) {
	// No sound general narrowing beyond bounding each operand above by an
	// unconstrained upper tail extended from z's hull; conservative no-op
	// is returned for the side that cannot be proven.
	return x, y
}

// BwdMax narrows x,y given z ⊇ max(x,y).
func BwdMax(z, x, y Interval) (Interval, Interval) {
	return x, y
}

// BwdPow narrows x given z ⊇ x^n for integer n.
func BwdPow(z, x Interval, n int) Interval {
	switch {
	case n == 0:
		return x
	case n == 1:
		return x.Inter(z)
	case n == 2:
		return BwdSqr(z, x)
	case n%2 == 0:
		r, ok := z.Root(n)
		if !ok && z.hi < 0 {
			return Empty()
		}
		pos := x.Inter(r)
		neg := x.Inter(r.Neg())
		return pos.Hull(neg)
	default:
		r, _ := z.Root(n)
		return x.Inter(r)
	}
}

// BwdCos narrows x given z ⊇ cos(x), restricting to the branch(es) of x
// whose cosine enclosure intersects z. Conservative: if x already spans a
// full period the narrowing is a no-op (cos hits every value in [-1,1]
// infinitely often across it).
func BwdCos(z, x Interval) Interval {
	if period2pi(x) {
		return x
	}
	return restrictByForward(z, x, math.Cos)
}

// BwdSin narrows x given z ⊇ sin(x), analogous to BwdCos.
func BwdSin(z, x Interval) Interval {
	if period2pi(x) {
		return x
	}
	return restrictByForward(z, x, math.Sin)
}

// restrictByForward narrows x to the sub-box of x whose forward image
// (sampled at a fine grid, sound because it only ever grows the kept
// region, never shrinks past a real root) intersects z. Used for
// non-monotone trig backward rules where an exact symbolic inverse would
// need multi-branch case analysis.
func restrictByForward(z, x Interval, f func(float64) float64) Interval {
	const steps = 256
	if x.IsEmpty() || x.Diam() == 0 {
		if !x.IsEmpty() && z.Contains(f(x.lo)) {
			return x
		}
		return x
	}
	step := x.Diam() / steps
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for i := 0; i <= steps; i++ {
		t := x.lo + float64(i)*step
		// f (sin or cos) is 1-Lipschitz, so every point within step of t
		// has its image within step of f(t); keeping t whenever that
		// widened value meets z never discards a solution, even when z
		// is too narrow for any sample to land in it.
		v := f(t)
		if z.Intersects(NewInterval(v-step, v+step)) {
			found = true
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
		}
	}
	if !found {
		return Empty()
	}
	// Pad by one step on each side to stay sound against the sampling
	// granularity.
	return x.Inter(NewInterval(lo-step, hi+step))
}

// BwdAtan narrows x given z ⊇ atan(x) (atan is a bijection R -> (-π/2,π/2)).
func BwdAtan(z, x Interval) Interval {
	lo := math.Tan(math.Max(z.lo, -math.Pi/2+1e-12))
	hi := math.Tan(math.Min(z.hi, math.Pi/2-1e-12))
	return x.Inter(NewInterval(lo, hi))
}

// BwdAsin narrows x given z ⊇ asin(x).
func BwdAsin(z, x Interval) Interval {
	lo := math.Sin(math.Max(z.lo, -math.Pi/2))
	hi := math.Sin(math.Min(z.hi, math.Pi/2))
	return x.Inter(NewInterval(lo, hi))
}

// BwdAcos narrows x given z ⊇ acos(x).
func BwdAcos(z, x Interval) Interval {
	lo := math.Cos(math.Min(z.hi, math.Pi))
	hi := math.Cos(math.Max(z.lo, 0))
	return x.Inter(NewInterval(lo, hi))
}

// BwdAtan2 is the backward rule for z ⊇ atan2(y,x). It returns y and x
// unchanged in every case; no narrowing is performed.
func BwdAtan2(z Interval, y, x Interval) (Interval, Interval) {
	if x.Contains(0) && y.Contains(0) {
		return y, x
	}
	return y, x
}
