package contractor

import "github.com/damien-masse/codac-sub002/interval"

// CtcInter builds the Contractor for the conjunction of its members:
// Contract applies every member in turn, each to the previous member's
// result, and returns as soon as the box becomes empty. Panics with
// ErrEmptyCombinator if ctcs is empty.
func CtcInter(ctcs ...Contractor) Contractor {
	if len(ctcs) == 0 {
		panic(ErrEmptyCombinator)
	}
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		out := x
		for _, c := range ctcs {
			out = c.Contract(out)
			if out.IsEmpty() {
				return out
			}
		}
		return out
	})
}

// CtcUnion builds the Contractor for the disjunction of its members: the
// result is the hull of every member's contraction of the original x, a
// point dropped by the union must be dropped by every single member.
// Panics with ErrEmptyCombinator if ctcs is empty.
func CtcUnion(ctcs ...Contractor) Contractor {
	if len(ctcs) == 0 {
		panic(ErrEmptyCombinator)
	}
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		acc := ctcs[0].Contract(x)
		for _, c := range ctcs[1:] {
			acc = acc.Hull(c.Contract(x))
		}
		return acc
	})
}

// CtcNot builds the complementary Contractor of a Separator: it keeps the
// "out" half, i.e. it contracts x against the negation of s's constraint.
func CtcNot(s Separator) Contractor {
	return OuterContractor(s)
}

// CtcFixpoint repeatedly applies c to x until one application keeps at
// least ratio (0 < ratio < 1) of the previous box's volume, or the box
// becomes empty; when the previous volume is 0 or +Inf it stops after that
// application (see interval.RatioVolume). This is the standard way to
// compose a family of weak Contractors into
// one that reaches a stable consensus (e.g. Gauss-Seidel-style iteration
// over CtcInverse terms of a linear system).
func CtcFixpoint(c Contractor, ratio float64) Contractor {
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		cur := x
		for {
			next := c.Contract(cur)
			if next.IsEmpty() {
				return next
			}
			if interval.RatioVolume(next, cur) >= ratio {
				return next
			}
			cur = next
		}
	})
}

// cartProdMember pairs a sub-Contractor with the [lo,hi] (inclusive)
// column range of the full box it operates on.
type cartProdMember struct {
	lo, hi int
	ctc    Contractor
}

// CtcCartProd builds the Cartesian-product Contractor: each member
// contracts only its own disjoint [lo,hi] column range of x, the ranges
// read left to right and required to exactly partition [0,n). Panics with
// ErrDimensionMismatch if the ranges do not partition the box, or with
// ErrEmptyCombinator if no members are given.
func CtcCartProd(n int, members ...cartProdMember) Contractor {
	if len(members) == 0 {
		panic(ErrEmptyCombinator)
	}
	covered := 0
	for _, m := range members {
		if m.lo != covered {
			panic(ErrDimensionMismatch)
		}
		covered = m.hi + 1
	}
	if covered != n {
		panic(ErrDimensionMismatch)
	}
	return ContractorFunc(func(x interval.IntervalVector) interval.IntervalVector {
		if x.Size() != n {
			panic(ErrDimensionMismatch)
		}
		comps := make([]interval.Interval, 0, n)
		for _, m := range members {
			sub := m.ctc.Contract(x.Subvector(m.lo, m.hi))
			comps = append(comps, sub.Components()...)
		}
		return interval.NewIntervalVector(comps...)
	})
}

// CartProdMember declares one CtcCartProd member over the inclusive
// column range [lo,hi].
func CartProdMember(lo, hi int, ctc Contractor) cartProdMember {
	return cartProdMember{lo: lo, hi: hi, ctc: ctc}
}
