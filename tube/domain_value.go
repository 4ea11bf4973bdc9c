package tube

import "github.com/damien-masse/codac-sub002/interval"

// Domain is the closed union of codomain types a SlicedTube may carry,
// the Go-generic translation of spec.md §3's "SlicedTube<T> (T = Interval
// or IntervalVector)". See DESIGN.md's Go-generics note for why this
// package and trajectory are the only places in the module using type
// parameters.
type Domain interface {
	interval.Interval | interval.IntervalVector
}

// hullD returns the componentwise hull of a and b, whichever concrete
// Domain type T is.
func hullD[T Domain](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.Hull(any(b).(interval.Interval))).(T)
	case interval.IntervalVector:
		return any(av.Hull(any(b).(interval.IntervalVector))).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// interD returns the componentwise intersection of a and b.
func interD[T Domain](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.Inter(any(b).(interval.Interval))).(T)
	case interval.IntervalVector:
		return any(av.Inter(any(b).(interval.IntervalVector))).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// isEmptyD reports whether v is empty.
func isEmptyD[T Domain](v T) bool {
	return any(v).(interface{ IsEmpty() bool }).IsEmpty()
}

// addD adds a and b.
func addD[T Domain](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.Add(any(b).(interval.Interval))).(T)
	case interval.IntervalVector:
		return any(av.Add(any(b).(interval.IntervalVector))).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// subD subtracts b from a.
func subD[T Domain](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.Sub(any(b).(interval.Interval))).(T)
	case interval.IntervalVector:
		return any(av.Sub(any(b).(interval.IntervalVector))).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// scaleD multiplies v componentwise by the scalar interval s.
func scaleD[T Domain](v T, s interval.Interval) T {
	switch av := any(v).(type) {
	case interval.Interval:
		return any(av.Mul(s)).(T)
	case interval.IntervalVector:
		return any(av.ScalarMul(s)).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// emptyLikeD returns a value of the same shape as v, set to the empty
// interval in every component.
func emptyLikeD[T Domain](v T) T {
	switch av := any(v).(type) {
	case interval.Interval:
		return any(interval.Empty()).(T)
	case interval.IntervalVector:
		return any(interval.ConstantVector(av.Size(), interval.Empty())).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}

// wholeLikeD returns a value of the same shape as v, set to (-inf,+inf)
// in every component — the "no information" fallback entry/exit sides of
// CtcDeriv's envelope sweep use when a slice has no neighbor to read
// from.
func wholeLikeD[T Domain](v T) T {
	switch av := any(v).(type) {
	case interval.Interval:
		return any(interval.Whole()).(T)
	case interval.IntervalVector:
		return any(interval.WholeVector(av.Size())).(T)
	default:
		panic("tube: unsupported Domain type")
	}
}
