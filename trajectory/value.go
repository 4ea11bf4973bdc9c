package trajectory

import "github.com/damien-masse/codac-sub002/interval"

// Value is the closed union of sample types a Trajectory may carry: a
// scalar time function, or a vector-valued one. The Go-generic
// translation of the original's Wrapper<T>::Domain split, mirroring
// tube.Domain's narrow use of type parameters (see DESIGN.md's
// Go-generics design note).
type Value interface {
	float64 | []float64
}

// sizeV returns the dimension of v (1 for a scalar).
func sizeV[T Value](v T) int {
	switch av := any(v).(type) {
	case float64:
		return 1
	case []float64:
		return len(av)
	default:
		panic("trajectory: unsupported Value type")
	}
}

// addV adds a and b componentwise.
func addV[T Value](a, b T) T {
	switch av := any(a).(type) {
	case float64:
		return any(av + any(b).(float64)).(T)
	case []float64:
		bv := any(b).([]float64)
		out := make([]float64, len(av))
		for i := range av {
			out[i] = av[i] + bv[i]
		}
		return any(out).(T)
	default:
		panic("trajectory: unsupported Value type")
	}
}

// subV subtracts b from a componentwise.
func subV[T Value](a, b T) T {
	switch av := any(a).(type) {
	case float64:
		return any(av - any(b).(float64)).(T)
	case []float64:
		bv := any(b).([]float64)
		out := make([]float64, len(av))
		for i := range av {
			out[i] = av[i] - bv[i]
		}
		return any(out).(T)
	default:
		panic("trajectory: unsupported Value type")
	}
}

// scaleV multiplies v componentwise by the scalar s.
func scaleV[T Value](v T, s float64) T {
	switch av := any(v).(type) {
	case float64:
		return any(av * s).(T)
	case []float64:
		out := make([]float64, len(av))
		for i, x := range av {
			out[i] = x * s
		}
		return any(out).(T)
	default:
		panic("trajectory: unsupported Value type")
	}
}

// domainOfV returns the degenerate (hull of one point) interval
// enclosure of v: an interval.Interval for a scalar, an
// interval.IntervalVector for a vector.
func domainOfV[T Value](v T) any {
	switch av := any(v).(type) {
	case float64:
		return interval.NewInterval(av, av)
	case []float64:
		comps := make([]interval.Interval, len(av))
		for i, x := range av {
			comps[i] = interval.NewInterval(x, x)
		}
		return interval.NewIntervalVector(comps...)
	default:
		panic("trajectory: unsupported Value type")
	}
}

// hullInto widens acc (an any of the shape matching v) to also
// contain v.
func hullInto[T Value](acc any, v T) any {
	switch av := acc.(type) {
	case interval.Interval:
		x := any(v).(float64)
		return av.Hull(interval.NewInterval(x, x))
	case interval.IntervalVector:
		vv := any(v).([]float64)
		comps := make([]interval.Interval, av.Size())
		for i := 0; i < av.Size(); i++ {
			comps[i] = av.At(i).Hull(interval.NewInterval(vv[i], vv[i]))
		}
		return interval.NewIntervalVector(comps...)
	default:
		panic("trajectory: unsupported Domain type")
	}
}
