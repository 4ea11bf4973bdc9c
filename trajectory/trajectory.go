package trajectory

import (
	"sort"

	"github.com/damien-masse/codac-sub002/expr"
	"github.com/damien-masse/codac-sub002/interval"
)

// Trajectory is a crisp, time-indexed value, per spec.md §9's merged
// Trajectory/Traj pair. Grounded on
// original_source/python/src/core/trajectory/codac2_py_TrajBase.h's
// TrajectoryBase.
type Trajectory[T Value] interface {
	// TDomain returns the trajectory's declared time span.
	TDomain() interval.Interval
	// Size returns the sample dimension (1 for a scalar trajectory).
	Size() int
	// At evaluates the trajectory at t, returning ErrTimeOutOfDomain if t
	// falls outside TDomain().
	At(t float64) (T, error)
	// Codomain returns the hull of every value the trajectory takes over
	// its whole domain, as an interval.Interval or interval.IntervalVector.
	Codomain() any
}

// SampledTrajectory is a map of sample instants to values with linear
// interpolation between consecutive samples, grounded on
// src/core/trajectory/codac2_SampledTrajectory.h.
type SampledTrajectory[T Value] struct {
	times  []float64
	values map[float64]T
	dim    int
}

// NewSampledTrajectory builds a SampledTrajectory from a time→value map.
// Panics with ErrDimensionMismatch if vector samples have inconsistent
// length.
func NewSampledTrajectory[T Value](samples map[float64]T) *SampledTrajectory[T] {
	st := &SampledTrajectory[T]{values: make(map[float64]T, len(samples))}
	for t, v := range samples {
		if st.dim == 0 {
			st.dim = sizeV(v)
		} else if sizeV(v) != st.dim {
			panic(ErrDimensionMismatch)
		}
		st.times = append(st.times, t)
		st.values[t] = v
	}
	sort.Float64s(st.times)
	return st
}

// TDomain returns [first sample time, last sample time], or the empty
// interval if there are no samples.
func (st *SampledTrajectory[T]) TDomain() interval.Interval {
	if len(st.times) == 0 {
		return interval.Empty()
	}
	return interval.NewInterval(st.times[0], st.times[len(st.times)-1])
}

// Size returns the sample dimension.
func (st *SampledTrajectory[T]) Size() int { return st.dim }

// NbSamples returns the number of stored sample points (distinct from
// Size, which is the value dimension — mirrors the original's
// nb_samples()/size() split).
func (st *SampledTrajectory[T]) NbSamples() int { return len(st.times) }

// At linearly interpolates between the two bracketing samples, or returns
// the exact sample if t coincides with one.
func (st *SampledTrajectory[T]) At(t float64) (T, error) {
	var zero T
	if len(st.times) == 0 {
		return zero, ErrEmptyTrajectory
	}
	dom := st.TDomain()
	if !dom.Contains(t) {
		return zero, ErrTimeOutOfDomain
	}

	i := sort.SearchFloat64s(st.times, t)
	if i < len(st.times) && st.times[i] == t {
		return st.values[st.times[i]], nil
	}
	lo, hi := st.times[i-1], st.times[i]
	vLo, vHi := st.values[lo], st.values[hi]
	ratio := (t - lo) / (hi - lo)
	return addV(vLo, scaleV(subV(vHi, vLo), ratio)), nil
}

// Codomain returns the hull of every sample value.
func (st *SampledTrajectory[T]) Codomain() any {
	if len(st.times) == 0 {
		if st.dim <= 1 {
			return interval.Empty()
		}
		return interval.ConstantVector(st.dim, interval.Empty())
	}
	acc := domainOfV(st.values[st.times[0]])
	for _, t := range st.times[1:] {
		acc = hullInto(acc, st.values[t])
	}
	return acc
}

// Eval returns the hull of every value over span, widened at span's
// endpoints by interpolation (the original's operator()(Interval)).
func (st *SampledTrajectory[T]) Eval(span interval.Interval) (any, error) {
	if len(st.times) == 0 {
		return nil, ErrEmptyTrajectory
	}
	dom := st.TDomain()
	if !dom.ContainsInterval(span) {
		return nil, ErrTimeOutOfDomain
	}

	loVal, err := st.At(span.Lo())
	if err != nil {
		return nil, err
	}
	hiVal, err := st.At(span.Hi())
	if err != nil {
		return nil, err
	}
	acc := domainOfV(loVal)
	acc = hullInto(acc, hiVal)
	for _, t := range st.times {
		if t > span.Lo() && t < span.Hi() {
			acc = hullInto(acc, st.values[t])
		}
	}
	return acc, nil
}

// AnalyticTrajectory wraps a one-variable AnalyticFunction of time,
// evaluated exactly (midpoint of its interval argument) rather than
// enclosed, grounded on
// python/src/core/trajectory/codac2_py_AnalyticTraj.cpp.
type AnalyticTrajectory struct {
	f      *expr.AnalyticFunction
	domain interval.Interval
}

// NewAnalyticTrajectory wraps f (a scalar-argument AnalyticFunction) over
// domain.
func NewAnalyticTrajectory(f *expr.AnalyticFunction, domain interval.Interval) *AnalyticTrajectory {
	return &AnalyticTrajectory{f: f, domain: domain}
}

// TDomain returns the declared domain.
func (at *AnalyticTrajectory) TDomain() interval.Interval { return at.domain }

// At evaluates f at the exact instant t via RealEval.
func (at *AnalyticTrajectory) At(t float64) (float64, error) {
	if !at.domain.Contains(t) {
		return 0, ErrTimeOutOfDomain
	}
	out := at.f.RealEval(interval.NewInterval(t, t))
	return out[0], nil
}

// Size returns f's output dimension (1 for a scalar AnalyticFunction).
func (at *AnalyticTrajectory) Size() int {
	switch at.f.OutKind() {
	case expr.KindScalar:
		return 1
	default:
		out := at.f.RealEval(interval.NewInterval(at.domain.Lo(), at.domain.Lo()))
		return len(out)
	}
}

// Codomain evaluates f over the whole domain using the AEG's own interval
// enclosure (sound, unlike At's midpoint evaluation).
func (at *AnalyticTrajectory) Codomain() any {
	return at.f.Eval(expr.NATURAL, at.domain)
}
