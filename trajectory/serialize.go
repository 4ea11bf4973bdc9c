package trajectory

import (
	"encoding/binary"
	"io"
)

// WriteSampledTrajectory writes st as a little-endian binary stream of
// {sample_count; (tᵢ, xᵢ)ᵢ}, per spec.md §6's "Persisted state": a
// uint64 dimension, a uint64 sample count, then each sample as a float64
// time followed by dim float64 components, in ascending time order.
func WriteSampledTrajectory[T Value](w io.Writer, st *SampledTrajectory[T]) error {
	dim := st.dim
	if dim == 0 {
		dim = 1
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(dim)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(st.times))); err != nil {
		return err
	}
	for _, t := range st.times {
		if err := binary.Write(w, binary.LittleEndian, t); err != nil {
			return err
		}
		v := st.values[t]
		switch av := any(v).(type) {
		case float64:
			if err := binary.Write(w, binary.LittleEndian, av); err != nil {
				return err
			}
		case []float64:
			if err := binary.Write(w, binary.LittleEndian, av); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadSampledTrajectory reads a stream written by WriteSampledTrajectory.
func ReadSampledTrajectory[T Value](r io.Reader) (*SampledTrajectory[T], error) {
	var dim, count uint64
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}

	samples := make(map[float64]T, count)
	for i := uint64(0); i < count; i++ {
		var t float64
		if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
			return nil, err
		}

		var zero T
		switch any(zero).(type) {
		case float64:
			var x float64
			if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
				return nil, err
			}
			samples[t] = any(x).(T)
		case []float64:
			xs := make([]float64, dim)
			if err := binary.Read(r, binary.LittleEndian, xs); err != nil {
				return nil, err
			}
			samples[t] = any(xs).(T)
		}
	}
	return NewSampledTrajectory(samples), nil
}
