package tube

// Slice is the codomain of one TSlice for a given SlicedTube[T], per
// spec.md §3's "SlicedTube<T> maps each TSlice ... to a Slice<T>".
type Slice[T Domain] struct {
	ts       *TSlice
	codomain T
}

// TSlice returns the time slice this Slice values over.
func (s *Slice[T]) TSlice() *TSlice { return s.ts }

// Codomain returns the slice's current interval value.
func (s *Slice[T]) Codomain() T { return s.codomain }

// SetCodomain overwrites the slice's value (used by contractors to record
// a narrowing).
func (s *Slice[T]) SetCodomain(v T) { s.codomain = v }

// IsEmpty reports whether the slice's codomain is empty.
func (s *Slice[T]) IsEmpty() bool { return isEmptyD(s.codomain) }
