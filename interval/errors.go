package interval

import "errors"

// Sentinel errors for the interval package. Algorithms MUST return these
// (wrapped with fmt.Errorf("%w", ...) where context helps) instead of
// panicking on user-triggered conditions; tests check them via errors.Is.
// Panics are reserved for programmer errors (negative size, nil receiver).
var (
	// ErrDimensionMismatch indicates incompatible vector/matrix shapes.
	ErrDimensionMismatch = errors.New("interval: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0,n) on a vector or matrix.
	ErrOutOfRange = errors.New("interval: index out of range")

	// ErrSingular indicates a linear system could not be narrowed because
	// its interval matrix contains a diagonal entry covering zero with no
	// usable pivot.
	ErrSingular = errors.New("interval: singular or non-narrowable system")

	// ErrNonSquare indicates a square interval matrix was required.
	ErrNonSquare = errors.New("interval: matrix is not square")
)
