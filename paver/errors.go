package paver

import "errors"

var (
	// ErrNilDriver is returned when Pave/PaveSeparator is called with a
	// nil Contractor/Separator.
	ErrNilDriver = errors.New("paver: nil contractor/separator")

	// ErrNonPositiveEps is returned when the requested boundary precision
	// eps is not strictly positive.
	ErrNonPositiveEps = errors.New("paver: eps must be > 0")

	// ErrEmptyInitialBox is returned when the starting box x0 is already
	// empty; there is nothing to subdivide.
	ErrEmptyInitialBox = errors.New("paver: initial box is empty")
)
