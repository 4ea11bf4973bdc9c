package contractor

import "errors"

var (
	// ErrEmptyCombinator indicates a combinator (CtcInter, SepUnion, ...)
	// was built with zero member contractors/separators.
	ErrEmptyCombinator = errors.New("contractor: combinator requires at least one member")

	// ErrDimensionMismatch indicates CtcCartProd subspace index
	// ranges do not partition the full box as declared.
	ErrDimensionMismatch = errors.New("contractor: subspace dimensions do not match the box")
)
