package trajectory

import "errors"

var (
	// ErrEmptyTrajectory indicates an operation requiring at least one
	// sample was attempted on an empty SampledTrajectory.
	ErrEmptyTrajectory = errors.New("trajectory: empty trajectory")

	// ErrTimeOutOfDomain indicates a requested time lies outside the
	// trajectory's declared time domain.
	ErrTimeOutOfDomain = errors.New("trajectory: time outside domain")

	// ErrDimensionMismatch indicates a vector-valued sample did not match
	// the trajectory's established dimension.
	ErrDimensionMismatch = errors.New("trajectory: dimension mismatch")
)
