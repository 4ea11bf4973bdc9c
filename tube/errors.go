package tube

import "errors"

var (
	// ErrNonPositiveSpan indicates a TDomain was requested over t0 >= tf.
	ErrNonPositiveSpan = errors.New("tube: domain span must be positive")

	// ErrNonPositiveStep indicates a sampled TDomain was requested with
	// dt <= 0.
	ErrNonPositiveStep = errors.New("tube: sampling step must be positive")

	// ErrTimeOutOfDomain indicates a requested time lies outside
	// [t0, tf].
	ErrTimeOutOfDomain = errors.New("tube: time outside domain span")

	// ErrTDomainMismatch indicates two tubes or a tube and a time used
	// together were not registered on the same TDomain (spec.md §7.5,
	// a programming error).
	ErrTDomainMismatch = errors.New("tube: mismatched TDomain")
)
