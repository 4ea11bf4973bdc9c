// Package interval provides bracketed (outward-rounded) real arithmetic:
// scalar Interval, IntervalVector and IntervalMatrix, plus the forward and
// reverse ("backward") operator rules that the expr and contractor packages
// propagate across.
//
// Interval is a closed, connected subset of the extended reals; it may be
// empty or unbounded. All operations are sound: the true mathematical
// result is always contained in the returned bracket. Reverse rules never
// drop a real solution, only narrow around one.
//
//	github.com/damien-masse/codac-sub002/interval
package interval
