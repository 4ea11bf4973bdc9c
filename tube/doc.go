// Package tube implements the Sliced Tube System (STS): time-indexed
// interval-valued trajectories built from a shared TDomain of TSlices, per
// spec.md §3/§4.3. SlicedTube[T] maps each TSlice to a Slice[T] codomain;
// CtcDeriv and CtcEval couple a tube with its derivative tube and with
// point observations, respectively, to drive a fixed point over the whole
// tube.
package tube
