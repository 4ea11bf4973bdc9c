// Package paver implements the generic set-paving driver of spec.md §4.4:
// given a starting box and a Contractor or Separator, it recursively
// bisects along the widest dimension and classifies each resulting leaf as
// inside, outside, or boundary, producing a Paving tree. SIVIA (Set
// Inversion Via Interval Analysis) is the special case driven by
// contractor.SepInverse.
package paver
