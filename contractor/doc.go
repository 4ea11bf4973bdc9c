// Package contractor implements the Contractor/Separator Algebra (CSA):
// operators that narrow an interval.IntervalVector box without discarding
// any point consistent with a constraint, plus their Separator duals that
// additionally classify points as outside the constraint's feasible set.
//
// Every Contractor and Separator here is built from an expr.AnalyticFunction
// (for the "inverse" family) or composed from other Contractors/Separators
// (the combinator family); none retains mutable state between calls.
package contractor
