// Package expr implements the Analytic Expression Graph (AEG): immutable
// DAGs of variables, constants, and operator applications, evaluated in
// natural, centered, and differentiated modes over interval.Interval /
// IntervalVector / IntervalMatrix values, with a reverse-mode "backward"
// contracting pass on every node.
//
// Nodes are built by composing *Node values returned from package-level
// operator constructors (Add, Mul, Sqrt, Component, ...); cycles are
// impossible since an operator can only consume already-constructed nodes.
// Structural sharing (a node referenced from two parents) is intentional
// and is handled by memoizing each node's valuation per top-level
// AnalyticFunction.Eval call, keyed by the node's unique id, so a shared
// subexpression is only ever evaluated once per call (spec.md §4.1).
package expr
