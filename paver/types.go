package paver

import "github.com/damien-masse/codac-sub002/interval"

// Label classifies a Paving leaf box, per spec.md §3's "Paving node".
type Label int

const (
	// Unknown marks an internal node (not yet a leaf).
	Unknown Label = iota
	// Inside marks a leaf fully consistent with the constraint.
	Inside
	// Outside marks a leaf the contractor/separator emptied.
	Outside
	// Boundary marks a leaf left unresolved: too small to bisect further
	// (diam <= eps), or at Options.MaxDepth.
	Boundary
)

func (l Label) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Node is one box of the Paving tree: leaves carry a Label; internal
// nodes carry Left/Right children from a single bisection and Label ==
// Unknown.
type Node struct {
	Box         interval.IntervalVector
	Label       Label
	Left, Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Paving is the result of a Pave/PaveSeparator/Sivia run: the root Node of
// the bisection tree plus the options it ran with.
type Paving struct {
	Root *Node
	opts Options
}

// Options configures a paving run.
type Options struct {
	// BisectRatio is the split point used for each bisection, per
	// spec.md §4.2's "ratio 0.49" default (slightly off-center avoids
	// repeatedly re-splitting exactly the same point under symmetric
	// constraints).
	BisectRatio float64

	// MaxDepth bounds recursion depth to avoid unbounded subdivision on
	// pathological domains (spec.md §4.4); 0 means unbounded.
	MaxDepth int
}

// DefaultOptions returns the paver's default configuration: bisection
// ratio 0.49, unbounded depth.
func DefaultOptions() Options {
	return Options{BisectRatio: 0.49, MaxDepth: 0}
}

// Option configures a Options value.
type Option func(*Options)

// WithBisectRatio overrides the default 0.49 bisection ratio.
func WithBisectRatio(ratio float64) Option {
	return func(o *Options) { o.BisectRatio = ratio }
}

// WithMaxDepth bounds recursion to the given depth (0 = unbounded).
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}
