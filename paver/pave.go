package paver

import (
	"github.com/damien-masse/codac-sub002/contractor"
	"github.com/damien-masse/codac-sub002/interval"
)

// stackFrame pairs a pending Node with its bisection depth, so MaxDepth
// can be enforced without recursion (spec.md §4.4's "explicit stack").
type stackFrame struct {
	node  *Node
	depth int
}

// Pave implements pave(x0, C, eps): depth-first subdivision of x0 driven
// by a single Contractor. A box contracts to empty -> outside; a surviving
// box of diameter <= eps -> boundary; otherwise bisect the widest
// dimension and recurse on both halves.
func Pave(x0 interval.IntervalVector, c contractor.Contractor, eps float64, opts ...Option) (*Paving, error) {
	// 1. Validate inputs.
	if c == nil {
		return nil, ErrNilDriver
	}
	if eps <= 0 {
		return nil, ErrNonPositiveEps
	}
	if x0.IsEmpty() {
		return nil, ErrEmptyInitialBox
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed the DFS stack with the root.
	root := &Node{Box: x0}
	stack := []stackFrame{{node: root, depth: 0}}

	// 4. Drain the stack, labeling or bisecting each frame.
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		contracted := c.Contract(f.node.Box)
		if contracted.IsEmpty() {
			f.node.Label = Outside
			continue
		}
		f.node.Box = contracted

		if contracted.Diam() <= eps || (o.MaxDepth > 0 && f.depth >= o.MaxDepth) {
			f.node.Label = Boundary
			continue
		}

		left, right := contracted.BisectWidest(o.BisectRatio)
		f.node.Left = &Node{Box: left}
		f.node.Right = &Node{Box: right}
		stack = append(stack, stackFrame{node: f.node.Left, depth: f.depth + 1})
		stack = append(stack, stackFrame{node: f.node.Right, depth: f.depth + 1})
	}

	return &Paving{Root: root, opts: o}, nil
}
