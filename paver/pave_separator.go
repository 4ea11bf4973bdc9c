package paver

import (
	"github.com/damien-masse/codac-sub002/contractor"
	"github.com/damien-masse/codac-sub002/interval"
)

// PaveSeparator implements pave(x0, S, eps): a box labels inside/outside
// as soon as a Separator empties one of its two output components
// (meaning the other component already equals the whole box); otherwise
// it is still undecided and gets bisected, a surviving box of diameter
// <= eps falling back to boundary.
func PaveSeparator(x0 interval.IntervalVector, s contractor.Separator, eps float64, opts ...Option) (*Paving, error) {
	// 1. Validate inputs.
	if s == nil {
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

		in, out := s.Separate(f.node.Box)
		switch {
		case in.IsEmpty():
			f.node.Label = Outside
			continue
		case out.IsEmpty():
			f.node.Label = Inside
			continue
		}

		if f.node.Box.Diam() <= eps || (o.MaxDepth > 0 && f.depth >= o.MaxDepth) {
			f.node.Label = Boundary
			continue
		}

		left, right := f.node.Box.BisectWidest(o.BisectRatio)
		f.node.Left = &Node{Box: left}
		f.node.Right = &Node{Box: right}
		stack = append(stack, stackFrame{node: f.node.Left, depth: f.depth + 1})
		stack = append(stack, stackFrame{node: f.node.Right, depth: f.depth + 1})
	}

	return &Paving{Root: root, opts: o}, nil
}
