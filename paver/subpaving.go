package paver

import "github.com/damien-masse/codac-sub002/interval"

// Subpaving is a read-only view over a Paving restricted to leaves of one
// Label, for consumers like plotting or set-membership queries (spec.md
// §4.4).
type Subpaving struct {
	label Label
	boxes []interval.IntervalVector
}

// Subpaving collects every leaf of p matching label into a Subpaving view.
func (p *Paving) Subpaving(label Label) Subpaving {
	var boxes []interval.IntervalVector
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			if n.Label == label {
				boxes = append(boxes, n.Box)
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(p.Root)
	return Subpaving{label: label, boxes: boxes}
}

// Boxes returns every box in the view.
func (s Subpaving) Boxes() []interval.IntervalVector { return s.boxes }

// Label reports which Label this view was restricted to.
func (s Subpaving) Label() Label { return s.label }

// Volume returns the sum of every box's volume in the view.
func (s Subpaving) Volume() float64 {
	total := 0.0
	for _, b := range s.boxes {
		total += b.Volume()
	}
	return total
}

// Contains reports whether any box in the view contains p.
func (s Subpaving) Contains(p []float64) bool {
	for _, b := range s.boxes {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
