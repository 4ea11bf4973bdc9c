package expr

// backwardPass implements the DAG-level "backward (contracting) evaluation"
// of spec.md §4.1: given a tightened enclosure y of root's output, narrow
// every Variable leaf's current hull without ever discarding a real
// solution, then return the per-argument result in args order.
//
// Nodes are processed in topological order (a node's Backward only runs
// once every parent that reaches it has already contributed its own
// narrowing), so a shared sub-expression is contracted by the
// intersection of every path that reaches it, per spec.md §4.1's
// "structural sharing... narrowing merges via intersection at shared
// nodes" rule.
func backwardPass(root *Node, args []*Variable, vars ValuesMap, y Value) []Value {
	n := 0
	for _, a := range args {
		n += a.Size()
	}
	cache := make(map[uint64]valuation, 16)
	root.fwdEval(vars, cache, n)

	indegree := make(map[uint64]int)
	visited := make(map[uint64]bool)
	var collect func(nd *Node)
	collect = func(nd *Node) {
		if visited[nd.id] {
			return
		}
		visited[nd.id] = true
		for _, c := range nd.children {
			indegree[c.id]++
			collect(c)
		}
	}
	collect(root)

	current := make(map[uint64]Value, len(cache))
	for id, v := range cache {
		current[id] = v.a
	}
	current[root.id] = intersectValue(current[root.id], y)

	queue := []*Node{root}
	processed := make(map[uint64]bool)
	for len(queue) > 0 {
		nd := queue[0]
		queue = queue[1:]
		if processed[nd.id] {
			continue
		}
		processed[nd.id] = true
		if nd.op == nil {
			continue
		}
		childVals := make([]Value, len(nd.children))
		for i, c := range nd.children {
			childVals[i] = current[c.id]
		}
		narrowed := nd.op.Backward(current[nd.id], childVals)
		for i, c := range nd.children {
			current[c.id] = intersectValue(current[c.id], narrowed[i])
			indegree[c.id]--
			if indegree[c.id] == 0 {
				queue = append(queue, c)
			}
		}
	}

	perVar := make(map[uint64]Value)
	seen := make(map[uint64]bool)
	var collectVars func(nd *Node)
	collectVars = func(nd *Node) {
		if seen[nd.id] {
			return
		}
		seen[nd.id] = true
		if nd.variable != nil {
			if existing, ok := perVar[nd.variable.id]; ok {
				perVar[nd.variable.id] = intersectValue(existing, current[nd.id])
			} else {
				perVar[nd.variable.id] = current[nd.id]
			}
		}
		for _, c := range nd.children {
			collectVars(c)
		}
	}
	collectVars(root)

	out := make([]Value, len(args))
	for i, a := range args {
		if v, ok := perVar[a.id]; ok {
			out[i] = v
		} else {
			out[i] = vars[a.id].a
		}
	}
	return out
}
