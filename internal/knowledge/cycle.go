package knowledge

// CycleResult is the outcome of a cycle check over a candidate edge set.
// When Valid is false, Cycle holds the first discovered cycle as a connected,
// ordered edge list (a self-loop is a single edge).
type CycleResult struct {
	Valid bool
	Cycle []Edge
}

// DetectCycle reports whether the given directed edge set contains a cycle.
// Traversal order is the stable first-encounter order of nodes while scanning
// the edge list, so identical input always yields the identical result.
// Runs in O(V+E) with an explicit stack; safe to call on every prospective
// mutation.
func DetectCycle(edges []Edge) CycleResult {
	var order []string
	adj := make(map[string][]string)
	seen := make(map[string]bool)

	for _, e := range edges {
		if !seen[e.Source] {
			seen[e.Source] = true
			order = append(order, e.Source)
		}
		if !seen[e.Target] {
			seen[e.Target] = true
			order = append(order, e.Target)
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	visited := make(map[string]bool)
	for _, root := range order {
		if visited[root] {
			continue
		}
		if cycle := searchFrom(root, adj, visited); cycle != nil {
			return CycleResult{Valid: false, Cycle: cycle}
		}
	}
	return CycleResult{Valid: true}
}

// frame is one level of the explicit DFS stack: a node and the index of the
// next neighbor to try.
type frame struct {
	node string
	next int
}

// searchFrom runs an iterative DFS from root, tracking the active recursion
// path. When it reaches a node already on the path, the cycle is closed and
// reconstructed from the path suffix starting at the repeated node.
func searchFrom(root string, adj map[string][]string, visited map[string]bool) []Edge {
	stack := []frame{{node: root}}
	onStack := map[string]bool{root: true}
	var path []Edge // edges along the active stack, len(path) == len(stack)-1

	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := adj[top.node]

		if top.next < len(neighbors) {
			nb := neighbors[top.next]
			top.next++

			if onStack[nb] {
				closing := Edge{Source: top.node, Target: nb}
				start := -1
				for i, e := range path {
					if e.Source == nb {
						start = i
						break
					}
				}
				if start < 0 {
					// nb == top.node: a self-loop, the edge alone is the cycle.
					return []Edge{closing}
				}
				cycle := append([]Edge{}, path[start:]...)
				return append(cycle, closing)
			}
			if visited[nb] {
				continue
			}

			visited[nb] = true
			onStack[nb] = true
			path = append(path, Edge{Source: top.node, Target: nb})
			stack = append(stack, frame{node: nb})
			continue
		}

		onStack[top.node] = false
		stack = stack[:len(stack)-1]
		if len(path) > 0 {
			path = path[:len(path)-1]
		}
	}
	return nil
}
