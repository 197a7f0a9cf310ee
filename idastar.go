package wayfind

// idaFrame is one level of the explicit depth-first stack IDAStar walks,
// standing in for the call stack so search depth is not bounded by Go's
// goroutine stack.
type idaFrame[N comparable, C Cost] struct {
	node  N
	g     C
	edges []WeightedEdge[N, C]
	next  int
}

// IDAStar runs iterative-deepening A*: repeated depth-first probes bounded
// by a rising f-cost threshold, using O(depth) memory instead of an A*
// open set. heuristic must be admissible. A visited set scoped to the
// current branch guards against cycles; it is cleared on backtrack, so
// revisiting a node via a different branch is allowed.
func IDAStar[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	heuristic func(N) C,
	success func(N) bool,
) (Path[N], C, bool) {
	var zero C
	if success(start) {
		return Path[N]{start}, zero, true
	}
	bound := heuristic(start)

	for {
		stack := []idaFrame[N, C]{{node: start, g: zero, edges: successors(start)}}
		onPath := map[N]bool{start: true}
		path := []N{start}
		var nextBound C
		hasNextBound := false
		found := false
		var foundCost C

		for len(stack) > 0 && !found {
			top := &stack[len(stack)-1]
			if top.next >= len(top.edges) {
				delete(onPath, top.node)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}
			edge := top.edges[top.next]
			top.next++
			if onPath[edge.To] {
				continue // branch-local cycle guard
			}
			g2 := top.g + edge.Cost
			f2 := g2 + heuristic(edge.To)
			if lessCost(bound, f2) {
				if !hasNextBound || lessCost(f2, nextBound) {
					nextBound, hasNextBound = f2, true
				}
				continue
			}
			path = append(path, edge.To)
			if success(edge.To) {
				found = true
				foundCost = g2
				break
			}
			onPath[edge.To] = true
			stack = append(stack, idaFrame[N, C]{node: edge.To, g: g2, edges: successors(edge.To)})
		}

		if found {
			result := make(Path[N], len(path))
			copy(result, path)
			return result, foundCost, true
		}
		if !hasNextBound {
			return nil, zero, false
		}
		bound = nextBound
	}
}
