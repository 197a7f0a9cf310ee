package wayfind

import "github.com/samber/lo"

// BFS runs breadth-first search from start over an unweighted successors
// function, returning the shortest path by edge count to the first node
// satisfying success, or ok=false if none is reachable. Neighbours are
// enqueued in successor order, so ties among equal-length paths resolve
// deterministically by discovery order.
func BFS[N comparable](start N, successors func(N) []N, success func(N) bool) (Path[N], bool) {
	if success(start) {
		return Path[N]{start}, true
	}
	nodes := []N{start}
	parent := []int{0}
	visited := map[N]int{start: 0}
	queue := []int{0}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		node := nodes[idx]
		for _, next := range successors(node) {
			if _, seen := visited[next]; seen {
				continue
			}
			nidx := len(nodes)
			nodes = append(nodes, next)
			parent = append(parent, idx)
			visited[next] = nidx
			if success(next) {
				return Path[N](buildIndexPath(nodes, parent, nidx)), true
			}
			queue = append(queue, nidx)
		}
	}
	return nil, false
}

// buildIndexPath reconstructs the node sequence from the root (whose
// parent index equals its own index) to idx, both endpoints included.
func buildIndexPath[N comparable](nodes []N, parent []int, idx int) []N {
	var rev []N
	for {
		rev = append(rev, nodes[idx])
		p := parent[idx]
		if p == idx {
			break
		}
		idx = p
	}
	return lo.Reverse(rev)
}

// BFSReachable is one node settled by a BFSReach stream, in the order
// BFS expands it.
type BFSReachable[N comparable] struct {
	Node   N
	Parent N
}

// BFSReachIter is a lazy, single-pass stream of nodes in BFS expansion
// order (non-decreasing hop count from start).
type BFSReachIter[N comparable] struct {
	nodes      []N
	parent     []int
	visited    map[N]int
	queue      []int
	successors func(N) []N
	pos        int
}

// BFSReach returns a stream of nodes reachable from start in
// non-decreasing hop order, without committing to any goal.
func BFSReach[N comparable](start N, successors func(N) []N) *BFSReachIter[N] {
	return &BFSReachIter[N]{
		nodes:      []N{start},
		parent:     []int{0},
		visited:    map[N]int{start: 0},
		queue:      []int{0},
		successors: successors,
	}
}

// Next settles one more node and returns it, or ok=false once the
// reachable set is exhausted.
func (it *BFSReachIter[N]) Next() (BFSReachable[N], bool) {
	if it.pos >= len(it.queue) {
		return BFSReachable[N]{}, false
	}
	idx := it.queue[it.pos]
	it.pos++
	node := it.nodes[idx]
	parentNode := it.nodes[it.parent[idx]]
	for _, next := range it.successors(node) {
		if _, seen := it.visited[next]; seen {
			continue
		}
		nidx := len(it.nodes)
		it.nodes = append(it.nodes, next)
		it.parent = append(it.parent, idx)
		it.visited[next] = nidx
		it.queue = append(it.queue, nidx)
	}
	return BFSReachable[N]{Node: node, Parent: parentNode}, true
}

// BFSLoop finds a shortest cycle through start: the shortest path that
// leaves start via one edge and returns to it via a (possibly different)
// path, or ok=false if start lies on no cycle.
func BFSLoop[N comparable](start N, successors func(N) []N) (Path[N], bool) {
	var best Path[N]
	found := false
	for _, first := range successors(start) {
		rest, ok := bfsAvoiding(first, start, successors, start)
		if !ok {
			continue
		}
		candidate := append(Path[N]{start}, rest...)
		if !found || len(candidate) < len(best) {
			best, found = candidate, true
		}
	}
	return best, found
}

// bfsAvoiding runs BFS from start to goal, refusing to step through
// avoid except as the final arrival at goal itself.
func bfsAvoiding[N comparable](start, goal N, successors func(N) []N, avoid N) (Path[N], bool) {
	if start == goal {
		return Path[N]{start}, true
	}
	nodes := []N{start}
	parent := []int{0}
	visited := map[N]int{start: 0}
	queue := []int{0}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		node := nodes[idx]
		for _, next := range successors(node) {
			if next == goal {
				nidx := len(nodes)
				nodes = append(nodes, next)
				parent = append(parent, idx)
				return Path[N](buildIndexPath(nodes, parent, nidx)), true
			}
			if next == avoid {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			nidx := len(nodes)
			nodes = append(nodes, next)
			parent = append(parent, idx)
			visited[next] = nidx
			queue = append(queue, nidx)
		}
	}
	return nil, false
}

// bfsFrontier is one side's search state in BidirectionalBFS: a node
// arena with a parent-index map plus the current frontier layer to
// expand next.
type bfsFrontier[N comparable] struct {
	nodes    []N
	parent   []int
	visited  map[N]int
	frontier []int
}

func newBFSFrontier[N comparable](root N) *bfsFrontier[N] {
	return &bfsFrontier[N]{
		nodes:    []N{root},
		parent:   []int{0},
		visited:  map[N]int{root: 0},
		frontier: []int{0},
	}
}

func (f *bfsFrontier[N]) expand(next func(N) []N) {
	var layer []int
	for _, idx := range f.frontier {
		node := f.nodes[idx]
		for _, n := range next(node) {
			if _, seen := f.visited[n]; seen {
				continue
			}
			nidx := len(f.nodes)
			f.nodes = append(f.nodes, n)
			f.parent = append(f.parent, idx)
			f.visited[n] = nidx
			layer = append(layer, nidx)
		}
	}
	f.frontier = layer
}

// BidirectionalBFS searches simultaneously from start (via successors)
// and from goal (via predecessors, the reverse-edge function) and splices
// the two half-paths together at their first intersection. The result is
// a shortest path in edge count, identical in length to what BFS would
// find from start to goal alone.
func BidirectionalBFS[N comparable](start, goal N, successors, predecessors func(N) []N) (Path[N], bool) {
	if start == goal {
		return Path[N]{start}, true
	}

	fwd := newBFSFrontier(start)
	bwd := newBFSFrontier(goal)

	if path, ok := spliceFrontiers(fwd, bwd); ok {
		return path, true
	}

	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		if len(fwd.frontier) <= len(bwd.frontier) {
			fwd.expand(successors)
		} else {
			bwd.expand(predecessors)
		}
		if path, ok := spliceFrontiers(fwd, bwd); ok {
			return path, true
		}
	}
	return nil, false
}

func spliceFrontiers[N comparable](fwd, bwd *bfsFrontier[N]) (Path[N], bool) {
	small, large := fwd, bwd
	smallIsFwd := true
	if len(large.visited) < len(small.visited) {
		small, large = large, small
		smallIsFwd = false
	}
	for node, idx := range small.visited {
		otherIdx, ok := large.visited[node]
		if !ok {
			continue
		}
		fwdIdx, bwdIdx := idx, otherIdx
		if !smallIsFwd {
			fwdIdx, bwdIdx = otherIdx, idx
		}
		fwdHalf := buildIndexPath(fwd.nodes, fwd.parent, fwdIdx)
		bwdHalf := buildIndexPath(bwd.nodes, bwd.parent, bwdIdx) // goal ... meet
		bwdHalf = lo.Reverse(bwdHalf)                            // meet ... goal
		path := make(Path[N], 0, len(fwdHalf)+len(bwdHalf)-1)
		path = append(path, fwdHalf...)
		path = append(path, bwdHalf[1:]...)
		return path, true
	}
	return nil, false
}
