package wayfind

import "github.com/wayfind/wayfind/internal/openset"

func lessCost[C Cost](a, b C) bool { return a < b }

func newCostSet[N comparable, C Cost]() *openset.Set[N, C] {
	return openset.New[N, C](lessCost[C])
}

// Dijkstra runs Dijkstra's shortest-path algorithm from start, querying
// successors to expand each settled node, until success reports true for
// a popped node or the open set is exhausted. Edge costs supplied by
// successors must be non-negative; behaviour is undefined otherwise.
//
// Returns the shortest path (both endpoints included), its total cost,
// and whether a success node was reached at all.
func Dijkstra[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	success func(N) bool,
	opts ...Option,
) (Path[N], C, bool) {
	o := resolveOptions(opts)
	s := newCostSet[N, C]()
	var zero C
	s.PushOrDecrease(start, zero, zero, 0)

	for {
		idx, node, g, ok := s.PopMin()
		if !ok {
			return nil, zero, false
		}
		_, entry := s.GetByIndex(idx)
		traceSettle(o, node, g, entry.ParentIdx)
		if success(node) {
			return Path[N](s.PathTo(idx)), g, true
		}
		for _, edge := range successors(node) {
			g2 := g + edge.Cost
			s.PushOrDecrease(edge.To, g2, g2, idx)
		}
	}
}

// DijkstraAll exhausts every node reachable from start and returns the
// full parent map: for each discovered node, the predecessor that
// produced its shortest known cost and that cost. Equivalent to Dijkstra
// with a success predicate that is always false, but returning the whole
// search tree instead of a single path.
func DijkstraAll[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	opts ...Option,
) map[N]Parent[N, C] {
	parents, _, _ := dijkstraUntil(start, successors, func(N) bool { return false }, opts)
	return parents
}

// DijkstraPartial behaves like DijkstraAll but stops as soon as a
// settled node satisfies stop, returning the parent map accumulated so
// far together with that node. If no settled node ever satisfies stop,
// the second return value is the zero value of N and ok is false.
func DijkstraPartial[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	stop func(N) bool,
	opts ...Option,
) (map[N]Parent[N, C], N, bool) {
	return dijkstraUntil(start, successors, stop, opts)
}

func dijkstraUntil[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	stop func(N) bool,
	opts []Option,
) (map[N]Parent[N, C], N, bool) {
	o := resolveOptions(opts)
	s := newCostSet[N, C]()
	var zero C
	s.PushOrDecrease(start, zero, zero, 0)

	parents := make(map[N]Parent[N, C])
	for {
		idx, node, g, ok := s.PopMin()
		if !ok {
			var zeroN N
			return parents, zeroN, false
		}
		_, entry := s.GetByIndex(idx)
		parentNode, _ := s.GetByIndex(entry.ParentIdx)
		parents[node] = Parent[N, C]{Node: parentNode, Cost: g}
		traceSettle(o, node, g, entry.ParentIdx)
		if stop(node) {
			return parents, node, true
		}
		for _, edge := range successors(node) {
			g2 := g + edge.Cost
			s.PushOrDecrease(edge.To, g2, g2, idx)
		}
	}
}

// DijkstraReachable is one node settled by a DijkstraReach stream, in
// the order the engine commits to its final cost.
type DijkstraReachable[N comparable, C Cost] struct {
	Node   N
	Parent N
	Cost   C
}

// DijkstraReachIter is a lazy, single-pass stream of settled nodes in
// non-decreasing cost order. It is not restartable; simply stop calling
// Next to release it (there is nothing to close explicitly, the open
// set is owned solely by this iterator).
type DijkstraReachIter[N comparable, C Cost] struct {
	set        *openset.Set[N, C]
	successors func(N) []WeightedEdge[N, C]
	done       bool
}

// DijkstraReach returns a stream of reachable nodes from start in
// non-decreasing total-cost order, without committing to any goal.
func DijkstraReach[N comparable, C Cost](start N, successors func(N) []WeightedEdge[N, C]) *DijkstraReachIter[N, C] {
	s := newCostSet[N, C]()
	var zero C
	s.PushOrDecrease(start, zero, zero, 0)
	return &DijkstraReachIter[N, C]{set: s, successors: successors}
}

// Next settles one more node and returns it, or returns ok=false once
// every reachable node has been yielded.
func (it *DijkstraReachIter[N, C]) Next() (DijkstraReachable[N, C], bool) {
	if it.done {
		return DijkstraReachable[N, C]{}, false
	}
	idx, node, g, ok := it.set.PopMin()
	if !ok {
		it.done = true
		return DijkstraReachable[N, C]{}, false
	}
	_, entry := it.set.GetByIndex(idx)
	parentNode, _ := it.set.GetByIndex(entry.ParentIdx)
	for _, edge := range it.successors(node) {
		g2 := g + edge.Cost
		it.set.PushOrDecrease(edge.To, g2, g2, idx)
	}
	return DijkstraReachable[N, C]{Node: node, Parent: parentNode, Cost: g}, true
}

// RemainingLowBound returns a lower bound on the cost of every node not
// yet yielded by Next, so callers can short-circuit the stream once they
// know no better match remains. It returns ok=false once the stream is
// exhausted.
func (it *DijkstraReachIter[N, C]) RemainingLowBound() (C, bool) {
	return it.set.PeekMinPriority()
}
