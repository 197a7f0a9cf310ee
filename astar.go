package wayfind

import (
	"github.com/samber/lo"

	"github.com/wayfind/wayfind/internal/openset"
)

// AStar runs A* from start, ordering the open set by f = g + heuristic(n)
// while storing g (cost-so-far) as the authoritative distance. A node is
// never expanded again once it has been popped, so the returned path is
// guaranteed optimal only for a consistent heuristic (heuristic(n) <=
// edge cost + heuristic(successor) for every edge); with a heuristic that
// is admissible but not consistent, the result is not guaranteed to be
// optimal. Behaviour with a non-admissible heuristic is undefined.
func AStar[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	heuristic func(N) C,
	success func(N) bool,
	opts ...Option,
) (Path[N], C, bool) {
	o := resolveOptions(opts)
	s := newCostSet[N, C]()
	var zero C
	s.PushOrDecrease(start, zero, zero+heuristic(start), 0)

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
			f2 := g2 + heuristic(edge.To)
			s.PushOrDecrease(edge.To, g2, f2, idx)
		}
	}
}

// AStarBag enumerates every minimum-cost path from start to a success
// node, instead of just the first one found. It runs A* until the first
// success node is popped at cost g*, then keeps popping while the open
// set's minimum f stays at g*, recording every equal-cost predecessor
// edge discovered along the way. Path enumeration afterwards is a
// depth-first walk of that predecessor DAG in child-insertion order,
// which is deterministic across runs. Like AStar, it never expands a
// popped node again, so its result is guaranteed only for a consistent
// heuristic.
func AStarBag[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	heuristic func(N) C,
	success func(N) bool,
) ([]Path[N], C, bool) {
	s := newCostSet[N, C]()
	var zero C
	s.PushOrDecrease(start, zero, zero+heuristic(start), 0)

	// extra holds, for each node index, any additional predecessor
	// indices found at exactly the same best cost as the authoritative
	// parent recorded in s. The authoritative parent itself is not
	// duplicated here.
	extra := make(map[int][]int)

	var gStar C
	foundStar := false
	var goalIdxs []int

	for {
		idx, node, g, ok := s.PopMin()
		if !ok {
			break
		}
		if success(node) {
			if !foundStar {
				gStar = g
				foundStar = true
			}
			if g == gStar {
				goalIdxs = append(goalIdxs, idx)
			}
		}
		for _, edge := range successors(node) {
			to := edge.To
			g2 := g + edge.Cost
			if existing, known := s.Get(to); known && g2 == existing.G {
				toIdx, _ := s.IndexOf(to)
				if existing.ParentIdx != idx && !lo.Contains(extra[toIdx], idx) {
					extra[toIdx] = append(extra[toIdx], idx)
				}
				continue
			}
			f2 := g2 + heuristic(to)
			if result, toIdx := s.PushOrDecrease(to, g2, f2, idx); result == openset.Decreased {
				delete(extra, toIdx) // a strictly better parent invalidates prior ties
			}
		}
		if foundStar {
			nextF, hasNext := s.PeekMinPriority()
			if !hasNext || nextF > gStar {
				break
			}
		}
	}

	if !foundStar {
		return nil, zero, false
	}

	var bag []Path[N]
	for _, gi := range goalIdxs {
		enumerateBagPaths(s, extra, gi, nil, &bag)
	}
	return bag, gStar, true
}

func enumerateBagPaths[N comparable, C Cost](s *openset.Set[N, C], extra map[int][]int, idx int, suffix []N, out *[]Path[N]) {
	node, entry := s.GetByIndex(idx)
	withNode := make([]N, len(suffix)+1)
	withNode[0] = node
	copy(withNode[1:], suffix)

	if entry.ParentIdx == idx {
		path := make(Path[N], len(withNode))
		copy(path, withNode)
		*out = append(*out, path)
		return
	}
	enumerateBagPaths(s, extra, entry.ParentIdx, withNode, out)
	for _, p := range extra[idx] {
		enumerateBagPaths(s, extra, p, withNode, out)
	}
}
