package wayfind

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Yen returns up to k loopless paths from start to a node satisfying
// success, in non-decreasing total cost, using Yen's algorithm driven by
// Dijkstra as its spur-path solver. Fewer than k paths are returned,
// without error, if fewer than k distinct loopless paths exist.
//
// Node carries no ordering requirement elsewhere in this package (every
// engine constrains N only by comparable), so lexicographic tie-breaking on the node itself is not
// available here. Candidates of equal cost and equal length instead
// tie-break by discovery order, which is deterministic for a deterministic
// successors function and preserves every other ordering
// guarantee Yen's algorithm makes.
func Yen[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	success func(N) bool,
	k int,
) []WeightedPath[N, C] {
	if k < 1 {
		return nil
	}
	firstPath, firstCost, ok := Dijkstra(start, successors, success)
	if !ok {
		return nil
	}

	found := []WeightedPath[N, C]{{Nodes: firstPath, Cost: firstCost}}
	seen := map[string]bool{pathKey(firstPath): true}

	type candidate struct {
		path WeightedPath[N, C]
		seq  int
	}
	var candidates []candidate
	seq := 0

	for len(found) < k {
		prev := found[len(found)-1]

		for spurIdx := 0; spurIdx < len(prev.Nodes)-1; spurIdx++ {
			root := prev.Nodes[:spurIdx+1]
			spurNode := root[len(root)-1]

			forbiddenFrom := map[N]map[N]bool{}
			for _, p := range found {
				if !sharesPrefix(p.Nodes, root) {
					continue
				}
				from, to := p.Nodes[spurIdx], p.Nodes[spurIdx+1]
				if forbiddenFrom[from] == nil {
					forbiddenFrom[from] = map[N]bool{}
				}
				forbiddenFrom[from][to] = true
			}
			forbiddenNode := map[N]bool{}
			for _, n := range root[:len(root)-1] {
				forbiddenNode[n] = true
			}

			restricted := func(n N) []WeightedEdge[N, C] {
				return lo.Filter(successors(n), func(e WeightedEdge[N, C], _ int) bool {
					if forbiddenNode[e.To] {
						return false
					}
					return !forbiddenFrom[n][e.To]
				})
			}

			spurPath, spurCost, ok := Dijkstra(spurNode, restricted, success)
			if !ok {
				continue
			}

			total := make(Path[N], 0, len(root)-1+len(spurPath))
			total = append(total, root[:len(root)-1]...)
			total = append(total, spurPath...)
			key := pathKey(total)
			if seen[key] {
				continue
			}
			seen[key] = true

			rootCost := pathPrefixCost(prev.Nodes, successors, spurIdx)
			seq++
			candidates = append(candidates, candidate{
				path: WeightedPath[N, C]{Nodes: total, Cost: rootCost + spurCost},
				seq:  seq,
			})
		}

		if len(candidates) == 0 {
			break
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.path.Cost != b.path.Cost {
				return a.path.Cost < b.path.Cost
			}
			if len(a.path.Nodes) != len(b.path.Nodes) {
				return len(a.path.Nodes) < len(b.path.Nodes)
			}
			return a.seq < b.seq
		})

		best := candidates[0]
		candidates = candidates[1:]
		found = append(found, best.path)
	}

	return found
}

// sharesPrefix reports whether path begins with exactly the nodes in
// prefix, in order.
func sharesPrefix[N comparable](path Path[N], prefix Path[N]) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, n := range prefix {
		if path[i] != n {
			return false
		}
	}
	return true
}

// pathPrefixCost sums the edge costs of path[0:upto+1], looking each edge
// weight up by re-querying successors (the library keeps no edge-cost
// cache of its own).
func pathPrefixCost[N comparable, C Cost](path Path[N], successors func(N) []WeightedEdge[N, C], upto int) C {
	var total C
	for i := 0; i < upto; i++ {
		from, to := path[i], path[i+1]
		for _, e := range successors(from) {
			if e.To == to {
				total += e.Cost
				break
			}
		}
	}
	return total
}

// pathKey gives a comparable dedup key for a path over an arbitrary
// comparable node type.
func pathKey[N comparable](path Path[N]) string {
	return fmt.Sprint([]N(path))
}
