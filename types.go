// Package wayfind is a generic library of pathfinding, reach and
// flow-adjacent graph algorithms: Dijkstra, A*, Fringe, IDA*, BFS/DFS and
// their variants, Yen's k-shortest-paths, and count_paths.
//
// The library never owns a graph. Every engine is driven by a caller
// supplied successor function mapping a node to its outgoing neighbours
// (optionally with edge costs), together with a goal predicate or, for
// informed search, an admissible heuristic. Callers implicit in this
// design include Matrix/Grid-shaped state spaces, puzzle boards, and any
// other structure that can produce neighbours on demand.
package wayfind

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Cost is the capability set required of an edge weight / path cost:
// totally ordered, additive via the built-in +, with a usable zero value
// (the zero value of any Cost type). Dijkstra, A*, Fringe and IDA* all
// require non-negative cost contributions; behaviour with a negative
// contribution is undefined.
type Cost interface {
	constraints.Ordered
}

// Path is a sequence of nodes from start to a goal, both endpoints
// included.
type Path[N comparable] []N

// WeightedEdge is one outgoing edge of a node, as returned by a weighted
// successors callback.
type WeightedEdge[N comparable, C Cost] struct {
	To   N
	Cost C
}

// WeightedPath pairs a Path with its total accumulated cost.
type WeightedPath[N comparable, C Cost] struct {
	Nodes Path[N]
	Cost  C
}

// Parent records how a node was reached during a Dijkstra-family search:
// the predecessor node and the accumulated cost to reach this node. The
// start node is its own parent, marking the root of the search tree.
type Parent[N comparable, C Cost] struct {
	Node N
	Cost C
}

// BuildPath reconstructs a path to target from a parent map as returned
// by DijkstraAll/DijkstraPartial. If target is not present in parents,
// BuildPath returns a single-element path containing only target, per
// the library's reconstruction contract.
func BuildPath[N comparable, C Cost](target N, parents map[N]Parent[N, C]) Path[N] {
	if _, ok := parents[target]; !ok {
		return Path[N]{target}
	}
	var rev []N
	cur := target
	for {
		rev = append(rev, cur)
		p := parents[cur]
		if p.Node == cur {
			break // root: a node is its own parent
		}
		cur = p.Node
	}
	return Path[N](lo.Reverse(rev))
}
