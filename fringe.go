package wayfind

import (
	"container/list"

	"github.com/samber/lo"
)

// fringeState is the per-node bookkeeping Fringe keeps instead of an
// openset.Set: just cost-so-far and a parent pointer, since Fringe never
// needs index-stable parent references or a heap.
type fringeState[N comparable, C Cost] struct {
	g         C
	parent    N
	hasParent bool
}

// Fringe runs Fringe Search: a heap-free alternative to A* that repeatedly
// sweeps a worklist ("now") at a rising f-cost threshold ("flimit"),
// deferring nodes that exceed the threshold to a second list ("later") for
// the next sweep. Termination and optimality guarantees mirror A*'s, given
// an admissible heuristic.
func Fringe[N comparable, C Cost](
	start N,
	successors func(N) []WeightedEdge[N, C],
	heuristic func(N) C,
	success func(N) bool,
) (Path[N], C, bool) {
	var zero C
	cache := map[N]*fringeState[N, C]{start: {g: zero}}

	now := list.New()
	later := list.New()
	elem := map[N]*list.Element{start: now.PushBack(start)}
	inNow := map[N]bool{start: true}

	flimit := heuristic(start)

	for now.Len() > 0 {
		var fmin C
		hasFmin := false

		for {
			e := now.Front()
			if e == nil {
				break
			}
			node := e.Value.(N)
			st := cache[node]
			f := st.g + heuristic(node)

			if lessCost(flimit, f) {
				now.Remove(e)
				delete(inNow, node)
				elem[node] = later.PushBack(node)
				if !hasFmin || lessCost(f, fmin) {
					fmin, hasFmin = f, true
				}
				continue
			}

			if success(node) {
				return Path[N](buildFringePath(cache, node)), st.g, true
			}

			now.Remove(e)
			delete(inNow, node)
			delete(elem, node)

			for _, edge := range successors(node) {
				g2 := st.g + edge.Cost
				if existing, ok := cache[edge.To]; ok && !lessCost(g2, existing.g) {
					continue // not an improvement
				}
				cache[edge.To] = &fringeState[N, C]{g: g2, parent: node, hasParent: true}
				if old, ok := elem[edge.To]; ok {
					if inNow[edge.To] {
						now.Remove(old)
					} else {
						later.Remove(old)
					}
				}
				elem[edge.To] = now.PushFront(edge.To)
				inNow[edge.To] = true
			}
		}

		now, later = later, list.New()
		for e := now.Front(); e != nil; e = e.Next() {
			inNow[e.Value.(N)] = true
		}
		if hasFmin {
			flimit = fmin
		}
	}

	return nil, zero, false
}

func buildFringePath[N comparable, C Cost](cache map[N]*fringeState[N, C], goal N) []N {
	var rev []N
	node := goal
	for {
		rev = append(rev, node)
		st := cache[node]
		if !st.hasParent {
			break
		}
		node = st.parent
	}
	return lo.Reverse(rev)
}
