package wayfind

// dfsFrame is one level of the explicit depth-first stack DFS/DFSReach
// walk, letting search depth scale past Go's goroutine stack.
type dfsFrame[N comparable] struct {
	node  N
	edges []N
	next  int
}

// DFS runs depth-first search from start, returning the first path found
// to a node satisfying success, or ok=false if none exists. A node is
// never visited twice across the whole search (a deliberate departure
// from textbook DFS, which only forbids revisits within the current
// branch). Sibling order follows successor order.
func DFS[N comparable](start N, successors func(N) []N, success func(N) bool) (Path[N], bool) {
	if success(start) {
		return Path[N]{start}, true
	}
	visited := map[N]bool{start: true}
	stack := []dfsFrame[N]{{node: start, edges: successors(start)}}
	path := []N{start}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.edges) {
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}
		next := top.edges[top.next]
		top.next++
		if visited[next] {
			continue
		}
		visited[next] = true
		path = append(path, next)
		if success(next) {
			result := make(Path[N], len(path))
			copy(result, path)
			return result, true
		}
		stack = append(stack, dfsFrame[N]{node: next, edges: successors(next)})
	}
	return nil, false
}

// DFSReachIter is a lazy, single-pass stream of nodes in DFS pre-order.
// Like DFS, it never yields the same node twice across the whole walk.
type DFSReachIter[N comparable] struct {
	visited    map[N]bool
	stack      []dfsFrame[N]
	successors func(N) []N
	start      N
	yieldedRoot bool
}

// DFSReach returns a pre-order stream of nodes reachable from start.
func DFSReach[N comparable](start N, successors func(N) []N) *DFSReachIter[N] {
	return &DFSReachIter[N]{
		visited:    map[N]bool{start: true},
		stack:      []dfsFrame[N]{{node: start, edges: successors(start)}},
		successors: successors,
		start:      start,
	}
}

// Next yields the next node in pre-order, or ok=false once the walk is
// exhausted.
func (it *DFSReachIter[N]) Next() (N, bool) {
	if !it.yieldedRoot {
		it.yieldedRoot = true
		return it.start, true
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.next >= len(top.edges) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		next := top.edges[top.next]
		top.next++
		if it.visited[next] {
			continue
		}
		it.visited[next] = true
		it.stack = append(it.stack, dfsFrame[N]{node: next, edges: it.successors(next)})
		return next, true
	}
	var zero N
	return zero, false
}

// IDDFS runs depth-limited DFS with an increasing depth limit, returning
// the shallowest path to a node satisfying success. Unlike DFS, revisits
// are only forbidden within the current branch (cleared on backtrack):
// IDDFS is meant for implicit, possibly huge state spaces (puzzle
// boards) where a global ban would hide equally-shallow solutions
// reachable via a sibling branch.
func IDDFS[N comparable](start N, successors func(N) []N, success func(N) bool) (Path[N], bool) {
	for limit := 0; ; limit++ {
		visited := map[N]bool{start: true}
		path, found, cutoff := dls(start, successors, success, limit, visited)
		if found {
			return path, true
		}
		if !cutoff {
			return nil, false // whole graph explored at this depth; nothing deeper remains
		}
	}
}

func dls[N comparable](node N, successors func(N) []N, success func(N) bool, limit int, visited map[N]bool) (Path[N], bool, bool) {
	if success(node) {
		return Path[N]{node}, true, false
	}
	if limit == 0 {
		return nil, false, true
	}
	anyCutoff := false
	for _, next := range successors(node) {
		if visited[next] {
			continue
		}
		visited[next] = true
		sub, found, cutoff := dls(next, successors, success, limit-1, visited)
		delete(visited, next)
		if found {
			result := make(Path[N], 0, len(sub)+1)
			result = append(result, node)
			result = append(result, sub...)
			return result, true, false
		}
		if cutoff {
			anyCutoff = true
		}
	}
	return nil, false, anyCutoff
}
