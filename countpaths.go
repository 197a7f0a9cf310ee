package wayfind

// CountPaths counts the number of distinct loopless paths from start to
// any node satisfying success, over an implicitly-DAG state space.
// Counts are memoised per node, so shared sub-DAGs are only explored
// once. If the walk revisits a node that is still on the current
// recursion stack, the graph contains a cycle reachable from start and
// CountPaths returns a *CycleError naming it; the count returned
// alongside an error is meaningless and should be ignored.
func CountPaths[N comparable](start N, successors func(N) []N, success func(N) bool) (int, error) {
	memo := map[N]int{}
	inProgress := map[N]bool{}
	return countPaths(start, successors, success, memo, inProgress)
}

func countPaths[N comparable](node N, successors func(N) []N, success func(N) bool, memo map[N]int, inProgress map[N]bool) (int, error) {
	if count, ok := memo[node]; ok {
		return count, nil
	}
	if inProgress[node] {
		return 0, &CycleError[N]{Node: node}
	}

	if success(node) {
		memo[node] = 1
		return 1, nil
	}

	inProgress[node] = true
	total := 0
	for _, next := range successors(node) {
		count, err := countPaths(next, successors, success, memo, inProgress)
		if err != nil {
			return 0, err
		}
		total += count
	}
	delete(inProgress, node)

	memo[node] = total
	return total, nil
}
