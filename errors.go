package wayfind

import "fmt"

// CycleError is returned by CountPaths when the caller-supplied
// successors function produces a cycle reachable from start. CountPaths
// assumes an implicit DAG; a cycle makes the path count unbounded, so
// this is reported rather than looped on forever.
type CycleError[N comparable] struct {
	// Node is the node at which the cycle was detected: it was marked
	// "in progress" and reached again before its count was memoised.
	Node N
}

func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("wayfind: count_paths: cycle detected at node %v", e.Node)
}
