package wayfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind/wayfind"
)

func TestAStarObstacleGrid(t *testing.T) {
	grid := obstacleGrid()
	goal := Key{4, 4}
	path, cost, ok := wayfind.AStar(Key{0, 0}, gridSuccessors(grid), manhattan(goal), isKey(goal))
	require.True(t, ok)
	assert.Equal(t, 8, cost)
	assert.Equal(t, goal, path[len(path)-1])
}

func TestAStarZeroHeuristicMatchesDijkstra(t *testing.T) {
	zeroH := func(string) int { return 0 }
	_, astarCost, ok := wayfind.AStar("A", weightedDAG(), zeroH, isKey2("E"))
	require.True(t, ok)
	_, dijkstraCost, ok := wayfind.Dijkstra("A", weightedDAG(), isKey2("E"))
	require.True(t, ok)
	assert.Equal(t, dijkstraCost, astarCost)
}

func TestAStarBagTwinRoutes(t *testing.T) {
	edges := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 1}},
		"B": {{To: "D", Cost: 2}},
		"C": {{To: "D", Cost: 2}},
		"D": {},
	}
	successors := func(n string) []wayfind.WeightedEdge[string, int] { return edges[n] }
	zeroH := func(string) int { return 0 }

	bag, cost, ok := wayfind.AStarBag("A", successors, zeroH, isKey2("D"))
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	require.Len(t, bag, 2)

	seen := map[string]bool{}
	for _, p := range bag {
		assert.Equal(t, "A", p[0])
		assert.Equal(t, "D", p[len(p)-1])
		seen[p[1]] = true
	}
	assert.True(t, seen["B"] && seen["C"], "bag must contain both the A-B-D and A-C-D routes")
}

func TestAStarUnreachable(t *testing.T) {
	edges := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 1}},
		"B": {},
	}
	successors := func(n string) []wayfind.WeightedEdge[string, int] { return edges[n] }
	_, _, ok := wayfind.AStar("A", successors, func(string) int { return 0 }, isKey2("C"))
	assert.False(t, ok)
}
