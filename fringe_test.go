package wayfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind/wayfind"
)

func TestFringeObstacleGridMatchesAStar(t *testing.T) {
	grid := obstacleGrid()
	goal := Key{4, 4}
	astarPath, astarCost, ok := wayfind.AStar(Key{0, 0}, gridSuccessors(grid), manhattan(goal), isKey(goal))
	require.True(t, ok)

	fringePath, fringeCost, ok := wayfind.Fringe(Key{0, 0}, gridSuccessors(grid), manhattan(goal), isKey(goal))
	require.True(t, ok)

	assert.Equal(t, astarCost, fringeCost)
	assert.Equal(t, len(astarPath), len(fringePath))
	assert.Equal(t, goal, fringePath[len(fringePath)-1])
}

func TestFringeUnreachable(t *testing.T) {
	edges := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 1}},
		"B": {},
	}
	successors := func(n string) []wayfind.WeightedEdge[string, int] { return edges[n] }
	_, _, ok := wayfind.Fringe("A", successors, func(string) int { return 0 }, isKey2("C"))
	assert.False(t, ok)
}
