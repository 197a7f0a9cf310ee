package wayfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind/wayfind"
)

func TestYenThreeShortestPaths(t *testing.T) {
	paths := wayfind.Yen(1, yenGraph(), isInt(5), 3)
	require.Len(t, paths, 3)

	assert.Equal(t, []int{26, 28, 34}, []int{paths[0].Cost, paths[1].Cost, paths[2].Cost})

	seen := map[string]bool{}
	for i, p := range paths {
		assert.Equal(t, 1, p.Nodes[0])
		assert.Equal(t, 5, p.Nodes[len(p.Nodes)-1])

		distinct := map[int]bool{}
		for _, n := range p.Nodes {
			assert.False(t, distinct[n], "path %d must be loopless", i)
			distinct[n] = true
		}

		key := pathSignature(p.Nodes)
		assert.False(t, seen[key], "candidate %d duplicates an earlier path", i)
		seen[key] = true

		if i > 0 {
			assert.GreaterOrEqual(t, p.Cost, paths[i-1].Cost)
		}
	}
}

func TestYenFewerThanKWhenExhausted(t *testing.T) {
	edges := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 1}},
		"B": {},
	}
	successors := func(n string) []wayfind.WeightedEdge[string, int] { return edges[n] }
	paths := wayfind.Yen("A", successors, isKey2("B"), 5)
	assert.Len(t, paths, 1)
}

func TestYenUnreachable(t *testing.T) {
	edges := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 1}},
		"B": {},
	}
	successors := func(n string) []wayfind.WeightedEdge[string, int] { return edges[n] }
	paths := wayfind.Yen("A", successors, isKey2("C"), 3)
	assert.Nil(t, paths)
}

func isInt(goal int) func(int) bool {
	return func(n int) bool { return n == goal }
}

func pathSignature(nodes wayfind.Path[int]) string {
	s := ""
	for _, n := range nodes {
		s += string(rune('a' + n))
	}
	return s
}
