package wayfind_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wayfind/wayfind"
)

// Key is a small comparable grid coordinate used across the table-driven
// fixtures below.
type Key struct {
	X int
	Y int
}

func (k Key) String() string { return fmt.Sprintf("(%d, %d)", k.X, k.Y) }

// text2Grid parses a whitespace-separated grid where ■ marks an
// obstacle and any integer marks a walkable cell with that entry cost.
func text2Grid(text string) map[Key]int {
	grid := make(map[Key]int)
	for row, line := range strings.Split(strings.TrimSpace(text), "\n") {
		for col, cell := range strings.Fields(line) {
			if cost, err := strconv.Atoi(cell); err == nil {
				grid[Key{X: row, Y: col}] = cost
			}
		}
	}
	return grid
}

// gridSuccessors exposes the 4-connected neighbours of a grid cell that
// exist in grid, each weighted by the destination cell's own cost.
func gridSuccessors(grid map[Key]int) func(Key) []wayfind.WeightedEdge[Key, int] {
	return func(p Key) []wayfind.WeightedEdge[Key, int] {
		var edges []wayfind.WeightedEdge[Key, int]
		for _, to := range []Key{
			{X: p.X - 1, Y: p.Y},
			{X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1},
			{X: p.X, Y: p.Y + 1},
		} {
			if cost, ok := grid[to]; ok {
				edges = append(edges, wayfind.WeightedEdge[Key, int]{To: to, Cost: cost})
			}
		}
		return edges
	}
}

// gridNeighbors is the unweighted counterpart of gridSuccessors, for the
// BFS/DFS family.
func gridNeighbors(grid map[Key]int) func(Key) []Key {
	return func(p Key) []Key {
		var out []Key
		for _, to := range []Key{
			{X: p.X - 1, Y: p.Y},
			{X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1},
			{X: p.X, Y: p.Y + 1},
		} {
			if _, ok := grid[to]; ok {
				out = append(out, to)
			}
		}
		return out
	}
}

func manhattan(goal Key) func(Key) int {
	return func(n Key) int {
		dx := n.X - goal.X
		if dx < 0 {
			dx = -dx
		}
		dy := n.Y - goal.Y
		if dy < 0 {
			dy = -dy
		}
		return dx + dy
	}
}

func isKey(goal Key) func(Key) bool {
	return func(n Key) bool { return n == goal }
}

// obstacleGrid is the package's canonical 5x5 obstacle scenario:
// obstacles at (1,1),(1,2),(2,2),(3,1), 4-connected moves of cost 1,
// shortest path from (0,0) to (4,4) has cost 8.
func obstacleGrid() map[Key]int {
	return text2Grid(`
	1 1 1 1 1
	1 ■ ■ 1 1
	1 1 ■ 1 1
	1 ■ 1 1 1
	1 1 1 1 1
	`)
}

// weightedDAG returns the small fixed graph from the package's
// end-to-end scenarios: A->B:4, A->C:2, B->C:1, B->D:5, C->D:8, C->E:10,
// D->E:2.
func weightedDAG() func(string) []wayfind.WeightedEdge[string, int] {
	g := map[string][]wayfind.WeightedEdge[string, int]{
		"A": {{To: "B", Cost: 4}, {To: "C", Cost: 2}},
		"B": {{To: "C", Cost: 1}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 8}, {To: "E", Cost: 10}},
		"D": {{To: "E", Cost: 2}},
		"E": {},
	}
	return func(n string) []wayfind.WeightedEdge[string, int] { return g[n] }
}

// yenGraph is the fixture from the package's Yen k=3 scenario:
// 1->2:7, 1->3:9, 1->6:14, 2->3:10, 2->4:15, 3->4:11, 3->6:2, 4->5:6, 5->6:9.
func yenGraph() func(int) []wayfind.WeightedEdge[int, int] {
	g := map[int][]wayfind.WeightedEdge[int, int]{
		1: {{To: 2, Cost: 7}, {To: 3, Cost: 9}, {To: 6, Cost: 14}},
		2: {{To: 3, Cost: 10}, {To: 4, Cost: 15}},
		3: {{To: 4, Cost: 11}, {To: 6, Cost: 2}},
		4: {{To: 5, Cost: 6}},
		5: {{To: 6, Cost: 9}},
		6: {},
	}
	return func(n int) []wayfind.WeightedEdge[int, int] { return g[n] }
}
