// Command sample demonstrates the engines in wayfind against a single
// grid fixture: Dijkstra and A* over the same obstacle course, Yen's
// k-shortest-paths over a small weighted graph, and BFS over an
// unweighted view of the same grid.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wayfind/wayfind"
)

type Node struct {
	Y int
	X int
}

func main() {
	grid := text2Graph(`
	1  ■  ■  1  1  1  ■  1
	1  1  1  1  ■  1  1  1
	■  ■  1  ■  ■  ■  1  ■
	■  1  ■  1  1  1  1  1
	■  1  ■  1  ■  ■  ■  1
	■  1  ■  1  ■  1  1  1
	■  1  1  1  ■  1  ■  1
	`)

	start := Node{Y: 0, X: 0}
	goal := Node{Y: 5, X: 5}

	successors := weightedNeighbors(grid)
	heuristic := func(n Node) int { return abs(n.Y-goal.Y) + abs(n.X-goal.X) }
	atGoal := func(n Node) bool { return n == goal }

	path, cost, ok := wayfind.Dijkstra(start, successors, atGoal)
	if !ok {
		fmt.Println("dijkstra: no path")
		return
	}
	fmt.Printf("dijkstra: cost %d\n", cost)
	printPath(path)

	astarPath, astarCost, ok := wayfind.AStar(start, successors, heuristic, atGoal)
	if ok {
		fmt.Printf("astar: cost %d\n", astarCost)
		printPath(astarPath)
	}

	bfsPath, ok := wayfind.BFS(start, unweightedNeighbors(grid), atGoal)
	if ok {
		fmt.Printf("bfs: %d hops\n", len(bfsPath)-1)
		printPath(bfsPath)
	}

	yenDemo()
}

// yenDemo runs Yen's k-shortest-paths over a small fixed graph, printing
// the cost of each of the k candidate routes in non-decreasing order.
func yenDemo() {
	edges := map[int][]wayfind.WeightedEdge[int, int]{
		1: {{To: 2, Cost: 7}, {To: 3, Cost: 9}, {To: 6, Cost: 14}},
		2: {{To: 3, Cost: 10}, {To: 4, Cost: 15}},
		3: {{To: 4, Cost: 11}, {To: 6, Cost: 2}},
		4: {{To: 5, Cost: 6}},
		5: {{To: 6, Cost: 9}},
		6: {},
	}
	successors := func(n int) []wayfind.WeightedEdge[int, int] { return edges[n] }
	paths := wayfind.Yen(1, successors, func(n int) bool { return n == 5 }, 3)
	for i, p := range paths {
		fmt.Printf("yen #%d: cost %d, route %v\n", i+1, p.Cost, []int(p.Nodes))
	}
}

func printPath(path wayfind.Path[Node]) {
	for _, pos := range path {
		fmt.Printf("(%d, %d) ", pos.Y, pos.X)
	}
	fmt.Println()
}

func weightedNeighbors(graph map[Node]int) func(Node) []wayfind.WeightedEdge[Node, int] {
	return func(p Node) []wayfind.WeightedEdge[Node, int] {
		var edges []wayfind.WeightedEdge[Node, int]
		for _, to := range []Node{
			{Y: p.Y, X: p.X + 1},
			{Y: p.Y, X: p.X - 1},
			{Y: p.Y + 1, X: p.X},
			{Y: p.Y - 1, X: p.X},
		} {
			if cost, ok := graph[to]; ok {
				edges = append(edges, wayfind.WeightedEdge[Node, int]{To: to, Cost: cost})
			}
		}
		return edges
	}
}

func unweightedNeighbors(graph map[Node]int) func(Node) []Node {
	return func(p Node) []Node {
		var out []Node
		for _, to := range []Node{
			{Y: p.Y, X: p.X + 1},
			{Y: p.Y, X: p.X - 1},
			{Y: p.Y + 1, X: p.X},
			{Y: p.Y - 1, X: p.X},
		} {
			if _, ok := graph[to]; ok {
				out = append(out, to)
			}
		}
		return out
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func text2Graph(text string) map[Node]int {
	graph := make(map[Node]int)
	for row, line := range strings.Split(strings.TrimSpace(text), "\n") {
		for col, cell := range strings.Fields(line) {
			if cost, err := strconv.Atoi(cell); err == nil {
				graph[Node{Y: row, X: col}] = cost
			}
		}
	}
	return graph
}
