package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlid/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds nodes 1, 2, 3):
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	_ = g.AddEdge(3, 1, 0)

	// 3) Inspect nodes and edges:
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edge 2-1 exists?", g.HasEdge(2, 1))

	// 4) Remove a node and its edges:
	_ = g.RemoveNode(2)
	fmt.Println("After removing 2, nodes:", g.Nodes())
	fmt.Println("Edge 1-2 exists?", g.HasEdge(1, 2))

	// Output:
	// Nodes: [1 2 3]
	// Edge 2-1 exists? true
	// After removing 2, nodes: [1 3]
	// Edge 1-2 exists? false
}

// ExampleGraph_Parents shows parent/child queries on a directed graph.
func ExampleGraph_Parents() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge(0, 2, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)

	parents, _ := g.Parents(2)
	children, _ := g.Children(2)
	fmt.Println("parents:", parents)
	fmt.Println("children:", children)

	// Output:
	// parents: [0 1]
	// children: [3]
}

// ExampleNodeSet shows the set helpers used for cliques and separators.
func ExampleNodeSet() {
	a := core.NewNodeSet(1, 2, 3)
	b := core.NewNodeSet(2, 3, 4)

	fmt.Println(a.Intersect(b))
	fmt.Println(core.NewNodeSet(2).SubsetOf(a))

	// Output:
	// {2,3}
	// true
}
