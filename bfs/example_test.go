package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlid/bfs"
	"github.com/katalvlaran/lvlid/core"
)

// ExampleBFSResult_PathTo walks the unique path between two leaves of a tree.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(1, 3, 0)

	res, _ := bfs.BFS(g, 2)
	path, _ := res.PathTo(3)
	fmt.Println(path)
	// Output: [2 1 3]
}
