package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlid/bfs"
	"github.com/katalvlaran/lvlid/core"
)

// buildTree returns the undirected weighted tree 0-1, 0-2, 1-3, 1-4, 2-5.
func buildTree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 3, 1}, {1, 4, 3}, {2, 5, 0}} {
		require.NoError(t, g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]), int64(e[2])))
	}

	return g
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(buildTree(t), 42)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(buildTree(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, 2, res.Depth[5])
	assert.Equal(t, core.NodeID(2), res.Parent[5])
}

func TestBFS_PathTo(t *testing.T) {
	// 1. Path across the tree, weights ignored.
	res, err := bfs.BFS(buildTree(t), 3)
	require.NoError(t, err)
	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3, 1, 0, 2, 5}, path)

	// 2. Trivial path.
	path, err = res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3}, path)

	// 3. Unreached destination.
	g := buildTree(t)
	require.NoError(t, g.AddNode(9))
	res, err = bfs.BFS(g, 0)
	require.NoError(t, err)
	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_DirectedFollowsArcs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(1, 0, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	// 1. Pruning node 2 also hides its subtree.
	res, err := bfs.BFS(buildTree(t), 0,
		bfs.WithFilterNeighbor(func(_, nbr core.NodeID) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3, 4}, res.Order)

	// 2. The filter sees every edge from the current node, back edges included.
	var edges [][2]core.NodeID
	_, err = bfs.BFS(buildTree(t), 1, bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool {
		edges = append(edges, [2]core.NodeID{curr, nbr})
		return curr == 1
	}))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.NodeID{{1, 0}, {1, 3}, {1, 4}, {0, 1}, {0, 2}, {3, 1}, {4, 1}}, edges)

	// 3. A nil filter is ignored.
	res, err = bfs.BFS(buildTree(t), 0, bfs.WithFilterNeighbor(nil))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}
