// File: reach.go
// Role: Reachability queries built on DFS (HasPath, Descendants, Ancestors).

package dfs

import (
	"github.com/katalvlaran/lvlid/core"
)

// HasPath reports whether a directed path leads from 'from' to 'to'.
// A node always reaches itself. On undirected graphs the query reduces to
// connectivity.
func HasPath(g *core.Graph, from, to core.NodeID) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasNode(to) {
		return false, ErrStartNodeNotFound
	}
	res, err := DFS(g, from)
	if err != nil {
		return false, err
	}

	return res.Visited[to], nil
}

// Descendants returns the nodes reachable from id along arcs, id excluded.
func Descendants(g *core.Graph, id core.NodeID) (core.NodeSet, error) {
	return reachable(g, id)
}

// Ancestors returns the nodes that reach id along arcs, id excluded.
func Ancestors(g *core.Graph, id core.NodeID) (core.NodeSet, error) {
	if g != nil && !g.Directed() {
		return nil, ErrNotDirected
	}

	return reachable(g, id, WithReverse())
}

func reachable(g *core.Graph, id core.NodeID, opts ...Option) (core.NodeSet, error) {
	res, err := DFS(g, id, opts...)
	if err != nil {
		return nil, err
	}
	out := core.NewNodeSet()
	for v := range res.Visited {
		if v != id {
			out.Add(v)
		}
	}

	return out, nil
}
