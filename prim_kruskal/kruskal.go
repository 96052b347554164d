// Package prim_kruskal provides an implementation of Kruskal’s spanning tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the tree.
package prim_kruskal

import (
	"sort"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvlid/core"
)

// Kruskal computes the spanning tree of an undirected, weighted graph, the
// lightest by default or the heaviest with WithMaximum.
// It uses the disjoint-set forest from github.com/spakin/disjoint.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or the graph is not fully connected (unless WithForest).
//
// Steps:
//  1. Validate the graph and apply options.
//  2. Retrieve sorted node IDs; handle the empty and single-node cases.
//  3. Collect all edges via graph.Edges(), skip self-loops.
//  4. Stable-sort edges by weight so ties keep the (From, To) order of graph.Edges().
//  5. Allocate one disjoint-set element per node.
//  6. Loop over sorted edges: take (u,v) when Find(u) != Find(v) and union them.
//  7. Check the edge count against |V|-1 (or |V|-components in forest mode).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return kruskal(graph, o)
}

func kruskal(graph *core.Graph, o MSTOptions) ([]core.Edge, int64, error) {
	// 1. Validate that graph is non-nil, weighted and undirected.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	// 2. Retrieve all node IDs in sorted order for determinism.
	nodes := graph.Nodes()
	if len(nodes) == 0 {
		if o.Forest {
			return []core.Edge{}, 0, nil
		}
		return nil, 0, ErrDisconnected
	}
	if len(nodes) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect all edges, skipping self-loops.
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort by weight, stable on the deterministic (From, To) order.
	sort.SliceStable(edges, func(i, j int) bool {
		return o.better(edges[i].Weight, edges[j].Weight)
	})

	// 5. One disjoint-set element per node.
	sets := make(map[core.NodeID]*disjoint.Element, len(nodes))
	for _, id := range nodes {
		sets[id] = disjoint.NewElement()
	}

	// 6. Build the tree by iterating over sorted edges.
	var (
		tree        []core.Edge
		totalWeight int64
		numNodes    = len(nodes)
	)
	for _, e := range edges {
		u, v := sets[e.From], sets[e.To]
		if u.Find() == v.Find() {
			continue
		}
		disjoint.Union(u, v)
		tree = append(tree, e)
		totalWeight += e.Weight
		if len(tree) == numNodes-1 {
			break
		}
	}

	// 7. A full tree has |V|-1 edges; anything less means several components.
	if len(tree) < numNodes-1 && !o.Forest {
		return nil, 0, ErrDisconnected
	}
	if tree == nil {
		tree = []core.Edge{}
	}

	return tree, totalWeight, nil
}
