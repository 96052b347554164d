// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Parents, Children, Degree).
// Determinism:
//   - Every method returns identifiers sorted ascending.

package core

import "sort"

// Neighbors returns the nodes adjacent to id.
//
// Neighborhood policy:
//   - Undirected graphs: every node sharing an edge with id.
//   - Directed graphs: successors and predecessors together (the skeleton).
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	seen := make(map[NodeID]struct{}, len(g.succ[id])+len(g.pred[id]))
	for to := range g.succ[id] {
		seen[to] = struct{}{}
	}
	for from := range g.pred[id] {
		seen[from] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// Children returns the successors of id in a directed graph.
// Returns ErrNotDirected on undirected graphs and ErrNodeNotFound for unknown nodes.
func (g *Graph) Children(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.directed {
		return nil, ErrNotDirected
	}
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	return sortedWeightKeys(g.succ[id]), nil
}

// Parents returns the predecessors of id in a directed graph.
// Returns ErrNotDirected on undirected graphs and ErrNodeNotFound for unknown nodes.
func (g *Graph) Parents(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.directed {
		return nil, ErrNotDirected
	}
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	return sortedWeightKeys(g.pred[id]), nil
}

// Degree returns the number of neighbors of id (see Neighbors).
func (g *Graph) Degree(id NodeID) (int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

func sortedKeys(m map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedWeightKeys(m map[NodeID]int64) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
