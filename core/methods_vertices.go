// File: methods_vertices.go
// Role: Node management (AddNode, HasNode, RemoveNode, Nodes, NodeCount).
// Determinism:
//   - Nodes() returns identifiers sorted ascending.

package core

import "sort"

// AddNode inserts a node with the given identifier.
// Returns ErrNegativeNodeID if id < 0.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) error {
	if id < 0 {
		return ErrNegativeNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked inserts id and its adjacency buckets; caller holds mu.
func (g *Graph) addNodeLocked(id NodeID) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.succ[id] = make(map[NodeID]int64)
	if g.directed {
		g.pred[id] = make(map[NodeID]int64)
	}
}

// HasNode reports whether a node with the given identifier exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// RemoveNode deletes the node and all incident edges from the graph.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}
	// Drop every mirrored reference before the node buckets themselves.
	for to := range g.succ[id] {
		if g.directed {
			delete(g.pred[to], id)
		} else {
			delete(g.succ[to], id)
		}
	}
	if g.directed {
		for from := range g.pred[id] {
			delete(g.succ[from], id)
		}
		delete(g.pred, id)
	}
	delete(g.succ, id)
	delete(g.nodes, id)

	return nil
}

// Nodes returns all node identifiers sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
