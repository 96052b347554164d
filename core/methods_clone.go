// File: methods_clone.go
// Role: CloneEmpty, Clone and Clear.

package core

// CloneEmpty returns a new Graph with the same configuration and nodes but
// no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		nodes:      make(map[NodeID]struct{}, len(g.nodes)),
		succ:       make(map[NodeID]map[NodeID]int64, len(g.nodes)),
		pred:       make(map[NodeID]map[NodeID]int64, len(g.nodes)),
	}
	for id := range g.nodes {
		clone.addNodeLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the graph, edges and weights included.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for from, tos := range g.succ {
		for to, w := range tos {
			clone.succ[from][to] = w
		}
	}
	for to, froms := range g.pred {
		for from, w := range froms {
			clone.pred[to][from] = w
		}
	}

	return clone
}

// Clear removes every node and edge, keeping the configuration.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[NodeID]struct{})
	g.succ = make(map[NodeID]map[NodeID]int64)
	g.pred = make(map[NodeID]map[NodeID]int64)
}
