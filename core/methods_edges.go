// File: methods_edges.go
// Role: Edge management (AddEdge, RemoveEdge, HasEdge, Weight, Edges, EdgeCount).
// Determinism:
//   - Edges() sorts by (From, To) ascending.
// Concurrency:
//   - Mutators hold mu for writing, queries for reading.

package core

import "sort"

// AddEdge creates an edge from 'from' to 'to' with the given weight, adding
// missing endpoints on the fly. Undirected graphs mirror the edge.
// Adding an existing edge overwrites its weight.
//
// Returns ErrNegativeNodeID, ErrBadWeight or ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to NodeID, weight int64) error {
	// 1) Input validation
	if from < 0 || to < 0 {
		return ErrNegativeNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 5) Store the adjacency, mirrored according to directedness
	g.succ[from][to] = weight
	if g.directed {
		g.pred[to][from] = weight
	} else {
		g.succ[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge between from and to.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.succ[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.succ[from], to)
	if g.directed {
		delete(g.pred[to], from)
	} else {
		delete(g.succ[to], from)
	}

	return nil
}

// HasEdge reports whether an edge from 'from' to 'to' exists. For undirected
// graphs the order of the endpoints is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// Weight returns the weight of the edge from 'from' to 'to'.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) Weight(from, to NodeID) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.succ[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns every edge once, sorted by (From, To). Undirected edges are
// reported with From <= To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for from, tos := range g.succ {
		for to, w := range tos {
			if !g.directed && to < from {
				continue // mirrored half of an undirected edge
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges (undirected edges counted once).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, loops := 0, 0
	for from, tos := range g.succ {
		n += len(tos)
		if _, ok := tos[from]; ok {
			loops++
		}
	}
	if g.directed {
		return n
	}

	return (n-loops)/2 + loops
}
