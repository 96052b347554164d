// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlid/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph         // the graph being sorted
	state map[core.NodeID]int // visitation state: White, Gray, Black
	order []core.NodeID       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Ties are resolved by node identifier so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrNotDirected.
// If a cycle is detected, returns ErrCycleDetected.
func TopologicalSort(g *core.Graph) ([]core.NodeID, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	// 3. Initialize sorter state
	nodes := g.Nodes()
	sorter := &topoSorter{
		graph: g,
		state: make(map[core.NodeID]int, len(nodes)),
		order: make([]core.NodeID, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited node, highest id first, so that the
	// reversed post-order favours small identifiers among unordered nodes.
	for i := len(nodes) - 1; i >= 0; i-- {
		if sorter.state[nodes[i]] == White {
			if err := sorter.visit(nodes[i]); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id core.NodeID) error {
	// 1. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 2. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 4. Retrieve successors
	children, err := t.graph.Children(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// 5. Recurse in reverse id order (see TopologicalSort step 4)
	for i := len(children) - 1; i >= 0; i-- {
		if err = t.visit(children[i]); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
