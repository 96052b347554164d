// Package prim_kruskal provides an implementation of Prim’s spanning tree algorithm.
// It assumes an undirected, weighted *core.Graph and grows the tree from a specified root node using a heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/lvlid/core"
)

// Prim computes the spanning tree of an undirected, weighted graph by growing
// outwards from root using a heap. With WithForest, every node left unvisited
// once the root's component is exhausted seeds a new tree, in ascending id order.
//
// Error Conditions:
//   - ErrInvalidGraph     : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - core.ErrNodeNotFound: if the root node does not exist in the graph.
//   - ErrDisconnected     : if |V| == 0 or the graph is not fully connected (unless WithForest).
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root core.NodeID, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.Root = root

	return prim(graph, o)
}

func prim(graph *core.Graph, o MSTOptions) ([]core.Edge, int64, error) {
	// 1. Validate that graph is non-nil, weighted and undirected.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	// 2. Retrieve all node IDs in sorted order.
	nodes := graph.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	// 3. Validate root.
	if !graph.HasNode(o.Root) {
		return nil, 0, core.ErrNodeNotFound
	}

	// 4. Initialize visited set, tree container and heap.
	n := len(nodes)
	visited := make(map[core.NodeID]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{maximum: o.Maximum}
	heap.Init(pq)

	// grow adds id to the tree and pushes its edges to unvisited neighbors.
	grow := func(id core.NodeID) error {
		visited[id] = true
		nbrs, err := graph.Neighbors(id)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if visited[nb] {
				continue
			}
			w, err := graph.Weight(id, nb)
			if err != nil {
				return err
			}
			heap.Push(pq, core.Edge{From: id, To: nb, Weight: w})
		}

		return nil
	}

	// 5. Seed with the root, then with each unvisited node in forest mode.
	seeds := append([]core.NodeID{o.Root}, nodes...)
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		if seed != o.Root && !o.Forest {
			break
		}
		if err := grow(seed); err != nil {
			return nil, 0, err
		}
		// 5a. Main loop: extract the best edge and expand until the heap drains.
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			if visited[e.To] {
				continue
			}
			tree = append(tree, e)
			totalWeight += e.Weight
			if err := grow(e.To); err != nil {
				return nil, 0, err
			}
		}
	}

	// 6. If we did not collect n-1 edges, the graph must be disconnected.
	if len(tree) < n-1 && !o.Forest {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}

// edgePQ implements heap.Interface over core.Edge, ordered by Weight
// (ascending, or descending when maximum is set). Ties are broken by
// (From, To) so the popped sequence is deterministic.
type edgePQ struct {
	items   []core.Edge
	maximum bool
}

// Len returns the number of edges in the priority queue.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less reports whether element i should be popped before j.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.Weight != b.Weight {
		if pq.maximum {
			return a.Weight > b.Weight
		}
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	edge := old[n-1]
	pq.items = old[:n-1]

	return edge
}
