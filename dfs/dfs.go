// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlid/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g from start, visiting neighbours
// in ascending id order. Directed graphs are walked along arcs (or against
// them with WithReverse). Returns DFSResult or error if aborted by context
// or hook.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	// 4. Initialize result with capacity hint
	nodes := g.Nodes()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, len(nodes)),
		Depth:   make(map[core.NodeID]int, len(nodes)),
		Parent:  make(map[core.NodeID]core.NodeID, len(nodes)),
		Visited: make(map[core.NodeID]bool, len(nodes)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// next returns the nodes reachable in one step from id under the walk policy.
func (w *dfsWalker) next(id core.NodeID) ([]core.NodeID, error) {
	if !w.graph.Directed() {
		return w.graph.Neighbors(id)
	}
	if w.opts.Reverse {
		return w.graph.Parents(id)
	}

	return w.graph.Children(id)
}

// traverse visits node id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Fetch neighbors once
	nbs, err := w.next(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}

	// 5. Explore each neighbor
	for _, nid := range nbs {
		if nid == id {
			continue // self-loops never lead anywhere new
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
