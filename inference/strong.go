// File: strong.go
// Role: strong junction tree ordering and root selection.
// Determinism:
//   - cliqueEliminationMap is ordered by index, then by clique id.

package inference

import (
	"math"

	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/lvlid/bfs"
	"github.com/katalvlaran/lvlid/core"
)

// buildStrongTree indexes every clique in cliqueEliminationMap and collects
// the cliques able to root the tree, in map order.
//
// Steps:
//  1. For every clique, find its split variable (see splitPoint). A clique
//     with a split gets index len(order) - rank(split) and is marked as
//     having a valid index; any other clique gets index 0.
//  2. Walk the map and keep the cliques passing isStrongRoot. The first one
//     becomes the root.
//
// Returns ErrNoStrongRoot when no clique can root the tree.
func (e *Engine) buildStrongTree() error {
	// 1. Index cliques
	n := len(e.order)
	triangulated := e.tri.TriangulatedGraph()
	m := immutable.NewSortedMap[int, []core.NodeID](nil)
	e.splits = make(map[core.NodeID]core.NodeID)
	for _, c := range e.tree.Cliques() {
		idx := 0
		if split, ok := e.splitPoint(triangulated, c); ok {
			rank, _ := e.tri.EliminationRank(split)
			idx = n - rank
			e.splits[c] = split
		}
		ids, _ := m.Get(idx)
		m = m.Set(idx, append(append([]core.NodeID(nil), ids...), c))
	}
	e.elimMap = m

	// 2. Collect valid roots in map order
	tree := e.tree.Graph()
	e.validRoots = e.validRoots[:0]
	itr := m.Iterator()
	for !itr.Done() {
		_, ids, _ := itr.Next()
		for _, c := range ids {
			if e.isStrongRoot(tree, c) {
				e.validRoots = append(e.validRoots, c)
			}
		}
	}
	if len(e.validRoots) == 0 {
		return ErrNoStrongRoot
	}
	e.root = e.validRoots[0]

	return nil
}

// splitPoint scans the local elimination order of clique c from the last
// eliminated member backward. Position p is a split when the nodes adjacent
// in the triangulated graph to every member after p, and still uneliminated
// when that member goes, share at least one node eliminated after the
// member at p. The latest such position wins.
func (e *Engine) splitPoint(triangulated *core.Graph, c core.NodeID) (core.NodeID, bool) {
	local := e.localOrder(c)
	var pending core.NodeSet
	for p := len(local) - 2; p >= 0; p-- {
		later := e.laterNeighbours(triangulated, local[p+1])
		if pending == nil {
			pending = later
		} else {
			pending = pending.Intersect(later)
		}
		if pending.Len() == 0 {
			return 0, false
		}
		rank, _ := e.tri.EliminationRank(local[p])
		for _, v := range pending.Slice() {
			if r, _ := e.tri.EliminationRank(v); r > rank {
				return local[p], true
			}
		}
	}

	return 0, false
}

// localOrder filters the global elimination order down to the members of c.
func (e *Engine) localOrder(c core.NodeID) []core.NodeID {
	members, _ := e.tree.Clique(c)
	local := make([]core.NodeID, 0, members.Len())
	for _, v := range e.order {
		if members.Has(v) {
			local = append(local, v)
		}
	}

	return local
}

// laterNeighbours returns the neighbours of v eliminated after v.
func (e *Engine) laterNeighbours(triangulated *core.Graph, v core.NodeID) core.NodeSet {
	out := core.NewNodeSet()
	rank, _ := e.tri.EliminationRank(v)
	nbrs, _ := triangulated.Neighbors(v)
	for _, u := range nbrs {
		if r, ok := e.tri.EliminationRank(u); ok && r > rank {
			out.Add(u)
		}
	}

	return out
}

// isStrongRoot reports whether every edge of the tree rooted at root sends
// a message whose eliminated variables all precede the separator in the
// block order. The walk stops at the first offending edge.
func (e *Engine) isStrongRoot(tree *core.Graph, root core.NodeID) bool {
	strong := true
	reached := core.NewNodeSet(root)
	_, _ = bfs.BFS(tree, root, bfs.WithFilterNeighbor(func(parent, child core.NodeID) bool {
		if !strong || reached.Has(child) {
			return false
		}
		reached.Add(child)
		strong = e.respectsBlocks(child, parent)

		return strong
	}))

	return strong
}

// respectsBlocks checks max block(child \ S) <= min block(S) for the
// separator S between child and parent.
func (e *Engine) respectsBlocks(child, parent core.NodeID) bool {
	sep, _ := e.tree.Separator(child, parent)
	members, _ := e.tree.Clique(child)
	maxResidual, minSep := -1, math.MaxInt
	for _, v := range members.Slice() {
		b, _ := e.tri.Block(v)
		if sep.Has(v) {
			minSep = min(minSep, b)
		} else {
			maxResidual = max(maxResidual, b)
		}
	}

	return maxResidual <= minSep
}
