// File: strategies.go
// Role: junction tree assembly (elimination tree, maximal cliques).

package triangulation

import (
	"github.com/katalvlaran/lvlid/bfs"
	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/prim_kruskal"
)

// buildEliminationTree links every C_v to the clique of the first-eliminated
// node of C_v\{v}. C_v is absorbed into the clique of a child w when
// C_w\{w} == C_v, which happens exactly when C_v is not maximal.
func (tr *Triangulation) buildEliminationTree() {
	jt := newJunctionTree()
	tr.tree = jt
	tr.created = make(map[core.NodeID]core.NodeID, len(tr.order))
	if len(tr.order) == 0 {
		jt.addClique(core.NewNodeSet())
		return
	}

	// 1. Elimination forest: parent(v) = earliest-eliminated later neighbour.
	hasParent := make(map[core.NodeID]bool, len(tr.order))
	children := make(map[core.NodeID][]core.NodeID, len(tr.order))
	for _, v := range tr.order {
		parent, found := core.NodeID(0), false
		for u := range tr.elimCliques[v] {
			if u != v && (!found || tr.rank[u] < tr.rank[parent]) {
				parent, found = u, true
			}
		}
		if found {
			hasParent[v] = true
			children[parent] = append(children[parent], v)
		}
	}

	// 2. Cliques and edges; children precede their parent in the order.
	for _, v := range tr.order {
		cv := tr.elimCliques[v]
		merged := false
		for _, w := range children[v] {
			if tr.elimCliques[w].Len() == cv.Len()+1 {
				tr.created[v] = tr.created[w]
				merged = true
				break
			}
		}
		if !merged {
			tr.created[v] = jt.addClique(cv)
		}
		for _, w := range children[v] {
			if tr.created[w] == tr.created[v] {
				continue
			}
			sep := tr.elimCliques[w].Clone()
			sep.Remove(w)
			jt.addEdge(tr.created[w], tr.created[v], sep)
		}
	}

	// 3. Attach the other components to the last clique.
	last := tr.order[len(tr.order)-1]
	for _, v := range tr.order {
		if !hasParent[v] && v != last {
			jt.addEdge(tr.created[v], tr.created[last], core.NewNodeSet())
		}
	}
}

// buildMaximalCliques keeps the maximal elimination cliques and joins them
// with a maximum-weight spanning forest of the clique-intersection graph,
// computed by the method named in Options.Spanning.
func (tr *Triangulation) buildMaximalCliques() error {
	jt := newJunctionTree()
	tr.tree = jt
	tr.created = make(map[core.NodeID]core.NodeID, len(tr.order))
	if len(tr.order) == 0 {
		jt.addClique(core.NewNodeSet())
		return nil
	}

	// 1. Maximal elimination cliques, in elimination order.
	for _, v := range tr.order {
		cv := tr.elimCliques[v]
		maximal := true
		for _, u := range tr.order {
			if u != v && cv.Len() < tr.elimCliques[u].Len() && cv.SubsetOf(tr.elimCliques[u]) {
				maximal = false
				break
			}
		}
		if maximal {
			jt.addClique(cv)
		}
	}

	// 2. Maximum spanning forest of the intersection graph.
	ids := jt.Cliques()
	cg := core.NewGraph(core.WithWeighted())
	for i, a := range ids {
		_ = cg.AddNode(a)
		for _, b := range ids[i+1:] {
			if n := jt.cliques[a].Intersect(jt.cliques[b]).Len(); n > 0 {
				_ = cg.AddEdge(a, b, int64(n))
			}
		}
	}
	mst := prim_kruskal.DefaultOptions()
	mst.Method = tr.opts.Spanning
	mst.Root = ids[0]
	mst.Maximum, mst.Forest = true, true
	edges, _, err := prim_kruskal.Compute(cg, mst)
	if err != nil {
		return err
	}
	for _, e := range edges {
		jt.addEdge(e.From, e.To, jt.cliques[e.From].Intersect(jt.cliques[e.To]))
	}

	// 3. Created clique: the first clique containing C_v.
	for _, v := range tr.order {
		for _, id := range ids {
			if tr.elimCliques[v].SubsetOf(jt.cliques[id]) {
				tr.created[v] = id
				break
			}
		}
	}

	// 4. Attach the other components to the clique of the last node.
	root := tr.created[tr.order[len(tr.order)-1]]
	for _, id := range ids {
		res, err := bfs.BFS(jt.graph, root)
		if err != nil {
			return err
		}
		if _, reached := res.Depth[id]; !reached {
			jt.addEdge(id, root, core.NewNodeSet())
		}
	}

	return nil
}
