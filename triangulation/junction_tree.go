// File: junction_tree.go
// Role: JunctionTree, a tree of cliques with separators on its edges.
// Determinism:
//   - Clique ids are assigned 0, 1, 2, ... in creation order.

package triangulation

import (
	"fmt"

	"github.com/katalvlaran/lvlid/bfs"
	"github.com/katalvlaran/lvlid/core"
)

// JunctionTree is an undirected tree whose nodes are cliques. Each edge is
// weighted by the size of its separator.
type JunctionTree struct {
	graph      *core.Graph
	cliques    map[core.NodeID]core.NodeSet
	separators map[[2]core.NodeID]core.NodeSet
}

func newJunctionTree() *JunctionTree {
	return &JunctionTree{
		graph:      core.NewGraph(core.WithWeighted()),
		cliques:    make(map[core.NodeID]core.NodeSet),
		separators: make(map[[2]core.NodeID]core.NodeSet),
	}
}

func edgeKey(a, b core.NodeID) [2]core.NodeID {
	if b < a {
		a, b = b, a
	}
	return [2]core.NodeID{a, b}
}

func (jt *JunctionTree) addClique(members core.NodeSet) core.NodeID {
	id := core.NodeID(len(jt.cliques))
	jt.cliques[id] = members.Clone()
	_ = jt.graph.AddNode(id)

	return id
}

func (jt *JunctionTree) addEdge(a, b core.NodeID, sep core.NodeSet) {
	_ = jt.graph.AddEdge(a, b, int64(sep.Len()))
	jt.separators[edgeKey(a, b)] = sep.Clone()
}

// Size returns the number of cliques.
func (jt *JunctionTree) Size() int { return len(jt.cliques) }

// Cliques returns every clique id sorted ascending.
func (jt *JunctionTree) Cliques() []core.NodeID { return jt.graph.Nodes() }

// Clique returns a copy of the members of clique id.
func (jt *JunctionTree) Clique(id core.NodeID) (core.NodeSet, error) {
	c, ok := jt.cliques[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrCliqueNotFound, id)
	}

	return c.Clone(), nil
}

// Neighbours returns the cliques adjacent to id, sorted ascending.
func (jt *JunctionTree) Neighbours(id core.NodeID) ([]core.NodeID, error) {
	if _, ok := jt.cliques[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrCliqueNotFound, id)
	}

	return jt.graph.Neighbors(id)
}

// Separator returns the variables shared by the adjacent cliques a and b.
func (jt *JunctionTree) Separator(a, b core.NodeID) (core.NodeSet, error) {
	sep, ok := jt.separators[edgeKey(a, b)]
	if !ok {
		return nil, fmt.Errorf("%w: %d-%d", ErrNotAdjacent, a, b)
	}

	return sep.Clone(), nil
}

// Edges returns the tree edges sorted by (From, To), weighted by separator size.
func (jt *JunctionTree) Edges() []core.Edge { return jt.graph.Edges() }

// Graph returns a copy of the underlying weighted tree.
func (jt *JunctionTree) Graph() *core.Graph { return jt.graph.Clone() }

// Path returns the cliques on the tree path from a to b, both included.
func (jt *JunctionTree) Path(a, b core.NodeID) ([]core.NodeID, error) {
	if _, ok := jt.cliques[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrCliqueNotFound, b)
	}
	res, err := bfs.BFS(jt.graph, a)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrCliqueNotFound, a)
	}

	return res.PathTo(b)
}

// VerifyRunningIntersection checks that the structure is a tree and that,
// for every variable, the cliques containing it form a connected subtree.
func (jt *JunctionTree) VerifyRunningIntersection() error {
	ids := jt.Cliques()
	if len(ids) == 0 {
		return nil
	}
	// 1. A tree has |C|-1 edges and is connected.
	if jt.graph.EdgeCount() != len(ids)-1 {
		return fmt.Errorf("%w: %d cliques but %d edges", ErrRunningIntersection, len(ids), jt.graph.EdgeCount())
	}
	res, err := bfs.BFS(jt.graph, ids[0])
	if err != nil {
		return err
	}
	if len(res.Order) != len(ids) {
		return fmt.Errorf("%w: tree is disconnected", ErrRunningIntersection)
	}

	// 2. Separators equal the intersection of their cliques.
	for _, e := range jt.graph.Edges() {
		shared := jt.cliques[e.From].Intersect(jt.cliques[e.To])
		if sep := jt.separators[edgeKey(e.From, e.To)]; !sep.Equal(shared) {
			return fmt.Errorf("%w: separator %s of %d-%d differs from intersection %s",
				ErrRunningIntersection, sep, e.From, e.To, shared)
		}
	}

	// 3. Per variable, a walk restricted to the cliques holding it reaches
	// all of them.
	holders := make(map[core.NodeID][]core.NodeID)
	for _, id := range ids {
		for _, v := range jt.cliques[id].Slice() {
			holders[v] = append(holders[v], id)
		}
	}
	for _, v := range core.NewNodeSet(keys(holders)...).Slice() {
		res, err := bfs.BFS(jt.graph, holders[v][0], bfs.WithFilterNeighbor(func(_, nb core.NodeID) bool {
			return jt.cliques[nb].Has(v)
		}))
		if err != nil {
			return err
		}
		if len(res.Order) != len(holders[v]) {
			return fmt.Errorf("%w: node %d", ErrRunningIntersection, v)
		}
	}

	return nil
}

func keys[V any](m map[core.NodeID]V) []core.NodeID {
	out := make([]core.NodeID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
