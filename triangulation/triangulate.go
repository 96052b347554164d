// File: triangulate.go
// Role: block-constrained greedy elimination.

package triangulation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/prim_kruskal"
)

// Triangulation is the result of Triangulate. It is immutable.
type Triangulation struct {
	order        []core.NodeID
	rank         map[core.NodeID]int
	block        map[core.NodeID]int
	elimCliques  map[core.NodeID]core.NodeSet
	triangulated *core.Graph
	fillIns      []core.Edge
	tree         *JunctionTree
	created      map[core.NodeID]core.NodeID
	opts         Options
}

// Triangulate eliminates the nodes of moral following blocks (earlier blocks
// first) and builds the junction tree. A nil or empty blocks slice places
// every node in a single block.
func Triangulate(moral *core.Graph, domainSizes map[core.NodeID]int, blocks []core.NodeSet, opts ...Option) (*Triangulation, error) {
	// 1. Validate input
	if moral == nil {
		return nil, ErrGraphNil
	}
	if moral.Directed() {
		return nil, ErrDirectedGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if _, ok := heuristicNames[o.Heuristic]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(o.Heuristic))
	}
	if _, ok := strategyNames[o.Strategy]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	if o.Spanning != prim_kruskal.MethodKruskal && o.Spanning != prim_kruskal.MethodPrim {
		return nil, fmt.Errorf("%w: %q", prim_kruskal.ErrUnknownMethod, o.Spanning)
	}
	nodes := moral.Nodes()
	for _, id := range nodes {
		if domainSizes[id] <= 0 {
			return nil, fmt.Errorf("%w: node %d", ErrMissingDomainSize, id)
		}
	}
	if len(blocks) == 0 {
		blocks = []core.NodeSet{core.NewNodeSet(nodes...)}
	}
	block, err := blockIndex(moral, blocks)
	if err != nil {
		return nil, err
	}

	// 2. Eliminate
	tr := &Triangulation{
		rank:         make(map[core.NodeID]int, len(nodes)),
		block:        block,
		elimCliques:  make(map[core.NodeID]core.NodeSet, len(nodes)),
		triangulated: moral.Clone(),
		opts:         o,
	}
	work := moral.Clone()
	for _, b := range blocks {
		cand := b.Clone()
		for cand.Len() > 0 {
			v := tr.pick(work, cand, domainSizes)
			cand.Remove(v)
			if err = tr.eliminate(work, v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Assemble the junction tree
	switch o.Strategy {
	case MaximalCliques:
		err = tr.buildMaximalCliques()
	default:
		tr.buildEliminationTree()
	}
	if err != nil {
		return nil, err
	}

	return tr, nil
}

// blockIndex maps every node to the index of its block, checking that the
// blocks partition the nodes of g.
func blockIndex(g *core.Graph, blocks []core.NodeSet) (map[core.NodeID]int, error) {
	idx := make(map[core.NodeID]int, g.NodeCount())
	for i, b := range blocks {
		for _, id := range b.Slice() {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: unknown node %d", ErrInvalidPartialOrder, id)
			}
			if _, dup := idx[id]; dup {
				return nil, fmt.Errorf("%w: node %d appears twice", ErrInvalidPartialOrder, id)
			}
			idx[id] = i
		}
	}
	for _, id := range g.Nodes() {
		if _, ok := idx[id]; !ok {
			return nil, fmt.Errorf("%w: node %d not ordered", ErrInvalidPartialOrder, id)
		}
	}

	return idx, nil
}

// score is the lexicographic key minimised by pick.
type score struct {
	primary float64
	fill    int
	weight  float64
	id      core.NodeID
}

func (s score) less(o score) bool {
	if s.primary != o.primary {
		return s.primary < o.primary
	}
	if s.fill != o.fill {
		return s.fill < o.fill
	}
	if s.weight != o.weight {
		return s.weight < o.weight
	}

	return s.id < o.id
}

// pick returns the best candidate according to the heuristic.
func (tr *Triangulation) pick(work *core.Graph, cand core.NodeSet, dom map[core.NodeID]int) core.NodeID {
	var (
		best   score
		chosen = false
	)
	for _, v := range cand.Slice() {
		nbrs, _ := work.Neighbors(v)
		s := score{
			fill:   fillCount(work, nbrs),
			weight: math.Log(float64(dom[v])),
			id:     v,
		}
		for _, u := range nbrs {
			s.weight += math.Log(float64(dom[u]))
		}
		switch tr.opts.Heuristic {
		case MinFill:
			s.primary = float64(s.fill)
		case MinDegree:
			s.primary = float64(len(nbrs))
		default:
			s.primary = s.weight
		}
		if !chosen || s.less(best) {
			best, chosen = s, true
		}
	}

	return best.id
}

// fillCount returns the number of non-adjacent pairs in nbrs.
func fillCount(g *core.Graph, nbrs []core.NodeID) int {
	n := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !g.HasEdge(nbrs[i], nbrs[j]) {
				n++
			}
		}
	}

	return n
}

// eliminate records C_v, adds fill-ins between the neighbours of v and
// removes v from the working graph.
func (tr *Triangulation) eliminate(work *core.Graph, v core.NodeID) error {
	nbrs, err := work.Neighbors(v)
	if err != nil {
		return err
	}
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			a, b := nbrs[i], nbrs[j]
			if work.HasEdge(a, b) {
				continue
			}
			if err = work.AddEdge(a, b, 0); err != nil {
				return err
			}
			if err = tr.triangulated.AddEdge(a, b, 0); err != nil {
				return err
			}
			tr.fillIns = append(tr.fillIns, core.Edge{From: a, To: b})
		}
	}
	c := core.NewNodeSet(nbrs...)
	c.Add(v)
	tr.elimCliques[v] = c
	tr.rank[v] = len(tr.order)
	tr.order = append(tr.order, v)

	return work.RemoveNode(v)
}

// EliminationOrder returns the nodes in elimination order.
func (tr *Triangulation) EliminationOrder() []core.NodeID {
	return append([]core.NodeID(nil), tr.order...)
}

// EliminationRank returns the position of id in the elimination order.
func (tr *Triangulation) EliminationRank(id core.NodeID) (int, bool) {
	r, ok := tr.rank[id]
	return r, ok
}

// Block returns the index of the elimination block holding id.
func (tr *Triangulation) Block(id core.NodeID) (int, bool) {
	b, ok := tr.block[id]
	return b, ok
}

// EliminationClique returns C_v, the clique formed when v was eliminated.
func (tr *Triangulation) EliminationClique(v core.NodeID) (core.NodeSet, bool) {
	c, ok := tr.elimCliques[v]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// TriangulatedGraph returns a copy of the moral graph plus fill-ins.
func (tr *Triangulation) TriangulatedGraph() *core.Graph { return tr.triangulated.Clone() }

// FillIns returns the fill-in edges in the order they were added.
func (tr *Triangulation) FillIns() []core.Edge { return append([]core.Edge(nil), tr.fillIns...) }

// JunctionTree returns the junction tree.
func (tr *Triangulation) JunctionTree() *JunctionTree { return tr.tree }

// CreatedJunctionTreeClique returns the clique holding the elimination
// clique of node v.
func (tr *Triangulation) CreatedJunctionTreeClique(v core.NodeID) (core.NodeID, error) {
	c, ok := tr.created[v]
	if !ok {
		return 0, fmt.Errorf("%w: no clique created for node %d", ErrCliqueNotFound, v)
	}

	return c, nil
}
