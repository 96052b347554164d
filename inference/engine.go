// File: engine.go
// Role: Engine construction (triangulation, clique tables, strong tree).

package inference

import (
	"fmt"
	"log/slog"

	"github.com/benbjohnson/immutable"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/table"
	"github.com/katalvlaran/lvlid/triangulation"
)

// Engine solves an influence diagram on a strong junction tree.
//
// The engine borrows the diagram: table values may change between runs,
// but structural edits (nodes, arcs) require a new Engine.
// An Engine is not safe for concurrent use.
type Engine struct {
	diagram *model.InfluenceDiagram
	opts    Options
	log     *slog.Logger
	state   State

	tri          *triangulation.Triangulation
	tree         *triangulation.JunctionTree
	order        []core.NodeID
	vars         map[core.NodeID]*table.Variable
	varToNode    map[*table.Variable]core.NodeID
	cliques      map[core.NodeID]*cliqueProperties
	nodeToClique map[core.NodeID]core.NodeID

	elimMap    *immutable.SortedMap[int, []core.NodeID]
	splits     map[core.NodeID]core.NodeID
	validRoots []core.NodeID
	root       core.NodeID

	rootPotential *table.Table
	rootUtility   *table.Table
	decisions     map[core.NodeID]int
	policies      map[core.NodeID]*table.Table
	runID         uuid.UUID
}

// NewEngine compiles id into a strong junction tree.
//
// Steps:
//  1. Eliminate the moral graph in reverse partial temporal order.
//  2. Create one cliqueProperties per junction tree clique.
//  3. Attach every CPT to the clique created for the earliest eliminated
//     member of its family; cliques left without one get an all-ones table.
//  4. Select the strong root.
//  5. Attach every utility table the same way (parentless ones go to the
//     root); cliques left without one get a zero table.
//
// Errors: ErrNilModel, ErrInvalidModel, ErrNoCliqueFound, ErrNoStrongRoot.
func NewEngine(id *model.InfluenceDiagram, opts ...Option) (*Engine, error) {
	if id == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	e := &Engine{
		diagram:      id,
		opts:         o,
		log:          o.Logger.With("diagram", id.Name()),
		vars:         make(map[core.NodeID]*table.Variable, id.Size()),
		varToNode:    make(map[*table.Variable]core.NodeID, id.Size()),
		cliques:      make(map[core.NodeID]*cliqueProperties),
		nodeToClique: make(map[core.NodeID]core.NodeID),
		decisions:    make(map[core.NodeID]int),
		policies:     make(map[core.NodeID]*table.Table),
	}
	for _, n := range id.Nodes() {
		v, _ := id.Variable(n)
		e.vars[n] = v
		e.varToNode[v] = n
	}

	// 1. Triangulate
	if err := e.triangulate(); err != nil {
		return nil, err
	}

	// 2. Cliques
	for _, c := range e.tree.Cliques() {
		cp := newCliqueProperties(c)
		members, _ := e.tree.Clique(c)
		for _, n := range members.Slice() {
			cp.addVariable(e.vars[n])
		}
		cp.makeEliminationOrder(e.order, e.vars)
		e.cliques[c] = cp
	}

	// 3. Probability tables
	if err := e.placePotentials(); err != nil {
		return nil, err
	}

	// 4. Strong root
	if err := e.buildStrongTree(); err != nil {
		return nil, err
	}

	// 5. Utility tables
	if err := e.placeUtilities(); err != nil {
		return nil, err
	}

	e.state = Ready
	e.log.Debug("engine ready",
		"cliques", e.tree.Size(),
		"root", int(e.root),
		"valid_roots", len(e.validRoots),
		"heuristic", o.Heuristic.String(),
		"strategy", o.Strategy.String(),
		"spanning", o.Spanning)

	return e, nil
}

func (e *Engine) triangulate() error {
	pto, err := e.diagram.PartialTemporalOrder()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	blocks := make([]core.NodeSet, len(pto))
	for k, b := range pto {
		blocks[len(pto)-1-k] = b
	}
	moral := e.diagram.MoralGraph()
	domains := make(map[core.NodeID]int, moral.NodeCount())
	for _, n := range moral.Nodes() {
		domains[n] = e.vars[n].DomainSize()
	}
	tri, err := triangulation.Triangulate(moral, domains, blocks,
		triangulation.WithHeuristic(e.opts.Heuristic),
		triangulation.WithStrategy(e.opts.Strategy),
		triangulation.WithSpanning(e.opts.Spanning))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	e.tri = tri
	e.tree = tri.JunctionTree()
	e.order = tri.EliminationOrder()

	return nil
}

// earliest returns the member of family eliminated first.
func (e *Engine) earliest(family []core.NodeID) core.NodeID {
	best, bestRank := family[0], -1
	for _, n := range family {
		r, _ := e.tri.EliminationRank(n)
		if bestRank < 0 || r < bestRank {
			best, bestRank = n, r
		}
	}

	return best
}

// homeOf returns the clique created for the earliest eliminated member of
// family, checking that it holds the whole family.
func (e *Engine) homeOf(family []core.NodeID) (*cliqueProperties, error) {
	c, err := e.tri.CreatedJunctionTreeClique(e.earliest(family))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCliqueFound, err)
	}
	cp := e.cliques[c]
	for _, n := range family {
		if !cp.inst.Contains(e.vars[n]) {
			return nil, fmt.Errorf("%w: clique %d misses %s", ErrNoCliqueFound, c, e.vars[n].Name())
		}
	}

	return cp, nil
}

func (e *Engine) placePotentials() error {
	for _, n := range e.diagram.Nodes() {
		if e.diagram.IsUtilityNode(n) {
			continue
		}
		c, err := e.tri.CreatedJunctionTreeClique(n)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoCliqueFound, err)
		}
		e.nodeToClique[n] = c
	}
	for _, n := range e.diagram.NodesOf(model.KindChance) {
		parents, _ := e.diagram.Parents(n)
		cp, err := e.homeOf(append([]core.NodeID{n}, parents...))
		if err != nil {
			return err
		}
		cpt, _ := e.diagram.CPT(n)
		cp.addPotential(cpt, false)
	}
	for _, c := range e.tree.Cliques() {
		cp := e.cliques[c]
		if cp.potentials.len() > 0 {
			continue
		}
		dummy := must(table.New(cp.inst.Vars()...))
		dummy.Fill(1)
		cp.addPotential(dummy, false)
	}

	return nil
}

func (e *Engine) placeUtilities() error {
	for _, n := range e.diagram.NodesOf(model.KindUtility) {
		parents, _ := e.diagram.Parents(n)
		cp := e.cliques[e.root]
		if len(parents) > 0 {
			var err error
			if cp, err = e.homeOf(parents); err != nil {
				return err
			}
		}
		u, _ := e.diagram.Utility(n)
		cp.addUtility(u, false)
	}
	for _, c := range e.tree.Cliques() {
		cp := e.cliques[c]
		if cp.utilities.len() > 0 {
			continue
		}
		dummy := must(table.New(cp.inst.Vars()...))
		cp.addUtility(dummy, false)
	}

	return nil
}
