// File: structure.go
// Role: structures derived from the diagram (moral graph, decision order,
// partial temporal order) and CPT validation.

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/dfs"
	"github.com/katalvlaran/lvlid/table"
)

// MoralGraph returns the undirected moral graph over chance and decision
// nodes (see package documentation).
func (d *InfluenceDiagram) MoralGraph() *core.Graph {
	moral := core.NewGraph()
	for _, id := range d.dag.Nodes() {
		if d.kinds[id] != KindUtility {
			_ = moral.AddNode(id)
		}
	}
	for _, id := range d.dag.Nodes() {
		ps := d.parents[id]
		if d.kinds[id] != KindUtility {
			for _, p := range ps {
				_ = moral.AddEdge(p, id, 0)
			}
		}
		if d.kinds[id] == KindDecision {
			continue
		}
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				_ = moral.AddEdge(ps[i], ps[j], 0)
			}
		}
	}

	return moral
}

// DecisionOrder returns the decisions in the order they are taken.
// Returns ErrNoDecisionOrder unless consecutive decisions are linked by a
// directed path.
func (d *InfluenceDiagram) DecisionOrder() ([]core.NodeID, error) {
	topo, err := dfs.TopologicalSort(d.dag)
	if err != nil {
		return nil, err
	}
	var order []core.NodeID
	for _, id := range topo {
		if d.kinds[id] == KindDecision {
			order = append(order, id)
		}
	}
	for i := 0; i+1 < len(order); i++ {
		ok, err := dfs.HasPath(d.dag, order[i], order[i+1])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: no path from %s to %s",
				ErrNoDecisionOrder, d.vars[order[i]].Name(), d.vars[order[i+1]].Name())
		}
	}

	return order, nil
}

// PartialTemporalOrder returns the observation sequence of the diagram:
// the chance nodes observed before the first decision, the first decision,
// the chance nodes newly observed before the second decision, and so on,
// ending with the chance nodes never observed. Empty sets are dropped.
func (d *InfluenceDiagram) PartialTemporalOrder() ([]core.NodeSet, error) {
	decisions, err := d.DecisionOrder()
	if err != nil {
		return nil, err
	}
	placed := core.NewNodeSet()
	var order []core.NodeSet
	for _, dec := range decisions {
		observed := core.NewNodeSet()
		for _, p := range d.parents[dec] {
			if d.kinds[p] == KindChance && !placed.Has(p) {
				observed.Add(p)
				placed.Add(p)
			}
		}
		if observed.Len() > 0 {
			order = append(order, observed)
		}
		order = append(order, core.NewNodeSet(dec))
		placed.Add(dec)
	}
	rest := core.NewNodeSet()
	for _, id := range d.NodesOf(KindChance) {
		if !placed.Has(id) {
			rest.Add(id)
		}
	}
	if rest.Len() > 0 {
		order = append(order, rest)
	}

	return order, nil
}

// CheckCPTs verifies that every column of every CPT sums to one within CPTTolerance.
func (d *InfluenceDiagram) CheckCPTs() error {
	for _, id := range d.NodesOf(KindChance) {
		cpt := d.tables[id]
		child := table.NewVarSet(d.vars[id])
		columns := table.NewInstantiation(cpt.Vars()[1:]...)
		cell := cpt.NewInstantiation()
		for columns.SetFirst(); !columns.End(); columns.Inc() {
			cell.SetVals(columns)
			sum := 0.0
			for cell.SetFirstIn(child); !cell.End(); cell.IncIn(child) {
				v, _ := cpt.Get(cell)
				sum += v
			}
			if math.Abs(sum-1) > CPTTolerance {
				return fmt.Errorf("%w: %s at %s sums to %g", ErrCPTNotNormalized, d.vars[id].Name(), columns, sum)
			}
		}
	}

	return nil
}
