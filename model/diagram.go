// File: diagram.go
// Role: InfluenceDiagram construction (nodes, arcs, tables).

package model

import (
	"fmt"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/dfs"
	"github.com/katalvlaran/lvlid/table"
)

// InfluenceDiagram is a DAG of chance, decision and utility nodes with their tables.
type InfluenceDiagram struct {
	name    string
	dag     *core.Graph
	next    core.NodeID
	kinds   map[core.NodeID]NodeKind
	vars    map[core.NodeID]*table.Variable
	names   map[string]core.NodeID
	parents map[core.NodeID][]core.NodeID
	tables  map[core.NodeID]*table.Table
}

// New returns an empty diagram called name.
func New(name string) *InfluenceDiagram {
	return &InfluenceDiagram{
		name:    name,
		dag:     core.NewGraph(core.WithDirected(true)),
		kinds:   make(map[core.NodeID]NodeKind),
		vars:    make(map[core.NodeID]*table.Variable),
		names:   make(map[string]core.NodeID),
		parents: make(map[core.NodeID][]core.NodeID),
		tables:  make(map[core.NodeID]*table.Table),
	}
}

// Name returns the diagram's name.
func (d *InfluenceDiagram) Name() string { return d.name }

// AddChanceNode adds a chance node for v with a zero-filled CPT over v.
func (d *InfluenceDiagram) AddChanceNode(v *table.Variable) (core.NodeID, error) {
	return d.addNode(v, KindChance)
}

// AddDecisionNode adds a decision node for v.
func (d *InfluenceDiagram) AddDecisionNode(v *table.Variable) (core.NodeID, error) {
	return d.addNode(v, KindDecision)
}

// AddUtilityNode adds a utility node for v, which must have a single value.
// Its utility table starts as the scalar 0 and grows with every parent.
func (d *InfluenceDiagram) AddUtilityNode(v *table.Variable) (core.NodeID, error) {
	if v != nil && v.DomainSize() != 1 {
		return 0, fmt.Errorf("%w: %s has %d values", ErrUtilityDomain, v.Name(), v.DomainSize())
	}

	return d.addNode(v, KindUtility)
}

func (d *InfluenceDiagram) addNode(v *table.Variable, kind NodeKind) (core.NodeID, error) {
	if v == nil {
		return 0, ErrNilVariable
	}
	if _, dup := d.names[v.Name()]; dup {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateName, v.Name())
	}
	id := d.next
	if err := d.dag.AddNode(id); err != nil {
		return 0, err
	}
	d.next++
	d.kinds[id] = kind
	d.vars[id] = v
	d.names[v.Name()] = id
	d.rebuildTable(id)

	return id, nil
}

// AddArc adds the arc tail→head. The table of head is rebuilt zero-filled
// with tail appended to its variables.
func (d *InfluenceDiagram) AddArc(tail, head core.NodeID) error {
	if err := d.checkNodes(tail, head); err != nil {
		return err
	}
	if d.kinds[tail] == KindUtility {
		return fmt.Errorf("%w: %s", ErrUtilityTail, d.vars[tail].Name())
	}
	if tail == head {
		return fmt.Errorf("%w: %s", ErrSelfLoop, d.vars[tail].Name())
	}
	if d.dag.HasEdge(tail, head) {
		return fmt.Errorf("%w: %s->%s", ErrDuplicateArc, d.vars[tail].Name(), d.vars[head].Name())
	}
	closes, err := dfs.HasPath(d.dag, head, tail)
	if err != nil {
		return err
	}
	if closes {
		return fmt.Errorf("%w: %s->%s", ErrCycle, d.vars[tail].Name(), d.vars[head].Name())
	}
	if err = d.dag.AddEdge(tail, head, 0); err != nil {
		return err
	}
	d.parents[head] = append(d.parents[head], tail)
	d.rebuildTable(head)

	return nil
}

// AddArcByName is AddArc addressed by variable names.
func (d *InfluenceDiagram) AddArcByName(tail, head string) error {
	t, err := d.NodeByName(tail)
	if err != nil {
		return err
	}
	h, err := d.NodeByName(head)
	if err != nil {
		return err
	}

	return d.AddArc(t, h)
}

// EraseArc removes the arc tail→head and rebuilds the table of head.
func (d *InfluenceDiagram) EraseArc(tail, head core.NodeID) error {
	if err := d.checkNodes(tail, head); err != nil {
		return err
	}
	if err := d.dag.RemoveEdge(tail, head); err != nil {
		return fmt.Errorf("%w: %s->%s", ErrArcNotFound, d.vars[tail].Name(), d.vars[head].Name())
	}
	ps := d.parents[head]
	for i, p := range ps {
		if p == tail {
			d.parents[head] = append(ps[:i:i], ps[i+1:]...)
			break
		}
	}
	d.rebuildTable(head)

	return nil
}

func (d *InfluenceDiagram) checkNodes(ids ...core.NodeID) error {
	for _, id := range ids {
		if _, ok := d.kinds[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}

	return nil
}

// rebuildTable recreates the table of id from its current family.
func (d *InfluenceDiagram) rebuildTable(id core.NodeID) {
	var vars []*table.Variable
	switch d.kinds[id] {
	case KindChance:
		vars = append(vars, d.vars[id])
	case KindDecision:
		return
	}
	for _, p := range d.parents[id] {
		vars = append(vars, d.vars[p])
	}
	// Names are unique, so variables are distinct and New cannot fail.
	t, _ := table.New(vars...)
	d.tables[id] = t
}

// SetCPT fills the CPT of chance node id with values in table layout order
// (the node varies fastest, then its parents in arc order).
func (d *InfluenceDiagram) SetCPT(id core.NodeID, values ...float64) error {
	t, err := d.CPT(id)
	if err != nil {
		return err
	}

	return t.SetValues(values...)
}

// SetUtility fills the utility table of utility node id (parents in arc
// order, first varies fastest).
func (d *InfluenceDiagram) SetUtility(id core.NodeID, values ...float64) error {
	t, err := d.Utility(id)
	if err != nil {
		return err
	}

	return t.SetValues(values...)
}
