// File: query.go
// Role: read accessors of InfluenceDiagram.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/table"
)

// Size returns the number of nodes.
func (d *InfluenceDiagram) Size() int { return len(d.kinds) }

// Nodes returns every node id sorted ascending.
func (d *InfluenceDiagram) Nodes() []core.NodeID { return d.dag.Nodes() }

// NodesOf returns the nodes of the given kind sorted ascending.
func (d *InfluenceDiagram) NodesOf(kind NodeKind) []core.NodeID {
	var out []core.NodeID
	for _, id := range d.dag.Nodes() {
		if d.kinds[id] == kind {
			out = append(out, id)
		}
	}

	return out
}

// Kind returns the kind of id.
func (d *InfluenceDiagram) Kind(id core.NodeID) (NodeKind, error) {
	k, ok := d.kinds[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return k, nil
}

// IsChanceNode reports whether id is a chance node.
func (d *InfluenceDiagram) IsChanceNode(id core.NodeID) bool { return d.is(id, KindChance) }

// IsDecisionNode reports whether id is a decision node.
func (d *InfluenceDiagram) IsDecisionNode(id core.NodeID) bool { return d.is(id, KindDecision) }

// IsUtilityNode reports whether id is a utility node.
func (d *InfluenceDiagram) IsUtilityNode(id core.NodeID) bool { return d.is(id, KindUtility) }

func (d *InfluenceDiagram) is(id core.NodeID, kind NodeKind) bool {
	k, ok := d.kinds[id]
	return ok && k == kind
}

// Variable returns the variable of id.
func (d *InfluenceDiagram) Variable(id core.NodeID) (*table.Variable, error) {
	v, ok := d.vars[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return v, nil
}

// NodeByName returns the node whose variable is called name.
func (d *InfluenceDiagram) NodeByName(name string) (core.NodeID, error) {
	id, ok := d.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// Parents returns the parents of id in arc insertion order.
func (d *InfluenceDiagram) Parents(id core.NodeID) ([]core.NodeID, error) {
	if err := d.checkNodes(id); err != nil {
		return nil, err
	}

	return append([]core.NodeID(nil), d.parents[id]...), nil
}

// Children returns the children of id sorted ascending.
func (d *InfluenceDiagram) Children(id core.NodeID) ([]core.NodeID, error) {
	if err := d.checkNodes(id); err != nil {
		return nil, err
	}

	return d.dag.Children(id)
}

// CPT returns the live CPT of chance node id.
func (d *InfluenceDiagram) CPT(id core.NodeID) (*table.Table, error) {
	if err := d.checkNodes(id); err != nil {
		return nil, err
	}
	if d.kinds[id] != KindChance {
		return nil, fmt.Errorf("%w: %s", ErrNotChance, d.vars[id].Name())
	}

	return d.tables[id], nil
}

// Utility returns the live utility table of utility node id.
func (d *InfluenceDiagram) Utility(id core.NodeID) (*table.Table, error) {
	if err := d.checkNodes(id); err != nil {
		return nil, err
	}
	if d.kinds[id] != KindUtility {
		return nil, fmt.Errorf("%w: %s", ErrNotUtility, d.vars[id].Name())
	}

	return d.tables[id], nil
}

// DAG returns a copy of the underlying directed graph.
func (d *InfluenceDiagram) DAG() *core.Graph { return d.dag.Clone() }
