// File: builder.go
// Role: error-accumulating helper for assembling diagrams.

package demos

import (
	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/table"
)

// builder keeps the first error and turns every later call into a no-op.
type builder struct {
	id  *model.InfluenceDiagram
	err error
}

func newBuilder(name string) *builder {
	return &builder{id: model.New(name)}
}

func (b *builder) node(add func(*table.Variable) (core.NodeID, error), name string, labels ...string) core.NodeID {
	if b.err != nil {
		return -1
	}
	v, err := table.NewVariable(name, labels...)
	if err != nil {
		b.err = err
		return -1
	}
	n, err := add(v)
	if err != nil {
		b.err = err
		return -1
	}

	return n
}

func (b *builder) chance(name string, labels ...string) core.NodeID {
	return b.node(b.id.AddChanceNode, name, labels...)
}

func (b *builder) decision(name string, labels ...string) core.NodeID {
	return b.node(b.id.AddDecisionNode, name, labels...)
}

func (b *builder) utility(name string) core.NodeID {
	return b.node(b.id.AddUtilityNode, name, "utility")
}

func (b *builder) arcs(head core.NodeID, tails ...core.NodeID) {
	for _, t := range tails {
		if b.err != nil {
			return
		}
		b.err = b.id.AddArc(t, head)
	}
}

func (b *builder) cpt(n core.NodeID, values ...float64) {
	if b.err == nil {
		b.err = b.id.SetCPT(n, values...)
	}
}

func (b *builder) payoff(n core.NodeID, values ...float64) {
	if b.err == nil {
		b.err = b.id.SetUtility(n, values...)
	}
}

func (b *builder) done() (*model.InfluenceDiagram, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.id.CheckCPTs(); err != nil {
		return nil, err
	}

	return b.id, nil
}
