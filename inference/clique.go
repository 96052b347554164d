// File: clique.go
// Role: per-clique table buckets, evidence and transient-state tracking.

package inference

import (
	"fmt"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/table"
)

// bucket is an insertion-ordered set of tables keyed by table ID.
type bucket struct {
	order  []uint64
	tables map[uint64]*table.Table
}

func newBucket() *bucket {
	return &bucket{tables: make(map[uint64]*table.Table)}
}

// add inserts t and reports whether it was absent.
func (b *bucket) add(t *table.Table) bool {
	if _, ok := b.tables[t.ID()]; ok {
		return false
	}
	b.tables[t.ID()] = t
	b.order = append(b.order, t.ID())

	return true
}

func (b *bucket) remove(id uint64) {
	if _, ok := b.tables[id]; !ok {
		return
	}
	delete(b.tables, id)
	for k, o := range b.order {
		if o == id {
			b.order = append(b.order[:k], b.order[k+1:]...)
			break
		}
	}
}

func (b *bucket) len() int { return len(b.order) }

// list returns the tables in insertion order.
func (b *bucket) list() []*table.Table {
	out := make([]*table.Table, len(b.order))
	for k, id := range b.order {
		out[k] = b.tables[id]
	}

	return out
}

// cliqueProperties holds everything attached to one junction tree clique.
// Tables and variables added as removable belong to a single inference run
// and are dropped by cleanFromInference.
type cliqueProperties struct {
	id         core.NodeID
	inst       *table.Instantiation
	potentials *bucket
	utilities  *bucket
	evidence   map[*table.Variable]*table.Table
	elimOrder  []core.NodeID

	removableTables map[uint64]struct{}
	removableVars   []*table.Variable
}

func newCliqueProperties(id core.NodeID) *cliqueProperties {
	return &cliqueProperties{
		id:              id,
		inst:            table.NewInstantiation(),
		potentials:      newBucket(),
		utilities:       newBucket(),
		evidence:        make(map[*table.Variable]*table.Table),
		removableTables: make(map[uint64]struct{}),
	}
}

// addVariable is idempotent.
func (cp *cliqueProperties) addVariable(v *table.Variable) {
	cp.inst.Add(v)
}

func (cp *cliqueProperties) addPotential(t *table.Table, removable bool) {
	cp.addTable(cp.potentials, t, removable)
}

func (cp *cliqueProperties) addUtility(t *table.Table, removable bool) {
	cp.addTable(cp.utilities, t, removable)
}

func (cp *cliqueProperties) addTable(b *bucket, t *table.Table, removable bool) {
	for _, v := range t.Vars() {
		if cp.inst.Contains(v) {
			continue
		}
		cp.inst.Add(v)
		if removable {
			cp.removableVars = append(cp.removableVars, v)
		}
	}
	if b.add(t) && removable {
		cp.removableTables[t.ID()] = struct{}{}
	}
}

// cleanFromInference restores the clique to its state before the last run.
func (cp *cliqueProperties) cleanFromInference() {
	for id := range cp.removableTables {
		cp.potentials.remove(id)
		cp.utilities.remove(id)
	}
	for _, v := range cp.removableVars {
		cp.inst.Erase(v)
	}
	cp.removableTables = make(map[uint64]struct{})
	cp.removableVars = nil
}

// checkEvidence validates ev against the clique without storing it.
func (cp *cliqueProperties) checkEvidence(ev *table.Table) (*table.Variable, error) {
	if ev.NbrDim() != 1 {
		return nil, fmt.Errorf("%w: got %d variables", ErrMultiVariableEvidence, ev.NbrDim())
	}
	v := ev.Vars()[0]
	if !cp.inst.Contains(v) {
		return nil, fmt.Errorf("%w: variable %s in clique %d", ErrNotFound, v.Name(), cp.id)
	}
	if _, dup := cp.evidence[v]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEvidence, v.Name())
	}

	return v, nil
}

// addEvidence stores ev and lets it take part in reduction as a potential.
func (cp *cliqueProperties) addEvidence(ev *table.Table) error {
	v, err := cp.checkEvidence(ev)
	if err != nil {
		return err
	}
	cp.evidence[v] = ev
	cp.potentials.add(ev)

	return nil
}

func (cp *cliqueProperties) removeEvidence(v *table.Variable) error {
	ev, ok := cp.evidence[v]
	if !ok {
		return fmt.Errorf("%w: no evidence on %s", ErrNotFound, v.Name())
	}
	delete(cp.evidence, v)
	cp.potentials.remove(ev.ID())

	return nil
}

func (cp *cliqueProperties) removeAllEvidence() {
	for v, ev := range cp.evidence {
		cp.potentials.remove(ev.ID())
		delete(cp.evidence, v)
	}
}

// makeEliminationOrder keeps the members of global that belong to the clique.
func (cp *cliqueProperties) makeEliminationOrder(global []core.NodeID, vars map[core.NodeID]*table.Variable) {
	cp.elimOrder = cp.elimOrder[:0]
	for _, id := range global {
		if cp.inst.Contains(vars[id]) {
			cp.elimOrder = append(cp.elimOrder, id)
		}
	}
}
