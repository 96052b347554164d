// File: query.go
// Role: results, evidence management and engine introspection.

package inference

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/table"
	"github.com/katalvlaran/lvlid/triangulation"
)

// MEU returns the maximum expected utility of the last inference.
// Returns ErrNotInferred before MakeInference and ErrZeroProbability when
// the evidence is impossible.
func (e *Engine) MEU() (float64, error) {
	if e.state != Computed {
		return 0, ErrNotInferred
	}
	p := e.rootPotential.At(0)
	if p == 0 {
		return 0, ErrZeroProbability
	}

	return e.rootUtility.At(0) / p, nil
}

// BestDecisionChoice returns the value index chosen for decision id when it
// was eliminated (the choice of the last configuration of the variables
// still present at that point).
func (e *Engine) BestDecisionChoice(id core.NodeID) (int, error) {
	if e.state != Computed {
		return 0, ErrNotInferred
	}
	if !e.diagram.IsDecisionNode(id) {
		return 0, fmt.Errorf("%w: %d is not a decision", ErrInvalidNode, id)
	}
	k, ok := e.decisions[id]
	if !ok {
		return 0, fmt.Errorf("%w: no choice recorded for %d", ErrNotFound, id)
	}

	return k, nil
}

// DecisionPolicy returns the optimal value index of decision id for every
// configuration of the variables present when it was eliminated.
// The table is a copy.
func (e *Engine) DecisionPolicy(id core.NodeID) (*table.Table, error) {
	if e.state != Computed {
		return nil, ErrNotInferred
	}
	if !e.diagram.IsDecisionNode(id) {
		return nil, fmt.Errorf("%w: %d is not a decision", ErrInvalidNode, id)
	}
	p, ok := e.policies[id]
	if !ok {
		return nil, fmt.Errorf("%w: no policy recorded for %d", ErrNotFound, id)
	}

	return p.Clone(), nil
}

// InsertEvidence routes each single-variable table to the clique created for
// its variable. The list is validated as a whole first: on error nothing is
// inserted. Evidence takes effect at the next MakeInference.
func (e *Engine) InsertEvidence(evidence []*table.Table) error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	seen := make(table.VarSet, len(evidence))
	homes := make([]*cliqueProperties, len(evidence))
	for k, ev := range evidence {
		cp, err := e.evidenceClique(ev)
		if err != nil {
			return err
		}
		v, err := cp.checkEvidence(ev)
		if err != nil {
			return err
		}
		if seen.Has(v) {
			return fmt.Errorf("%w: %s", ErrDuplicateEvidence, v.Name())
		}
		seen.Add(v)
		homes[k] = cp
	}
	for k, ev := range evidence {
		if err := homes[k].addEvidence(ev); err != nil {
			return err
		}
	}

	return nil
}

// evidenceClique returns the clique owning the variable of ev.
func (e *Engine) evidenceClique(ev *table.Table) (*cliqueProperties, error) {
	if ev == nil || ev.NbrDim() != 1 {
		n := 0
		if ev != nil {
			n = ev.NbrDim()
		}
		return nil, fmt.Errorf("%w: got %d variables", ErrMultiVariableEvidence, n)
	}
	v := ev.Vars()[0]
	node, ok := e.varToNode[v]
	if !ok {
		return nil, fmt.Errorf("%w: variable %s", ErrNotFound, v.Name())
	}
	c, ok := e.nodeToClique[node]
	if !ok {
		return nil, fmt.Errorf("%w: no clique for %s", ErrNotFound, v.Name())
	}

	return e.cliques[c], nil
}

// EraseEvidence removes the evidence on the variable of ev.
func (e *Engine) EraseEvidence(ev *table.Table) error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	cp, err := e.evidenceClique(ev)
	if err != nil {
		return err
	}

	return cp.removeEvidence(ev.Vars()[0])
}

// EraseAllEvidence removes every evidence table.
func (e *Engine) EraseAllEvidence() {
	for _, cp := range e.cliques {
		cp.removeAllEvidence()
	}
}

// ValidRoots returns the cliques able to root the strong junction tree, in
// cliqueEliminationMap order.
func (e *Engine) ValidRoots() []core.NodeID {
	return append([]core.NodeID(nil), e.validRoots...)
}

// SetRoot selects another valid root. Results of a previous run are dropped.
func (e *Engine) SetRoot(id core.NodeID) error {
	for _, c := range e.validRoots {
		if c == id {
			e.cleanUp()
			e.root = id
			return nil
		}
	}

	return fmt.Errorf("%w: %d", ErrInvalidRoot, id)
}

// Root returns the current root clique.
func (e *Engine) Root() core.NodeID { return e.root }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// JunctionTree returns the junction tree the engine runs on.
func (e *Engine) JunctionTree() *triangulation.JunctionTree { return e.tree }

// EliminationOrder returns the global elimination order.
func (e *Engine) EliminationOrder() []core.NodeID {
	return append([]core.NodeID(nil), e.order...)
}

// RunID returns the identifier of the last MakeInference run, empty before
// the first one.
func (e *Engine) RunID() string {
	if e.runID == (uuid.UUID{}) {
		return ""
	}

	return e.runID.String()
}
