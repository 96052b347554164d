// File: reduce.go
// Role: mixed sum/max variable elimination inside one clique.
// Determinism:
//   - Ties between decision values go to the last value iterated.

package inference

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/table"
)

// reduceClique eliminates, in the clique's local order, every variable
// outside sep. Chance variables are summed out, decision variables are
// maximised out and their argmax is recorded. The returned potential and
// utility (weighted by the potential) are defined over exactly the clique
// variables of sep.
func (e *Engine) reduceClique(cp *cliqueProperties, sep core.NodeSet) (*table.Table, *table.Table) {
	work := cp.inst.Vars()
	var pot, util *table.Table
	for _, node := range cp.elimOrder {
		if sep.Has(node) {
			continue
		}
		v := e.vars[node]
		retained := without(work, v)
		newPot := must(table.New(retained...))
		newUtil := must(table.New(retained...))
		decision := e.diagram.IsDecisionNode(node)
		var policy *table.Table
		if decision {
			policy = must(table.New(retained...))
		}

		// Nested iteration needs two instantiations: the inner loop wraps
		// its own overflow flag.
		outer := table.NewInstantiation(retained...)
		cell := table.NewInstantiation(work...)
		elim := table.NewVarSet(v)
		best := 0
		for outer.SetFirst(); !outer.End(); outer.Inc() {
			cell.SetVals(outer)
			potVal, utilVal := 0.0, 0.0
			if decision {
				utilVal = math.Inf(-1)
			}
			choice := 0
			for cell.SetFirstIn(elim); !cell.End(); cell.IncIn(elim) {
				p, u := e.current(cp, pot, util, cell)
				if !decision {
					potVal += p
					utilVal += u
					continue
				}
				potVal = math.Max(potVal, p)
				if u >= utilVal {
					utilVal = u
					choice = must(cell.Val(v))
				}
			}
			mustSet(newPot, outer, potVal)
			mustSet(newUtil, outer, utilVal)
			if decision {
				mustSet(policy, outer, float64(choice))
				best = choice
			}
		}
		if decision {
			e.decisions[node] = best
			e.policies[node] = policy
		}
		e.log.Debug("eliminated",
			"clique", int(cp.id),
			"variable", v.Name(),
			"decision", decision,
			"retained", len(retained))
		pot, util = newPot, newUtil
		work = retained
	}
	if pot == nil {
		pot, util = e.evaluate(cp, work)
	}

	return pot, util
}

// current returns the potential and weighted utility at cell, either from
// the raw clique buckets (first elimination) or from the running marginals.
func (e *Engine) current(cp *cliqueProperties, pot, util *table.Table, cell *table.Instantiation) (float64, float64) {
	if pot != nil {
		return must(pot.Get(cell)), must(util.Get(cell))
	}
	p := 1.0
	for _, t := range cp.potentials.list() {
		p *= must(t.Get(cell))
	}
	u := 0.0
	for _, t := range cp.utilities.list() {
		u += must(t.Get(cell))
	}

	return p, u * p
}

// evaluate builds the raw tables of a clique with nothing to eliminate.
func (e *Engine) evaluate(cp *cliqueProperties, work []*table.Variable) (*table.Table, *table.Table) {
	pot := must(table.New(work...))
	util := must(table.New(work...))
	cell := table.NewInstantiation(work...)
	for cell.SetFirst(); !cell.End(); cell.Inc() {
		p, u := e.current(cp, nil, nil, cell)
		mustSet(pot, cell, p)
		mustSet(util, cell, u)
	}

	return pot, util
}

func without(vars []*table.Variable, drop *table.Variable) []*table.Variable {
	out := make([]*table.Variable, 0, len(vars))
	for _, v := range vars {
		if v != drop {
			out = append(out, v)
		}
	}

	return out
}

// must unwraps table calls whose arguments the clique layout makes valid:
// every instantiation used here covers the table it addresses. An error
// means that layout is broken, so it panics.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("inference: clique layout broken: %v", err))
	}
	return v
}

// mustSet is the Set counterpart of must.
func mustSet(t *table.Table, inst *table.Instantiation, value float64) {
	if err := t.Set(inst, value); err != nil {
		panic(fmt.Sprintf("inference: clique layout broken: %v", err))
	}
}
