// File: display.go
// Role: human-readable dumps of results and of the strong junction tree.

package inference

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/model"
)

// DisplayResult writes the MEU followed, for every decision in id order,
// by its best choice and its policy:
//
//	MEU: 10
//	decision D: d1
//	  <A:a0> d1
//	  <A:a1> d0
func (e *Engine) DisplayResult(w io.Writer) error {
	meu, err := e.MEU()
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "MEU: %s\n", FormatUtility(meu))
	for _, d := range e.diagram.NodesOf(model.KindDecision) {
		v := e.vars[d]
		best, err := e.BestDecisionChoice(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "decision %s: %s\n", v.Name(), v.Label(best))
		policy := e.policies[d]
		inst := policy.NewInstantiation()
		for inst.SetFirst(); !inst.End(); inst.Inc() {
			k := must(policy.Get(inst))
			fmt.Fprintf(&b, "  %s %s\n", inst, v.Label(int(k)))
		}
	}
	_, err = io.WriteString(w, b.String())

	return err
}

// DisplayStrongJunctionTree writes the elimination order, every clique with
// its cliqueEliminationMap index (split variable, root and other valid roots
// marked) and the separators:
//
//	elimination order: Outcome Disease Treat Symptom
//	index 0: clique 1 {Disease,Symptom,Treat} root
//	index 3: clique 0 {Disease,Treat,Outcome} split=Disease
//	separators:
//	  0 -- 1 {Disease,Treat}
func (e *Engine) DisplayStrongJunctionTree(w io.Writer) error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	var b strings.Builder
	order := make([]string, len(e.order))
	for k, n := range e.order {
		order[k] = e.vars[n].Name()
	}
	fmt.Fprintf(&b, "elimination order: %s\n", strings.Join(order, " "))

	valid := core.NewNodeSet(e.validRoots...)
	itr := e.elimMap.Iterator()
	for !itr.Done() {
		idx, ids, _ := itr.Next()
		for _, c := range ids {
			members, _ := e.tree.Clique(c)
			fmt.Fprintf(&b, "index %d: clique %d %s", idx, c, e.names(members))
			if split, ok := e.splits[c]; ok {
				fmt.Fprintf(&b, " split=%s", e.vars[split].Name())
			}
			switch {
			case c == e.root:
				b.WriteString(" root")
			case valid.Has(c):
				b.WriteString(" valid")
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString("separators:\n")
	for _, edge := range e.tree.Edges() {
		sep, _ := e.tree.Separator(edge.From, edge.To)
		fmt.Fprintf(&b, "  %d -- %d %s\n", edge.From, edge.To, e.names(sep))
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// FormatUtility renders an expected utility with 12 significant digits, so
// rounding noise from the reductions does not reach the output.
func FormatUtility(u float64) string {
	return strconv.FormatFloat(u, 'g', 12, 64)
}

// names renders a node set as "{A,B}" using variable names in id order.
func (e *Engine) names(s core.NodeSet) string {
	ids := s.Slice()
	parts := make([]string, len(ids))
	for k, n := range ids {
		parts[k] = e.vars[n].Name()
	}

	return "{" + strings.Join(parts, ",") + "}"
}
