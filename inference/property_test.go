package inference_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/dfs"
	"github.com/katalvlaran/lvlid/inference"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/table"
)

func binary(t *testing.T, name string) *table.Variable {
	t.Helper()
	v, err := table.NewVariable(name, "f", "t")
	require.NoError(t, err)

	return v
}

// addChance adds a binary chance node; values, when given, set its CPT.
func addChance(t *testing.T, id *model.InfluenceDiagram, name string, values ...float64) core.NodeID {
	t.Helper()
	n, err := id.AddChanceNode(binary(t, name))
	require.NoError(t, err)
	if len(values) > 0 {
		require.NoError(t, id.SetCPT(n, values...))
	}

	return n
}

func addDecision(t *testing.T, id *model.InfluenceDiagram, name string) core.NodeID {
	t.Helper()
	n, err := id.AddDecisionNode(binary(t, name))
	require.NoError(t, err)

	return n
}

func addUtility(t *testing.T, id *model.InfluenceDiagram, name string) core.NodeID {
	t.Helper()
	v, err := table.NewVariable(name, "u")
	require.NoError(t, err)
	n, err := id.AddUtilityNode(v)
	require.NoError(t, err)

	return n
}

// bruteForce evaluates Σ I0 max D1 Σ I1 ... of Π P · Σ U and of Π P by
// enumeration along the partial temporal order and returns their ratio.
func bruteForce(t *testing.T, id *model.InfluenceDiagram, evidence []*table.Table) float64 {
	t.Helper()
	pto, err := id.PartialTemporalOrder()
	require.NoError(t, err)
	var seq []*table.Variable
	var decision []bool
	for _, block := range pto {
		for _, n := range block.Slice() {
			v, _ := id.Variable(n)
			seq = append(seq, v)
			decision = append(decision, id.IsDecisionNode(n))
		}
	}
	var cpts, utils []*table.Table
	for _, n := range id.NodesOf(model.KindChance) {
		c, _ := id.CPT(n)
		cpts = append(cpts, c)
	}
	for _, n := range id.NodesOf(model.KindUtility) {
		u, _ := id.Utility(n)
		utils = append(utils, u)
	}
	inst := table.NewInstantiation(seq...)

	var rec func(k int) (float64, float64)
	rec = func(k int) (float64, float64) {
		if k == len(seq) {
			p := 1.0
			for _, c := range append(append([]*table.Table(nil), cpts...), evidence...) {
				x, err := c.Get(inst)
				require.NoError(t, err)
				p *= x
			}
			u := 0.0
			for _, c := range utils {
				x, err := c.Get(inst)
				require.NoError(t, err)
				u += x
			}
			return p, p * u
		}
		v := seq[k]
		pot, util := 0.0, 0.0
		if decision[k] {
			util = math.Inf(-1)
		}
		for val := 0; val < v.DomainSize(); val++ {
			require.NoError(t, inst.ChooseVal(v, val))
			p, u := rec(k + 1)
			if decision[k] {
				pot = math.Max(pot, p)
				util = math.Max(util, u)
			} else {
				pot += p
				util += u
			}
		}
		return pot, util
	}
	pot, util := rec(0)
	require.NotZero(t, pot)

	return util / pot
}

// randomDiagram builds a diagram over at most six binary chance and decision
// nodes. Arcs only go from lower to higher insertion index and consecutive
// decisions are linked, so the result is a valid influence diagram.
func randomDiagram(t *testing.T, rng *rand.Rand, seed int64) *model.InfluenceDiagram {
	t.Helper()
	id := model.New(fmt.Sprintf("random-%d", seed))
	n := 2 + rng.Intn(5)
	decisions := rng.Intn(3)
	var nodes []core.NodeID
	lastDecision := core.NodeID(-1)
	for k := 0; k < n; k++ {
		name := fmt.Sprintf("X%d", k)
		linked := core.NodeID(-1)
		var x core.NodeID
		if k > 0 && k < n-1 && decisions > 0 && rng.Float64() < 0.6 {
			decisions--
			x = addDecision(t, id, name)
			if lastDecision >= 0 {
				require.NoError(t, id.AddArc(lastDecision, x))
				linked = lastDecision
			}
			lastDecision = x
		} else {
			x = addChance(t, id, name)
		}
		for _, p := range nodes {
			if p != linked && rng.Float64() < 0.4 {
				require.NoError(t, id.AddArc(p, x))
			}
		}
		nodes = append(nodes, x)
	}
	for _, x := range id.NodesOf(model.KindChance) {
		cpt, err := id.CPT(x)
		require.NoError(t, err)
		values := make([]float64, cpt.DomainSize())
		for k := 0; k < len(values); k += 2 {
			p := 0.05 + 0.9*rng.Float64()
			values[k], values[k+1] = p, 1-p
		}
		require.NoError(t, id.SetCPT(x, values...))
	}
	utilities := 1 + rng.Intn(2)
	for k := 0; k < utilities; k++ {
		u := addUtility(t, id, fmt.Sprintf("U%d", k))
		for _, p := range nodes {
			if rng.Float64() < 0.5 {
				require.NoError(t, id.AddArc(p, u))
			}
		}
		ut, err := id.Utility(u)
		require.NoError(t, err)
		values := make([]float64, ut.DomainSize())
		for j := range values {
			values[j] = float64(rng.Intn(21) - 10)
		}
		require.NoError(t, id.SetUtility(u, values...))
	}

	return id
}

// independentOfDecisions returns the chance nodes that descend from no
// decision. Evidence on them keeps the probability of evidence independent
// of the policy.
func independentOfDecisions(t *testing.T, id *model.InfluenceDiagram) []core.NodeID {
	t.Helper()
	dag := id.DAG()
	influenced := core.NewNodeSet()
	for _, d := range id.NodesOf(model.KindDecision) {
		desc, err := dfs.Descendants(dag, d)
		require.NoError(t, err)
		for _, n := range desc.Slice() {
			influenced.Add(n)
		}
	}
	var out []core.NodeID
	for _, n := range id.NodesOf(model.KindChance) {
		if !influenced.Has(n) {
			out = append(out, n)
		}
	}

	return out
}

func TestMEUMatchesEnumeration(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			id := randomDiagram(t, rng, seed)
			e, err := inference.NewEngine(id)
			require.NoError(t, err)
			require.NoError(t, e.JunctionTree().VerifyRunningIntersection())
			require.NoError(t, e.MakeInference(context.Background()))
			meu, err := e.MEU()
			require.NoError(t, err)
			assert.InDelta(t, bruteForce(t, id, nil), meu, eps)

			// Same value from every valid root.
			for _, r := range e.ValidRoots() {
				require.NoError(t, e.SetRoot(r))
				require.NoError(t, e.MakeInference(context.Background()))
				got, err := e.MEU()
				require.NoError(t, err)
				assert.InDelta(t, meu, got, eps, "root %d", r)
			}

			// Evidence on one chance node no decision can influence.
			chance := independentOfDecisions(t, id)
			if len(chance) == 0 {
				return
			}
			target := chance[rng.Intn(len(chance))]
			ev := observation(t, id, target, rng.Intn(2))
			require.NoError(t, e.InsertEvidence([]*table.Table{ev}))
			require.NoError(t, e.MakeInference(context.Background()))
			got, err := e.MEU()
			require.NoError(t, err)
			assert.InDelta(t, bruteForce(t, id, []*table.Table{ev}), got, eps)
		})
	}
}

// TestPolicyIsOptimal clamps the single decision of random diagrams to each
// value and checks that the recorded policy reaches the best clamped value.
func TestPolicyIsOptimal(t *testing.T) {
	for seed := int64(100); seed < 130; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			id := model.New("clamp")
			pa := 0.3 + 0.4*rng.Float64()
			a := addChance(t, id, "A", pa, 1-pa)
			d := addDecision(t, id, "D")
			u := addUtility(t, id, "U")
			require.NoError(t, id.AddArc(a, d))
			require.NoError(t, id.AddArc(a, u))
			require.NoError(t, id.AddArc(d, u))
			payoff := make([]float64, 4)
			for k := range payoff {
				payoff[k] = float64(rng.Intn(41) - 20)
			}
			require.NoError(t, id.SetUtility(u, payoff...))

			e := solved(t, id)
			meu, err := e.MEU()
			require.NoError(t, err)
			policy, err := e.DecisionPolicy(d)
			require.NoError(t, err)

			// U(A, D) with A fastest: payoff[a + 2d].
			prior := []float64{pa, 1 - pa}
			expected := 0.0
			for x := 0; x < 2; x++ {
				choice := int(policy.At(x))
				best := math.Max(payoff[x], payoff[x+2])
				assert.Equal(t, best, payoff[x+2*choice])
				expected += prior[x] * payoff[x+2*choice]
			}
			assert.InDelta(t, expected, meu, eps)
		})
	}
}
