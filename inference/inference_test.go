package inference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/demos"
	"github.com/katalvlaran/lvlid/inference"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/prim_kruskal"
	"github.com/katalvlaran/lvlid/table"
	"github.com/katalvlaran/lvlid/triangulation"
)

const eps = 1e-9

// build returns the demo diagram called name.
func build(t *testing.T, name string) *model.InfluenceDiagram {
	t.Helper()
	d, err := demos.Lookup(name)
	require.NoError(t, err)
	id, err := d.Build()
	require.NoError(t, err)

	return id
}

// solved returns an engine on id after one successful inference.
func solved(t *testing.T, id *model.InfluenceDiagram, opts ...inference.Option) *inference.Engine {
	t.Helper()
	e, err := inference.NewEngine(id, opts...)
	require.NoError(t, err)
	require.NoError(t, e.MakeInference(context.Background()))

	return e
}

func node(t *testing.T, id *model.InfluenceDiagram, name string) core.NodeID {
	t.Helper()
	n, err := id.NodeByName(name)
	require.NoError(t, err)

	return n
}

// observation returns a one-hot evidence table on the variable of n.
func observation(t *testing.T, id *model.InfluenceDiagram, n core.NodeID, k int) *table.Table {
	t.Helper()
	v, err := id.Variable(n)
	require.NoError(t, err)
	ev, err := table.New(v)
	require.NoError(t, err)
	values := make([]float64, v.DomainSize())
	values[k] = 1
	require.NoError(t, ev.SetValues(values...))

	return ev
}

func TestObservedChain(t *testing.T) {
	id := build(t, "observed-chain")
	e := solved(t, id)

	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, meu, eps)

	d := node(t, id, "D")
	best, err := e.BestDecisionChoice(d)
	require.NoError(t, err)
	assert.Equal(t, 0, best) // choice for the last configuration, A = a1

	policy, err := e.DecisionPolicy(d)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, policy.Values())
}

func TestOilWildcatter(t *testing.T) {
	id := build(t, "oil-wildcatter")
	for _, s := range []triangulation.Strategy{triangulation.EliminationTree, triangulation.MaximalCliques} {
		for _, h := range []triangulation.Heuristic{triangulation.MinWeight, triangulation.MinFill, triangulation.MinDegree} {
			t.Run(s.String()+"/"+h.String(), func(t *testing.T) {
				e := solved(t, id, inference.WithStrategy(s), inference.WithHeuristic(h))
				meu, err := e.MEU()
				require.NoError(t, err)
				assert.InDelta(t, 22.5, meu, eps)

				test, err := e.BestDecisionChoice(node(t, id, "Test"))
				require.NoError(t, err)
				assert.Equal(t, 0, test) // yes

				policy, err := e.DecisionPolicy(node(t, id, "Drill"))
				require.NoError(t, err)
				// Test varies fastest: (yes,closed) (no,closed) (yes,open) ...
				assert.Equal(t, []float64{0, 0, 0, 0, 1, 0}, policy.Values())
			})
		}
	}
}

func TestWeather(t *testing.T) {
	id := build(t, "weather")
	e := solved(t, id)
	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, 77.0, meu, eps)

	policy, err := e.DecisionPolicy(node(t, id, "Umbrella"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, policy.Values()) // leave, leave, take
	best, err := e.BestDecisionChoice(node(t, id, "Umbrella"))
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestTreatmentTwoCliques(t *testing.T) {
	id := build(t, "treatment")
	e := solved(t, id)
	assert.Equal(t, 2, e.JunctionTree().Size())
	assert.Equal(t, []core.NodeID{1}, e.ValidRoots())
	assert.Equal(t, core.NodeID(1), e.Root())

	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, 90.8, meu, eps)

	policy, err := e.DecisionPolicy(node(t, id, "Treat"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, policy.Values())
	require.NoError(t, e.JunctionTree().VerifyRunningIntersection())
}

func TestNoDecisionIsExpectedUtility(t *testing.T) {
	id := model.New("wet-grass")
	rain := addChance(t, id, "Rain", 0.2, 0.8)
	sprinkler := addChance(t, id, "Sprinkler", 0.4, 0.6)
	wet := addChance(t, id, "Wet")
	mood := addChance(t, id, "Mood")
	u := addUtility(t, id, "U")
	require.NoError(t, id.AddArc(rain, wet))
	require.NoError(t, id.AddArc(sprinkler, wet))
	require.NoError(t, id.AddArc(wet, mood))
	require.NoError(t, id.AddArc(mood, u))
	require.NoError(t, id.AddArc(rain, u))
	// Wet | Rain, Sprinkler
	require.NoError(t, id.SetCPT(wet, 0.99, 0.01, 0.9, 0.1, 0.8, 0.2, 0.05, 0.95))
	// Mood | Wet
	require.NoError(t, id.SetCPT(mood, 0.7, 0.3, 0.25, 0.75))
	// U(Mood, Rain)
	require.NoError(t, id.SetUtility(u, 5, -2, 3, 1))

	// Direct enumeration of Σ P(x) U(x).
	p := func(vals ...float64) float64 {
		out := 1.0
		for _, v := range vals {
			out *= v
		}
		return out
	}
	pr := []float64{0.2, 0.8}
	ps := []float64{0.4, 0.6}
	pw := [2][2][2]float64{} // [r][s][w]
	wcpt := []float64{0.99, 0.01, 0.9, 0.1, 0.8, 0.2, 0.05, 0.95}
	for r := 0; r < 2; r++ {
		for s := 0; s < 2; s++ {
			for w := 0; w < 2; w++ {
				pw[r][s][w] = wcpt[w+2*r+4*s]
			}
		}
	}
	pm := [2][2]float64{{0.7, 0.3}, {0.25, 0.75}} // [w][m]
	uv := [2][2]float64{{5, 3}, {-2, 1}}          // [m][r]
	want := 0.0
	for r := 0; r < 2; r++ {
		for s := 0; s < 2; s++ {
			for w := 0; w < 2; w++ {
				for m := 0; m < 2; m++ {
					want += p(pr[r], ps[s], pw[r][s][w], pm[w][m]) * uv[m][r]
				}
			}
		}
	}

	e := solved(t, id)
	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, want, meu, eps)
	assert.InDelta(t, bruteForce(t, id, nil), meu, eps)
}

func TestIdempotentInference(t *testing.T) {
	id := build(t, "oil-wildcatter")
	e := solved(t, id)
	first, err := e.MEU()
	require.NoError(t, err)
	policy1, err := e.DecisionPolicy(node(t, id, "Drill"))
	require.NoError(t, err)
	runID := e.RunID()
	assert.NotEmpty(t, runID)

	require.NoError(t, e.MakeInference(context.Background()))
	second, err := e.MEU()
	require.NoError(t, err)
	policy2, err := e.DecisionPolicy(node(t, id, "Drill"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, policy1.Values(), policy2.Values())
	assert.NotEqual(t, runID, e.RunID())
}

func TestEvidenceRoundTrip(t *testing.T) {
	id := build(t, "oil-wildcatter")
	e := solved(t, id)
	before, err := e.MEU()
	require.NoError(t, err)

	ev := observation(t, id, node(t, id, "Oil"), 2)
	require.NoError(t, e.InsertEvidence([]*table.Table{ev}))
	require.NoError(t, e.MakeInference(context.Background()))
	soaking, err := e.MEU()
	require.NoError(t, err)
	assert.NotEqual(t, before, soaking)
	assert.InDelta(t, bruteForce(t, id, []*table.Table{ev}), soaking, eps)

	require.NoError(t, e.EraseEvidence(ev))
	require.NoError(t, e.MakeInference(context.Background()))
	after, err := e.MEU()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, e.InsertEvidence([]*table.Table{ev}))
	e.EraseAllEvidence()
	require.NoError(t, e.MakeInference(context.Background()))
	after, err = e.MEU()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestZeroProbabilityEvidence(t *testing.T) {
	id := build(t, "observed-chain")
	e, err := inference.NewEngine(id)
	require.NoError(t, err)

	v, err := id.Variable(node(t, id, "A"))
	require.NoError(t, err)
	impossible, err := table.New(v)
	require.NoError(t, err)
	require.NoError(t, e.InsertEvidence([]*table.Table{impossible}))
	require.NoError(t, e.MakeInference(context.Background()))

	_, err = e.MEU()
	assert.ErrorIs(t, err, inference.ErrZeroProbability)
	assert.Equal(t, inference.KindDomain, inference.KindOf(err))
}

func TestEvidenceValidation(t *testing.T) {
	id := build(t, "oil-wildcatter")
	e, err := inference.NewEngine(id)
	require.NoError(t, err)
	oil := node(t, id, "Oil")
	ev := observation(t, id, oil, 0)

	// Several variables.
	oilVar, _ := id.Variable(oil)
	testVar, _ := id.Variable(node(t, id, "Test"))
	joint, err := table.New(oilVar, testVar)
	require.NoError(t, err)
	err = e.InsertEvidence([]*table.Table{joint})
	assert.ErrorIs(t, err, inference.ErrMultiVariableEvidence)
	assert.ErrorIs(t, err, inference.ErrOperationNotAllowed)
	assert.Equal(t, inference.KindValidation, inference.KindOf(err))

	// Unknown and utility variables.
	stranger, err := table.NewVariable("Stranger", "x", "y")
	require.NoError(t, err)
	alien, err := table.New(stranger)
	require.NoError(t, err)
	assert.ErrorIs(t, e.InsertEvidence([]*table.Table{alien}), inference.ErrNotFound)
	rewardVar, _ := id.Variable(node(t, id, "Reward"))
	onUtility, err := table.New(rewardVar)
	require.NoError(t, err)
	assert.ErrorIs(t, e.InsertEvidence([]*table.Table{onUtility}), inference.ErrNotFound)

	// Duplicates inside one list leave nothing behind.
	err = e.InsertEvidence([]*table.Table{ev, observation(t, id, oil, 1)})
	assert.ErrorIs(t, err, inference.ErrDuplicateEvidence)
	assert.ErrorIs(t, e.EraseEvidence(ev), inference.ErrNotFound)

	// Duplicates across calls.
	require.NoError(t, e.InsertEvidence([]*table.Table{ev}))
	err = e.InsertEvidence([]*table.Table{observation(t, id, oil, 1)})
	assert.ErrorIs(t, err, inference.ErrDuplicateEvidence)
	assert.Equal(t, inference.KindValidation, inference.KindOf(err))
	require.NoError(t, e.EraseEvidence(ev))
}

func TestLifecycle(t *testing.T) {
	var zero inference.Engine
	assert.Equal(t, inference.Uninitialized, zero.State())
	err := zero.MakeInference(context.Background())
	assert.ErrorIs(t, err, inference.ErrNotInitialized)
	assert.Equal(t, inference.KindSequencing, inference.KindOf(err))

	id := build(t, "observed-chain")
	e, err := inference.NewEngine(id)
	require.NoError(t, err)
	assert.Equal(t, inference.Ready, e.State())
	assert.Empty(t, e.RunID())

	_, err = e.MEU()
	assert.ErrorIs(t, err, inference.ErrNotInferred)
	assert.ErrorIs(t, err, inference.ErrOperationNotAllowed)
	assert.Equal(t, inference.KindSequencing, inference.KindOf(err))
	_, err = e.BestDecisionChoice(node(t, id, "D"))
	assert.ErrorIs(t, err, inference.ErrNotInferred)
	_, err = e.DecisionPolicy(node(t, id, "D"))
	assert.ErrorIs(t, err, inference.ErrNotInferred)

	require.NoError(t, e.MakeInference(context.Background()))
	assert.Equal(t, inference.Computed, e.State())
	assert.Equal(t, "computed", e.State().String())

	_, err = e.BestDecisionChoice(node(t, id, "A"))
	assert.ErrorIs(t, err, inference.ErrInvalidNode)
	assert.Equal(t, inference.KindValidation, inference.KindOf(err))
	_, err = e.DecisionPolicy(node(t, id, "U"))
	assert.ErrorIs(t, err, inference.ErrInvalidNode)

	require.NoError(t, e.SetRoot(e.Root()))
	assert.Equal(t, inference.Ready, e.State())
	err = e.SetRoot(42)
	assert.ErrorIs(t, err, inference.ErrInvalidRoot)
}

func TestCancelledInference(t *testing.T) {
	id := build(t, "treatment")
	e, err := inference.NewEngine(id)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = e.MakeInference(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, inference.KindUnknown, inference.KindOf(err))
	assert.Equal(t, inference.Ready, e.State())

	require.NoError(t, e.MakeInference(context.Background()))
	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, 90.8, meu, eps)
}

func TestConfigurationErrors(t *testing.T) {
	_, err := inference.NewEngine(nil)
	assert.ErrorIs(t, err, inference.ErrNilModel)
	assert.Equal(t, inference.KindConfiguration, inference.KindOf(err))

	// Two decisions without a path between them.
	id := model.New("unordered")
	d1 := addDecision(t, id, "D1")
	d2 := addDecision(t, id, "D2")
	u := addUtility(t, id, "U")
	require.NoError(t, id.AddArc(d1, u))
	require.NoError(t, id.AddArc(d2, u))
	_, err = inference.NewEngine(id)
	assert.ErrorIs(t, err, inference.ErrInvalidModel)
	assert.ErrorIs(t, err, model.ErrNoDecisionOrder)
	assert.Equal(t, inference.KindConfiguration, inference.KindOf(err))

	assert.Equal(t, "configuration", inference.KindConfiguration.String())
	assert.Equal(t, inference.KindUnknown, inference.KindOf(nil))
}

func TestRootInvariance(t *testing.T) {
	for _, name := range []string{"oil-wildcatter", "weather", "treatment", "observed-chain"} {
		t.Run(name, func(t *testing.T) {
			id := build(t, name)
			e := solved(t, id)
			want, err := e.MEU()
			require.NoError(t, err)
			require.NotEmpty(t, e.ValidRoots())
			for _, r := range e.ValidRoots() {
				require.NoError(t, e.SetRoot(r))
				require.NoError(t, e.MakeInference(context.Background()))
				got, err := e.MEU()
				require.NoError(t, err)
				assert.InDelta(t, want, got, eps, "root %d", r)
			}
		})
	}
}

func TestParentlessUtility(t *testing.T) {
	id := build(t, "observed-chain")
	bonus := addUtility(t, id, "Bonus")
	require.NoError(t, id.SetUtility(bonus, 2.5))
	e := solved(t, id)
	meu, err := e.MEU()
	require.NoError(t, err)
	assert.InDelta(t, 12.5, meu, eps)
}

func TestEliminationOrderFollowsTemporalOrder(t *testing.T) {
	id := build(t, "oil-wildcatter")
	e, err := inference.NewEngine(id)
	require.NoError(t, err)
	names := make([]string, 0, 4)
	for _, n := range e.EliminationOrder() {
		v, _ := id.Variable(n)
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"Oil", "Drill", "TestResult", "Test"}, names)
}

func TestMaximalCliquesSpanning(t *testing.T) {
	for _, name := range []string{"oil-wildcatter", "weather", "treatment", "observed-chain"} {
		t.Run(name, func(t *testing.T) {
			id := build(t, name)
			opts := []inference.Option{inference.WithStrategy(triangulation.MaximalCliques)}
			kr := solved(t, id, append(opts, inference.WithSpanning(prim_kruskal.MethodKruskal))...)
			pr := solved(t, id, append(opts, inference.WithSpanning(prim_kruskal.MethodPrim))...)

			want, err := kr.MEU()
			require.NoError(t, err)
			got, err := pr.MEU()
			require.NoError(t, err)
			assert.InDelta(t, want, got, eps)
			assert.Equal(t, kr.JunctionTree().Size(), pr.JunctionTree().Size())
		})
	}

	_, err := inference.NewEngine(build(t, "weather"), inference.WithSpanning("boruvka"))
	assert.ErrorIs(t, err, inference.ErrInvalidModel)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
	assert.Equal(t, inference.KindConfiguration, inference.KindOf(err))
}
