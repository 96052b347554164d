package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/table"
)

// v builds a variable or fails the test.
func v(t *testing.T, name string, labels ...string) *table.Variable {
	t.Helper()
	x, err := table.NewVariable(name, labels...)
	require.NoError(t, err)

	return x
}

// observedChain builds A → D → U with A → U.
func observedChain(t *testing.T) (*model.InfluenceDiagram, core.NodeID, core.NodeID, core.NodeID) {
	t.Helper()
	id := model.New("chain")
	a, err := id.AddChanceNode(v(t, "A", "a0", "a1"))
	require.NoError(t, err)
	d, err := id.AddDecisionNode(v(t, "D", "d0", "d1"))
	require.NoError(t, err)
	u, err := id.AddUtilityNode(v(t, "U", "u"))
	require.NoError(t, err)
	require.NoError(t, id.AddArc(a, d))
	require.NoError(t, id.AddArc(a, u))
	require.NoError(t, id.AddArc(d, u))

	return id, a, d, u
}

func TestNodes(t *testing.T) {
	id, a, d, u := observedChain(t)
	assert.Equal(t, "chain", id.Name())
	assert.Equal(t, 3, id.Size())
	assert.True(t, id.IsChanceNode(a))
	assert.True(t, id.IsDecisionNode(d))
	assert.True(t, id.IsUtilityNode(u))
	assert.False(t, id.IsUtilityNode(42))
	assert.Equal(t, []core.NodeID{d}, id.NodesOf(model.KindDecision))

	got, err := id.NodeByName("D")
	require.NoError(t, err)
	assert.Equal(t, d, got)
	_, err = id.NodeByName("Z")
	assert.ErrorIs(t, err, model.ErrNodeNotFound)

	k, err := id.Kind(u)
	require.NoError(t, err)
	assert.Equal(t, "utility", k.String())

	_, err = id.AddUtilityNode(v(t, "U2", "lo", "hi"))
	assert.ErrorIs(t, err, model.ErrUtilityDomain)
	_, err = id.AddChanceNode(v(t, "A", "x"))
	assert.ErrorIs(t, err, model.ErrDuplicateName)
	_, err = id.AddChanceNode(nil)
	assert.ErrorIs(t, err, model.ErrNilVariable)
}

func TestArcs(t *testing.T) {
	id, a, d, u := observedChain(t)

	assert.ErrorIs(t, id.AddArc(u, a), model.ErrUtilityTail)
	assert.ErrorIs(t, id.AddArc(a, a), model.ErrSelfLoop)
	assert.ErrorIs(t, id.AddArc(a, d), model.ErrDuplicateArc)
	assert.ErrorIs(t, id.AddArc(d, a), model.ErrCycle)
	assert.ErrorIs(t, id.AddArc(a, 99), model.ErrNodeNotFound)
	assert.ErrorIs(t, id.AddArcByName("A", "nope"), model.ErrNodeNotFound)

	ps, err := id.Parents(u)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a, d}, ps)

	// Utility tables span the parents only.
	ut, err := id.Utility(u)
	require.NoError(t, err)
	assert.Equal(t, 2, ut.NbrDim())
	assert.Equal(t, 4, ut.DomainSize())

	require.NoError(t, id.EraseArc(a, u))
	ut, err = id.Utility(u)
	require.NoError(t, err)
	assert.Equal(t, 1, ut.NbrDim())
	assert.ErrorIs(t, id.EraseArc(a, u), model.ErrArcNotFound)

	ch, err := id.Children(a)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{d}, ch)
}

func TestTables(t *testing.T) {
	id := model.New("cpt")
	a, _ := id.AddChanceNode(v(t, "A", "a0", "a1"))
	b, _ := id.AddChanceNode(v(t, "B", "b0", "b1", "b2"))
	require.NoError(t, id.AddArcByName("A", "B"))

	cpt, err := id.CPT(b)
	require.NoError(t, err)
	vars := cpt.Vars()
	require.Len(t, vars, 2)
	assert.Equal(t, "B", vars[0].Name())
	assert.Equal(t, "A", vars[1].Name())

	_, err = id.CPT(99)
	assert.ErrorIs(t, err, model.ErrNodeNotFound)
	_, err = id.Utility(a)
	assert.ErrorIs(t, err, model.ErrNotUtility)

	// 1. Zero-filled CPTs fail the check.
	assert.ErrorIs(t, id.CheckCPTs(), model.ErrCPTNotNormalized)

	// 2. Filled CPTs pass.
	require.NoError(t, id.SetCPT(a, 0.4, 0.6))
	require.NoError(t, id.SetCPT(b, 0.2, 0.3, 0.5, 1, 0, 0))
	assert.NoError(t, id.CheckCPTs())

	// 3. A broken second column is reported.
	require.NoError(t, id.SetCPT(b, 0.2, 0.3, 0.5, 1, 0, 0.1))
	assert.ErrorIs(t, id.CheckCPTs(), model.ErrCPTNotNormalized)
}

func TestMoralGraph(t *testing.T) {
	// X → C ← Y, X → D ← Y, C → U, D → U
	id := model.New("moral")
	x, _ := id.AddChanceNode(v(t, "X", "0", "1"))
	y, _ := id.AddChanceNode(v(t, "Y", "0", "1"))
	c, _ := id.AddChanceNode(v(t, "C", "0", "1"))
	d, _ := id.AddDecisionNode(v(t, "D", "0", "1"))
	u, _ := id.AddUtilityNode(v(t, "U", "u"))
	for _, arc := range [][2]core.NodeID{{x, c}, {y, c}, {x, d}, {y, d}, {c, u}, {d, u}} {
		require.NoError(t, id.AddArc(arc[0], arc[1]))
	}

	moral := id.MoralGraph()
	assert.False(t, moral.Directed())
	assert.Equal(t, []core.NodeID{x, y, c, d}, moral.Nodes())
	assert.False(t, moral.HasNode(u))
	// Arcs become edges; C's parents and U's parents are married.
	for _, e := range [][2]core.NodeID{{x, c}, {y, c}, {x, d}, {y, d}, {x, y}, {c, d}} {
		assert.True(t, moral.HasEdge(e[0], e[1]), "edge %v", e)
	}
	assert.Equal(t, 6, moral.EdgeCount())
}

func TestDecisionOrderAndTemporalOrder(t *testing.T) {
	// Oil wildcatter skeleton: Test → Result ← Oil, Test → Drill ← Result.
	id := model.New("oil")
	oil, _ := id.AddChanceNode(v(t, "Oil", "dry", "wet", "soaking"))
	test, _ := id.AddDecisionNode(v(t, "Test", "yes", "no"))
	res, _ := id.AddChanceNode(v(t, "Result", "closed", "open", "diffuse"))
	drill, _ := id.AddDecisionNode(v(t, "Drill", "yes", "no"))
	require.NoError(t, id.AddArc(oil, res))
	require.NoError(t, id.AddArc(test, res))
	require.NoError(t, id.AddArc(test, drill))
	require.NoError(t, id.AddArc(res, drill))

	order, err := id.DecisionOrder()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{test, drill}, order)

	pto, err := id.PartialTemporalOrder()
	require.NoError(t, err)
	require.Len(t, pto, 4)
	assert.True(t, pto[0].Equal(core.NewNodeSet(test)))
	assert.True(t, pto[1].Equal(core.NewNodeSet(res)))
	assert.True(t, pto[2].Equal(core.NewNodeSet(drill)))
	assert.True(t, pto[3].Equal(core.NewNodeSet(oil)))

	// Unordered decisions are rejected.
	_, _ = id.AddDecisionNode(v(t, "Other", "a", "b"))
	_, err = id.DecisionOrder()
	assert.ErrorIs(t, err, model.ErrNoDecisionOrder)
	_, err = id.PartialTemporalOrder()
	assert.ErrorIs(t, err, model.ErrNoDecisionOrder)
}

func TestPartialTemporalOrder_NoDecision(t *testing.T) {
	id := model.New("bn")
	a, _ := id.AddChanceNode(v(t, "A", "0", "1"))
	b, _ := id.AddChanceNode(v(t, "B", "0", "1"))
	pto, err := id.PartialTemporalOrder()
	require.NoError(t, err)
	require.Len(t, pto, 1)
	assert.True(t, pto[0].Equal(core.NewNodeSet(a, b)))

	empty, err := model.New("empty").PartialTemporalOrder()
	require.NoError(t, err)
	assert.Empty(t, empty)
}
