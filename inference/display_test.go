package inference_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlid/inference"
)

func TestDisplayStrongJunctionTree(t *testing.T) {
	for _, name := range []string{"observed-chain", "oil-wildcatter", "treatment"} {
		t.Run(name, func(t *testing.T) {
			e, err := inference.NewEngine(build(t, name))
			require.NoError(t, err)
			var out bytes.Buffer
			require.NoError(t, e.DisplayStrongJunctionTree(&out))
			goldie.New(t).Assert(t, name+"-tree", out.Bytes())
		})
	}
}

func TestDisplayResult(t *testing.T) {
	e := solved(t, build(t, "observed-chain"))
	var out bytes.Buffer
	require.NoError(t, e.DisplayResult(&out))
	goldie.New(t).Assert(t, "observed-chain-result", out.Bytes())
}

func TestDisplayResultOil(t *testing.T) {
	e := solved(t, build(t, "oil-wildcatter"))
	var out bytes.Buffer
	require.NoError(t, e.DisplayResult(&out))
	assert.True(t, strings.HasPrefix(out.String(), "MEU: 22.5\n"), out.String())
	assert.Contains(t, out.String(), "decision Test: yes\n  <> yes\n")
	assert.Contains(t, out.String(), "  <Test:yes|TestResult:diffuse> no\n")
}

func TestDisplayBeforeInference(t *testing.T) {
	e, err := inference.NewEngine(build(t, "weather"))
	require.NoError(t, err)
	var out bytes.Buffer
	assert.ErrorIs(t, e.DisplayResult(&out), inference.ErrNotInferred)
	assert.Empty(t, out.String())

	var zero inference.Engine
	assert.ErrorIs(t, zero.DisplayStrongJunctionTree(&out), inference.ErrNotInitialized)
	require.NoError(t, e.MakeInference(context.Background()))
}

func TestStrongTreeSplit(t *testing.T) {
	// Treat, the last member of clique 0, is adjacent to the later Symptom,
	// so the clique splits before Treat: index 4 - rank(Disease) = 3.
	e, err := inference.NewEngine(build(t, "treatment"))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, e.DisplayStrongJunctionTree(&out))
	assert.Contains(t, out.String(), "index 3: clique 0 {Disease,Treat,Outcome} split=Disease\n")
	assert.Contains(t, out.String(), "index 0: clique 1 {Disease,Symptom,Treat} root\n")

	// A single clique holds the last eliminated node and never splits.
	e, err = inference.NewEngine(build(t, "oil-wildcatter"))
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, e.DisplayStrongJunctionTree(&out))
	assert.NotContains(t, out.String(), "split=")
}

func TestFormatUtility(t *testing.T) {
	assert.Equal(t, "22.5", inference.FormatUtility(22.500000000000007))
	assert.Equal(t, "10", inference.FormatUtility(10))
	assert.Equal(t, "-0.125", inference.FormatUtility(-0.125))
}
