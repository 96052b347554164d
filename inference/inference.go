// File: inference.go
// Role: MakeInference, collect-to-root message passing and cleanUp.

package inference

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/dfs"
	"github.com/katalvlaran/lvlid/table"
)

// MakeInference collects every clique towards the root and reduces the root,
// after which MEU, BestDecisionChoice and DecisionPolicy are available.
//
// Transient tables of a previous run are dropped first. The context is
// checked before each absorption; on any failure the engine is cleaned and
// left in Ready.
func (e *Engine) MakeInference(ctx context.Context) (err error) {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	e.runID = uuid.New()
	start := time.Now()
	ctx, span := startInferenceSpan(ctx, e.runID, e.tree.Size(), int(e.root))
	defer span.End()
	log := e.log.With("run_id", e.runID.String())

	e.cleanUp()
	defer func() {
		recordInferenceMetrics(ctx, time.Since(start), err == nil)
		setInferenceSpanResult(span, err)
		if err != nil {
			e.cleanUp()
			log.Debug("inference failed", "error", err)
		}
	}()

	// 1. Collect towards the root
	if err = e.collect(ctx); err != nil {
		return err
	}

	// 2. Reduce the root against an empty separator
	e.rootPotential, e.rootUtility = e.reduceClique(e.cliques[e.root], core.NewNodeSet())
	e.state = Computed

	if meu, meuErr := e.MEU(); meuErr == nil {
		log.Info("inference done", "meu", meu, "duration", time.Since(start))
	} else {
		log.Info("inference done", "error", meuErr, "duration", time.Since(start))
	}

	return nil
}

// collect walks the junction tree depth-first from the root and absorbs
// every clique into its parent once its own subtree is done, so the deepest
// cliques go first. The context is checked before each absorption.
func (e *Engine) collect(ctx context.Context) error {
	var path []core.NodeID
	_, err := dfs.DFS(e.tree.Graph(), e.root,
		dfs.WithContext(ctx),
		dfs.WithOnVisit(func(c core.NodeID) error {
			path = append(path, c)
			return nil
		}),
		dfs.WithOnExit(func(c core.NodeID) error {
			path = path[:len(path)-1]
			if len(path) == 0 {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			return e.absorbClique(ctx, c, path[len(path)-1])
		}))

	return err
}

// absorbClique sends the reduction of child over their separator to parent:
// the potential message and the utility message divided by it (zero where
// the potential is zero), both removable.
func (e *Engine) absorbClique(ctx context.Context, child, parent core.NodeID) error {
	sep, err := e.tree.Separator(child, parent)
	if err != nil {
		return err
	}
	pot, util := e.reduceClique(e.cliques[child], sep)
	dst := e.cliques[parent]
	dst.addPotential(pot, true)
	dst.addUtility(util.Divide(pot), true)
	recordAbsorbMetrics(ctx)
	e.log.Debug("absorbed", "child", int(child), "parent", int(parent), "separator", e.names(sep))

	return nil
}

// cleanUp drops every result and transient table of the last run.
func (e *Engine) cleanUp() {
	for _, cp := range e.cliques {
		cp.cleanFromInference()
	}
	e.decisions = make(map[core.NodeID]int)
	e.policies = make(map[core.NodeID]*table.Table)
	e.rootPotential, e.rootUtility = nil, nil
	if e.state == Computed {
		e.state = Ready
	}
}
