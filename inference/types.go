// Package inference defines engine options and states.
package inference

import (
	"log/slog"

	"github.com/katalvlaran/lvlid/prim_kruskal"
	"github.com/katalvlaran/lvlid/triangulation"
)

// State is the lifecycle state of an Engine.
type State int

// Engine states.
const (
	// Uninitialized: the zero Engine; only NewEngine leaves this state.
	Uninitialized State = iota
	// Ready: compiled, no valid inference result.
	Ready
	// Computed: MakeInference succeeded; queries are answered.
	Computed
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Computed:
		return "computed"
	default:
		return "uninitialized"
	}
}

// Options configures NewEngine.
type Options struct {
	// Heuristic chooses nodes inside an elimination block.
	Heuristic triangulation.Heuristic

	// Strategy assembles the junction tree.
	Strategy triangulation.Strategy

	// Spanning joins maximal cliques: prim_kruskal.MethodKruskal or
	// prim_kruskal.MethodPrim. Ignored by EliminationTree.
	Spanning string

	// Logger receives debug traces of compilation and message passing.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns MinWeight, EliminationTree, Kruskal and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: triangulation.MinWeight,
		Strategy:  triangulation.EliminationTree,
		Spanning:  prim_kruskal.MethodKruskal,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithHeuristic sets the triangulation heuristic.
func WithHeuristic(h triangulation.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithStrategy sets the junction tree strategy.
func WithStrategy(s triangulation.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSpanning sets the spanning tree method of the MaximalCliques strategy.
func WithSpanning(method string) Option {
	return func(o *Options) { o.Spanning = method }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
