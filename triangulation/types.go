// Package triangulation defines options, heuristics, strategies and errors.
package triangulation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlid/prim_kruskal"
)

var (
	// ErrGraphNil is returned when the moral graph is nil.
	ErrGraphNil = errors.New("triangulation: graph is nil")

	// ErrDirectedGraph is returned when the moral graph is directed.
	ErrDirectedGraph = errors.New("triangulation: undirected graph required")

	// ErrInvalidPartialOrder is returned for inconsistent elimination blocks.
	ErrInvalidPartialOrder = errors.New("triangulation: invalid partial order")

	// ErrMissingDomainSize is returned when a node has no positive domain size.
	ErrMissingDomainSize = errors.New("triangulation: missing domain size")

	// ErrUnknownHeuristic is returned by ParseHeuristic.
	ErrUnknownHeuristic = errors.New("triangulation: unknown heuristic")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("triangulation: unknown junction tree strategy")

	// ErrCliqueNotFound is returned for unknown clique ids, or for nodes
	// without a created clique.
	ErrCliqueNotFound = errors.New("triangulation: clique not found")

	// ErrNotAdjacent is returned by Separator for cliques that share no edge.
	ErrNotAdjacent = errors.New("triangulation: cliques are not adjacent")

	// ErrRunningIntersection is returned by VerifyRunningIntersection.
	ErrRunningIntersection = errors.New("triangulation: running intersection property violated")
)

// Heuristic selects the next node to eliminate inside a block.
type Heuristic int

// Heuristics.
const (
	// MinWeight minimises Σ log(domain size) over the elimination clique.
	MinWeight Heuristic = iota
	// MinFill minimises the number of fill-in edges.
	MinFill
	// MinDegree minimises the number of remaining neighbours.
	MinDegree
)

var heuristicNames = map[Heuristic]string{
	MinWeight: "min-weight",
	MinFill:   "min-fill",
	MinDegree: "min-degree",
}

// String returns the heuristic's name.
func (h Heuristic) String() string {
	if s, ok := heuristicNames[h]; ok {
		return s
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps "min-weight", "min-fill" or "min-degree" to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	for h, name := range heuristicNames {
		if strings.EqualFold(s, name) {
			return h, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Strategy selects how the junction tree is assembled.
type Strategy int

// Strategies.
const (
	// EliminationTree derives the tree from the elimination order.
	EliminationTree Strategy = iota
	// MaximalCliques joins maximal cliques with a maximum spanning forest.
	MaximalCliques
)

var strategyNames = map[Strategy]string{
	EliminationTree: "elimination-tree",
	MaximalCliques:  "maximal-cliques",
}

// String returns the strategy's name.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "elimination-tree" or "maximal-cliques" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for st, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return st, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Options configures Triangulate.
type Options struct {
	// Heuristic picks nodes inside a block. Default MinWeight.
	Heuristic Heuristic

	// Strategy assembles the junction tree. Default EliminationTree.
	Strategy Strategy

	// Spanning names the prim_kruskal method joining maximal cliques
	// (MaximalCliques only). Default prim_kruskal.MethodKruskal.
	Spanning string
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns MinWeight with the EliminationTree strategy and
// Kruskal spanning trees.
func DefaultOptions() Options {
	return Options{Heuristic: MinWeight, Strategy: EliminationTree, Spanning: prim_kruskal.MethodKruskal}
}

// WithHeuristic sets the elimination heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithStrategy sets the junction tree strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSpanning selects prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal
// for the MaximalCliques strategy. Unknown methods fail Triangulate with
// prim_kruskal.ErrUnknownMethod.
func WithSpanning(method string) Option {
	return func(o *Options) { o.Spanning = method }
}
