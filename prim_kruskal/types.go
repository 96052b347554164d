// Package prim_kruskal defines configuration options and sentinel errors for
// spanning tree computation. It supports selecting between Kruskal and Prim
// algorithms, minimum or maximum trees, and spanning forests via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/lvlid/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. Forest mode never returns it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm to run and what it optimizes.
// Use DefaultOptions() to get a default setup (minimum tree, Kruskal).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root core.NodeID

	// Maximum selects the heaviest spanning tree instead of the lightest.
	// Junction trees are maximum-weight spanning trees of the clique graph.
	Maximum bool

	// Forest returns a spanning forest (one tree per component) instead of
	// failing with ErrDisconnected.
	Forest bool
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm and is ignored by Kruskal.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithMaximum returns an Option that selects a maximum-weight spanning tree.
func WithMaximum() Option {
	return func(opts *MSTOptions) {
		opts.Maximum = true
	}
}

// WithForest returns an Option that accepts disconnected graphs and returns
// a spanning forest.
func WithForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method  = MethodKruskal
//	– Root    = 0 (ignored by Kruskal)
//	– Maximum = false, Forest = false.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns:
//
//	[]core.Edge: edges of the tree (or forest), empty if the graph has a single node.
//	int64      : total weight.
//	error      : non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return kruskal(graph, opts)
	case MethodPrim:
		return prim(graph, opts)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// better reports whether weight a should be chosen before weight b.
func (o MSTOptions) better(a, b int64) bool {
	if o.Maximum {
		return a > b
	}

	return a < b
}

// validate checks the shared preconditions of both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}
