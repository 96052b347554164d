// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types over integer node
// identifiers, plus the NodeSet helper used by triangulation and inference.
//
// All Graph APIs use a single sync.RWMutex internally, so a graph may be read
// from several goroutines while nobody mutates it.
//
// This file declares NodeID, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeNodeID     - node identifier is negative.
//	ErrNodeNotFound       - requested node does not exist.
//	ErrEdgeNotFound       - requested edge does not exist.
//	ErrBadWeight          - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrNotDirected        - directed-only query on an undirected graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that the provided node identifier is negative.
	ErrNegativeNodeID = errors.New("core: node id is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotDirected indicates a parent/child query on an undirected graph.
	ErrNotDirected = errors.New("core: graph is not directed")
)

// NodeID identifies a node. Identifiers are non-negative and stable for the
// lifetime of the node.
type NodeID int

// Edge represents a connection between two nodes.
//
// For undirected graphs From <= To always holds on edges returned by the
// graph, so an edge has exactly one canonical representation.
type Edge struct {
	// From is the source node (the smaller endpoint when undirected).
	From NodeID

	// To is the destination node.
	To NodeID

	// Weight is the edge weight; always zero in unweighted graphs.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = arcs, false = symmetric edges).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure used across lvlid.
//
// Adjacency is stored as nested maps: succ[from][to] = weight. Undirected
// graphs mirror every edge in both directions, directed graphs additionally
// keep pred[to][from] so parent queries stay O(deg).
type Graph struct {
	mu sync.RWMutex // guards every field below

	// Configuration flags
	directed   bool // arcs vs. symmetric edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	nodes map[NodeID]struct{}
	succ  map[NodeID]map[NodeID]int64
	pred  map[NodeID]map[NodeID]int64 // directed graphs only
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted and without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[NodeID]struct{}),
		succ:  make(map[NodeID]map[NodeID]int64),
		pred:  make(map[NodeID]map[NodeID]int64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph stores arcs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}
