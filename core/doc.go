// Package core provides the graph primitive shared by every lvlid package:
// an integer-node Graph that is either directed (the influence diagram DAG)
// or undirected (moral graphs, triangulated graphs, junction trees).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); junction trees store the
//     separator size as the edge weight
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps succ[from][to] = weight,
//     mirrored for undirected graphs and indexed backwards (pred) for
//     directed ones
//
// Deterministic iteration: Nodes(), Edges(), Neighbors(), Parents() and
// Children() all return sorted results, so every algorithm built on top of
// core (elimination heuristics, spanning trees, message passing) is
// reproducible run to run.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID) error            // O(1), idempotent
//	HasNode(id NodeID) bool             // O(1)
//	RemoveNode(id NodeID) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, weight int64) error // O(1), adds endpoints
//	RemoveEdge(from, to NodeID) error            // O(1)
//	HasEdge(from, to NodeID) bool                // O(1)
//	Weight(from, to NodeID) (int64, error)       // O(1)
//
//	// Query
//	Neighbors(id NodeID) ([]NodeID, error) // skeleton neighbors, sorted
//	Parents / Children(id NodeID)          // directed graphs only
//	Nodes() []NodeID                       // O(V·log V)
//	Edges() []Edge                         // O(E·log E)
//
//	// Cloning
//	CloneEmpty() *Graph                    // nodes + flags
//	Clone() *Graph                         // deep copy
//
// NodeSet is the companion set type; cliques and separators are NodeSets.
package core
