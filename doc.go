// Package lvlid solves influence diagrams: Bayesian networks extended with
// decision and utility nodes, compiled into strong junction trees.
//
// 🚀 What is lvlid?
//
//	An exact decision engine that brings together:
//		• Graph primitives: thread-safe directed and undirected graphs
//		• Traversals: BFS, DFS, topological order, descendants
//		• Spanning trees: Prim, Kruskal (maximum weight for junction trees)
//		• Tables: discrete variables, instantiations, potentials and utilities
//		• Diagrams: chance, decision and utility nodes with temporal order
//		• Triangulation: min-weight, min-fill and min-degree elimination
//		• Inference: strong junction trees, MEU, optimal policies, evidence
//		• Rendering: DOT, SVG and PNG drawings of the strong junction tree
//
// ✨ Typical flow
//
//	id, _ := demos.OilWildcatter()
//	e, _ := inference.NewEngine(id)
//	_ = e.MakeInference(ctx)
//	meu, _ := e.MEU()
//
// Under the hood, everything is organized under these subpackages:
//
//	core/          - Graph, NodeID, NodeSet & thread-safe primitives
//	bfs/, dfs/     - traversals used by triangulation and validation
//	prim_kruskal/  - spanning trees over clique graphs
//	table/         - Variable, Instantiation and Table (potentials, utilities)
//	model/         - InfluenceDiagram, moral graph, partial temporal order
//	triangulation/ - constrained elimination and junction trees
//	inference/     - the strong junction tree engine
//	demos/         - classic diagrams (oil wildcatter, weather, treatment, …)
//	render/        - DOT templates and Graphviz output
//	config/        - YAML configuration, validation and logger setup
//	cmd/lvlid/     - the command-line front end
package lvlid
