// Package dfs implements depth-first search traversal, topological sort and
// reachability queries on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation via
//     context.Context and reverse traversal (parents instead of children).
//     The inference engine collects junction tree messages from its
//     post-order hook.
//   - TopologicalSort: computes a linear ordering of nodes in a directed
//     acyclic graph, returning ErrCycleDetected if cycles exist.
//   - HasPath, Descendants, Ancestors: reachability along arcs. The
//     influence-diagram model uses them to check that decisions are totally
//     ordered and that new arcs keep the diagram acyclic.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - HasPath:         Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartNodeNotFound  start node not in graph
//   - ErrCycleDetected      cycle discovered by TopologicalSort
//   - ErrNotDirected        DAG operation on an undirected graph
//   - context.Canceled      traversal canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
