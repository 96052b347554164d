// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent; PathTo rebuilds
//     the start→dest path from the parent links.
//   - Filtering of individual neighbor edges via WithFilterNeighbor. The
//     inference engine uses it to stop at the first edge breaking the
//     strong root condition; running-intersection checks use it to walk only
//     the cliques holding one variable.
//
// Junction trees are weighted by separator size; BFS ignores weights, so the
// path it reports between two cliques is the unique tree path.
//
// Determinism
//
//	core.Graph returns neighbors sorted by identifier and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrNeighbors          if neighbor lookup fails for any node.
//   - ErrNoPath             from PathTo when dest was not reached.
package bfs
