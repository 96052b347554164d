// Package triangulation turns a moral graph into an elimination order, a
// triangulated graph and a junction tree.
//
// What:
//
//   - Triangulate eliminates nodes block by block: every node of an earlier
//     block is eliminated before any node of a later one. Inside a block a
//     greedy heuristic chooses the next node (MinWeight, MinFill, MinDegree);
//     ties fall back to fill-ins, then weight, then the smallest id.
//   - Eliminating v connects its remaining neighbours pairwise (fill-ins)
//     and records the elimination clique C_v = {v} ∪ neighbours(v).
//   - The junction tree is built with one of two strategies:
//     EliminationTree links each C_v to the clique of the first-eliminated
//     node of C_v\{v}, absorbing non-maximal cliques into their children;
//     MaximalCliques keeps the maximal C_v and joins them with a maximum
//     spanning forest (prim_kruskal) weighted by intersection size.
//     In both, components are attached to the clique of the last-eliminated
//     node through empty separators, so the result is always a tree.
//   - CreatedJunctionTreeClique(v) names the clique that holds C_v, i.e. the
//     clique "created" when v was eliminated.
//
// When the blocks are the reverse of an influence diagram's temporal order,
// the elimination-tree junction tree is strong: rooted at the clique of the
// last-eliminated node, every clique's residual variables are eliminated
// before its separator towards the root.
//
// Complexity:
//
//   - Elimination: O(V · d²) per step for fill-in scoring, V steps.
//   - EliminationTree: O(V · w) for clique width w.
//   - MaximalCliques: O(K² · w) for K maximal cliques plus Kruskal.
//
// Errors:
//
//   - ErrGraphNil, ErrDirectedGraph: invalid input graph.
//   - ErrInvalidPartialOrder: blocks name unknown nodes, repeat a node, or
//     miss a node of the graph.
//   - ErrMissingDomainSize: a node has no (positive) domain size.
//   - ErrUnknownHeuristic, ErrUnknownStrategy: bad option values.
//   - ErrCliqueNotFound, ErrNotAdjacent: junction-tree lookups.
//   - ErrRunningIntersection: VerifyRunningIntersection found a violation.
package triangulation
