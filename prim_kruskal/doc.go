// Package prim_kruskal computes spanning trees on an undirected, weighted
// *core.Graph with Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - A spanning tree T of a connected graph G = (V, E) connects every node
//     with |V|-1 edges. The minimum spanning tree minimizes the total weight,
//     the maximum spanning tree maximizes it.
//   - The triangulation package builds junction trees as maximum-weight
//     spanning forests of the clique graph, weighting each clique pair by the
//     size of its intersection. WithMaximum and WithForest exist for it.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//     Sort all edges by weight, then take each edge whose endpoints lie in
//     different components, tracked with github.com/spakin/disjoint.
//     Time O(E log E + α(V)·E). Ties keep the (From, To) order of g.Edges().
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//     Grow a single tree from root with a heap of candidate edges.
//     Time O(E log V). Heap ties break by (From, To).
//
// Options
//
//   - WithMethod(m), WithRoot(id): select the algorithm for Compute.
//   - WithMaximum(): heaviest instead of lightest tree.
//   - WithForest(): one tree per component instead of ErrDisconnected.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, or unweighted.
//   - core.ErrNodeNotFound (Prim only): root does not exist.
//   - ErrDisconnected: |V| == 0 or the graph is not connected (without WithForest).
//   - ErrUnknownMethod (Compute only): unrecognized Method.
package prim_kruskal
