// Package inference solves influence diagrams exactly by message passing on
// a strong junction tree.
//
// What:
//
//   - NewEngine moralises the diagram, triangulates it with chance and
//     decision nodes eliminated in reverse observation order, and attaches
//     every CPT and utility table to a clique.
//   - Cliques are indexed by how late their last member is eliminated
//     (cliqueEliminationMap). The root is the first clique, in that order,
//     from which every message eliminates only variables that precede its
//     separator in the temporal order.
//   - MakeInference collects towards the root. Each absorption reduces the
//     child clique over the separator: chance variables are summed out,
//     decision variables are maximised out and their argmax recorded. The
//     parent receives the potential and the utility divided by it.
//   - MEU = utility(root) / potential(root) after the root is reduced.
//
// Lifecycle:
//
//	Uninitialized --NewEngine--> Ready --MakeInference--> Computed
//	Computed --MakeInference / SetRoot--> Ready ...
//
// Queries (MEU, BestDecisionChoice, DecisionPolicy) need Computed. Evidence
// may be inserted or erased in any state and applies at the next
// MakeInference; duplicate evidence on a variable is rejected.
//
// Errors are sentinel values grouped by KindOf into configuration,
// sequencing, domain and validation kinds.
//
// Observability: runs carry a uuid run id, emit an OpenTelemetry span and
// counters, and log through the configured *slog.Logger (discarded by
// default).
//
// Tie-break: when several decision values reach the same utility the last
// one iterated wins.
//
// An Engine is single-threaded; callers serialise access.
package inference
