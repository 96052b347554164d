// Package model defines InfluenceDiagram, the graphical model consumed by the
// inference engine.
//
// An influence diagram is a DAG over three kinds of nodes:
//
//   - chance nodes carry a conditional probability table (CPT) over the node
//     followed by its parents in arc insertion order;
//   - decision nodes carry no table; arcs into a decision are informational
//     (the parent is observed before the decision is taken);
//   - utility nodes carry a table over their parents only. Their variable has
//     a single value and they can never be the tail of an arc.
//
// Derived structures:
//
//   - MoralGraph: undirected graph over chance and decision nodes. Every arc
//     between them becomes an edge, the parents of every chance node and of
//     every utility node are married. Parents of decisions are not married.
//   - DecisionOrder: decisions sorted along directed paths. Decisions that
//     are not totally ordered are rejected with ErrNoDecisionOrder.
//   - PartialTemporalOrder: the observation sequence I0, {D1}, I1, {D2}, ...,
//     In, where Ik are the chance parents of D(k+1) not yet observed and In
//     the remaining chance nodes. Empty sets are dropped.
//
// The diagram is a builder: it is not safe for concurrent mutation, and
// tables returned by CPT and Utility are live views that callers fill in.
package model
