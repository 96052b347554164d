// Package table provides the discrete factor layer used by influence-diagram
// inference: variables with finite labelled domains, instantiations that act
// as coordinates into one or more tables at once, and dense n-dimensional
// tables of float64 values.
//
// What:
//
//   - Variable: a named discrete variable. Identity is the pointer; every
//     variable also carries a process-wide monotonic ID for ordering.
//   - Instantiation: an assignment of values to an ordered set of variables.
//     Iteration follows an odometer where the first variable varies fastest.
//     SetFirstIn/IncIn vary only the variables of a VarSet, SetFirstOut/IncOut
//     only the others; marginalisation and clique reduction are built on this
//     dual iteration.
//   - Table: values indexed by a variable sequence, with Get/Set by
//     instantiation, Add/Erase of dimensions, Fill, Normalize, SumOut/MaxOut,
//     Multiply/Divide/Plus aligned on shared variables.
//
// Invariants:
//
//   - len(values) == product of the domain sizes of the table's variables.
//   - A table over zero variables holds exactly one value (a scalar), and an
//     instantiation over zero variables iterates exactly once.
//   - Every table gets a distinct monotonic ID; callers key buckets by it
//     instead of by pointer.
//
// Complexity:
//
//   - Get/Set: O(k) for k table dimensions.
//   - SumOut/MaxOut/Multiply/Divide/Plus: O(|result| · k) plus the source size.
//
// Errors:
//
//   - ErrEmptyName, ErrEmptyDomain, ErrDuplicateLabel: variable construction.
//   - ErrUnknownLabel: label lookup failed.
//   - ErrDuplicateVariable: a variable appears twice in a table.
//   - ErrVariableNotFound: an operation names a variable the receiver lacks.
//   - ErrOutOfDomain: value index outside [0, DomainSize).
//   - ErrIncompatibleInstantiation: the instantiation misses a table variable.
//   - ErrSizeMismatch: SetValues with the wrong number of values.
//   - ErrZeroSum: Normalize on a table summing to zero.
package table
