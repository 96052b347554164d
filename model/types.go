// Package model defines node kinds and sentinel errors.
package model

import "errors"

var (
	// ErrNilVariable is returned when a nil variable is added.
	ErrNilVariable = errors.New("model: nil variable")

	// ErrDuplicateName is returned when two nodes share a variable name.
	ErrDuplicateName = errors.New("model: duplicate node name")

	// ErrNodeNotFound is returned for unknown node ids or names.
	ErrNodeNotFound = errors.New("model: node not found")

	// ErrUtilityDomain is returned when a utility variable has more than one value.
	ErrUtilityDomain = errors.New("model: utility variable must have exactly one value")

	// ErrUtilityTail is returned when an arc would leave a utility node.
	ErrUtilityTail = errors.New("model: utility node cannot be the tail of an arc")

	// ErrSelfLoop is returned for arcs from a node to itself.
	ErrSelfLoop = errors.New("model: self loop")

	// ErrDuplicateArc is returned when the arc already exists.
	ErrDuplicateArc = errors.New("model: duplicate arc")

	// ErrArcNotFound is returned by EraseArc for a missing arc.
	ErrArcNotFound = errors.New("model: arc not found")

	// ErrCycle is returned when an arc would close a directed cycle.
	ErrCycle = errors.New("model: arc would create a directed cycle")

	// ErrNotChance is returned when a chance node was expected.
	ErrNotChance = errors.New("model: not a chance node")

	// ErrNotUtility is returned when a utility node was expected.
	ErrNotUtility = errors.New("model: not a utility node")

	// ErrNoDecisionOrder is returned when decisions are not totally ordered.
	ErrNoDecisionOrder = errors.New("model: decisions are not totally ordered")

	// ErrCPTNotNormalized is returned by CheckCPTs.
	ErrCPTNotNormalized = errors.New("model: CPT column does not sum to one")
)

// CPTTolerance is the absolute tolerance used by CheckCPTs.
const CPTTolerance = 1e-6

// NodeKind partitions the nodes of an influence diagram.
type NodeKind int

// Node kinds.
const (
	KindChance NodeKind = iota
	KindDecision
	KindUtility
)

// String returns "chance", "decision" or "utility".
func (k NodeKind) String() string {
	switch k {
	case KindChance:
		return "chance"
	case KindDecision:
		return "decision"
	case KindUtility:
		return "utility"
	default:
		return "unknown"
	}
}
