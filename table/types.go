// Package table defines sentinel errors and small shared types.
package table

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrEmptyName is returned when a variable is created without a name.
	ErrEmptyName = errors.New("table: variable name is empty")

	// ErrEmptyDomain is returned when a variable is created without labels.
	ErrEmptyDomain = errors.New("table: variable domain is empty")

	// ErrDuplicateLabel is returned when a variable repeats a label.
	ErrDuplicateLabel = errors.New("table: duplicate label")

	// ErrUnknownLabel is returned by Variable.Index for an unknown label.
	ErrUnknownLabel = errors.New("table: unknown label")

	// ErrDuplicateVariable is returned when a table would index the same variable twice.
	ErrDuplicateVariable = errors.New("table: duplicate variable")

	// ErrVariableNotFound is returned when an operation names a variable the receiver lacks.
	ErrVariableNotFound = errors.New("table: variable not found")

	// ErrOutOfDomain is returned for a value index outside the variable's domain.
	ErrOutOfDomain = errors.New("table: value out of domain")

	// ErrIncompatibleInstantiation is returned when an instantiation misses a table variable.
	ErrIncompatibleInstantiation = errors.New("table: instantiation does not cover table variables")

	// ErrSizeMismatch is returned when SetValues receives the wrong number of values.
	ErrSizeMismatch = errors.New("table: value count does not match domain size")

	// ErrZeroSum is returned by Normalize when every value is zero.
	ErrZeroSum = errors.New("table: cannot normalize, values sum to zero")
)

// ids hands out monotonic identifiers to variables and tables.
var (
	variableIDs atomic.Uint64
	tableIDs    atomic.Uint64
)

// VarSet is a set of variables, used to select which dimensions an
// instantiation varies.
type VarSet map[*Variable]struct{}

// NewVarSet returns a set holding vars.
func NewVarSet(vars ...*Variable) VarSet {
	s := make(VarSet, len(vars))
	for _, v := range vars {
		s[v] = struct{}{}
	}

	return s
}

// Has reports whether v is a member.
func (s VarSet) Has(v *Variable) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v.
func (s VarSet) Add(v *Variable) { s[v] = struct{}{} }
