// File: errors.go
// Role: sentinel errors and their closed set of kinds.

package inference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/triangulation"
)

// Kind classifies every error the engine reports.
type Kind int

// Error kinds.
const (
	// KindUnknown covers errors from outside the engine (e.g. context cancellation).
	KindUnknown Kind = iota
	// KindConfiguration: the model cannot be compiled into a strong junction tree.
	KindConfiguration
	// KindSequencing: a query was issued before MakeInference.
	KindSequencing
	// KindDomain: the probability of evidence is zero.
	KindDomain
	// KindValidation: an argument was rejected.
	KindValidation
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindSequencing:
		return "sequencing"
	case KindDomain:
		return "domain"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

var (
	// ErrNilModel is returned by NewEngine for a nil diagram.
	ErrNilModel = errors.New("inference: model is nil")

	// ErrInvalidModel wraps structural failures of the diagram (decision
	// order, partial order) detected while compiling it.
	ErrInvalidModel = errors.New("inference: invalid model")

	// ErrNoCliqueFound is returned when a table has no clique to live in.
	ErrNoCliqueFound = errors.New("inference: no clique found")

	// ErrNoStrongRoot is returned when no clique can root the strong junction tree.
	ErrNoStrongRoot = errors.New("inference: no clique satisfies the strong junction tree property")

	// ErrOperationNotAllowed is the parent of sequencing and evidence-shape errors.
	ErrOperationNotAllowed = errors.New("inference: operation not allowed")

	// ErrNotInferred is returned by queries issued before MakeInference.
	ErrNotInferred = fmt.Errorf("%w: inference has not been made", ErrOperationNotAllowed)

	// ErrNotInitialized is returned by engines not built with NewEngine.
	ErrNotInitialized = fmt.Errorf("%w: engine is not initialized", ErrOperationNotAllowed)

	// ErrMultiVariableEvidence is returned for evidence spanning several variables.
	ErrMultiVariableEvidence = fmt.Errorf("%w: evidence must span exactly one variable", ErrOperationNotAllowed)

	// ErrZeroProbability is returned by MEU when the evidence is impossible.
	ErrZeroProbability = errors.New("inference: probability of evidence is zero")

	// ErrNotFound is returned for unknown variables or missing evidence.
	ErrNotFound = errors.New("inference: not found")

	// ErrInvalidNode is returned when a decision node was expected.
	ErrInvalidNode = errors.New("inference: invalid node")

	// ErrDuplicateEvidence is returned when a variable already carries evidence.
	ErrDuplicateEvidence = errors.New("inference: duplicate evidence")

	// ErrInvalidRoot is returned by SetRoot for cliques that cannot root the tree.
	ErrInvalidRoot = errors.New("inference: clique is not a valid strong root")
)

// KindOf returns the kind of err, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotInferred), errors.Is(err, ErrNotInitialized):
		return KindSequencing
	case errors.Is(err, ErrMultiVariableEvidence),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidNode),
		errors.Is(err, ErrDuplicateEvidence),
		errors.Is(err, ErrInvalidRoot):
		return KindValidation
	case errors.Is(err, ErrZeroProbability):
		return KindDomain
	case errors.Is(err, ErrNilModel),
		errors.Is(err, ErrInvalidModel),
		errors.Is(err, ErrNoCliqueFound),
		errors.Is(err, ErrNoStrongRoot),
		errors.Is(err, model.ErrNoDecisionOrder),
		errors.Is(err, triangulation.ErrInvalidPartialOrder):
		return KindConfiguration
	default:
		return KindUnknown
	}
}
