// File: variable.go
// Role: discrete labelled variables.

package table

import (
	"fmt"
	"strings"
)

// Variable is a discrete random or decision variable with a finite labelled
// domain. Variables are immutable after construction and compared by pointer.
type Variable struct {
	id     uint64
	name   string
	labels []string
	index  map[string]int
}

// NewVariable creates a variable called name whose values are labels, in order.
// Returns ErrEmptyName, ErrEmptyDomain or ErrDuplicateLabel.
func NewVariable(name string, labels ...string) (*Variable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDomain, name)
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %s has %q twice", ErrDuplicateLabel, name, l)
		}
		index[l] = i
	}

	return &Variable{
		id:     variableIDs.Add(1),
		name:   name,
		labels: append([]string(nil), labels...),
		index:  index,
	}, nil
}

// NewRangeVariable creates a variable whose labels are "0".."n-1".
func NewRangeVariable(name string, n int) (*Variable, error) {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprint(i)
	}

	return NewVariable(name, labels...)
}

// ID returns the variable's process-wide identifier.
func (v *Variable) ID() uint64 { return v.id }

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// DomainSize returns the number of values.
func (v *Variable) DomainSize() int { return len(v.labels) }

// Label returns the label of value k, or "" when k is out of range.
func (v *Variable) Label(k int) string {
	if k < 0 || k >= len(v.labels) {
		return ""
	}
	return v.labels[k]
}

// Labels returns a copy of the labels.
func (v *Variable) Labels() []string { return append([]string(nil), v.labels...) }

// Index returns the value index of label.
func (v *Variable) Index(label string) (int, error) {
	k, ok := v.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrUnknownLabel, v.name, label)
	}

	return k, nil
}

// String renders "name<l0,l1,...>".
func (v *Variable) String() string {
	return v.name + "<" + strings.Join(v.labels, ",") + ">"
}
