// File: instantiation.go
// Role: odometer-style assignments over an ordered variable sequence.
// Determinism:
//   - The first variable varies fastest in every iteration mode.

package table

import (
	"fmt"
	"strings"
)

// Instantiation assigns a value to each of an ordered sequence of variables.
// It is a coordinate usable against any table whose variables it covers.
type Instantiation struct {
	vars     []*Variable
	vals     []int
	pos      map[*Variable]int
	overflow bool
}

// NewInstantiation returns an instantiation over vars, every value at 0.
// Duplicate variables are ignored.
func NewInstantiation(vars ...*Variable) *Instantiation {
	inst := &Instantiation{pos: make(map[*Variable]int, len(vars))}
	for _, v := range vars {
		inst.Add(v)
	}

	return inst
}

// Add appends v with value 0. Adding a present variable is a no-op.
func (i *Instantiation) Add(v *Variable) {
	if _, ok := i.pos[v]; ok {
		return
	}
	i.pos[v] = len(i.vars)
	i.vars = append(i.vars, v)
	i.vals = append(i.vals, 0)
}

// Erase removes v. Erasing an absent variable is a no-op.
func (i *Instantiation) Erase(v *Variable) {
	p, ok := i.pos[v]
	if !ok {
		return
	}
	i.vars = append(i.vars[:p], i.vars[p+1:]...)
	i.vals = append(i.vals[:p], i.vals[p+1:]...)
	delete(i.pos, v)
	for k := p; k < len(i.vars); k++ {
		i.pos[i.vars[k]] = k
	}
}

// Contains reports whether v is part of the instantiation.
func (i *Instantiation) Contains(v *Variable) bool {
	_, ok := i.pos[v]
	return ok
}

// Nbr returns the number of variables.
func (i *Instantiation) Nbr() int { return len(i.vars) }

// Vars returns the variable sequence.
func (i *Instantiation) Vars() []*Variable { return append([]*Variable(nil), i.vars...) }

// DomainSize returns the number of distinct assignments.
func (i *Instantiation) DomainSize() int {
	n := 1
	for _, v := range i.vars {
		n *= v.DomainSize()
	}

	return n
}

// Val returns the value assigned to v.
func (i *Instantiation) Val(v *Variable) (int, error) {
	p, ok := i.pos[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrVariableNotFound, v.Name())
	}

	return i.vals[p], nil
}

// ChooseVal assigns value k to v.
func (i *Instantiation) ChooseVal(v *Variable, k int) error {
	p, ok := i.pos[v]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVariableNotFound, v.Name())
	}
	if k < 0 || k >= v.DomainSize() {
		return fmt.Errorf("%w: %s=%d", ErrOutOfDomain, v.Name(), k)
	}
	i.vals[p] = k

	return nil
}

// SetVals copies from other the values of every variable both share.
func (i *Instantiation) SetVals(other *Instantiation) {
	for p, v := range i.vars {
		if q, ok := other.pos[v]; ok {
			i.vals[p] = other.vals[q]
		}
	}
}

// Clone returns an independent copy.
func (i *Instantiation) Clone() *Instantiation {
	out := NewInstantiation(i.vars...)
	copy(out.vals, i.vals)
	out.overflow = i.overflow

	return out
}

// End reports whether the last increment wrapped past the final assignment.
func (i *Instantiation) End() bool { return i.overflow }

// SetFirst sets every value to 0 and clears the end flag.
func (i *Instantiation) SetFirst() {
	for p := range i.vals {
		i.vals[p] = 0
	}
	i.overflow = false
}

// Inc advances to the next assignment, first variable fastest.
func (i *Instantiation) Inc() {
	i.inc(func(*Variable) bool { return true })
}

// SetFirstIn zeroes the variables of sel and clears the end flag. Other
// variables keep their values.
func (i *Instantiation) SetFirstIn(sel VarSet) {
	i.setFirst(sel.Has)
}

// IncIn advances the odometer restricted to the variables of sel.
func (i *Instantiation) IncIn(sel VarSet) {
	i.inc(sel.Has)
}

// SetFirstOut zeroes the variables outside sel and clears the end flag.
func (i *Instantiation) SetFirstOut(sel VarSet) {
	i.setFirst(func(v *Variable) bool { return !sel.Has(v) })
}

// IncOut advances the odometer restricted to the variables outside sel.
func (i *Instantiation) IncOut(sel VarSet) {
	i.inc(func(v *Variable) bool { return !sel.Has(v) })
}

func (i *Instantiation) setFirst(varies func(*Variable) bool) {
	for p, v := range i.vars {
		if varies(v) {
			i.vals[p] = 0
		}
	}
	i.overflow = false
}

// inc is the odometer step; when no variable varies the first step overflows,
// so the loop body runs exactly once.
func (i *Instantiation) inc(varies func(*Variable) bool) {
	for p, v := range i.vars {
		if !varies(v) {
			continue
		}
		if i.vals[p]+1 < v.DomainSize() {
			i.vals[p]++
			return
		}
		i.vals[p] = 0
	}
	i.overflow = true
}

// String renders "<A:yes|B:no>".
func (i *Instantiation) String() string {
	parts := make([]string, len(i.vars))
	for p, v := range i.vars {
		parts[p] = v.Name() + ":" + v.Label(i.vals[p])
	}

	return "<" + strings.Join(parts, "|") + ">"
}
