// File: table.go
// Role: dense n-dimensional tables indexed by instantiations.
// Layout:
//   - values[offset] with offset = Σ val_k · stride_k, stride_0 = 1.

package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table stores one float64 per joint assignment of its variables.
// It serves both as probability table and as utility table.
type Table struct {
	id      uint64
	vars    []*Variable
	pos     map[*Variable]int
	strides []int
	values  []float64
}

// New returns a zero-filled table over vars.
// Returns ErrDuplicateVariable if a variable repeats.
func New(vars ...*Variable) (*Table, error) {
	t := &Table{
		id:     tableIDs.Add(1),
		pos:    make(map[*Variable]int, len(vars)),
		values: []float64{0},
	}
	for _, v := range vars {
		if err := t.Add(v); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Scalar returns a table over no variables holding value.
func Scalar(value float64) *Table {
	t, _ := New()
	t.values[0] = value

	return t
}

// ID returns the table's identifier, unique for the process lifetime.
func (t *Table) ID() uint64 { return t.id }

// Vars returns the variable sequence (first varies fastest).
func (t *Table) Vars() []*Variable { return append([]*Variable(nil), t.vars...) }

// NbrDim returns the number of variables.
func (t *Table) NbrDim() int { return len(t.vars) }

// DomainSize returns the number of stored values.
func (t *Table) DomainSize() int { return len(t.values) }

// Contains reports whether v indexes the table.
func (t *Table) Contains(v *Variable) bool {
	_, ok := t.pos[v]
	return ok
}

// Add appends v as the slowest-varying dimension. Existing values are
// replicated across the new dimension.
func (t *Table) Add(v *Variable) error {
	if _, dup := t.pos[v]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name())
	}
	n := len(t.values)
	values := make([]float64, n*v.DomainSize())
	for k := 0; k < v.DomainSize(); k++ {
		copy(values[k*n:], t.values)
	}
	t.pos[v] = len(t.vars)
	t.vars = append(t.vars, v)
	t.strides = append(t.strides, n)
	t.values = values

	return nil
}

// Erase removes v, keeping the slice of values where v takes its first value.
func (t *Table) Erase(v *Variable) error {
	p, ok := t.pos[v]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVariableNotFound, v.Name())
	}
	keep := make([]*Variable, 0, len(t.vars)-1)
	keep = append(keep, t.vars[:p]...)
	keep = append(keep, t.vars[p+1:]...)
	out, _ := New(keep...)
	inst := out.NewInstantiation()
	src := NewInstantiation(t.vars...)
	for inst.SetFirst(); !inst.End(); inst.Inc() {
		src.SetVals(inst)
		out.values[out.offset(inst)] = t.values[t.offset(src)]
	}
	t.vars, t.pos, t.strides, t.values = out.vars, out.pos, out.strides, out.values

	return nil
}

// NewInstantiation returns an instantiation over the table's variables.
func (t *Table) NewInstantiation() *Instantiation {
	return NewInstantiation(t.vars...)
}

// offset assumes inst covers every table variable.
func (t *Table) offset(inst *Instantiation) int {
	off := 0
	for k, v := range t.vars {
		off += inst.vals[inst.pos[v]] * t.strides[k]
	}

	return off
}

func (t *Table) covers(inst *Instantiation) error {
	for _, v := range t.vars {
		if !inst.Contains(v) {
			return fmt.Errorf("%w: missing %s", ErrIncompatibleInstantiation, v.Name())
		}
	}

	return nil
}

// Get returns the value at inst. inst may hold extra variables.
func (t *Table) Get(inst *Instantiation) (float64, error) {
	if err := t.covers(inst); err != nil {
		return 0, err
	}

	return t.values[t.offset(inst)], nil
}

// Set stores value at inst.
func (t *Table) Set(inst *Instantiation, value float64) error {
	if err := t.covers(inst); err != nil {
		return err
	}
	t.values[t.offset(inst)] = value

	return nil
}

// At returns the value at a raw offset (see package layout).
func (t *Table) At(offset int) float64 { return t.values[offset] }

// Values returns a copy of the raw values.
func (t *Table) Values() []float64 { return append([]float64(nil), t.values...) }

// SetValues replaces every value, in raw layout order.
func (t *Table) SetValues(values ...float64) error {
	if len(values) != len(t.values) {
		return fmt.Errorf("%w: want %d, got %d", ErrSizeMismatch, len(t.values), len(values))
	}
	copy(t.values, values)

	return nil
}

// Fill sets every value to v.
func (t *Table) Fill(v float64) {
	for k := range t.values {
		t.values[k] = v
	}
}

// Sum returns the sum of all values.
func (t *Table) Sum() float64 {
	s := 0.0
	for _, v := range t.values {
		s += v
	}

	return s
}

// Normalize scales the table so that its values sum to one.
func (t *Table) Normalize() error {
	s := t.Sum()
	if s == 0 {
		return ErrZeroSum
	}
	for k := range t.values {
		t.values[k] /= s
	}

	return nil
}

// Clone returns a copy with a fresh ID.
func (t *Table) Clone() *Table {
	out, _ := New(t.vars...)
	copy(out.values, t.values)

	return out
}

// String renders one line per assignment: "<A:a0|B:b1> 0.25".
func (t *Table) String() string {
	var b strings.Builder
	inst := t.NewInstantiation()
	for inst.SetFirst(); !inst.End(); inst.Inc() {
		b.WriteString(inst.String())
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(t.values[t.offset(inst)], 'g', -1, 64))
		b.WriteByte('\n')
	}

	return b.String()
}
