// File: ops.go
// Role: marginalisation and pointwise combination.

package table

import (
	"fmt"
	"math"
)

// SumOut returns a new table over the remaining variables where every
// variable of vars has been summed out.
func (t *Table) SumOut(vars ...*Variable) (*Table, error) {
	return t.project(vars, 0, func(acc, v float64) float64 { return acc + v })
}

// MaxOut returns a new table over the remaining variables where every
// variable of vars has been maximised out.
func (t *Table) MaxOut(vars ...*Variable) (*Table, error) {
	return t.project(vars, math.Inf(-1), math.Max)
}

func (t *Table) project(vars []*Variable, init float64, fold func(acc, v float64) float64) (*Table, error) {
	drop := NewVarSet(vars...)
	for _, v := range vars {
		if !t.Contains(v) {
			return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, v.Name())
		}
	}
	keep := make([]*Variable, 0, len(t.vars))
	for _, v := range t.vars {
		if !drop.Has(v) {
			keep = append(keep, v)
		}
	}
	out, _ := New(keep...)
	out.Fill(init)
	inst := t.NewInstantiation()
	for inst.SetFirst(); !inst.End(); inst.Inc() {
		off := out.offset(inst)
		out.values[off] = fold(out.values[off], t.values[t.offset(inst)])
	}

	return out, nil
}

// Multiply returns the pointwise product of t and o over the union of their
// variables (t's variables first).
func (t *Table) Multiply(o *Table) *Table {
	return t.combine(o, func(a, b float64) float64 { return a * b })
}

// Plus returns the pointwise sum of t and o over the union of their variables.
func (t *Table) Plus(o *Table) *Table {
	return t.combine(o, func(a, b float64) float64 { return a + b })
}

// Divide returns t / o pointwise over the union of their variables; entries
// where o is zero are zero.
func (t *Table) Divide(o *Table) *Table {
	return t.combine(o, func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return a / b
	})
}

func (t *Table) combine(o *Table, op func(a, b float64) float64) *Table {
	vars := append([]*Variable(nil), t.vars...)
	for _, v := range o.vars {
		if !t.Contains(v) {
			vars = append(vars, v)
		}
	}
	out, _ := New(vars...)
	inst := out.NewInstantiation()
	for inst.SetFirst(); !inst.End(); inst.Inc() {
		out.values[out.offset(inst)] = op(t.values[t.offset(inst)], o.values[o.offset(inst)])
	}

	return out
}
