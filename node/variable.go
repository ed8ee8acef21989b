// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "math"

// VarKind distinguishes continuous decision variables from integer ones.
// The distinction only affects model classification (MILP/MINLP vs
// LP/NLP); it never changes how a variable differentiates or evaluates.
type VarKind int

const (
	// Continuous variables may take any real value within their bounds.
	Continuous VarKind = iota
	// Integer variables are restricted to whole numbers by the solver.
	Integer
)

var nextVariableID uint64

// Variable is a leaf node representing a decision variable. Two variables
// built with the same name are still distinct nodes; Variable is compared
// and keyed by pointer identity like every other node.
type Variable struct {
	name string
	kind VarKind
	id   uint64
}

// NewVariable returns a fresh continuous variable named name.
func NewVariable(name string) *Variable {
	return newVariable(name, Continuous)
}

// NewInteger returns a fresh integer variable named name.
func NewInteger(name string) *Variable {
	return newVariable(name, Integer)
}

func newVariable(name string, kind VarKind) *Variable {
	nextVariableID++
	return &Variable{name: name, kind: kind, id: nextVariableID}
}

// Name returns the variable's display name. Names need not be unique;
// identity is carried by the pointer, not the name.
func (v *Variable) Name() string { return v.name }

// Kind reports whether v is Continuous or Integer.
func (v *Variable) Kind() VarKind { return v.kind }

// ID returns the creation-order serial number assigned to v.
func (v *Variable) ID() uint64 { return v.id }

// Value looks v up in binding. An unbound variable evaluates to NaN.
func (v *Variable) Value(binding map[*Variable]float64) float64 {
	if val, ok := binding[v]; ok {
		return val
	}
	return math.NaN()
}

// Arguments returns nil; Variable is a leaf.
func (v *Variable) Arguments() []Node { return nil }

// Partial is 1 when wrt is this same variable, 0 otherwise.
func (v *Variable) Partial(wrt Node) Node {
	if other, ok := wrt.(*Variable); ok && other == v {
		return NewConstant(1)
	}
	return NewConstant(0)
}

func (v *Variable) String() string { return v.name }
