// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node implements the expression DAG at the core of the modeling
// layer: constants, variables, and the five n-ary/unary operators (Add,
// Mul, Div, Sin, Cos). Nodes are immutable once built; equality and map
// keying rely on Go's native pointer identity for every concrete node
// type, never on structural value — two separately built constants with
// the same value are different nodes.
package node

// Node is a handle to one node of the expression DAG. Concrete
// implementations are always used through a pointer so that Go's built-in
// `==` on interface values gives identity comparison, matching the
// requirement that equality and hashing be by identity of the underlying
// cell rather than by structural value.
type Node interface {

	// String renders the node using infix syntax with these
	// parenthesization rules: Add wraps inside Mul/Div, Mul wraps only as a
	// Div denominator, Div wraps as either operand of a Div, leaves never
	// wrap.
	String() string

	// Value evaluates the node recursively under binding. A Variable with
	// no entry in binding evaluates to NaN; this is a sentinel, not an
	// exceptional condition.
	Value(binding map[*Variable]float64) float64

	// Arguments returns the immediate children in declaration order. Leaf
	// nodes (Constant, Variable) return nil.
	Arguments() []Node

	// Partial computes the shallow partial derivative of this node with
	// respect to wrt, treating each direct child as an independent symbol.
	// Cross-level contributions are reconstructed by package diff's
	// path-sum algorithm, not by this method.
	Partial(wrt Node) Node
}

// IsConstantWithValue reports whether n is a Constant whose value equals c.
func IsConstantWithValue(n Node, c float64) bool {
	k, ok := n.(*Constant)
	return ok && k.value == c
}
