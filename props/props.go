// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props reduces an expression built with package node to its
// standard-form components: affinity/linear properties, gradient, and the
// lower triangle of its Hessian. Reduce dispatches on the concrete node
// kind (it is the only package allowed to type-switch over package node's
// exported node types), composing each operator's properties from its
// children's via Node.Arguments and Node.Value alone; BuildComponents
// layers package diff's path-sum derivatives on top.
package props

import (
	"math"

	"github.com/cpmech/numopt/diff"
	"github.com/cpmech/numopt/node"
)

// Properties is the per-node symbolic summary used by the standardization
// pass: the node equals Sum(A[v]*v) + B plus a possible nonlinear
// remainder; Affine is true exactly when that remainder is absent. A may
// hold zero entries: Add keeps coefficients that cancel (x - x gives
// {x: 0}) and Mul of two variable-carrying factors gives zeros (x*x gives
// {x: 0}), so a key in A marks a variable the node depends on even when
// its coefficient is 0. Some operators (Mul, Div, Sin, Cos) can still leave
// A/B populated when Affine is false — see Reduce's per-case docs —
// callers must gate on Affine before trusting A or B.
type Properties struct {
	Affine bool
	A      map[*node.Variable]float64
	B      float64
}

func affineConst(b float64) Properties {
	return Properties{Affine: true, A: map[*node.Variable]float64{}, B: b}
}

func nonlinear() Properties {
	return Properties{Affine: false, A: map[*node.Variable]float64{}, B: 0}
}

func mergeSum(dst, src map[*node.Variable]float64) {
	for v, val := range src {
		dst[v] += val
	}
}

// Reduce computes n's Properties, recursing into n's children through
// Reduce itself rather than any method on Node.
func Reduce(n node.Node) Properties {
	switch x := n.(type) {

	case *node.Constant:
		return affineConst(x.Value(nil))

	case *node.Variable:
		return Properties{Affine: true, A: map[*node.Variable]float64{x: 1}, B: 0}

	case *node.Add:
		out := Properties{Affine: true, A: map[*node.Variable]float64{}}
		for _, c := range x.Arguments() {
			p := Reduce(c)
			if !p.Affine {
				out.Affine = false
			}
			mergeSum(out.A, p.A)
			out.B += p.B
		}
		return out

	case *node.Mul:
		args := x.Arguments()
		p, q := Reduce(args[0]), Reduce(args[1])
		out := Properties{A: map[*node.Variable]float64{}}
		for v, val := range p.A {
			out.A[v] = val * q.B
		}
		for v, val := range q.A {
			out.A[v] = val * p.B
		}
		out.B = p.B * q.B
		out.Affine = (p.Affine && len(q.A) == 0) || (q.Affine && len(p.A) == 0)
		return out

	case *node.Div:
		// The original source carries no standard-form reducer for Div at
		// all: it is always reported non-affine, with A holding the union
		// of both operands' variables (not a real coefficient) and B left
		// at 0. Callers must gate on Affine before trusting A or B here,
		// same as for Mul.
		args := x.Arguments()
		p, q := Reduce(args[0]), Reduce(args[1])
		out := nonlinear()
		mergeSum(out.A, p.A)
		mergeSum(out.A, q.A)
		return out

	case *node.Sin:
		p := Reduce(x.Arguments()[0])
		if p.Affine && len(p.A) == 0 {
			return affineConst(math.Sin(p.B))
		}
		// sin.rs's properties() keeps the argument's A/B unchanged and only
		// flips affine to false; a cleared A here would make Mul wrongly
		// treat sin(x) (and anything built on it) as a constant whenever it
		// appears against an otherwise-affine factor, since Mul's affinity
		// test (above) reads "other side's A is empty" as "other side is a
		// constant".
		out := nonlinear()
		mergeSum(out.A, p.A)
		out.B = p.B
		return out

	case *node.Cos:
		p := Reduce(x.Arguments()[0])
		if p.Affine && len(p.A) == 0 {
			return affineConst(math.Cos(p.B))
		}
		out := nonlinear()
		mergeSum(out.A, p.A)
		out.B = p.B
		return out

	default:
		panic("props: unrecognized node kind")
	}
}

// GradEntry is one nonzero entry of a gradient: d(phi)/d(Var) == Expr.
type GradEntry struct {
	Var  *node.Variable
	Expr node.Node
}

// HessEntry is one nonzero entry of the lower triangle of a Hessian:
// d2(phi)/d(V1)d(V2) == Expr, with V1 never earlier than V2 in the
// variable ordering used to build it.
type HessEntry struct {
	V1, V2 *node.Variable
	Expr   node.Node
}

// NodeStdComponents holds the standard-form reduction of one expression:
// Phi is the expression itself, GPhi its nonzero first partials, HPhi the
// nonzero lower-triangular entries of its second partials, and Prop the
// affine/linear summary obtained from Reduce(Phi).
type NodeStdComponents struct {
	Phi  node.Node
	GPhi []GradEntry
	HPhi []HessEntry
	Prop Properties
}

// Vars collects every distinct *node.Variable reachable from root, in the
// order each is first encountered by a depth-first walk over Arguments.
// This order is what fixes the triangle built by BuildComponents.
func Vars(root node.Node) []*node.Variable {
	seen := map[*node.Variable]bool{}
	var order []*node.Variable
	var walk func(n node.Node)
	walk = func(n node.Node) {
		if v, ok := n.(*node.Variable); ok {
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
			return
		}
		for _, c := range n.Arguments() {
			walk(c)
		}
	}
	walk(root)
	return order
}

// BuildComponents reduces root to its NodeStdComponents. The Hessian is
// built directly in lower-triangular form: for the i-th variable in Vars
// order, its gradient entry is differentiated only against variables up
// to and including itself, so no later symmetry pass is needed.
func BuildComponents(root node.Node) NodeStdComponents {
	vars := Vars(root)
	prop := Reduce(root)

	grad := diff.Derivatives(root, vars)

	var gphi []GradEntry
	for _, v := range vars {
		e := grad[v]
		if node.IsConstantWithValue(e, 0) {
			continue
		}
		gphi = append(gphi, GradEntry{Var: v, Expr: e})
	}

	var hphi []HessEntry
	for i, vi := range vars {
		gi := grad[vi]
		if node.IsConstantWithValue(gi, 0) {
			continue
		}
		lower := diff.Derivatives(gi, vars[:i+1])
		for j := 0; j <= i; j++ {
			vj := vars[j]
			e := lower[vj]
			if node.IsConstantWithValue(e, 0) {
				continue
			}
			hphi = append(hphi, HessEntry{V1: vi, V2: vj, Expr: e})
		}
	}

	return NodeStdComponents{Phi: root, GPhi: gphi, HPhi: hphi, Prop: prop}
}
