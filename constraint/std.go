// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/numopt/node"
	"github.com/cpmech/numopt/props"
)

// ARow, JRow and the (var, value)/(row, var, value) triples below are
// matched one-for-one against the Rust ConstraintStdComp this package is
// ported from, row/col indices are filled in by whichever Model assembles
// many constraints' StdComponents together.

// ATriplet is one (row, var, coefficient) entry of the linear-equality
// rows assembled from affine constraints.
type ATriplet struct {
	Row int
	Var *node.Variable
	Val float64
}

// JTriplet is one (row, var, expression) entry of the Jacobian rows
// assembled from nonlinear constraints.
type JTriplet struct {
	Row  int
	Var  *node.Variable
	Expr node.Node
}

// Bound is one (var, value, source constraint) entry produced by Rule 1
// (simple bounds) or by the slack bound of an inequality.
type Bound struct {
	Var    *node.Variable
	Val    float64
	Source *Constraint
}

// StdComponents accumulates the standardized rows contributed by one or
// more constraints: CA/CJ are back-references from row number to the
// constraint that produced it, A/B the linear-equality rows, F/J the
// nonlinear-equality rows and their Jacobian entries, H the per-row
// Hessian blocks (parallel to F), and U/L the upper/lower variable bounds
// discovered along the way.
type StdComponents struct {
	CA []*Constraint
	CJ []*Constraint
	A  []ATriplet
	B  []float64
	F  []node.Node
	J  []JTriplet
	H  [][]props.HessEntry
	U  []Bound
	L  []Bound
}

// Extend appends other's rows after this StdComponents' own, the Go
// counterpart of the Rust AddAssign fold used while a Model walks its
// constraint list.
func (c *StdComponents) Extend(other StdComponents) {
	c.CA = append(c.CA, other.CA...)
	c.CJ = append(c.CJ, other.CJ...)
	c.A = append(c.A, other.A...)
	c.B = append(c.B, other.B...)
	c.F = append(c.F, other.F...)
	c.J = append(c.J, other.J...)
	c.H = append(c.H, other.H...)
	c.U = append(c.U, other.U...)
	c.L = append(c.L, other.L...)
}

// StdComponents standardizes c into rows, following four rules applied to
// the expression exp = c.LHS - c.RHS and its properties:
//
//  1. Bound: exp is affine, a single variable with coefficient 1, and the
//     constraint is an inequality — recorded directly as a variable bound,
//     no row allocated.
//  2. Affine equality: a^Tx + b == 0 — appended as one row of A/B, *arow
//     advanced.
//  3. Affine inequality: a^Tx + b - s == 0 with a bound on the slack s —
//     appended as one row of A/B (including the slack's -1 coefficient)
//     plus one Bound on s, *arow advanced.
//  4. Nonlinear: reduced via props.BuildComponents; an equality appends one
//     row of F/J (and H), an inequality appends phi-s as the F row (with
//     an extra J entry of -1 for s) plus one Bound on s, *jrow advanced
//     either way.
func (c *Constraint) StdComponents(arow, jrow *int) StdComponents {
	exp := node.NewAdd(c.LHS, node.NewMul(node.NewConstant(-1), c.RHS))
	comp := props.BuildComponents(exp)
	prop := comp.Prop

	var out StdComponents

	if prop.Affine && len(prop.A) == 1 && onlyCoeffIsOne(prop.A) && c.Kind != Eq {
		var v *node.Variable
		for key := range prop.A {
			v = key
		}
		switch c.Kind {
		case Leq:
			out.U = append(out.U, Bound{Var: v, Val: -prop.B, Source: c})
		case Geq:
			out.L = append(out.L, Bound{Var: v, Val: -prop.B, Source: c})
		}
		return out
	}

	if prop.Affine {
		if c.Kind == Eq {
			for v, val := range prop.A {
				out.A = append(out.A, ATriplet{Row: *arow, Var: v, Val: val})
			}
			out.B = append(out.B, -prop.B)
			out.CA = append(out.CA, c)
			*arow++
			return out
		}

		s := c.Slack()
		for v, val := range prop.A {
			out.A = append(out.A, ATriplet{Row: *arow, Var: v, Val: val})
		}
		out.A = append(out.A, ATriplet{Row: *arow, Var: s, Val: -1})
		out.B = append(out.B, -prop.B)
		out.CA = append(out.CA, c)
		switch c.Kind {
		case Leq:
			out.U = append(out.U, Bound{Var: s, Val: 0, Source: c})
		case Geq:
			out.L = append(out.L, Bound{Var: s, Val: 0, Source: c})
		}
		*arow++
		return out
	}

	// Nonlinear.
	out.H = append(out.H, comp.HPhi)

	if c.Kind == Eq {
		out.F = append(out.F, comp.Phi)
		out.CJ = append(out.CJ, c)
		for _, g := range comp.GPhi {
			out.J = append(out.J, JTriplet{Row: *jrow, Var: g.Var, Expr: g.Expr})
		}
		*jrow++
		return out
	}

	s := c.Slack()
	out.F = append(out.F, node.NewAdd(comp.Phi, node.NewMul(node.NewConstant(-1), s)))
	out.CJ = append(out.CJ, c)
	for _, g := range comp.GPhi {
		out.J = append(out.J, JTriplet{Row: *jrow, Var: g.Var, Expr: g.Expr})
	}
	out.J = append(out.J, JTriplet{Row: *jrow, Var: s, Expr: node.NewConstant(-1)})
	switch c.Kind {
	case Leq:
		out.U = append(out.U, Bound{Var: s, Val: 0, Source: c})
	case Geq:
		out.L = append(out.L, Bound{Var: s, Val: 0, Source: c})
	}
	*jrow++
	return out
}

func onlyCoeffIsOne(a map[*node.Variable]float64) bool {
	for _, val := range a {
		return val == 1
	}
	return false
}
