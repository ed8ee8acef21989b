// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/numopt/node"
)

func Test_std_components_u_bound(tst *testing.T) {

	chk.PrintTitle("std_components_u_bound")

	x := node.NewVariable("x")
	c1 := LessEqual(x, node.NewConstant(3))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.CA) != 0 || len(comp.CJ) != 0 || len(comp.A) != 0 || len(comp.B) != 0 ||
		len(comp.F) != 0 || len(comp.J) != 0 || len(comp.H) != 0 || len(comp.L) != 0 {
		tst.Fatal("a simple upper bound must not touch any other row kind")
	}
	if len(comp.U) != 1 || comp.U[0].Var != x || comp.U[0].Val != 3 || comp.U[0].Source != c1 {
		tst.Fatalf("got %+v", comp.U)
	}
	if arow != 1 || jrow != 2 {
		tst.Fatal("a bound row must not advance arow/jrow")
	}
}

func Test_std_components_l_bound(tst *testing.T) {

	chk.PrintTitle("std_components_l_bound")

	x := node.NewVariable("x")
	c1 := GreaterEqual(x, node.NewConstant(-4))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.L) != 1 || comp.L[0].Var != x || comp.L[0].Val != -4 || comp.L[0].Source != c1 {
		tst.Fatalf("got %+v", comp.L)
	}
	if len(comp.U) != 0 {
		tst.Fatal("a lower bound must not also produce an upper bound")
	}
}

func Test_std_components_affine_eq(tst *testing.T) {

	chk.PrintTitle("std_components_affine_eq")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	lhs := node.NewAdd(node.NewMul(node.NewConstant(3), x), node.NewMul(node.NewConstant(4), y), node.NewConstant(6))
	c1 := Equal(lhs, node.NewConstant(5))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.CA) != 1 || comp.CA[0] != c1 {
		tst.Fatal("affine equality must back-reference its own constraint")
	}
	if len(comp.A) != 2 || len(comp.B) != 1 {
		tst.Fatalf("expected 2 A-entries and 1 B-entry, got %d and %d", len(comp.A), len(comp.B))
	}
	for _, t := range comp.A {
		if t.Row != 1 {
			tst.Fatal("all entries must land on arow=1")
		}
		switch t.Var {
		case x:
			chk.Scalar(tst, "A[x]", 1e-15, t.Val, 3)
		case y:
			chk.Scalar(tst, "A[y]", 1e-15, t.Val, 4)
		default:
			tst.Fatal("unexpected variable")
		}
	}
	chk.Scalar(tst, "B[0]", 1e-15, comp.B[0], -1)
	if arow != 2 || jrow != 2 {
		tst.Fatal("affine equality must advance arow only")
	}
}

func Test_std_components_affine_leq(tst *testing.T) {

	chk.PrintTitle("std_components_affine_leq")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	lhs := node.NewAdd(node.NewMul(node.NewConstant(3), x), node.NewMul(node.NewConstant(4), y), node.NewConstant(6))
	c1 := LessEqual(lhs, node.NewConstant(5))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.A) != 3 {
		tst.Fatalf("expected 3 A-entries (x, y, slack), got %d", len(comp.A))
	}
	slack := c1.Slack()
	for _, t := range comp.A {
		if t.Var == slack {
			chk.Scalar(tst, "A[slack]", 1e-15, t.Val, -1)
		}
	}
	if len(comp.U) != 1 || comp.U[0].Var != slack || comp.U[0].Val != 0 {
		tst.Fatal("an affine <= constraint must bound its slack above by 0")
	}
}

func Test_std_components_nonlinear_eq(tst *testing.T) {

	chk.PrintTitle("std_components_nonlinear_eq")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	lhs := node.NewAdd(
		node.NewMul(node.NewConstant(3), node.NewMul(x, x)),
		node.NewMul(node.NewConstant(4), node.NewMul(x, y)),
		node.NewMul(node.NewConstant(7), node.NewMul(y, y)),
		node.NewConstant(8),
	)
	c1 := Equal(lhs, node.NewConstant(5))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.CJ) != 1 || len(comp.F) != 1 {
		tst.Fatal("nonlinear equality must produce exactly one F row")
	}
	if len(comp.J) != 2 {
		tst.Fatalf("expected 2 Jacobian entries, got %d", len(comp.J))
	}
	for _, t := range comp.J {
		if t.Row != 2 {
			tst.Fatal("all Jacobian entries must land on jrow=2")
		}
	}
	if len(comp.H) != 1 || len(comp.H[0]) != 3 {
		tst.Fatalf("expected 1 Hessian block of 3 lower-triangular entries, got %+v", comp.H)
	}
	if arow != 1 || jrow != 3 {
		tst.Fatal("nonlinear equality must advance jrow only")
	}
}

func Test_std_components_nonlinear_leq(tst *testing.T) {

	chk.PrintTitle("std_components_nonlinear_leq")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	lhs := node.NewAdd(
		node.NewMul(node.NewConstant(3), node.NewMul(x, x)),
		node.NewMul(node.NewConstant(4), node.NewMul(x, y)),
		node.NewMul(node.NewConstant(7), node.NewMul(y, y)),
		node.NewConstant(8),
	)
	c1 := LessEqual(lhs, node.NewConstant(5))
	arow, jrow := 1, 2
	comp := c1.StdComponents(&arow, &jrow)

	if len(comp.J) != 3 {
		tst.Fatalf("expected 3 Jacobian entries (x, y, slack), got %d", len(comp.J))
	}
	if len(comp.U) != 1 || comp.U[0].Var != c1.Slack() {
		tst.Fatal("nonlinear <= must bound its slack above by 0")
	}
}
