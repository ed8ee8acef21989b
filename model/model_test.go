// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/numopt/constraint"
	"github.com/cpmech/numopt/node"
	"github.com/cpmech/numopt/problem"
	"github.com/cpmech/numopt/solver"
)

func Test_display(tst *testing.T) {

	chk.PrintTitle("display")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	f := node.NewAdd(node.NewMul(node.NewConstant(4), node.NewCos(x)), y)
	c1 := constraint.New(node.NewAdd(x, y), constraint.Geq, node.NewConstant(0), "comb limit")
	c2 := constraint.New(x, constraint.Geq, node.NewConstant(0), "x limit")
	c3 := constraint.New(y, constraint.Geq, node.NewConstant(0), "y limit")

	m := New()
	m.SetObjective(Minimize(f))
	m.AddConstraints([]*constraint.Constraint{c1, c2, c3})

	want := "\nMinimize\n" +
		"4*cos(x) + y\n\n" +
		"Subject to\n" +
		"x + y >= 0 : comb limit\n" +
		"x >= 0 : x limit\n" +
		"y >= 0 : y limit\n"

	if got := m.String(); got != want {
		tst.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func Test_state_machine(tst *testing.T) {

	chk.PrintTitle("state_machine")

	m := New()
	if m.State() != StateEmpty {
		tst.Fatal("a fresh model must start Empty")
	}

	x := node.NewVariable("x")
	m.SetObjective(Minimize(x))
	if m.State() != StatePopulated {
		tst.Fatal("setting the objective must move to Populated")
	}

	m.AddConstraint(constraint.New(x, constraint.Geq, node.NewConstant(0), ""))
	if m.State() != StatePopulated {
		tst.Fatal("adding a constraint must stay Populated")
	}
}

func Test_final_primals_and_duals(tst *testing.T) {

	chk.PrintTitle("final_primals_and_duals")

	x := node.NewVariable("x")
	y := node.NewVariable("y")

	c1 := constraint.GreaterEqual(x, node.NewConstant(0))
	c2 := constraint.LessEqual(y, node.NewConstant(5))

	m := New()
	m.SetObjective(Minimize(node.NewAdd(x, y)))
	m.AddConstraints([]*constraint.Constraint{c1, c2})

	if m.FinalPrimals() != nil || m.FinalDuals() != nil {
		tst.Fatal("FinalPrimals/FinalDuals must be nil before any solve")
	}

	if err := m.Solve(&finalsStubSolver{}); err != nil {
		tst.Fatal(err)
	}

	xi, yi := m.stdMaps.Var2Index[x], m.stdMaps.Var2Index[y]
	primals := m.FinalPrimals()
	if primals[x] != finalsX[xi] || primals[y] != finalsX[yi] {
		tst.Fatalf("got %+v", primals)
	}

	duals := m.FinalDuals()
	if duals[c1] != finalsPi[xi] {
		tst.Fatalf("expected c1's Geq bound dual from Pi, got %+v", duals)
	}
	if duals[c2] != finalsMu[yi] {
		tst.Fatalf("expected c2's Leq bound dual from Mu, got %+v", duals)
	}
}

// finalsX/finalsMu/finalsPi are the fixed Solution fields finalsStubSolver
// reports. Mu and Pi are per-variable, so all three are sized to this LP's
// two variables; its two pure-bound constraints produce no A/J rows.
var (
	finalsX  = []float64{11, 22}
	finalsMu = []float64{33, 55}
	finalsPi = []float64{44, 66}
)

// finalsStubSolver reports a fixed Solution so Test_final_primals_and_duals
// can check FinalPrimals/FinalDuals read it back through the right StdMaps.
type finalsStubSolver struct{}

func (finalsStubSolver) Solve(p problem.StdProblem) (solver.Status, *problem.Solution, error) {
	return solver.Solved, &problem.Solution{X: finalsX, Mu: finalsMu, Pi: finalsPi}, nil
}

func (finalsStubSolver) SetParam(name string, v solver.Param) error { return nil }
func (finalsStubSolver) GetParam(name string) (solver.Param, bool)  { return solver.Param{}, false }

func Test_mutate_panics_after_solved(tst *testing.T) {

	chk.PrintTitle("mutate_panics_after_solved")

	defer func() {
		if recover() == nil {
			tst.Fatal("mutating a Solved model must panic")
		}
	}()

	x := node.NewVariable("x")
	m := New()
	m.SetObjective(Minimize(x))
	m.AddConstraint(constraint.New(x, constraint.Geq, node.NewConstant(0), ""))

	m.state = StateSolved // simulate having just solved successfully

	m.AddConstraint(constraint.New(x, constraint.Leq, node.NewConstant(10), ""))
}
