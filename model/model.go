// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model is the modeling layer a caller builds an optimization
// problem in: an Objective, a list of constraint.Constraint and a map of
// initial values, turned into a standard problem.StdProblem by
// BuildStandard and handed to a solver.Solver by Solve. Grounded on
// original_source/src/model/model.rs and model_std.rs.
package model

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/numopt/constraint"
	"github.com/cpmech/numopt/node"
	"github.com/cpmech/numopt/problem"
	"github.com/cpmech/numopt/solver"
)

// Verbose gates this package's io.Pf tracing of state transitions and
// standardization, the same switch fem.FEM.Verbose gives its own Run.
var Verbose bool

// State is Model's lifecycle stage (spec.md §4.7): Empty -> Populated ->
// Solving -> Solved|Failed.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateSolving
	StateSolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePopulated:
		return "Populated"
	case StateSolving:
		return "Solving"
	case StateSolved:
		return "Solved"
	case StateFailed:
		return "Failed"
	default:
		return "unknown"
	}
}

// Model collects an Objective, a list of constraints and a map of initial
// variable values, and materializes them into a standard problem on Solve.
type Model struct {
	objective   Objective
	constraints []*constraint.Constraint
	initValues  map[*node.Variable]float64

	state    State
	status   solver.Status
	solution *problem.Solution
	stdMaps  *StdMaps
}

// New returns an empty Model.
func New() *Model {
	return &Model{
		objective:  Empty(),
		initValues: map[*node.Variable]float64{},
		state:      StateEmpty,
	}
}

// Objective returns the model's current objective.
func (m *Model) Objective() Objective { return m.objective }

// Constraints returns the model's constraints, in the order they were added.
func (m *Model) Constraints() []*constraint.Constraint { return m.constraints }

// InitValues returns the model's initial-value map.
func (m *Model) InitValues() map[*node.Variable]float64 { return m.initValues }

// State returns the model's current lifecycle state.
func (m *Model) State() State { return m.state }

// Status returns the most recent solve's status, Unknown before any solve.
func (m *Model) Status() solver.Status { return m.status }

// Solution returns the most recent solve's solution, nil before a
// successful solve.
func (m *Model) Solution() *problem.Solution { return m.solution }

// assertMutable panics if m is not in a state that accepts
// SetObjective/AddConstraint[s]/SetInitValues, per spec.md §4.7.
func (m *Model) assertMutable() {
	if m.state != StateEmpty && m.state != StatePopulated {
		chk.Panic("model: cannot mutate a model in state %v", m.state)
	}
}

// SetObjective sets the model's objective.
func (m *Model) SetObjective(obj Objective) {
	m.assertMutable()
	m.objective = obj
	m.state = StatePopulated
}

// AddConstraint appends one constraint.
func (m *Model) AddConstraint(c *constraint.Constraint) {
	m.assertMutable()
	m.constraints = append(m.constraints, c)
	m.state = StatePopulated
}

// AddConstraints appends several constraints.
func (m *Model) AddConstraints(cs []*constraint.Constraint) {
	m.assertMutable()
	m.constraints = append(m.constraints, cs...)
	m.state = StatePopulated
}

// SetInitValues replaces the model's initial-value map.
func (m *Model) SetInitValues(values map[*node.Variable]float64) {
	m.assertMutable()
	m.initValues = values
	m.state = StatePopulated
}

// Solve materializes a standard problem via BuildStandard, hands it to s,
// and stores the resulting status and solution. Re-entry resets any prior
// result before building again, exactly as spec.md §4.7 describes.
func (m *Model) Solve(s solver.Solver) error {
	m.status = solver.Unknown
	m.solution = nil
	m.stdMaps = nil
	m.state = StateSolving
	if Verbose {
		io.Pforan("model: standardizing %d constraint(s)\n", len(m.constraints))
	}

	std, maps, err := m.BuildStandard()
	if err != nil {
		m.state = StateFailed
		if Verbose {
			io.PfRed("model: standardization failed: %v\n", err)
		}
		return err
	}
	m.stdMaps = maps
	if Verbose {
		io.Pf("model: standardized to %v with %d variable(s)\n", std.Kind(), std.NX())
	}

	status, sol, err := s.Solve(std)
	if err != nil {
		m.state = StateFailed
		if Verbose {
			io.PfRed("model: solve failed: %v\n", err)
		}
		return err
	}

	m.status = status
	m.solution = sol
	if status == solver.Solved {
		m.state = StateSolved
	} else {
		m.state = StateFailed
	}
	if Verbose {
		io.Pfcyan("model: solve finished with status %v\n", status)
	}
	return nil
}

// FinalPrimals returns the most recent solve's primal values keyed by the
// variable that carries each one, reading Solution.X back through the
// Var2Index built during standardization. Grounded on examples/clp.rs's
// and examples/cbc_knapsack.rs's final_primals().
func (m *Model) FinalPrimals() map[*node.Variable]float64 {
	if m.solution == nil || m.stdMaps == nil {
		return nil
	}
	out := make(map[*node.Variable]float64, len(m.stdMaps.Var2Index))
	for v, idx := range m.stdMaps.Var2Index {
		out[v] = m.solution.X[idx]
	}
	return out
}

// FinalDuals returns the most recent solve's dual values keyed by the
// constraint each one was produced from: Lam for the linear-equality rows
// traced by ARow2Constr, Nu for the nonlinear-equality rows traced by
// JRow2Constr, Mu for the upper-bound rows traced by UIndex2Constr, and Pi
// for the lower-bound rows traced by LIndex2Constr. Grounded on
// examples/clp.rs's final_duals().
func (m *Model) FinalDuals() map[*constraint.Constraint]float64 {
	if m.solution == nil || m.stdMaps == nil {
		return nil
	}
	out := make(map[*constraint.Constraint]float64)
	for i, c := range m.stdMaps.ARow2Constr {
		out[c] = m.solution.Lam[i]
	}
	for i, c := range m.stdMaps.JRow2Constr {
		out[c] = m.solution.Nu[i]
	}
	for i, c := range m.stdMaps.UIndex2Constr {
		out[c] = m.solution.Mu[i]
	}
	for i, c := range m.stdMaps.LIndex2Constr {
		out[c] = m.solution.Pi[i]
	}
	return out
}

// String renders the model the way fem.Model/inp.Simulation render their
// own debug dumps, grounded on model.rs's Display test fixture:
//
//	Minimize
//	<expr>
//
//	Subject to
//	<c1> : <label1>
//	<c2>
func (m *Model) String() string {
	var b strings.Builder
	switch m.objective.Kind() {
	case KindMinimize:
		fmt.Fprintf(&b, "\nMinimize\n%s\n", m.objective.Expr())
	case KindMaximize:
		fmt.Fprintf(&b, "\nMaximize\n%s\n", m.objective.Expr())
	case KindEmpty:
		fmt.Fprint(&b, "\nFind point\n\n")
	}
	if len(m.constraints) > 0 {
		fmt.Fprint(&b, "\nSubject to\n")
		for _, c := range m.constraints {
			if c.Label != "" {
				fmt.Fprintf(&b, "%s : %s\n", c, c.Label)
			} else {
				fmt.Fprintf(&b, "%s\n", c)
			}
		}
	}
	return b.String()
}
