// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"sort"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/numopt/constraint"
	"github.com/cpmech/numopt/matrix"
	"github.com/cpmech/numopt/node"
	"github.com/cpmech/numopt/problem"
	"github.com/cpmech/numopt/props"
)

// infBound is the default (effectively unbounded) variable limit used
// before any Rule-1/inequality bound narrows it, matching model_std.rs's
// INF constant.
const infBound = 1e8

// StdMaps gives the traceability a caller needs to relate a standardized
// row or bound index back to the Constraint that produced it.
type StdMaps struct {
	Var2Index     map[*node.Variable]int
	ARow2Constr   map[int]*constraint.Constraint
	JRow2Constr   map[int]*constraint.Constraint
	UIndex2Constr map[int]*constraint.Constraint
	LIndex2Constr map[int]*constraint.Constraint
}

// BuildStandard assembles the model's objective and constraints into a
// problem.StdProblem, classifying it as LP/MILP/NLP/MINLP and building the
// closure that refreshes the nonlinear problem classes' numeric buffers
// from a point x. Grounded on model_std.rs's std_problem, with one
// deliberate deviation: variable collection walks props.Vars over the
// objective and every constraint's own expression directly, rather than
// through the affine-map ("prop.a.keys()") trick model_std.rs uses. That
// trick relies on every non-affine node still exposing the full set of
// variables it depends on through Properties.A (sin/cos do, by keeping
// their argument's A unchanged); props.Reduce's *node.Div case instead
// reports the union of both operands' variables without real
// coefficients (per this repo's committed Div decision, div.rs has no
// standard-form reducer at all in the original source), so relying on
// A's keys alone would still work for Div today but is one step removed
// from what A actually means there -- walking the raw expression with
// props.Vars avoids depending on that distinction entirely.
func (m *Model) BuildStandard() (problem.StdProblem, *StdMaps, error) {

	// 1. Objective expression, negated under Rule "Maximize handling".
	var objExpr node.Node
	switch m.objective.Kind() {
	case KindMinimize:
		objExpr = m.objective.Expr()
	case KindMaximize:
		objExpr = node.NewMul(node.NewConstant(-1), m.objective.Expr())
	default:
		objExpr = node.NewConstant(0)
	}
	objComp := props.BuildComponents(objExpr)

	// 2. Constraint standardization, in declaration order.
	arow, jrow := 0, 0
	var constrComp constraint.StdComponents
	for _, c := range m.constraints {
		constrComp.Extend(c.StdComponents(&arow, &jrow))
	}

	// 3. Variables, stable-sorted by name then creation order.
	varSet := map[*node.Variable]bool{}
	for _, v := range props.Vars(objExpr) {
		varSet[v] = true
	}
	for _, c := range m.constraints {
		exp := node.NewAdd(c.LHS, node.NewMul(node.NewConstant(-1), c.RHS))
		for _, v := range props.Vars(exp) {
			varSet[v] = true
		}
	}
	// Slack variables (constraint.Slack) never appear in LHS-RHS itself --
	// they're introduced by StdComponents -- so they must be unioned in
	// separately from the standardized fragments, per spec.md §4.6 step 1.
	for _, t := range constrComp.A {
		varSet[t.Var] = true
	}
	for _, t := range constrComp.J {
		varSet[t.Var] = true
	}
	for _, bnd := range constrComp.U {
		varSet[bnd.Var] = true
	}
	for _, bnd := range constrComp.L {
		varSet[bnd.Var] = true
	}
	vars := make([]*node.Variable, 0, len(varSet))
	for v := range varSet {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool {
		if vars[i].Name() != vars[j].Name() {
			return vars[i].Name() < vars[j].Name()
		}
		return vars[i].ID() < vars[j].ID()
	})
	nx := len(vars)
	// utl.IntRange gives the canonical 0..nx-1 ordering, the same index
	// range fem's equation-numbering passes assign to their own unknowns.
	indices := utl.IntRange(nx)
	var2index := make(map[*node.Variable]int, nx)
	for i, v := range vars {
		var2index[v] = indices[i]
	}

	// 4. Objective gradient, Hessian (symbolic) and linear-objective c.
	gphiVar := make([]*node.Variable, 0, len(objComp.GPhi))
	gphiExpr := make([]node.Node, 0, len(objComp.GPhi))
	for _, g := range objComp.GPhi {
		gphiVar = append(gphiVar, g.Var)
		gphiExpr = append(gphiExpr, g.Expr)
	}
	hphiExpr := matrix.NewCooExpr(nx, nx)
	for _, h := range objComp.HPhi {
		i, j := var2index[h.V1], var2index[h.V2]
		if i < j {
			i, j = j, i
		}
		hphiExpr.Put(i, j, h.Expr)
	}
	cData := make([]float64, nx)
	for v, val := range objComp.Prop.A {
		cData[var2index[v]] = val
	}

	// 5. Linear-equality rows (a*x = b).
	numA := len(constrComp.B)
	aMat := matrix.NewCoo(numA, nx)
	for _, t := range constrComp.A {
		aMat.Put(t.Row, var2index[t.Var], t.Val)
	}
	bData := constrComp.B

	aRow2Constr := make(map[int]*constraint.Constraint, len(constrComp.CA))
	for i, c := range constrComp.CA {
		aRow2Constr[i] = c
	}

	// 6. Nonlinear-equality rows (f(x) = 0), Jacobian and Hessian blocks.
	numF := len(constrComp.F)
	jExpr := matrix.NewCooExpr(numF, nx)
	for _, t := range constrComp.J {
		jExpr.Put(t.Row, var2index[t.Var], t.Expr)
	}
	fExpr := constrComp.F

	jRow2Constr := make(map[int]*constraint.Constraint, len(constrComp.CJ))
	for i, c := range constrComp.CJ {
		jRow2Constr[i] = c
	}

	hBlocksExpr := constrComp.H

	// 7. Bounds, override-if-tighter.
	uData := make([]float64, nx)
	lData := make([]float64, nx)
	for i := range uData {
		uData[i] = infBound
		lData[i] = -infBound
	}
	uIndex2Constr := map[int]*constraint.Constraint{}
	lIndex2Constr := map[int]*constraint.Constraint{}
	for _, bnd := range constrComp.U {
		idx := var2index[bnd.Var]
		if bnd.Val <= uData[idx] {
			uData[idx] = bnd.Val
			uIndex2Constr[idx] = bnd.Source
		}
	}
	for _, bnd := range constrComp.L {
		idx := var2index[bnd.Var]
		if bnd.Val >= lData[idx] {
			lData[idx] = bnd.Val
			lIndex2Constr[idx] = bnd.Source
		}
	}

	// 8. Integrality flags.
	pData := make([]bool, nx)
	numInt := 0
	for v, idx := range var2index {
		if v.Kind() == node.Integer {
			pData[idx] = true
			numInt++
		}
	}

	// 9. Initial point.
	x0 := make([]float64, nx)
	for v, val := range m.initValues {
		if idx, ok := var2index[v]; ok {
			x0[idx] = val
		}
	}

	maps := &StdMaps{
		Var2Index:     var2index,
		ARow2Constr:   aRow2Constr,
		JRow2Constr:   jRow2Constr,
		UIndex2Constr: uIndex2Constr,
		LIndex2Constr: lIndex2Constr,
	}

	// 10. Classify and, for NLP/MINLP, wire the evaluator closure against
	// the returned problem's own buffers (set via the `base` indirection
	// below once that problem exists).
	affineObjective := objComp.Prop.Affine

	if affineObjective && numF == 0 && numInt == 0 {
		lp := problem.NewLP(cData, aMat, bData, lData, uData, x0)
		return lp, maps, nil
	}
	if affineObjective && numF == 0 {
		milp := problem.NewMILP(cData, aMat, bData, lData, uData, pData, x0)
		return milp, maps, nil
	}

	hphiNum := matrix.NewCoo(nx, nx)
	for k := 0; k < hphiExpr.Len(); k++ {
		hphiNum.Put(hphiExpr.Row[k], hphiExpr.Col[k], 0)
	}
	jNum := matrix.NewCoo(numF, nx)
	for k := 0; k < jExpr.Len(); k++ {
		jNum.Put(jExpr.Row[k], jExpr.Col[k], 0)
	}
	hNum := make([]*matrix.Coo, len(hBlocksExpr))
	for i, hh := range hBlocksExpr {
		hi := matrix.NewCoo(nx, nx)
		for _, e := range hh {
			r, c := var2index[e.V1], var2index[e.V2]
			if r < c {
				r, c = c, r
			}
			hi.Put(r, c, 0)
		}
		hNum[i] = hi
	}

	var base *problem.Base
	eval := func(x []float64) {
		binding := make(map[*node.Variable]float64, nx)
		for v, idx := range var2index {
			binding[v] = x[idx]
		}
		base.Phi = objExpr.Value(binding)
		for i, v := range gphiVar {
			base.GPhi[var2index[v]] = gphiExpr[i].Value(binding)
		}
		for k, e := range hphiExpr.Data {
			base.HPhi.Data[k] = e.Value(binding)
		}
		for i, e := range fExpr {
			base.F[i] = e.Value(binding)
		}
		for k, e := range jExpr.Data {
			base.J.Data[k] = e.Value(binding)
		}
		for i, hh := range hBlocksExpr {
			for k, e := range hh {
				base.H[i].Data[k] = e.Expr.Value(binding)
			}
		}
	}

	if numInt == 0 {
		nlp := problem.NewNLP(hphiNum, aMat, jNum, bData, hNum, lData, uData, x0, eval)
		base = &nlp.Base
		return nlp, maps, nil
	}

	minlp := problem.NewMINLP(hphiNum, aMat, jNum, bData, hNum, lData, uData, pData, x0, eval)
	base = &minlp.Base
	return minlp, maps, nil
}
