// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "github.com/cpmech/numopt/matrix"

// MILP is an LP with a subset of variables restricted to integers,
// grounded on original_source/src/problem/milp.rs's ProblemMilp, which
// wraps the same (c,a,b,l,u) data as LP plus an integrality flag vector.
type MILP struct {
	LP
	P []bool
}

// NewMILP returns a MILP with X seeded from x0 (or zeroed if x0 is nil).
func NewMILP(c []float64, a *matrix.Coo, b, l, u []float64, p []bool, x0 []float64) *MILP {
	lp := NewLP(c, a, b, l, u, x0)
	if len(p) != lp.NX() {
		panic("problem: p length must match c's length")
	}
	return &MILP{LP: *lp, P: p}
}

// Kind identifies this problem as a MILP.
func (p *MILP) Kind() Kind { return KindMILP }
