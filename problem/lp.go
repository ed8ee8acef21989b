// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "github.com/cpmech/numopt/matrix"

// LP is a linear program
//
//	minimize   c^T x
//	subject to a*x = b
//	           l <= x <= u
//
// grounded on original_source/src/problem/lp.rs's ProblemLp trait, whose
// phi/gphi are derived (not stored) from c and the current x.
type LP struct {
	C  []float64
	A  *matrix.Coo
	B  []float64
	L  []float64
	U  []float64
	X0 []float64

	X []float64
}

// NewLP returns an LP with X seeded from x0 (or zeroed if x0 is nil).
func NewLP(c []float64, a *matrix.Coo, b, l, u, x0 []float64) *LP {
	nx := len(c)
	if a.Cols != nx {
		panic("problem: a's column count must match c's length")
	}
	if len(b) != a.Rows {
		panic("problem: b length must match a's row count")
	}
	if len(l) != nx || len(u) != nx {
		panic("problem: l and u must have length nx")
	}
	x := make([]float64, nx)
	if x0 != nil {
		copy(x, x0)
	}
	return &LP{C: c, A: a, B: b, L: l, U: u, X0: x0, X: x}
}

// Kind identifies this problem as an LP.
func (p *LP) Kind() Kind { return KindLP }

// NX is the number of optimization variables.
func (p *LP) NX() int { return len(p.C) }

// NA is the number of linear-equality constraints.
func (p *LP) NA() int { return len(p.B) }

// Phi returns c^T x, the objective value at x.
func (p *LP) Phi(x []float64) float64 { return dot(p.C, x) }

// GPhi returns the objective gradient, which is c itself for a linear
// objective regardless of x.
func (p *LP) GPhi() []float64 { return p.C }
