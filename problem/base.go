// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem defines the standard-form numeric boundary that a Model
// hands to a Solver: fixed-sparsity matrices and buffers the evaluator
// closure refreshes in place on every call, one variant per problem class
// (LP, MILP, NLP, MINLP), the Go counterpart of
// original_source/src/problem/base.rs's Problem<T>.
package problem

import "github.com/cpmech/numopt/matrix"

// Kind classifies a standardized problem so a Solver can type-switch to
// the backend that handles it.
type Kind int

const (
	KindLP Kind = iota
	KindMILP
	KindNLP
	KindMINLP
)

func (k Kind) String() string {
	switch k {
	case KindLP:
		return "LP"
	case KindMILP:
		return "MILP"
	case KindNLP:
		return "NLP"
	case KindMINLP:
		return "MINLP"
	default:
		return "unknown"
	}
}

// StdProblem is the narrow boundary a Solver receives: enough to dispatch
// to the right backend, nothing about how the problem was built.
type StdProblem interface {
	Kind() Kind
	NX() int
}

// Base holds the numeric buffers shared by the nonlinear problem classes:
// the objective value/gradient/Hessian, the linear-equality system (a,b),
// the nonlinear-equality system (f,j) and its per-row Hessian blocks (h),
// their weighted combination (hcomb), and the variable bounds (l,u).
// HPhi, J and every entry of H are lower-triangular-or-general sparse
// matrices whose Row/Col index arrays are fixed at construction; only
// Data is refreshed afterwards, by CombineH or by an evaluator closure.
type Base struct {
	X []float64

	Phi  float64
	GPhi []float64
	HPhi *matrix.Coo // lower triangular

	A *matrix.Coo
	B []float64

	F []float64
	J *matrix.Coo
	H []*matrix.Coo

	HComb *matrix.Coo // lower triangular, weighted sum of H

	L, U []float64
}

// NewBase assembles a Base from the fixed sparsity patterns of hphi, a, j
// and h and the right-hand side b and bounds l,u, building hcomb's own
// sparsity by concatenating every h block's (row,col) pairs in order, the
// same way original_source's Problem::new derives hcomb_nnz and fills it.
func NewBase(hphi, a, j *matrix.Coo, b []float64, h []*matrix.Coo, l, u, x0 []float64) *Base {
	nx := a.Cols
	na := a.Rows
	nf := j.Rows

	if hphi.Rows != nx || hphi.Cols != nx {
		panic("problem: hphi must be nx-by-nx")
	}
	if len(b) != na {
		panic("problem: b length must match a's row count")
	}
	if len(h) != nf {
		panic("problem: one hessian block per nonlinear-equality row is required")
	}
	for _, hh := range h {
		if hh.Rows != nx || hh.Cols != nx {
			panic("problem: every h block must be nx-by-nx")
		}
	}
	if len(l) != nx || len(u) != nx {
		panic("problem: l and u must have length nx")
	}

	hcomb := matrix.NewCoo(nx, nx)
	for _, hh := range h {
		for k := 0; k < hh.Len(); k++ {
			hcomb.Put(hh.Row[k], hh.Col[k], 0)
		}
	}

	x := make([]float64, nx)
	if x0 != nil {
		copy(x, x0)
	}

	return &Base{
		X:     x,
		GPhi:  make([]float64, nx),
		HPhi:  hphi,
		A:     a,
		B:     b,
		F:     make([]float64, nf),
		J:     j,
		H:     h,
		HComb: hcomb,
		L:     l,
		U:     u,
	}
}

// NX is the number of optimization variables.
func (b *Base) NX() int { return len(b.GPhi) }

// NA is the number of linear-equality constraints.
func (b *Base) NA() int { return len(b.B) }

// NF is the number of nonlinear-equality constraints.
func (b *Base) NF() int { return len(b.F) }

// CombineH fills HComb.Data with the linear combination sum(nu[k]*H[k])
// of the per-row Hessian blocks, in the exact (hessian-block, then
// within-block) order they were concatenated into HComb's sparsity
// pattern by NewBase, mirroring combine_h in original_source.
func (b *Base) CombineH(nu []float64) {
	if len(nu) != len(b.H) {
		panic("problem: combine_h requires one multiplier per nonlinear-equality row")
	}
	k := 0
	for i, hh := range b.H {
		for _, val := range hh.Data {
			b.HComb.Data[k] = nu[i] * val
			k++
		}
	}
}

// dot returns the inner product of x and y.
func dot(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("problem: dot requires equal-length slices")
	}
	var p float64
	for i := range x {
		p += x[i] * y[i]
	}
	return p
}
