// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "github.com/cpmech/numopt/matrix"

// EvalFunc refreshes an NLP's (or MINLP's) Base buffers -- Phi, GPhi,
// HPhi.Data, F, J.Data and each H[i].Data -- in place for the given x.
// It is built by model.BuildStandard, which closes over the very buffers
// it must write into, the Go counterpart of the boxed eval_fn closure in
// original_source/src/problem/base.rs.
type EvalFunc func(x []float64)

// NLP is a nonlinear program
//
//	minimize   phi(x)
//	subject to a*x = b
//	           f(x) = 0
//	           l <= x <= u
//
// grounded on original_source/src/problem/nlp.rs's ProblemNlp.
type NLP struct {
	Base
	Eval EvalFunc
}

// NewNLP assembles an NLP's Base and attaches its evaluator closure.
func NewNLP(hphi, a, j *matrix.Coo, b []float64, h []*matrix.Coo, l, u, x0 []float64, eval EvalFunc) *NLP {
	base := NewBase(hphi, a, j, b, h, l, u, x0)
	return &NLP{Base: *base, Eval: eval}
}

// Kind identifies this problem as an NLP.
func (p *NLP) Kind() Kind { return KindNLP }

// Evaluate records x, then refreshes Phi, GPhi, HPhi, F, J and H for it.
func (p *NLP) Evaluate(x []float64) {
	copy(p.X, x)
	p.Eval(x)
}
