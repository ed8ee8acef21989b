// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "github.com/cpmech/numopt/matrix"

// MINLP is an NLP with a subset of variables restricted to integers,
// grounded on original_source/src/problem/minlp.rs's ProblemMinlp.
type MINLP struct {
	NLP
	P []bool
}

// NewMINLP assembles a MINLP's NLP and attaches its integrality flags.
func NewMINLP(hphi, a, j *matrix.Coo, b []float64, h []*matrix.Coo, l, u []float64, p []bool, x0 []float64, eval EvalFunc) *MINLP {
	nlp := NewNLP(hphi, a, j, b, h, l, u, x0, eval)
	if len(p) != nlp.NX() {
		panic("problem: p length must match the variable count")
	}
	return &MINLP{NLP: *nlp, P: p}
}

// Kind identifies this problem as a MINLP.
func (p *MINLP) Kind() Kind { return KindMINLP }
