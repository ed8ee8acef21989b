// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/numopt/matrix"
)

// buildQuadraticNLP returns phi(x) = x0^2 + x1^2 with no constraints, its
// evaluator closing directly over the returned NLP's own buffers the way
// model.BuildStandard's eval_fn does.
func buildQuadraticNLP() *NLP {
	hphi := matrix.NewCoo(2, 2)
	hphi.Put(0, 0, 0)
	hphi.Put(1, 1, 0)

	a := matrix.NewCoo(0, 2)
	j := matrix.NewCoo(0, 2)

	var nlp *NLP
	eval := func(x []float64) {
		nlp.Phi = x[0]*x[0] + x[1]*x[1]
		nlp.GPhi[0] = 2 * x[0]
		nlp.GPhi[1] = 2 * x[1]
		nlp.HPhi.Data[0] = 2
		nlp.HPhi.Data[1] = 2
	}
	nlp = NewNLP(hphi, a, j, nil, nil, []float64{-1e8, -1e8}, []float64{1e8, 1e8}, nil, eval)
	return nlp
}

func Test_nlp_evaluate(tst *testing.T) {

	chk.PrintTitle("nlp_evaluate")

	nlp := buildQuadraticNLP()
	if nlp.Kind() != KindNLP {
		tst.Fatal("wrong kind")
	}

	nlp.Evaluate([]float64{3, 4})
	chk.Vector(tst, "x", 1e-15, nlp.X, []float64{3, 4})
	chk.Scalar(tst, "phi", 1e-15, nlp.Phi, 25)
	chk.Vector(tst, "gphi", 1e-15, nlp.GPhi, []float64{6, 8})
	chk.Vector(tst, "hphi data", 1e-15, nlp.HPhi.Data, []float64{2, 2})
}

func Test_minlp_kind_and_integrality(tst *testing.T) {

	chk.PrintTitle("minlp_kind_and_integrality")

	hphi := matrix.NewCoo(2, 2)
	hphi.Put(0, 0, 0)
	hphi.Put(1, 1, 0)
	a := matrix.NewCoo(0, 2)
	j := matrix.NewCoo(0, 2)

	var minlp *MINLP
	eval := func(x []float64) {
		minlp.Phi = x[0]*x[0] + x[1]*x[1]
	}
	minlp = NewMINLP(hphi, a, j, nil, nil, []float64{-1e8, -1e8}, []float64{1e8, 1e8}, []bool{true, true}, nil, eval)

	if minlp.Kind() != KindMINLP {
		tst.Fatal("wrong kind")
	}
	minlp.Evaluate([]float64{1, 2})
	chk.Scalar(tst, "phi", 1e-15, minlp.Phi, 5)
}
