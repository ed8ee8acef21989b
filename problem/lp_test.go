// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/numopt/matrix"
)

func Test_lp_phi_gphi(tst *testing.T) {

	chk.PrintTitle("lp_phi_gphi")

	a := matrix.NewCoo(1, 2)
	a.Put(0, 0, 1)
	a.Put(0, 1, 1)

	lp := NewLP([]float64{2, 3}, a, []float64{5}, []float64{0, 0}, []float64{1e8, 1e8}, nil)

	if lp.Kind() != KindLP {
		tst.Fatal("wrong kind")
	}
	if lp.NX() != 2 || lp.NA() != 1 {
		tst.Fatalf("got nx=%d na=%d", lp.NX(), lp.NA())
	}
	chk.Scalar(tst, "phi", 1e-15, lp.Phi([]float64{2, 4}), 16)
	chk.Vector(tst, "gphi", 1e-15, lp.GPhi(), []float64{2, 3})
}

func Test_milp_kind_and_integrality(tst *testing.T) {

	chk.PrintTitle("milp_kind_and_integrality")

	a := matrix.NewCoo(1, 2)
	a.Put(0, 0, 1)
	a.Put(0, 1, 1)

	milp := NewMILP([]float64{2, 3}, a, []float64{5}, []float64{0, 0}, []float64{1e8, 1e8}, []bool{true, false}, nil)

	if milp.Kind() != KindMILP {
		tst.Fatal("wrong kind")
	}
	if !milp.P[0] || milp.P[1] {
		tst.Fatal("integrality flags not preserved")
	}
	chk.Scalar(tst, "phi", 1e-15, milp.Phi([]float64{1, 1}), 5)
}
