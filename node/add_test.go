// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_add_partial(tst *testing.T) {

	chk.PrintTitle("add_partial")

	x := NewVariable("x")
	y := NewVariable("y")
	w := NewVariable("w")

	z := NewAdd(x, y)
	chk.Scalar(tst, "d(x+y)/dx", 0, z.Partial(x).Value(nil), 1)
	chk.Scalar(tst, "d(x+y)/dy", 0, z.Partial(y).Value(nil), 1)
	chk.Scalar(tst, "d(x+y)/dw", 0, z.Partial(w).Value(nil), 0)
}

func Test_add_value(tst *testing.T) {

	chk.PrintTitle("add_value")

	x := NewVariable("x")
	y := NewVariable("y")
	binding := map[*Variable]float64{x: 3, y: 4}

	z1 := NewAdd(x, NewConstant(1))
	chk.Scalar(tst, "value(x+1)", 1e-15, z1.Value(binding), 4)

	z3 := NewAdd(NewAdd(x, NewConstant(1)), NewAdd(x, NewConstant(3)), NewAdd(y, NewAdd(x, NewConstant(5))))
	chk.Scalar(tst, "value", 1e-15, z3.Value(binding), (3+1)+(3+3)+(4+(3+5)))

	z4 := NewAdd(x, x)
	chk.Scalar(tst, "value(x+x)", 1e-15, z4.Value(binding), 6)
}

func Test_add_zero_cancel(tst *testing.T) {

	chk.PrintTitle("add_zero_cancel")

	x := NewVariable("x")
	z := NewAdd(x, NewConstant(5), NewConstant(-5))
	if z != Node(x) {
		tst.Fatalf("expected net-zero constant sum to collapse away, got %v", z)
	}
}

func Test_add_collapse(tst *testing.T) {

	chk.PrintTitle("add_collapse")

	x := NewVariable("x")

	if NewAdd(x) != Node(x) {
		tst.Fatal("single-argument Add must collapse to its argument")
	}

	z := NewAdd(NewConstant(2), NewConstant(3))
	if !IsConstantWithValue(z, 5) {
		tst.Fatal("constant-only Add must fold to a single constant")
	}
}

func Test_add_string(tst *testing.T) {

	chk.PrintTitle("add_string")

	x := NewVariable("x")
	y := NewVariable("y")

	z := NewAdd(x, y, NewConstant(3))
	if z.String() != "x + y + 3" {
		tst.Fatalf("got %q", z.String())
	}
}
