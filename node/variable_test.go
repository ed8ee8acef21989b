// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_variable_identity(tst *testing.T) {

	chk.PrintTitle("variable_identity")

	x1 := NewVariable("x")
	x2 := NewVariable("x")
	if x1 == x2 {
		tst.Fatal("two variables built with the same name must not be identical")
	}
	if Node(x1) == Node(x2) {
		tst.Fatal("identity must hold through the Node interface too")
	}
}

func Test_variable_unbound_value(tst *testing.T) {

	chk.PrintTitle("variable_unbound_value")

	x := NewVariable("x")
	if !math.IsNaN(x.Value(nil)) {
		tst.Fatal("an unbound variable must evaluate to NaN")
	}
	if !math.IsNaN(x.Value(map[*Variable]float64{})) {
		tst.Fatal("an unbound variable must evaluate to NaN")
	}
}

func Test_variable_kind(tst *testing.T) {

	chk.PrintTitle("variable_kind")

	x := NewVariable("x")
	n := NewInteger("n")
	if x.Kind() != Continuous {
		tst.Fatal("NewVariable must build a Continuous variable")
	}
	if n.Kind() != Integer {
		tst.Fatal("NewInteger must build an Integer variable")
	}
}
