// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "math"

// Cos is the unary cosine node.
type Cos struct {
	arg Node
}

// NewCos builds cos(arg), folding constant arguments immediately.
func NewCos(arg Node) Node {
	if k, ok := arg.(*Constant); ok {
		return NewConstant(math.Cos(k.value))
	}
	return &Cos{arg: arg}
}

// Value evaluates math.Cos of the argument's value.
func (c *Cos) Value(binding map[*Variable]float64) float64 {
	return math.Cos(c.arg.Value(binding))
}

// Arguments returns {arg}.
func (c *Cos) Arguments() []Node { return []Node{c.arg} }

// Partial is -sin(arg) when wrt is identical to arg, 0 otherwise.
func (c *Cos) Partial(wrt Node) Node {
	if c.arg == wrt {
		return NewMul(NewConstant(-1), NewSin(c.arg))
	}
	return NewConstant(0)
}

func (c *Cos) String() string {
	return "cos(" + c.arg.String() + ")"
}
