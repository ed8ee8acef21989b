// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "math"

// Sin is the unary sine node.
type Sin struct {
	arg Node
}

// NewSin builds sin(arg), folding constant arguments immediately.
func NewSin(arg Node) Node {
	if k, ok := arg.(*Constant); ok {
		return NewConstant(math.Sin(k.value))
	}
	return &Sin{arg: arg}
}

// Value evaluates math.Sin of the argument's value.
func (s *Sin) Value(binding map[*Variable]float64) float64 {
	return math.Sin(s.arg.Value(binding))
}

// Arguments returns {arg}.
func (s *Sin) Arguments() []Node { return []Node{s.arg} }

// Partial is cos(arg) when wrt is identical to arg, 0 otherwise.
func (s *Sin) Partial(wrt Node) Node {
	if s.arg == wrt {
		return NewCos(s.arg)
	}
	return NewConstant(0)
}

func (s *Sin) String() string {
	return "sin(" + s.arg.String() + ")"
}
