// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Div is the binary quotient node: num/den.
type Div struct {
	num, den Node
}

// NewDiv builds num/den, folding constant operands and simplifying
// division by one.
func NewDiv(num, den Node) Node {
	if IsConstantWithValue(den, 1) {
		return num
	}
	if IsConstantWithValue(num, 0) {
		return NewConstant(0)
	}
	if kn, ok := num.(*Constant); ok {
		if kd, ok := den.(*Constant); ok {
			return NewConstant(kn.value / kd.value)
		}
	}
	return &Div{num: num, den: den}
}

// Value divides num by den; division by zero follows IEEE 754 (+/-Inf or
// NaN), the same as the underlying float64 arithmetic.
func (d *Div) Value(binding map[*Variable]float64) float64 {
	return d.num.Value(binding) / d.den.Value(binding)
}

// Arguments returns {num, den}.
func (d *Div) Arguments() []Node { return []Node{d.num, d.den} }

// Partial returns 1/den when wrt is identical to num only, -num/den^2 when
// wrt is identical to den only, 0 when wrt is identical to both, or 0
// otherwise. Package diff's path-sum visits num and den as separate
// argument slots and calls Partial with the same wrt at each, so for a
// node in both slots (e.g. x/x) each visit returns half of the full
// partial 1/den - num/den^2, which is 0 there; the two visits then add up
// to the right total.
func (d *Div) Partial(wrt Node) Node {
	if d.num == wrt && d.den == wrt {
		return NewConstant(0)
	}
	if d.num == wrt {
		return NewDiv(NewConstant(1), d.den)
	}
	if d.den == wrt {
		return NewMul(NewConstant(-1), NewDiv(d.num, NewMul(d.den, d.den)))
	}
	return NewConstant(0)
}

func (d *Div) String() string {
	num, den := d.num.String(), d.den.String()
	switch d.num.(type) {
	case *Add, *Div:
		num = "(" + num + ")"
	}
	switch d.den.(type) {
	case *Add, *Mul, *Div:
		den = "(" + den + ")"
	}
	return num + "/" + den
}
