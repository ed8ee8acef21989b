// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Mul is the binary product node.
type Mul struct {
	lhs, rhs Node
}

// NewMul builds lhs*rhs, folding constant operands and eliminating
// multiplication by zero or one.
func NewMul(lhs, rhs Node) Node {
	if IsConstantWithValue(lhs, 0) || IsConstantWithValue(rhs, 0) {
		return NewConstant(0)
	}
	if IsConstantWithValue(lhs, 1) {
		return rhs
	}
	if IsConstantWithValue(rhs, 1) {
		return lhs
	}
	if kl, ok := lhs.(*Constant); ok {
		if kr, ok := rhs.(*Constant); ok {
			return NewConstant(kl.value * kr.value)
		}
	}
	return &Mul{lhs: lhs, rhs: rhs}
}

// Value multiplies the value of both operands.
func (m *Mul) Value(binding map[*Variable]float64) float64 {
	return m.lhs.Value(binding) * m.rhs.Value(binding)
}

// Arguments returns {lhs, rhs}.
func (m *Mul) Arguments() []Node { return []Node{m.lhs, m.rhs} }

// Partial returns rhs when wrt is identical to lhs, lhs when wrt is
// identical to rhs (lhs checked first), or 0 when wrt is neither. This is
// deliberately asymmetric rather than a full product rule: when lhs and
// rhs are the same node (e.g. x*x), package diff's path-sum reaches this
// node once per argument slot and calling Partial at each slot with the
// shared node as wrt both return the other slot, so the two contributions
// still add up to the correct total derivative without this method
// summing them itself.
func (m *Mul) Partial(wrt Node) Node {
	if m.lhs == wrt {
		return m.rhs
	}
	if m.rhs == wrt {
		return m.lhs
	}
	return NewConstant(0)
}

func (m *Mul) String() string {
	lhs, rhs := m.lhs.String(), m.rhs.String()
	if _, ok := m.lhs.(*Add); ok {
		lhs = "(" + lhs + ")"
	}
	if _, ok := m.rhs.(*Add); ok {
		rhs = "(" + rhs + ")"
	}
	return lhs + "*" + rhs
}
