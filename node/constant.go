// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "strconv"

// Constant is a leaf node holding a fixed numeric value.
type Constant struct {
	value float64
}

// NewConstant returns a new constant node wrapping value. Each call
// allocates a distinct node, even when called twice with the same value.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

// Value returns the constant's value, ignoring binding.
func (k *Constant) Value(binding map[*Variable]float64) float64 { return k.value }

// Arguments returns nil; Constant is a leaf.
func (k *Constant) Arguments() []Node { return nil }

// Partial is always the zero constant: a constant does not vary with wrt.
func (k *Constant) Partial(wrt Node) Node { return NewConstant(0) }

func (k *Constant) String() string {
	return strconv.FormatFloat(k.value, 'g', -1, 64)
}
