// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "strings"

// Add is the n-ary sum node. Builders never construct one with fewer than
// two summands; NewAdd collapses smaller cases to a simpler node.
type Add struct {
	args []Node
}

// NewAdd builds a sum of args, flattening nested sums, folding all
// constant summands into at most one trailing constant, and collapsing
// the result to a single node when possible. A net-zero constant sum
// (e.g. 5 and -5 among the summands) is dropped entirely rather than
// appearing as a trailing zero.
func NewAdd(args ...Node) Node {
	var flat []Node
	var constSum float64
	var hasConst bool
	var flatten func(n Node)
	flatten = func(n Node) {
		if a, ok := n.(*Add); ok {
			for _, c := range a.args {
				flatten(c)
			}
			return
		}
		if k, ok := n.(*Constant); ok {
			constSum += k.value
			hasConst = true
			return
		}
		flat = append(flat, n)
	}
	for _, a := range args {
		flatten(a)
	}
	if hasConst && constSum != 0 {
		flat = append(flat, NewConstant(constSum))
	}
	switch len(flat) {
	case 0:
		return NewConstant(0)
	case 1:
		return flat[0]
	default:
		return &Add{args: flat}
	}
}

// Value sums the value of every summand.
func (a *Add) Value(binding map[*Variable]float64) float64 {
	var sum float64
	for _, c := range a.args {
		sum += c.Value(binding)
	}
	return sum
}

// Arguments returns the summands in declaration order.
func (a *Add) Arguments() []Node { return a.args }

// Partial returns 1 as soon as some summand is identical to wrt, 0 if
// none is. This is deliberately not a per-occurrence count: when wrt
// appears in more than one argument slot (e.g. x+x), package diff's
// path-sum visits this node once per slot and each visit calls Partial
// with the same wrt, so the matching slots each contribute 1 and the
// total still comes out right without this method counting them itself.
func (a *Add) Partial(wrt Node) Node {
	for _, c := range a.args {
		if c == wrt {
			return NewConstant(1)
		}
	}
	return NewConstant(0)
}

func (a *Add) String() string {
	parts := make([]string, len(a.args))
	for i, c := range a.args {
		parts[i] = c.String()
	}
	return strings.Join(parts, " + ")
}
