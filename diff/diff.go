// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff computes derivatives of expression DAGs built with package
// node. Apart from recognizing *node.Variable as the end of a path, it
// never inspects concrete node kinds: every derivative is obtained by
// summing products of the per-node shallow partials returned by
// Node.Partial along every root-to-variable simple path, so it works
// unchanged for any operator type that satisfies the node.Node interface.
package diff

import "github.com/cpmech/numopt/node"

// AllSimplePaths enumerates every path from root down to each variable in
// vars, where a path is the sequence of nodes visited from root to the
// variable (inclusive on both ends). A variable reachable through several
// distinct routes through the DAG yields one path per route; a variable
// not reachable at all yields an empty slice. Targets are restricted to
// variables by the type of vars; there is no runtime check.
func AllSimplePaths(root node.Node, vars []*node.Variable) map[*node.Variable][][]node.Node {
	varset := make(map[*node.Variable]bool, len(vars))
	for _, v := range vars {
		varset[v] = true
	}

	paths := make(map[*node.Variable][][]node.Node, len(vars))
	for _, v := range vars {
		paths[v] = nil
	}

	// work queue of partial paths from root, processed depth-first via a
	// stack (order does not matter for path enumeration).
	var wq [][]node.Node
	wq = append(wq, []node.Node{root})

	for len(wq) > 0 {
		path := wq[len(wq)-1]
		wq = wq[:len(wq)-1]
		last := path[len(path)-1]

		if v, ok := last.(*node.Variable); ok && varset[v] {
			cp := make([]node.Node, len(path))
			copy(cp, path)
			paths[v] = append(paths[v], cp)
		}

		for _, child := range last.Arguments() {
			np := make([]node.Node, len(path)+1)
			copy(np, path)
			np[len(path)] = child
			wq = append(wq, np)
		}
	}

	return paths
}

// Derivative returns the total derivative of root with respect to the
// single variable wrt.
func Derivative(root node.Node, wrt *node.Variable) node.Node {
	return Derivatives(root, []*node.Variable{wrt})[wrt]
}

// Derivatives returns the total derivative of root with respect to every
// variable in vars, computed by summing, over every root-to-variable
// simple path, the product of the shallow partials of each consecutive
// pair of nodes along that path.
func Derivatives(root node.Node, vars []*node.Variable) map[*node.Variable]node.Node {
	paths := AllSimplePaths(root, vars)

	derivs := make(map[*node.Variable]node.Node, len(vars))
	for _, v := range vars {
		d := node.Node(node.NewConstant(0))
		for _, path := range paths[v] {
			prod := node.Node(node.NewConstant(1))
			for i := 0; i+1 < len(path); i++ {
				prod = node.NewMul(prod, path[i].Partial(path[i+1]))
			}
			d = node.NewAdd(d, prod)
		}
		derivs[v] = d
	}
	return derivs
}
