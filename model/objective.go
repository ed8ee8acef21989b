// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/numopt/node"

// ObjKind discriminates Objective's few implementers, the way Kind
// discriminates constraint.Constraint's.
type ObjKind int

const (
	KindMinimize ObjKind = iota
	KindMaximize
	KindEmpty
)

// Objective is a model's goal: minimize or maximize an expression, or
// find a feasible point with no preference at all. A small closed
// interface with exactly three implementers, the Go counterpart of
// original_source/src/model/model.rs's Objective enum.
type Objective interface {
	Kind() ObjKind
	Expr() node.Node
}

type minimizeObjective struct{ expr node.Node }

func (o minimizeObjective) Kind() ObjKind   { return KindMinimize }
func (o minimizeObjective) Expr() node.Node { return o.expr }

type maximizeObjective struct{ expr node.Node }

func (o maximizeObjective) Kind() ObjKind   { return KindMaximize }
func (o maximizeObjective) Expr() node.Node { return o.expr }

type emptyObjective struct{}

func (o emptyObjective) Kind() ObjKind   { return KindEmpty }
func (o emptyObjective) Expr() node.Node { return nil }

// Minimize returns an Objective that minimizes f.
func Minimize(f node.Node) Objective { return minimizeObjective{expr: f} }

// Maximize returns an Objective that maximizes f.
func Maximize(f node.Node) Objective { return maximizeObjective{expr: f} }

// Empty returns an Objective expressing no preference: a pure
// feasibility problem.
func Empty() Objective { return emptyObjective{} }
