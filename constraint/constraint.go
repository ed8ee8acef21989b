// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements constraints over expressions built with
// package node, and their standardization into the rows a Model eventually
// hands to a solver.
package constraint

import (
	"fmt"
	"sync/atomic"

	"github.com/cpmech/numopt/node"
)

// nextSlackID hands out the numeric suffix for each inequality
// constraint's lazily-allocated slack variable, so two slacks in the same
// model are never confused by name even though the original Rust source
// never needed the distinction (it compares by reference, not by name).
var nextSlackID int64

// Kind distinguishes the three relations a Constraint may express.
type Kind int

const (
	// Eq is LHS == RHS.
	Eq Kind = iota
	// Leq is LHS <= RHS.
	Leq
	// Geq is LHS >= RHS.
	Geq
)

func (k Kind) String() string {
	switch k {
	case Eq:
		return "=="
	case Leq:
		return "<="
	case Geq:
		return ">="
	default:
		panic("constraint: unknown kind")
	}
}

// Constraint is LHS `Kind` RHS, with an optional label used for
// traceability and debug output. Inequality constraints carry a slack
// variable allocated lazily on first request by Slack, then memoized, so
// that building a Constraint never allocates a variable that standardizing
// an equality constraint will never use.
type Constraint struct {
	LHS, RHS node.Node
	Kind     Kind
	Label    string

	slack *node.Variable
}

// New builds a constraint lhs `kind` rhs with the given label.
func New(lhs node.Node, kind Kind, rhs node.Node, label string) *Constraint {
	return &Constraint{LHS: lhs, RHS: rhs, Kind: kind, Label: label}
}

// Equal builds lhs == rhs with no label.
func Equal(lhs, rhs node.Node) *Constraint { return New(lhs, Eq, rhs, "") }

// LessEqual builds lhs <= rhs with no label.
func LessEqual(lhs, rhs node.Node) *Constraint { return New(lhs, Leq, rhs, "") }

// GreaterEqual builds lhs >= rhs with no label.
func GreaterEqual(lhs, rhs node.Node) *Constraint { return New(lhs, Geq, rhs, "") }

// EqualTag, LessEqualTag and GreaterEqualTag are the node_cmp.rs-style
// terse builders (equal_and_tag/leq_and_tag/geq_and_tag), carried over as
// free functions rather than methods on *node.Variable: package node
// cannot import package constraint, so the "x.Equal(5, "tag")" receiver
// style from the original source isn't reachable here without an import
// cycle.
func EqualTag(lhs, rhs node.Node, tag string) *Constraint { return New(lhs, Eq, rhs, tag) }

// LessEqualTag is LessEqual with a label.
func LessEqualTag(lhs, rhs node.Node, tag string) *Constraint { return New(lhs, Leq, rhs, tag) }

// GreaterEqualTag is GreaterEqual with a label.
func GreaterEqualTag(lhs, rhs node.Node, tag string) *Constraint { return New(lhs, Geq, rhs, tag) }

// EqualVal, LessEqualVal and GreaterEqualVal are the node/float64
// convenience forms node_cmp.rs gives as impl_node_cmp_scalar!.
func EqualVal(lhs node.Node, rhs float64) *Constraint {
	return New(lhs, Eq, node.NewConstant(rhs), "")
}

// LessEqualVal is LessEqual against a bare float64 bound.
func LessEqualVal(lhs node.Node, rhs float64) *Constraint {
	return New(lhs, Leq, node.NewConstant(rhs), "")
}

// GreaterEqualVal is GreaterEqual against a bare float64 bound.
func GreaterEqualVal(lhs node.Node, rhs float64) *Constraint {
	return New(lhs, Geq, node.NewConstant(rhs), "")
}

// Slack returns this constraint's slack variable, allocating it on first
// call. Calling Slack on an Eq constraint is legal but the returned
// variable is never referenced by StdComponents.
func (c *Constraint) Slack() *node.Variable {
	if c.slack == nil {
		id := atomic.AddInt64(&nextSlackID, 1) - 1
		c.slack = node.NewVariable(fmt.Sprintf("s%d", id))
	}
	return c.slack
}

// Violation measures how far binding is from satisfying c: the absolute
// gap for an Eq constraint, or the (non-negative) amount by which the
// inequality is exceeded for Leq/Geq.
func (c *Constraint) Violation(binding map[*node.Variable]float64) float64 {
	lv := c.LHS.Value(binding)
	rv := c.RHS.Value(binding)
	switch c.Kind {
	case Eq:
		d := lv - rv
		if d < 0 {
			return -d
		}
		return d
	case Leq:
		if lv-rv > 0 {
			return lv - rv
		}
		return 0
	case Geq:
		if rv-lv > 0 {
			return rv - lv
		}
		return 0
	default:
		panic("constraint: unknown kind")
	}
}

func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s %s", c.LHS.String(), c.Kind.String(), c.RHS.String())
}
