// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver defines the narrow boundary a Model hands a standardized
// problem across: a Status/Solution pair and a string-keyed Param bag,
// grounded on original_source/src/solver/base.rs's Solver trait, with a
// registry/allocator pattern mirroring gofem's msolid model allocators
// (see msolid's per-model init() that populates a package-level
// allocators map keyed by name).
package solver

import (
	"github.com/cpmech/gosl/io"
	"github.com/pkg/errors"

	"github.com/cpmech/numopt/problem"
)

// Verbose gates this package's io.Pf tracing, the same on/off switch
// fem.FEM.Verbose gives its own Run/Solve calls.
var Verbose bool

// Status reports the outcome of a solve attempt.
type Status int

const (
	Unknown Status = iota
	Solved
	Error
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// IsSolved reports whether s is Solved.
func (s Status) IsSolved() bool { return s == Solved }

// ParamKind discriminates which field of a Param is populated.
type ParamKind int

const (
	ParamInt ParamKind = iota
	ParamFloat
	ParamString
)

// Param is a named solver configuration value, one of an int, a float or a
// string, mirroring SolverParam's IntParam/FloatParam/StrParam variants.
// Name bundled with the value (rather than carried only as a map key)
// follows fun.Prm's {N, V} convention, so a backend's whole configuration
// can travel as one Params slice the way msolid models take a fun.Prms.
type Param struct {
	Name string    `json:"name"`
	Kind ParamKind `json:"kind"`
	I    int       `json:"i,omitempty"`
	F    float64   `json:"f,omitempty"`
	S    string    `json:"s,omitempty"`
}

// IntParam wraps a named int value.
func IntParam(name string, v int) Param { return Param{Name: name, Kind: ParamInt, I: v} }

// FloatParam wraps a named float64 value.
func FloatParam(name string, v float64) Param { return Param{Name: name, Kind: ParamFloat, F: v} }

// StrParam wraps a named string value.
func StrParam(name string, v string) Param { return Param{Name: name, Kind: ParamString, S: v} }

// Params is a solver's whole configuration as one ordered list, the
// counterpart of fun.Prms ([]*fun.Prm) in the way msolid models take their
// parameters: GetPrms()/Init(prms fun.Prms).
type Params []Param

// Get returns the named Param and true, or a zero Param and false if name
// isn't present — the list-shaped equivalent of this package's own
// registry lookup, mirroring how a fun.Prms caller scans for N == name.
func (ps Params) Get(name string) (Param, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Solver solves a standardized problem, reporting a Status and, when
// solved, a Solution. SetParam/GetParam let a caller configure a
// particular backend without the Model package knowing its concrete type.
type Solver interface {
	Solve(p problem.StdProblem) (Status, *problem.Solution, error)
	SetParam(name string, v Param) error
	GetParam(name string) (Param, bool)
}

var registry = map[string]func() Solver{}

// Register adds a named solver constructor to the package registry, the
// Go counterpart of msolid's `allocators["name"] = func() Model {...}`
// idiom: a binary wiring in a real backend calls this from its own
// init(), never from this package.
func Register(name string, alloc func() Solver) {
	if Verbose {
		io.Pf("solver: registering %q\n", name)
	}
	registry[name] = alloc
}

// New constructs the solver registered under name, or an error if none
// was registered.
func New(name string) (Solver, error) {
	alloc, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("solver: no solver registered under name %q", name)
	}
	if Verbose {
		io.Pfcyan("solver: instantiating %q\n", name)
	}
	return alloc(), nil
}
