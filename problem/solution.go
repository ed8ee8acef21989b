// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

// Solution is a solver's result: the optimal point and the multipliers
// of each constraint family. Mu and Pi are the multipliers of the upper
// and lower variable bounds respectively and are always non-negative;
// Lam (linear-equality) and Nu (nonlinear-equality) are unrestricted in
// sign. Grounded on original_source/src/problem/base.rs's ProblemSol.
type Solution struct {
	X   []float64 `json:"x"`
	Lam []float64 `json:"lam"`
	Nu  []float64 `json:"nu"`
	Mu  []float64 `json:"mu"`
	Pi  []float64 `json:"pi"`
}
