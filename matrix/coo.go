// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix implements the sparse triplet (COO) assembly used to pass
// linear-algebra data between the modeling layer and a solver, the Go
// counterpart of gosl/la.Triplet's Put(i,j,v) accumulation idiom.
package matrix

import "github.com/cpmech/numopt/node"

// Coo is a sparse matrix in coordinate (triplet) form. Entries are
// appended in whatever order Put is called; duplicate (row, col) pairs
// are kept as separate entries rather than summed, matching how a Model
// assembles many constraints' contributions into one shared matrix before
// a solver folds them. ToCSR keeps them as separate entries too.
type Coo struct {
	Rows, Cols int
	Row, Col   []int
	Data       []float64
}

// NewCoo returns an empty rows-by-cols matrix ready for Put.
func NewCoo(rows, cols int) *Coo {
	return &Coo{Rows: rows, Cols: cols}
}

// Put appends one (row, col, val) entry.
func (m *Coo) Put(row, col int, val float64) {
	m.Row = append(m.Row, row)
	m.Col = append(m.Col, col)
	m.Data = append(m.Data, val)
}

// Len returns the number of entries (nnz, counting duplicates).
func (m *Coo) Len() int { return len(m.Data) }

// MulVec returns m*x.
func (m *Coo) MulVec(x []float64) []float64 {
	y := make([]float64, m.Rows)
	for k := range m.Data {
		y[m.Row[k]] += m.Data[k] * x[m.Col[k]]
	}
	return y
}

// Csr is a sparse matrix in compressed-sparse-row form.
type Csr struct {
	Rows, Cols int
	IndPtr     []int
	Indices    []int
	Data       []float64
}

// ToCSR converts m to compressed-sparse-row form via a counting sort over
// rows, preserving duplicate entries in whatever relative order Put added
// them within each row.
func (m *Coo) ToCSR() *Csr {
	nnz := m.Len()
	indPtr := make([]int, m.Rows+1)
	indices := make([]int, nnz)
	data := make([]float64, nnz)

	counter := make([]int, m.Rows)
	for _, row := range m.Row {
		counter[row]++
	}

	offset := 0
	for i, c := range counter {
		indPtr[i+1] = offset + c
		offset += c
	}

	fill := make([]int, m.Rows)
	for k := 0; k < nnz; k++ {
		row, col, val := m.Row[k], m.Col[k], m.Data[k]
		dst := indPtr[row] + fill[row]
		indices[dst] = col
		data[dst] = val
		fill[row]++
	}

	return &Csr{Rows: m.Rows, Cols: m.Cols, Data: data, Indices: indices, IndPtr: indPtr}
}

// CooExpr is the symbolic counterpart of Coo: entries hold expression
// handles rather than numbers. Its Row/Col index arrays are built once
// during standardization and never change; the evaluator closure
// refreshes a companion Coo's Data in place from CooExpr.Data on every
// call rather than rebuilding the sparsity pattern.
type CooExpr struct {
	Rows, Cols int
	Row, Col   []int
	Data       []node.Node
}

// NewCooExpr returns an empty rows-by-cols symbolic matrix ready for Put.
func NewCooExpr(rows, cols int) *CooExpr {
	return &CooExpr{Rows: rows, Cols: cols}
}

// Put appends one (row, col, expr) entry.
func (m *CooExpr) Put(row, col int, expr node.Node) {
	m.Row = append(m.Row, row)
	m.Col = append(m.Col, col)
	m.Data = append(m.Data, expr)
}

// Len returns the number of entries.
func (m *CooExpr) Len() int { return len(m.Data) }
