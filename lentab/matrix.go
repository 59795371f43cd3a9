// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lentab aggregates per-crate length-sweep measurements into a
// crate × range matrix and renders the matrix as markdown comparison
// tables.
package lentab

import (
	"sort"

	"golang.org/x/benchgrid/critfmt"
)

// batchOps is the number of operations the harness measures per
// benchmark iteration. Raw point estimates are per iteration, so
// dividing by batchOps yields nanoseconds per operation.
const batchOps = 1000

// A Matrix maps (crate, length range) to a single nanoseconds-per-
// operation measurement.
//
// The matrix is sparse: a crate need not have been measured over every
// range. It is built fresh for each report and never persisted.
type Matrix struct {
	cells map[string]map[critfmt.Range]float64

	// Overwrites counts Add calls that replaced an existing cell.
	// Re-running a benchmark legitimately overwrites its earlier
	// result; the count is diagnostic only.
	Overwrites int
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{cells: make(map[string]map[critfmt.Range]float64)}
}

// Add records the raw mean point estimate, in nanoseconds per
// iteration, for one (crate, range) cell, converting it to
// nanoseconds per operation. A later Add for the same cell wins.
func (m *Matrix) Add(crate string, r critfmt.Range, pointEstimate float64) {
	row := m.cells[crate]
	if row == nil {
		row = make(map[critfmt.Range]float64)
		m.cells[crate] = row
	}
	if _, ok := row[r]; ok {
		m.Overwrites++
	}
	row[r] = pointEstimate / batchOps
}

// AddResult records a scanned measurement. It is shorthand for Add on
// the result's fields.
func (m *Matrix) AddResult(res critfmt.Result) {
	m.Add(res.Crate, res.Range, res.PointEstimate)
}

// Lookup returns the ns/op value for a cell and whether the cell is
// present.
func (m *Matrix) Lookup(crate string, r critfmt.Range) (float64, bool) {
	v, ok := m.cells[crate][r]
	return v, ok
}

// Crates returns every crate in the matrix in lexicographic order.
func (m *Matrix) Crates() []string {
	crates := make([]string, 0, len(m.cells))
	for crate := range m.cells {
		crates = append(crates, crate)
	}
	sort.Strings(crates)
	return crates
}

// Ranges returns every distinct range in the matrix, ordered by upper
// bound and then lower bound.
func (m *Matrix) Ranges() []critfmt.Range {
	seen := make(map[critfmt.Range]bool)
	var ranges []critfmt.Range
	for _, row := range m.cells {
		for r := range row {
			if !seen[r] {
				seen[r] = true
				ranges = append(ranges, r)
			}
		}
	}
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Less(ranges[j])
	})
	return ranges
}
