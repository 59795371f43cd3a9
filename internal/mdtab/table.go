// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdtab does layout of markdown tables.
//
// Cells are padded to a fixed per-column width so the raw text stays
// readable in a terminal, while the " | " separators keep the output a
// valid markdown table.
package mdtab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Table accumulates rows of cells and lays them out on Format.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows [][]cell
	min  []int
}

type cell struct {
	value     string
	alignment align
}

type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center            = func(c *cell) { c.alignment = alignCenter }
	Right             = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s to exactly w runes according to the alignment. Centering
// puts the extra space, if any, on the right.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignRight:
		return strings.Repeat(" ", n) + s
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row. Cells default to left
// alignment.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		panic("Cell before first Row")
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	i := len(t.rows) - 1
	t.rows[i] = append(t.rows[i], c)
	return t
}

// SetMinWidth sets a minimum width for column col. Columns are
// numbered starting at 0. A column still grows past its minimum to fit
// its widest cell.
func (t *Table) SetMinWidth(col, w int) {
	for len(t.min) < col+1 {
		t.min = append(t.min, 0)
	}
	t.min[col] = w
}

// Format lays out table t and writes it to w, one row per line.
func (t *Table) Format(w io.Writer) error {
	// Compute column widths.
	ws := append([]int(nil), t.min...)
	for _, row := range t.rows {
		for col, c := range row {
			for len(ws) < col+1 {
				ws = append(ws, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > ws[col] {
				ws[col] = n
			}
		}
	}

	for _, row := range t.rows {
		cols := make([]string, len(row))
		for col, c := range row {
			cols[col] = c.alignment.pad(c.value, ws[col])
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(cols, " | ")); err != nil {
			return err
		}
	}
	return nil
}
