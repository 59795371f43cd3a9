// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lentab

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/benchgrid/critfmt"
	"golang.org/x/benchgrid/internal/mdtab"
)

// Column widths, chosen so typical crate names and "NNNN.N" values
// line up without jitter between tables.
const (
	crateColWidth = 18
	rangeColWidth = 10
)

// A tableSpec selects and labels the ranges of one rendered table.
// The two specs share all of the rendering logic; only the predicate
// and label differ.
type tableSpec struct {
	title string
	match func(critfmt.Range) bool
	label func(critfmt.Range) string
}

func tableSpecs(group string) []tableSpec {
	return []tableSpec{
		{
			title: capitalize(group) + ": Variable Length (0..=N) [ns/op]",
			// Not Range.Variable: the degenerate 0..=0 range also
			// belongs in this table.
			match: func(r critfmt.Range) bool { return r.Min == 0 },
			label: func(r critfmt.Range) string {
				return fmt.Sprintf("0..=%d", r.Max)
			},
		},
		{
			title: capitalize(group) + ": Fixed Length (N..=N) [ns/op]",
			match: critfmt.Range.Fixed,
			label: func(r critfmt.Range) string {
				return fmt.Sprintf("%d..=%d", r.Max, r.Max)
			},
		},
	}
}

// Render writes the report tables for m to w: first the
// variable-length sweeps, then the fixed-length points. A table whose
// range set is empty is omitted entirely, heading included. Render
// returns the number of ranges that appear in neither table; such
// ranges (0 < Min < Max) are aggregated but deliberately not shown,
// and callers may want to report the count.
func Render(w io.Writer, group string, m *Matrix) (dead int, err error) {
	crates := m.Crates()
	ranges := m.Ranges()

	shown := make(map[critfmt.Range]bool)
	for _, ts := range tableSpecs(group) {
		var sel []critfmt.Range
		for _, r := range ranges {
			if ts.match(r) {
				sel = append(sel, r)
				shown[r] = true
			}
		}
		if len(sel) == 0 {
			continue
		}
		if err := renderTable(w, ts, sel, crates, m); err != nil {
			return 0, err
		}
	}

	for _, r := range ranges {
		if !shown[r] {
			dead++
		}
	}
	return dead, nil
}

func renderTable(w io.Writer, ts tableSpec, sel []critfmt.Range, crates []string, m *Matrix) error {
	if _, err := fmt.Fprintf(w, "### %s\n", ts.title); err != nil {
		return err
	}

	var t mdtab.Table
	t.SetMinWidth(0, crateColWidth)
	for i := range sel {
		t.SetMinWidth(i+1, rangeColWidth)
	}

	t.Row().Cell("Crate")
	for _, r := range sel {
		t.Cell(ts.label(r), mdtab.Center)
	}

	t.Row().Cell(":---")
	for range sel {
		t.Cell(":---:", mdtab.Center)
	}

	for _, crate := range crates {
		t.Row().Cell(crate)
		for _, r := range sel {
			if v, ok := m.Lookup(crate, r); ok {
				t.Cell(strconv.FormatFloat(v, 'f', 1, 64), mdtab.Right)
			} else {
				t.Cell("-", mdtab.Center)
			}
		}
	}

	if err := t.Format(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// capitalize upper-cases the first rune of s and lower-cases the rest
// for use in a table heading. Group names are lower-case on disk.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}
