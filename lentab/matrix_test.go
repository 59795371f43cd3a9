// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lentab

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/benchgrid/critfmt"
)

func TestMatrixAdd(t *testing.T) {
	m := NewMatrix()
	m.Add("std", critfmt.Range{Min: 0, Max: 8}, 8000)

	// Point estimates are per 1000-op batch; cells are ns/op.
	if v, ok := m.Lookup("std", critfmt.Range{Min: 0, Max: 8}); !ok || v != 8.0 {
		t.Errorf("Lookup = %v, %v, want 8, true", v, ok)
	}
	if _, ok := m.Lookup("std", critfmt.Range{Min: 0, Max: 16}); ok {
		t.Error("Lookup found a cell that was never added")
	}
	if _, ok := m.Lookup("smol_str", critfmt.Range{Min: 0, Max: 8}); ok {
		t.Error("Lookup found a crate that was never added")
	}
}

func TestMatrixLastWriteWins(t *testing.T) {
	m := NewMatrix()
	m.Add("std", critfmt.Range{Min: 0, Max: 8}, 8000)
	m.Add("std", critfmt.Range{Min: 0, Max: 8}, 9000)

	if v, _ := m.Lookup("std", critfmt.Range{Min: 0, Max: 8}); v != 9.0 {
		t.Errorf("Lookup = %v, want the later value 9", v)
	}
	if m.Overwrites != 1 {
		t.Errorf("Overwrites = %d, want 1", m.Overwrites)
	}
}

func TestMatrixAddResult(t *testing.T) {
	m := NewMatrix()
	m.AddResult(critfmt.Result{Crate: "std", Range: critfmt.Range{Min: 4, Max: 4}, PointEstimate: 4000})
	if v, ok := m.Lookup("std", critfmt.Range{Min: 4, Max: 4}); !ok || v != 4.0 {
		t.Errorf("Lookup = %v, %v, want 4, true", v, ok)
	}
}

func TestMatrixDerivedSets(t *testing.T) {
	m := NewMatrix()
	m.Add("std", critfmt.Range{Min: 0, Max: 8}, 1)
	m.Add("cold-string", critfmt.Range{Min: 0, Max: 8}, 1)
	m.Add("cold-string", critfmt.Range{Min: 4, Max: 4}, 1)
	m.Add("smol_str", critfmt.Range{Min: 0, Max: 4}, 1)

	if diff := cmp.Diff([]string{"cold-string", "smol_str", "std"}, m.Crates()); diff != "" {
		t.Errorf("Crates mismatch (-want +got):\n%s", diff)
	}
	wantRanges := []critfmt.Range{{Min: 0, Max: 4}, {Min: 4, Max: 4}, {Min: 0, Max: 8}}
	if diff := cmp.Diff(wantRanges, m.Ranges()); diff != "" {
		t.Errorf("Ranges mismatch (-want +got):\n%s", diff)
	}
}
