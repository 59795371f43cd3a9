// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads the on-disk result tree written by the
// criterion benchmarking harness.
//
// Criterion records each measurement in its own directory, named
// <crate>-len=<min>-<max> for the crate under test and the inclusive
// input-length range it covered, with the timing summary in a nested
// new/estimates.json artifact. This package decodes those conventions:
// parsing and formatting result names, scanning a benchmark group's
// directory, and extracting the mean point estimate from the summary.
//
// This package is designed to be used with the higher-level package
// lentab, which aggregates the scanned results into comparison tables.
package critfmt

import "fmt"

// A Range is the inclusive (Min, Max) bounds on input length covered
// by a single measurement run.
//
// Two kinds of range occur in practice, distinguished by predicate
// rather than by a stored tag: sweeps from empty input up to Max
// (Variable) and single-point measurements (Fixed). Ranges with
// 0 < Min < Max parse fine but are neither.
type Range struct {
	Min, Max uint64
}

// Variable reports whether r is a sweep from empty input up to Max.
func (r Range) Variable() bool {
	return r.Min == 0 && r.Max > 0
}

// Fixed reports whether r is a single-point measurement.
func (r Range) Fixed() bool {
	return r.Min == r.Max && r.Min > 0
}

// Less orders ranges by upper bound, then lower bound, so that growing
// sweeps and growing fixed points both read in increasing size.
func (r Range) Less(o Range) bool {
	if r.Max != o.Max {
		return r.Max < o.Max
	}
	return r.Min < o.Min
}

// String returns r in inclusive-range notation, e.g. "0..=8".
func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Min, r.Max)
}
