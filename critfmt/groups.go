// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot is where criterion writes its result tree, relative to
// the workspace root.
var DefaultRoot = filepath.Join("target", "criterion")

// ErrGroupMissing indicates that the requested benchmark group has no
// directory under the result root. It is the only scan failure that
// callers surface to the user; everything else is skipped per entry.
var ErrGroupMissing = errors.New("benchmark group not found")

// A Result is one successfully parsed measurement.
type Result struct {
	// Crate is the implementation under test.
	Crate string

	// Range is the input-length range the measurement covered.
	Range Range

	// PointEstimate is the mean timing point estimate in
	// nanoseconds per benchmark iteration, exactly as recorded by
	// the harness. One iteration measures a whole batch of
	// operations; see lentab for the per-operation conversion.
	PointEstimate float64
}

// A Tally counts the result directories skipped during a scan, by
// reason. It is diagnostic only; a scan's outcome never depends on it.
type Tally struct {
	NotDir        int // entry is not a directory
	NoDelim       int // name lacks the "-len=" token (unrelated artifact)
	MalformedName int // name fails to parse
	NoEstimates   int // new/estimates.json is missing
	BadEstimates  int // estimates.json is malformed or incomplete
}

// Total returns the number of skipped entries.
func (t Tally) Total() int {
	return t.NotDir + t.NoDelim + t.MalformedName + t.NoEstimates + t.BadEstimates
}

// String formats the nonzero counts, e.g.
// "2 malformed names, 1 missing estimates".
func (t Tally) String() string {
	var parts []string
	add := func(n int, what string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, what))
		}
	}
	add(t.NotDir, "non-directories")
	add(t.NoDelim, "unrelated entries")
	add(t.MalformedName, "malformed names")
	add(t.NoEstimates, "missing estimates")
	add(t.BadEstimates, "bad estimates")
	if parts == nil {
		return "nothing skipped"
	}
	return strings.Join(parts, ", ")
}

// A Group reads the results of one benchmark group from a criterion
// result tree.
//
// The caller obtains a Group from Open and then iterates:
//
//	g, err := critfmt.Open(critfmt.DefaultRoot, "construction")
//	if err != nil { ... }
//	for g.Scan() {
//		res := g.Result()
//		...
//	}
//
// Entries that are not result directories or whose artifacts cannot be
// read are skipped silently and counted in Tally.
type Group struct {
	// Dir is the group's directory under the result root.
	Dir string

	// Tally counts the entries skipped so far.
	Tally Tally

	entries []fs.DirEntry
	cur     Result
}

// Open returns a scanner over the named benchmark group under root.
// If root/group does not exist or is not a directory, it fails with an
// error satisfying errors.Is(err, ErrGroupMissing). Other I/O errors,
// such as permission failures, are returned as themselves.
func Open(root, group string) (*Group, error) {
	dir := filepath.Join(root, group)
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrGroupMissing, dir)
		}
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrGroupMissing, dir)
	}
	// ReadDir sorts by name, which fixes the scan order.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	return &Group{Dir: dir, entries: entries}, nil
}

// Scan advances g to the next usable result and reports whether one
// was read. The caller should use the Result method to get the result.
// Skipped entries are never errors; Scan returns false only at the end
// of the directory.
func (g *Group) Scan() bool {
	for len(g.entries) > 0 {
		ent := g.entries[0]
		g.entries = g.entries[1:]

		name := ent.Name()
		if !ent.IsDir() {
			g.Tally.NotDir++
			continue
		}
		if !strings.Contains(name, delim) {
			// An unrelated artifact colocated in the tree.
			g.Tally.NoDelim++
			continue
		}
		crate, r, err := ParseName(name)
		if err != nil {
			g.Tally.MalformedName++
			continue
		}
		est, err := ReadEstimates(filepath.Join(g.Dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				g.Tally.NoEstimates++
			} else {
				g.Tally.BadEstimates++
			}
			continue
		}
		mean, _ := est.PointEstimate()
		g.cur = Result{Crate: crate, Range: r, PointEstimate: mean}
		return true
	}
	return false
}

// Result returns the measurement that was just read by Scan.
func (g *Group) Result() Result {
	return g.cur
}
