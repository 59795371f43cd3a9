// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport aggregates criterion measurement artifacts into markdown
// comparison tables.
//
// Usage:
//
//	benchreport [group]
//
// Benchreport scans target/criterion/<group> in the current workspace
// for result directories named <crate>-len=<min>-<max>, reads the mean
// point estimate from each directory's new/estimates.json, and prints
// up to two tables of nanoseconds per operation: one column per input
// length range, one row per crate. The first table covers variable
// lengths (ranges 0..=N), the second fixed lengths (ranges N..=N). A
// table with no matching ranges is omitted.
//
// The group defaults to "construction". Result directories that are
// malformed or missing their estimates are skipped, and a summary of
// the skips is logged to standard error. A missing group directory is
// reported and the report exits without tables.
//
// For example, after running the construction benchmarks for two
// crates:
//
//	$ benchreport construction
//	### Construction: Variable Length (0..=N) [ns/op]
//	Crate              |   0..=8    |   0..=16
//	:---               |   :---:    |   :---:
//	cold-string        |        8.4 |        9.0
//	std                |       16.2 |       17.9
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchgrid/critfmt"
	"golang.org/x/benchgrid/lentab"
)

// defaultGroup is reported when no group is named on the command line.
const defaultGroup = "construction"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchreport [group]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}

	if err := benchreport(os.Stdout, os.Stderr, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// benchreport runs one report, writing tables to w and diagnostics to
// wErr. A missing group root is reported on wErr and is not an error:
// the run simply produces no tables.
func benchreport(w, wErr io.Writer, args []string) error {
	group := defaultGroup
	if len(args) > 0 {
		group = args[0]
	}

	g, err := critfmt.Open(critfmt.DefaultRoot, group)
	if err != nil {
		if errors.Is(err, critfmt.ErrGroupMissing) {
			fmt.Fprintf(wErr, "%s\n", err)
			return nil
		}
		return err
	}

	m := lentab.NewMatrix()
	for g.Scan() {
		m.AddResult(g.Result())
	}

	dead, err := lentab.Render(w, group, m)
	if err != nil {
		return err
	}

	if g.Tally.Total() > 0 {
		fmt.Fprintf(wErr, "skipped %s\n", g.Tally)
	}
	if m.Overwrites > 0 {
		fmt.Fprintf(wErr, "overwrote %d re-measured cells\n", m.Overwrites)
	}
	if dead > 0 {
		fmt.Fprintf(wErr, "%d ranges with 0 < min < max are in neither table\n", dead)
	}
	return nil
}
