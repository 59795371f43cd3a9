// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// delim separates the crate name from the length range in a result
// directory name.
const delim = "-len="

// A MalformedNameError indicates a directory name that does not follow
// the <crate>-len=<min>-<max> convention.
type MalformedNameError struct {
	Name string // the offending directory name
	Msg  string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed result name %q: %s", e.Name, e.Msg)
}

// ParseName splits a result directory name into its crate name and
// length range.
//
// Crate names may themselves contain the "-len=" token, so the split
// happens at its last occurrence. The range part must be exactly two
// unsigned base-10 integers separated by "-", with min not exceeding
// max. On failure it returns a *MalformedNameError.
func ParseName(name string) (crate string, r Range, err error) {
	i := strings.LastIndex(name, delim)
	if i < 0 {
		return "", Range{}, &MalformedNameError{name, "missing " + delim + " token"}
	}
	crate, rest := name[:i], name[i+len(delim):]
	if crate == "" {
		return "", Range{}, &MalformedNameError{name, "empty crate name"}
	}
	minS, maxS, ok := strings.Cut(rest, "-")
	if !ok || strings.Contains(maxS, "-") {
		return "", Range{}, &MalformedNameError{name, "range is not min-max"}
	}
	// ParseUint rejects signs and spaces, as required.
	min, err := strconv.ParseUint(minS, 10, 64)
	if err != nil {
		return "", Range{}, &MalformedNameError{name, "bad min: " + minS}
	}
	max, err := strconv.ParseUint(maxS, 10, 64)
	if err != nil {
		return "", Range{}, &MalformedNameError{name, "bad max: " + maxS}
	}
	if min > max {
		return "", Range{}, &MalformedNameError{name, fmt.Sprintf("min %d exceeds max %d", min, max)}
	}
	return crate, Range{min, max}, nil
}

// Name formats the result directory name for crate measured over r.
// It is the inverse of ParseName.
func Name(crate string, r Range) string {
	return fmt.Sprintf("%s%s%d-%d", crate, delim, r.Min, r.Max)
}
