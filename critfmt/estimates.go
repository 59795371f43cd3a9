// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Estimates is the decoded form of criterion's estimates.json artifact
// for the current ("new") run of one result directory. Only Mean is
// required to be present; the other statistics are decoded when the
// harness wrote them.
type Estimates struct {
	Mean   *Estimate `json:"mean"`
	Median *Estimate `json:"median"`
	StdDev *Estimate `json:"std_dev"`
}

// An Estimate is one statistic of the timing distribution, in
// nanoseconds per benchmark iteration.
type Estimate struct {
	PointEstimate *float64 `json:"point_estimate"`
	StandardError float64  `json:"standard_error"`
}

// PointEstimate returns the mean point estimate and reports whether
// the artifact recorded one.
func (e *Estimates) PointEstimate() (float64, bool) {
	if e == nil || e.Mean == nil || e.Mean.PointEstimate == nil {
		return 0, false
	}
	return *e.Mean.PointEstimate, true
}

// ReadEstimates reads dir/new/estimates.json. A missing artifact
// surfaces as an error satisfying errors.Is(err, fs.ErrNotExist);
// malformed JSON or an absent mean.point_estimate field fail with
// other errors. Callers treat all of these the same way, by skipping
// the directory.
func ReadEstimates(dir string) (*Estimates, error) {
	path := filepath.Join(dir, "new", "estimates.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	est := new(Estimates)
	if err := json.Unmarshal(data, est); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, ok := est.PointEstimate(); !ok {
		return nil, fmt.Errorf("%s: missing mean.point_estimate", path)
	}
	return est, nil
}
