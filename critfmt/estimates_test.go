// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// writeEstimates writes dir/new/estimates.json with the given body.
func writeEstimates(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "new"), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new", "estimates.json"), []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestReadEstimates(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, `{
		"mean":   {"point_estimate": 8000.0, "standard_error": 12.5},
		"median": {"point_estimate": 7990.0},
		"std_dev": {"point_estimate": 40.0}
	}`)

	est, err := ReadEstimates(dir)
	if err != nil {
		t.Fatal(err)
	}
	mean, ok := est.PointEstimate()
	if !ok || mean != 8000.0 {
		t.Errorf("PointEstimate() = %v, %v, want 8000, true", mean, ok)
	}
	if est.Mean.StandardError != 12.5 {
		t.Errorf("Mean.StandardError = %v, want 12.5", est.Mean.StandardError)
	}
	if est.Median == nil || *est.Median.PointEstimate != 7990.0 {
		t.Errorf("Median = %+v, want point estimate 7990", est.Median)
	}
}

func TestReadEstimatesMissing(t *testing.T) {
	// No new/ directory at all.
	if _, err := ReadEstimates(t.TempDir()); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want fs.ErrNotExist", err)
	}
}

func TestReadEstimatesBad(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated", `{"mean": {"point_est`},
		{"notJSON", `mean 8000`},
		{"noMean", `{"median": {"point_estimate": 1.0}}`},
		{"noPointEstimate", `{"mean": {"standard_error": 1.0}}`},
		{"meanNotObject", `{"mean": 8000.0}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			writeEstimates(t, dir, test.body)
			if _, err := ReadEstimates(dir); err == nil {
				t.Error("got nil error, want failure")
			} else if errors.Is(err, fs.ErrNotExist) {
				t.Errorf("got %v, want a non-not-exist failure", err)
			}
		})
	}
}
