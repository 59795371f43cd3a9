// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares strings for tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
)

// Diff returns a human-readable description of the differences between
// got and want. If the "diff" command is available, it returns the
// output of unified diff on the two strings. If the result is
// non-empty, the strings differ or the diff command failed.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\ngot:  %q\nwant: %q", got, want)
	}

	write := func(s string) (string, error) {
		f, err := os.CreateTemp("", "benchgrid_test")
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := f.WriteString(s); err != nil {
			return "", err
		}
		return f.Name(), nil
	}

	f1, err := write(got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f1)
	f2, err := write(want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f2)

	data, err := exec.Command("diff", "-u", f1, f2).CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't
		// match. Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, []byte(err.Error())...)
	}
	return string(data)
}
