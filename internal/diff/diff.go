// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares command output against golden files.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a human-readable description of the differences between
// want and got. If the "diff" command is available, it returns the
// output of a unified diff labeled with name. Otherwise it quotes both
// strings. The result is empty only if want and got are equal.
func Diff(name, want, got string) string {
	if want == got {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("%s: diff command unavailable\nwant: %q\ngot:  %q", name, want, got)
	}

	dir, err := os.MkdirTemp("", "jmhplot-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	wantPath, gotPath := filepath.Join(dir, name+".want"), filepath.Join(dir, name+".got")
	if err := os.WriteFile(wantPath, []byte(want), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotPath, []byte(got), 0666); err != nil {
		return err.Error()
	}

	c := exec.Command(cmd, "-u", filepath.Base(wantPath), filepath.Base(gotPath))
	c.Dir = dir
	data, err := c.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't match.
		// Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, err.Error()...)
	}
	return string(data)
}
