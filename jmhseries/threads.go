// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhseries

import (
	"regexp"
	"strconv"

	"github.com/hashmap-performance/jmhplot/jmhfmt"
)

// A ThreadSource resolves the thread count of a result.
// The returned count is always positive.
type ThreadSource interface {
	Threads(r *jmhfmt.Result) int
}

// ColumnThreads takes the thread count from the Threads column.
type ColumnThreads struct{}

func (ColumnThreads) Threads(r *jmhfmt.Result) int {
	if r.Threads <= 0 {
		return 1
	}
	return r.Threads
}

func (ColumnThreads) String() string { return "column" }

// FileNameThreads infers the thread count from the name of the file a
// result was read from. See ThreadsFromName.
type FileNameThreads struct{}

func (FileNameThreads) Threads(r *jmhfmt.Result) int {
	return ThreadsFromName(r.File)
}

func (FileNameThreads) String() string { return "file name" }

var threadsRe = regexp.MustCompile(`t(\d+)`)

// ThreadsFromName returns the number following the first "t<digits>"
// in name, such as 8 for "bench_t8.csv". It returns 1 if there is no
// such pattern or the number is not a positive int.
func ThreadsFromName(name string) int {
	m := threadsRe.FindStringSubmatch(name)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// ThreadSourceFor picks the thread strategy for a file: the explicit
// Threads column if the file has one, otherwise the file name.
func ThreadSourceFor(f *jmhfmt.File) ThreadSource {
	if f.HasColumn(jmhfmt.ColThreads) {
		return ColumnThreads{}
	}
	return FileNameThreads{}
}
