// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhfmt reads the CSV result format written by the Java
// Microbenchmark Harness (JMH), as produced by "-rf csv".
//
// A JMH CSV file starts with an optional run of comment lines
// (beginning with '#'), followed by a header line and one line per
// benchmark result:
//
//	"Benchmark","Mode","Threads","Samples","Score","Score Error (99.9%)","Unit"
//	"concurrent_hashmap.JMHBenchmarks.put","thrpt",4,5,1234.5,12.3,"ops/s"
//
// Only the Benchmark and Score columns are required. Threads, Mode
// and Unit are read when present and every other column is ignored.
//
// A file is read all-or-nothing: the Reader stops at the first
// malformed line, and Files reports the whole file as a FileError.
package jmhfmt

// Column names recognised in the header line.
const (
	ColBenchmark = "Benchmark"
	ColScore     = "Score"
	ColThreads   = "Threads"
	ColMode      = "Mode"
	ColUnit      = "Unit"
)

// A Result is a single row of a JMH CSV file.
//
// Results are never modified once returned by a Reader.
type Result struct {
	// Name is the benchmark identity, usually the fully
	// qualified benchmark method.
	Name string

	// Score is the measured score, in Unit.
	Score float64

	// Threads is the value of the Threads column, or 0 if the
	// file has no such column.
	Threads int

	// Mode and Unit are the JMH benchmark mode (thrpt, avgt,
	// sample, ss) and the score unit (ops/s, us/op, ...). They
	// are empty if the file lacks the columns.
	Mode string
	Unit string

	// File is the base name of the file this Result was read
	// from. It is the provenance of the record.
	File string

	line int
}

// Pos returns the file name and line number of a Result that was read
// by a Reader. For Results that were not read from a file, it returns
// "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.File, r.line
}
