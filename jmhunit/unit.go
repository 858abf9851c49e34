// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhunit interprets JMH benchmark modes and score units and
// formats scores with SI prefixes.
package jmhunit

import "strings"

// JMH benchmark modes, as written in the Mode column.
const (
	Throughput  = "thrpt"
	AverageTime = "avgt"
	SampleTime  = "sample"
	SingleShot  = "ss"
)

// DefaultLabel is the axis label used when neither the mode nor the
// unit of a benchmark is known.
const DefaultLabel = "Throughput (ops/sec)"

// IsTime reports whether scores in the given mode and unit measure
// time per operation (lower is better) rather than throughput.
func IsTime(mode, unit string) bool {
	switch mode {
	case AverageTime, SampleTime, SingleShot:
		return true
	case Throughput:
		return false
	}
	return strings.HasSuffix(unit, "/op")
}

// Label returns the value-axis label for scores in the given mode and
// unit, for example "Throughput (ops/s)" or "Time (us/op)".
func Label(mode, unit string) string {
	if mode == "" && unit == "" {
		return DefaultLabel
	}
	if IsTime(mode, unit) {
		if unit == "" {
			return "Time"
		}
		return "Time (" + unit + ")"
	}
	if unit == "" {
		return DefaultLabel
	}
	return "Throughput (" + unit + ")"
}
