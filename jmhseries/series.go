// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhseries turns JMH results into per-benchmark series of
// mean score by thread count, and charts them.
package jmhseries

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/hashmap-performance/jmhplot/jmhfmt"
	"github.com/hashmap-performance/jmhplot/jmhunit"
)

// ErrNoInput is returned by Builder.Series when no file was added.
var ErrNoInput = errors.New("no valid CSVs provided")

// A SchemaError reports a file that lacks required columns.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: CSV file lacks expected column(s) %s", e.File, strings.Join(e.Missing, ", "))
}

// A Series is the aggregated results of one benchmark.
type Series struct {
	Benchmark string

	// Mode and Unit are the JMH mode and score unit shared by all
	// results of the benchmark, or "" if unknown or mixed.
	Mode, Unit string

	// Points is sorted by Threads, ascending, with one Point per
	// distinct thread count.
	Points []Point

	// Warnings is a list of warnings about this series that
	// should be reported to the user.
	Warnings []error
}

// A Point is the mean score at one thread count.
type Point struct {
	Threads  int
	Mean     float64
	N        int // Number of results averaged
	Min, Max float64
}

// Label returns the value-axis label for the series.
func (s *Series) Label() string {
	return jmhunit.Label(s.Mode, s.Unit)
}

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	// ThreadSource picks the thread strategy for each file.
	// If nil, ThreadSourceFor is used.
	ThreadSource func(f *jmhfmt.File) ThreadSource
}

// DefaultBuilderOptions returns the options used by the report-builder
// command.
func DefaultBuilderOptions() *BuilderOptions {
	return &BuilderOptions{ThreadSource: ThreadSourceFor}
}

// A Builder accumulates results from any number of files and
// aggregates them into Series.
//
// Results are kept in column form, ready to become a table.
type Builder struct {
	opts  BuilderOptions
	files int

	names   []string
	threads []int
	scores  []float64

	meta map[string]*seriesMeta
}

// seriesMeta tracks the modes and units of one benchmark across
// files. Empty values (files without the column) are not recorded.
type seriesMeta struct {
	modes, units []string // distinct values, in order seen
}

func (m *seriesMeta) note(mode, unit string) {
	if mode != "" && !contains(m.modes, mode) {
		m.modes = append(m.modes, mode)
	}
	if unit != "" && !contains(m.units, unit) {
		m.units = append(m.units, unit)
	}
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if x == y {
			return true
		}
	}
	return false
}

// Column names of the internal results table.
const (
	colName    = "benchmark"
	colThreads = "threads"
	colScore   = "score"
	colCount   = "n"
)

// NewBuilder returns a new Builder. If opts is nil,
// DefaultBuilderOptions is used.
func NewBuilder(opts *BuilderOptions) *Builder {
	if opts == nil {
		opts = DefaultBuilderOptions()
	}
	b := &Builder{opts: *opts, meta: make(map[string]*seriesMeta)}
	if b.opts.ThreadSource == nil {
		b.opts.ThreadSource = ThreadSourceFor
	}
	return b
}

// AddFile adds all results of f. It returns a *SchemaError, and adds
// nothing, if f lacks the Benchmark or Score column.
func (b *Builder) AddFile(f *jmhfmt.File) error {
	var missing []string
	for _, col := range []string{jmhfmt.ColBenchmark, jmhfmt.ColScore} {
		if !f.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{File: f.Name, Missing: missing}
	}

	ts := b.opts.ThreadSource(f)
	for _, r := range f.Results {
		b.names = append(b.names, r.Name)
		b.threads = append(b.threads, ts.Threads(r))
		b.scores = append(b.scores, r.Score)

		m := b.meta[r.Name]
		if m == nil {
			m = new(seriesMeta)
			b.meta[r.Name] = m
		}
		m.note(r.Mode, r.Unit)
	}
	b.files++
	return nil
}

// Series groups the accumulated results by benchmark and thread count
// and returns one Series per benchmark, sorted by benchmark name.
// It returns ErrNoInput if no file was added.
func (b *Builder) Series() ([]*Series, error) {
	if b.files == 0 {
		return nil, ErrNoInput
	}
	if len(b.names) == 0 {
		return nil, nil
	}

	tab := new(table.Builder).
		Add(colName, b.names).
		Add(colThreads, b.threads).
		Add(colScore, b.scores).
		Done()

	// One table per benchmark, then one row per thread count.
	var g table.Grouping = table.GroupBy(tab, colName)
	g = ggstat.Agg(colThreads)(
		ggstat.AggMean(colScore),
		ggstat.AggCount(colCount),
		ggstat.AggMin(colScore),
		ggstat.AggMax(colScore),
	).F(g)
	g = table.SortBy(g, colThreads)

	var out []*Series
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		name := gid.Label().(string)

		threads := t.MustColumn(colThreads).([]int)
		means := t.MustColumn("mean " + colScore).([]float64)
		counts := t.MustColumn(colCount).([]int)
		mins := t.MustColumn("min " + colScore).([]float64)
		maxs := t.MustColumn("max " + colScore).([]float64)

		s := &Series{Benchmark: name, Points: make([]Point, len(threads))}
		for i := range threads {
			s.Points[i] = Point{threads[i], means[i], counts[i], mins[i], maxs[i]}
		}
		b.describe(s)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Benchmark < out[j].Benchmark
	})
	return out, nil
}

// describe fills in the mode, unit and warnings of s.
func (b *Builder) describe(s *Series) {
	m := b.meta[s.Benchmark]
	if len(m.modes) == 1 {
		s.Mode = m.modes[0]
	}
	switch {
	case len(m.units) == 1:
		s.Unit = m.units[0]
	case len(m.units) > 1:
		s.Warnings = append(s.Warnings, fmt.Errorf("%s: averaging scores with different units %s", s.Benchmark, strings.Join(quote(m.units), ", ")))
	}
}

func quote(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprintf("%q", x)
	}
	return out
}
