// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhseries

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testSeries() *Series {
	return &Series{
		Benchmark: "concurrent_hashmap.JMHBenchmarks.put",
		Mode:      "thrpt",
		Unit:      "ops/s",
		Points: []Point{
			{Threads: 1, Mean: 1.2e6, N: 1, Min: 1.2e6, Max: 1.2e6},
			{Threads: 4, Mean: 3.9e6, N: 2, Min: 3.8e6, Max: 4e6},
			{Threads: 8, Mean: 5.1e6, N: 1, Min: 5.1e6, Max: 5.1e6},
		},
	}
}

func TestFileName(t *testing.T) {
	for _, test := range []struct {
		name, ext, want string
	}{
		{"concurrent_hashmap.JMHBenchmarks.put", "png", "concurrent_hashmap.JMHBenchmarks.put.png"},
		{"a/b c", "svg", "a_b_c.svg"},
		{"get / 16 keys", "png", "get___16_keys.png"},
	} {
		if got := FileName(test.name, test.ext); got != test.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", test.name, test.ext, got, test.want)
		}
	}
}

func TestNewChart(t *testing.T) {
	s := testSeries()
	pl, err := NewChart(s)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Title.Text != s.Benchmark {
		t.Errorf("title = %q, want %q", pl.Title.Text, s.Benchmark)
	}
	if pl.X.Label.Text != "Threads" || pl.Y.Label.Text != "Throughput (ops/s)" {
		t.Errorf("axis labels %q, %q", pl.X.Label.Text, pl.Y.Label.Text)
	}
	ticks := pl.X.Tick.Marker.Ticks(pl.X.Min, pl.X.Max)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	if len(labels) != 3 || labels[0] != "1" || labels[1] != "4" || labels[2] != "8" {
		t.Errorf("x ticks = %q, want [1 4 8]", labels)
	}
	if pl.Y.Min >= 1.2e6 || pl.Y.Max <= 5.1e6 {
		t.Errorf("y range [%v, %v] does not contain the data", pl.Y.Min, pl.Y.Max)
	}

	// Charts are independent of each other.
	pl2, err := NewChart(&Series{Benchmark: "other", Points: []Point{{Threads: 2, Mean: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if pl2 == pl || pl.Title.Text != s.Benchmark {
		t.Error("second chart shares state with the first")
	}
}

func TestNewChartEmpty(t *testing.T) {
	if _, err := NewChart(&Series{Benchmark: "empty"}); err == nil {
		t.Error("want error charting a series without points")
	}
}

func TestScaledTicks(t *testing.T) {
	for _, tk := range (scaledTicks{}).Ticks(1e6, 5e6) {
		if tk.IsMinor() {
			continue
		}
		if tk.Label == "" || tk.Label[len(tk.Label)-1] != 'M' {
			t.Errorf("tick %v labeled %q, want M suffix", tk.Value, tk.Label)
		}
	}
}

func TestSaveChart(t *testing.T) {
	dir := t.TempDir()
	for _, format := range Formats {
		opts := DefaultChartOptions()
		opts.Format = format
		path, err := SaveChart(testSeries(), dir, opts)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if want := filepath.Join(dir, "concurrent_hashmap.JMHBenchmarks.put."+format); path != want {
			t.Errorf("path = %s, want %s", path, want)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", path)
		}
		if format == "png" && !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s is not a PNG", path)
		}
	}

	opts := DefaultChartOptions()
	opts.Format = "gif"
	if _, err := SaveChart(testSeries(), dir, opts); err == nil {
		t.Error("want error for unsupported format")
	}
}
