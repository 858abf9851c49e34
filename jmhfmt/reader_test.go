// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string) ([]*Result, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "dir/test_t4.csv")
	var out []*Result
	for r.Scan() {
		out = append(out, r.Result())
	}
	return out, r.Err()
}

func printResults(w io.Writer, rs []*Result) {
	for _, r := range rs {
		fmt.Fprintf(w, "%s %v threads=%d mode=%s unit=%s file=%s line=%d\n", r.Name, r.Score, r.Threads, r.Mode, r.Unit, r.File, r.line)
	}
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        string
	}
	for _, test := range []testCase{
		{
			"jmh",
			`"Benchmark","Mode","Threads","Samples","Score","Score Error (99.9%)","Unit"
"concurrent_hashmap.JMHBenchmarks.put","thrpt",4,5,1234.5,12.3,"ops/s"
"concurrent_hashmap.JMHBenchmarks.get","thrpt",4,5,99,NaN,"ops/s"
`,
			`concurrent_hashmap.JMHBenchmarks.put 1234.5 threads=4 mode=thrpt unit=ops/s file=test_t4.csv line=2
concurrent_hashmap.JMHBenchmarks.get 99 threads=4 mode=thrpt unit=ops/s file=test_t4.csv line=3
`,
		},
		{
			"comments and blank lines",
			`# JMH version: 1.37
# VM version: JDK 21

Benchmark,Score
X,100

# trailing note
Y,2.5e3
`,
			`X 100 threads=0 mode= unit= file=test_t4.csv line=5
Y 2500 threads=0 mode= unit= file=test_t4.csv line=8
`,
		},
		{
			"byte order mark and padding",
			"\ufeffBenchmark , Score\nX, 7\n",
			"X 7 threads=0 mode= unit= file=test_t4.csv line=2\n",
		},
		{
			"header only",
			"Benchmark,Score\n",
			"",
		},
		{
			"extra columns ignored",
			"Param: size,Benchmark,Score,Threads,Other\n16,X,1,2,zzz\n",
			"X 1 threads=2 mode= unit= file=test_t4.csv line=2\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAll(t, test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var buf strings.Builder
			printResults(&buf, got)
			if buf.String() != test.want {
				t.Errorf("got:\n%swant:\n%s", buf.String(), test.want)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	for _, test := range []struct {
		name, input string
		want        string
	}{
		{"empty", "", "dir/test_t4.csv: no header line"},
		{"only comments", "# nothing here\n", "dir/test_t4.csv: no header line"},
		{"field count", "Benchmark,Score\nX,1\nY,2,3\n", "dir/test_t4.csv:3: wrong number of fields"},
		{"non-numeric score", "Benchmark,Score\nX,fast\n", `dir/test_t4.csv:2: parsing score "fast": not a finite number`},
		{"nan score", "Benchmark,Score\nX,NaN\n", `dir/test_t4.csv:2: parsing score "NaN": not a finite number`},
		{"zero threads", "Benchmark,Score,Threads\nX,1,0\n", `dir/test_t4.csv:2: parsing threads "0": not a positive integer`},
		{"fractional threads", "Benchmark,Score,Threads\nX,1,2.5\n", `dir/test_t4.csv:2: parsing threads "2.5": not a positive integer`},
		{"empty name", "Benchmark,Score\n,1\n", "dir/test_t4.csv:2: empty benchmark name"},
		{"bare quote", "Benchmark,Score\nX\"y,1\n", "dir/test_t4.csv:2: bare \" in non-quoted-field"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseAll(t, test.input)
			if err == nil {
				t.Fatalf("got success, want error %s", test.want)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got %T, want *SyntaxError", err)
			}
			if !strings.HasPrefix(err.Error(), test.want) {
				t.Errorf("got error %s, want %s", err, test.want)
			}
		})
	}
}

func TestReaderStopsAtFirstError(t *testing.T) {
	r := NewReader(strings.NewReader("Benchmark,Score\nX,1\nY,bad\nZ,3\n"), "f.csv")
	n := 0
	for r.Scan() {
		n++
	}
	if n != 1 {
		t.Errorf("read %d results before the error, want 1", n)
	}
	if r.Err() == nil {
		t.Fatal("want error")
	}
	if r.Scan() {
		t.Error("Scan succeeded after error")
	}
}

func TestReaderColumns(t *testing.T) {
	r := NewReader(strings.NewReader("Benchmark,Score,Unit\nX,1,ops/s\n"), "f.csv")
	if r.Columns() != nil {
		t.Errorf("Columns before Scan = %v, want nil", r.Columns())
	}
	for r.Scan() {
	}
	if !r.HasColumn(ColScore) || !r.HasColumn(ColUnit) {
		t.Errorf("HasColumn missed a column in %v", r.Columns())
	}
	if r.HasColumn(ColThreads) {
		t.Errorf("HasColumn(%q) = true", ColThreads)
	}
}
