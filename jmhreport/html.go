// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhreport writes the HTML index of a directory of benchmark
// charts and publishes the directory.
package jmhreport

import (
	"bytes"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"

	"github.com/hashmap-performance/jmhplot/jmhseries"
	"github.com/hashmap-performance/jmhplot/jmhunit"
)

// IndexName is the file name of the HTML index in the output directory.
const IndexName = "results.html"

// A Report is the list of charts in an output directory.
type Report struct {
	Title   string
	Entries []Entry
}

// An Entry is one chart of a Report.
type Entry struct {
	// Image is the chart's file name, relative to the report.
	Image string

	// Series is the data behind the chart. If nil, only the
	// image is shown.
	Series *jmhseries.Series
}

const htmlText = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
.chart { margin-bottom: 2em; }
.points { border-collapse: collapse; }
.points th { text-align: left; border-bottom: 1px solid #666; padding: 0em 1em; }
.points td { text-align: right; padding: 0em 1em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Entries}}
<div class='chart'>
<h2>{{.Image}}</h2>
<img src='{{.Src}}' alt='{{.Image}}'>
{{- if .Rows}}
<table class='points'>
<tr><th>threads<th>{{.Label}}<th>min<th>max<th>samples
{{- range .Rows}}
<tr><td>{{.Threads}}<td>{{.Mean}}<td>{{.Min}}<td>{{.Max}}<td>{{.N}}
{{- end}}
</table>
{{- end}}
</div>
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlText))

type reportData struct {
	Title   string
	Entries []entryData
}

type entryData struct {
	Image string
	Src   safehtml.URL
	Label string
	Rows  []rowData
}

type rowData struct {
	Threads        int
	Mean, Min, Max string
	N              int
}

// DefaultTitle is used for reports without a Title.
const DefaultTitle = "Benchmark results"

// FormatHTML appends an HTML page showing every entry of r, in order,
// to buf.
func FormatHTML(buf *bytes.Buffer, r *Report) error {
	data := reportData{Title: r.Title}
	if data.Title == "" {
		data.Title = DefaultTitle
	}
	for _, e := range r.Entries {
		data.Entries = append(data.Entries, newEntryData(e))
	}
	return htmlTemplate.Execute(buf, data)
}

func newEntryData(e Entry) entryData {
	// "./" keeps names containing ':' from reading as a URL scheme.
	d := entryData{
		Image: e.Image,
		Src:   safehtml.URLSanitized("./" + url.PathEscape(e.Image)),
	}
	s := e.Series
	if s == nil {
		return d
	}
	d.Label = "mean " + s.Label()
	var vals []float64
	for _, p := range s.Points {
		vals = append(vals, p.Mean, p.Min, p.Max)
	}
	scale := jmhunit.CommonScale(vals)
	for _, p := range s.Points {
		d.Rows = append(d.Rows, rowData{
			Threads: p.Threads,
			Mean:    scale.Format(p.Mean),
			Min:     scale.Format(p.Min),
			Max:     scale.Format(p.Max),
			N:       p.N,
		})
	}
	return d
}

// Write writes the HTML index of r to dir/results.html and returns its
// path.
func Write(dir string, r *Report) (string, error) {
	var buf bytes.Buffer
	if err := FormatHTML(&buf, r); err != nil {
		return "", err
	}
	path := filepath.Join(dir, IndexName)
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return "", err
	}
	return path, nil
}
