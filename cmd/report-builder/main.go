// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Report-builder charts JMH benchmark results.
//
// Usage:
//
//	report-builder <csv-file> [csv-file ...] [--out <folder>]
//
// Each input is a CSV file written by JMH's "-rf csv" option. Lines
// starting with '#' are ignored. Files that cannot be read or parsed
// are reported and skipped; the run fails only if no file is usable.
//
// The inputs must have "Benchmark" and "Score" columns. The thread
// count of a result comes from the "Threads" column if the file has
// one, otherwise from the first "t<N>" in the file name (as in
// results_t8.csv), and otherwise defaults to 1.
//
// Report-builder averages the scores of each benchmark at each thread
// count and draws one line chart per benchmark, named after the
// benchmark with '/' and ' ' replaced by '_'. It then writes
// results.html, which shows every chart in benchmark name order.
//
// # Options
//
// The --out flag sets the output folder, "plots" by default. It is
// created if needed, but only once the inputs have been validated.
//
// The --format flag selects the chart format: png (the default), svg or
// pdf.
//
// The --title flag sets the heading of results.html.
//
// The --upload flag copies the charts and results.html to a Google
// Cloud Storage location given as gs://bucket/prefix, using the
// application default credentials.
//
// # Exit status
//
// Report-builder exits with status 2 for usage errors and 1 if no input
// was usable, an input lacks a required column, or output fails.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hashmap-performance/jmhplot/jmhfmt"
	"github.com/hashmap-performance/jmhplot/jmhreport"
	"github.com/hashmap-performance/jmhplot/jmhseries"
)

const usageLine = "report-builder <csv-file> [csv-file ...] [--out <folder>]"

// A usageError is a problem with the command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

type config struct {
	out    string
	format string
	title  string
	upload string
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Chart JMH CSV results by thread count",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{"no CSV files given"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(cmd.Context(), args, &cfg, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err.Error()}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&cfg.out, "out", "o", "plots", "write charts and results.html to `folder`")
	f.StringVar(&cfg.format, "format", "png", "chart image `format`: png, svg or pdf")
	f.StringVar(&cfg.title, "title", jmhreport.DefaultTitle, "heading of results.html")
	f.StringVar(&cfg.upload, "upload", "", "also copy the output to `gs://bucket/prefix`")
	return cmd
}

// run runs report-builder with the given arguments, not including the
// command name.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func build(ctx context.Context, paths []string, cfg *config, stdout, stderr io.Writer) error {
	if err := jmhseries.CheckFormat(cfg.format); err != nil {
		return &usageError{err.Error()}
	}
	if cfg.upload != "" {
		if _, _, err := jmhreport.ParseGCSURL(cfg.upload); err != nil {
			return &usageError{err.Error()}
		}
	}

	// Read every input before touching the output folder.
	var parsed []*jmhfmt.File
	files := jmhfmt.Files{Paths: paths}
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *jmhfmt.File:
			parsed = append(parsed, rec)
		case *jmhfmt.FileError:
			fmt.Fprintf(stderr, "Skipping %s: %v\n", rec.Path, rec)
		}
	}
	if len(parsed) == 0 {
		return jmhseries.ErrNoInput
	}

	b := jmhseries.NewBuilder(nil)
	for _, f := range parsed {
		if err := b.AddFile(f); err != nil {
			return err
		}
	}
	series, err := b.Series()
	if err != nil {
		return err
	}
	for _, s := range series {
		for _, w := range s.Warnings {
			fmt.Fprintf(stderr, "warning: %v\n", w)
		}
	}

	if err := os.MkdirAll(cfg.out, 0777); err != nil {
		return err
	}
	opts := jmhseries.DefaultChartOptions()
	opts.Format = cfg.format
	report := &jmhreport.Report{Title: cfg.title}
	var names []string
	for _, s := range series {
		path, err := jmhseries.SaveChart(s, cfg.out, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", path)
		name := filepath.Base(path)
		report.Entries = append(report.Entries, jmhreport.Entry{Image: name, Series: s})
		names = append(names, name)
	}
	index, err := jmhreport.Write(cfg.out, report)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", index)
	names = append(names, jmhreport.IndexName)

	if cfg.upload == "" {
		return nil
	}
	p, err := jmhreport.NewGCSPublisher(ctx, cfg.upload)
	if err != nil {
		return err
	}
	defer p.Close()
	if err := jmhreport.Publish(ctx, cfg.out, names, p); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Uploaded %d files to %s\n", len(names), cfg.upload)
	return nil
}

// exitStatus reports err to l and returns the process exit status
// for it.
func exitStatus(err error, l *log.Logger) int {
	var uerr *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr):
		l.Printf("%s\nusage: %s", uerr.msg, usageLine)
		return 2
	case errors.Is(err, jmhseries.ErrNoInput):
		fmt.Fprintf(l.Writer(), "No valid CSVs provided.\n")
		return 1
	}
	l.Print(err)
	return 1
}

func main() {
	log.SetPrefix("report-builder: ")
	log.SetFlags(0)

	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if status := exitStatus(err, log.Default()); status != 0 {
		os.Exit(status)
	}
}
