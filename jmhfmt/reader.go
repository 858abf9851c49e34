// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// A Reader reads the JMH CSV format.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	cr       *csv.Reader
	fileName string
	source   string
	err      error // sticky; I/O or syntax error

	header []string
	cols   columnIndex

	result *Result
}

// columnIndex maps the recognised columns to their position in the
// header. Missing columns are -1.
type columnIndex struct {
	name, score, threads, mode, unit int
}

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	if s.Line == 0 {
		return fmt.Sprintf("%s: %s", s.FileName, s.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// NewReader constructs a reader to parse the JMH CSV format from r.
// fileName is used in error messages, and its base name is recorded
// as the File of every Result.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.cr = csv.NewReader(ior)
	// Lines starting with '#' are JMH run metadata or hand-written
	// notes. FieldsPerRecord == 0 makes every row match the header.
	r.cr.Comment = '#'
	r.cr.FieldsPerRecord = 0
	r.fileName = fileName
	r.source = filepath.Base(fileName)
	r.err = nil
	r.header = nil
	r.cols = columnIndex{-1, -1, -1, -1, -1}
	r.result = nil
}

func (r *Reader) newSyntaxError(line int, msg string) *SyntaxError {
	return &SyntaxError{r.fileName, line, msg}
}

// readHeader reads the first non-comment line and indexes it.
func (r *Reader) readHeader() error {
	fields, err := r.cr.Read()
	if err == io.EOF {
		return r.newSyntaxError(0, "no header line")
	} else if err != nil {
		return r.csvError(err)
	}
	r.header = make([]string, len(fields))
	for i, f := range fields {
		if i == 0 {
			f = strings.TrimPrefix(f, "\ufeff")
		}
		f = strings.TrimSpace(f)
		r.header[i] = f

		var pos *int
		switch f {
		case ColBenchmark:
			pos = &r.cols.name
		case ColScore:
			pos = &r.cols.score
		case ColThreads:
			pos = &r.cols.threads
		case ColMode:
			pos = &r.cols.mode
		case ColUnit:
			pos = &r.cols.unit
		}
		// First occurrence wins.
		if pos != nil && *pos < 0 {
			*pos = i
		}
	}
	return nil
}

// csvError converts an error from encoding/csv to a SyntaxError.
func (r *Reader) csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return r.newSyntaxError(perr.Line, perr.Err.Error())
	}
	return fmt.Errorf("%s: %w", r.fileName, err)
}

// Scan advances the reader to the next result and reports whether a
// result was read.
// The caller should use the Result method to get the result.
// If Scan reaches EOF or an error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.header == nil {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
	}

	fields, err := r.cr.Read()
	if err == io.EOF {
		return false
	} else if err != nil {
		r.err = r.csvError(err)
		return false
	}
	line, _ := r.cr.FieldPos(0)
	res, err := r.parseRow(line, fields)
	if err != nil {
		r.err = err
		return false
	}
	r.result = res
	return true
}

func (r *Reader) parseRow(line int, fields []string) (*Result, error) {
	res := &Result{File: r.source, line: line, Score: math.NaN()}
	field := func(i int) string {
		if i < 0 {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	if r.cols.name >= 0 {
		res.Name = field(r.cols.name)
		if res.Name == "" {
			return nil, r.newSyntaxError(line, "empty benchmark name")
		}
	}
	if r.cols.score >= 0 {
		s := field(r.cols.score)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, r.newSyntaxError(line, fmt.Sprintf("parsing score %q: not a finite number", s))
		}
		res.Score = v
	}
	if r.cols.threads >= 0 {
		s := field(r.cols.threads)
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, r.newSyntaxError(line, fmt.Sprintf("parsing threads %q: not a positive integer", s))
		}
		res.Threads = n
	}
	res.Mode = field(r.cols.mode)
	res.Unit = field(r.cols.unit)
	return res, nil
}

// Result returns the record that was just read by Scan.
// The Result remains valid after further calls to Scan.
func (r *Reader) Result() *Result {
	return r.result
}

// Err returns the first error encountered by the Reader: an I/O error,
// or a *SyntaxError for a malformed line. A Reader stops at the first
// error. If Scan stopped because it reached EOF, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

// Columns returns the header of the file, with surrounding space
// removed. It returns nil until Scan has been called at least once.
func (r *Reader) Columns() []string {
	return r.header
}

// HasColumn reports whether the header contains the named column.
func (r *Reader) HasColumn(name string) bool {
	for _, c := range r.header {
		if c == name {
			return true
		}
	}
	return false
}
