// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"os"
	"path/filepath"
)

// A File is the complete contents of one JMH CSV file.
type File struct {
	// Path is the path the file was read from.
	Path string

	// Name is the base name of Path. Every Result in Results has
	// File set to Name.
	Name string

	// Columns is the header of the file.
	Columns []string

	// Results are the rows of the file, in file order.
	Results []*Result
}

// HasColumn reports whether the file's header contains the named column.
func (f *File) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (f *File) path() string { return f.Path }

// A FileError records a file that could not be read or parsed. Err is
// either an I/O error or a *SyntaxError.
type FileError struct {
	Path string
	Err  error
}

// Error returns the message of Err, which already names the file.
func (e *FileError) Error() string {
	return e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) path() string { return e.Path }

// A Record is one step of a Files scan: either a *File or a
// *FileError.
type Record interface {
	path() string
}

// ReadFile reads and parses the JMH CSV file at path. It returns an
// error if the file cannot be opened or any line of it is malformed;
// partial results are never returned.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := NewReader(f, path)
	file := &File{Path: path, Name: filepath.Base(path)}
	for r.Scan() {
		file.Results = append(file.Results, r.Result())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	file.Columns = r.Columns()
	return file, nil
}

// A Files reads JMH results from a sequence of input files.
//
// Unlike a Reader, a Files never stops at a bad input. Each call to
// Scan reads one whole file and Result returns either the *File or a
// *FileError describing why it was skipped. Files are visited in the
// order of Paths.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []string

	rec Record
}

// Scan advances to the next file and reports whether there was one.
// The caller should use the Result method to get the outcome.
func (f *Files) Scan() bool {
	if f.inputs == nil {
		f.inputs = append([]string{}, f.Paths...)
	}
	if len(f.inputs) == 0 {
		f.rec = nil
		return false
	}
	path := f.inputs[0]
	f.inputs = f.inputs[1:]

	file, err := ReadFile(path)
	if err != nil {
		f.rec = &FileError{Path: path, Err: err}
	} else {
		f.rec = file
	}
	return true
}

// Result returns the outcome of the file just read by Scan.
func (f *Files) Result() Record {
	return f.rec
}
