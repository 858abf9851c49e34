// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhreport

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type memPublisher struct {
	names []string
	files map[string]string
	fail  string
}

func (p *memPublisher) Publish(ctx context.Context, name string, r io.Reader) error {
	if name == p.fail {
		return errors.New("quota exceeded")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if p.files == nil {
		p.files = make(map[string]string)
	}
	p.names = append(p.names, name)
	p.files[name] = string(data)
	return nil
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"a.png": "A", "b.png": "B", "results.html": "<html>"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}

	p := new(memPublisher)
	names := []string{"b.png", "a.png", "results.html"}
	if err := Publish(context.Background(), dir, names, p); err != nil {
		t.Fatal(err)
	}
	for i, name := range names {
		if p.names[i] != name {
			t.Errorf("published %q at %d, want %q", p.names[i], i, name)
		}
	}
	if p.files["results.html"] != "<html>" {
		t.Errorf("results.html = %q", p.files["results.html"])
	}

	p = &memPublisher{fail: "a.png"}
	err := Publish(context.Background(), dir, names, p)
	if err == nil || err.Error() != "publishing a.png: quota exceeded" {
		t.Errorf("got %v, want publishing error", err)
	}
	if len(p.names) != 1 {
		t.Errorf("published %q after the error", p.names)
	}

	if err := Publish(context.Background(), dir, []string{"missing.png"}, new(memPublisher)); err == nil {
		t.Error("want error publishing a missing file")
	}
}

func TestParseGCSURL(t *testing.T) {
	for _, test := range []struct {
		in             string
		bucket, prefix string
		ok             bool
	}{
		{"gs://perf-results", "perf-results", "", true},
		{"gs://perf-results/", "perf-results", "", true},
		{"gs://perf-results/hashmap/2026-10-17/", "perf-results", "hashmap/2026-10-17", true},
		{"gs:///prefix", "", "", false},
		{"s3://bucket/x", "", "", false},
		{"perf-results", "", "", false},
	} {
		bucket, prefix, err := ParseGCSURL(test.in)
		if (err == nil) != test.ok {
			t.Errorf("ParseGCSURL(%q): err = %v, want ok=%v", test.in, err, test.ok)
			continue
		}
		if bucket != test.bucket || prefix != test.prefix {
			t.Errorf("ParseGCSURL(%q) = %q, %q, want %q, %q", test.in, bucket, prefix, test.bucket, test.prefix)
		}
	}
}
