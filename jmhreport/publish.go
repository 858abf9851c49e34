// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhreport

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// A Publisher copies report files somewhere else, such as a bucket
// serving static pages.
type Publisher interface {
	// Publish stores the contents of r under name, a slash-separated
	// path relative to the publishing destination.
	Publish(ctx context.Context, name string, r io.Reader) error
}

// Publish copies the named files of dir to p, in order. It stops at
// the first error.
func Publish(ctx context.Context, dir string, names []string, p Publisher) error {
	for _, name := range names {
		if err := publishFile(ctx, filepath.Join(dir, name), name, p); err != nil {
			return err
		}
	}
	return nil
}

func publishFile(ctx context.Context, file, name string, p Publisher) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := p.Publish(ctx, filepath.ToSlash(name), f); err != nil {
		return fmt.Errorf("publishing %s: %w", name, err)
	}
	return nil
}

// ParseGCSURL splits a gs://bucket/prefix URL into its bucket and
// object prefix. The prefix may be empty.
func ParseGCSURL(u string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(u, "gs://")
	if !ok {
		return "", "", fmt.Errorf("bad upload destination %q: want gs://bucket[/prefix]", u)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("bad upload destination %q: no bucket", u)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

// A GCSPublisher publishes to a Google Cloud Storage bucket.
type GCSPublisher struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSPublisher returns a publisher writing under dest, a
// gs://bucket/prefix URL. The caller must Close it.
func NewGCSPublisher(ctx context.Context, dest string, opts ...option.ClientOption) (*GCSPublisher, error) {
	bucket, prefix, err := ParseGCSURL(dest)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSPublisher{client: client, bucket: bucket, prefix: prefix}, nil
}

func (p *GCSPublisher) Publish(ctx context.Context, name string, r io.Reader) error {
	obj := p.client.Bucket(p.bucket).Object(path.Join(p.prefix, name))
	w := obj.NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(path.Ext(name))
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Close closes the underlying storage client.
func (p *GCSPublisher) Close() error {
	return p.client.Close()
}
