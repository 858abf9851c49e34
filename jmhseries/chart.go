// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhseries

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hashmap-performance/jmhplot/jmhunit"
)

// ChartOptions controls how charts are rendered.
type ChartOptions struct {
	// Format is the image format and file extension:
	// "png", "svg" or "pdf".
	Format string

	// Width and Height are the size of the chart.
	Width, Height vg.Length

	// DPI is the resolution of PNG charts.
	DPI int
}

// DefaultChartOptions returns 7x4 inch PNG charts.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{Format: "png", Width: 7 * vg.Inch, Height: 4 * vg.Inch, DPI: 96}
}

// Formats lists the supported values of ChartOptions.Format.
var Formats = []string{"png", "svg", "pdf"}

// CheckFormat returns an error if format is not one of Formats.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

var fileNameReplacer = strings.NewReplacer("/", "_", " ", "_")

// FileName returns the image file name for a benchmark: the name with
// every '/' and space replaced by '_', plus "." and ext.
func FileName(benchmark, ext string) string {
	return fileNameReplacer.Replace(benchmark) + "." + ext
}

// XYs returns the points of s with the thread count as X and the mean
// score as Y.
func (s *Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.Points))
	for i, p := range s.Points {
		xys[i].X = float64(p.Threads)
		xys[i].Y = p.Mean
	}
	return xys
}

// NewChart builds the chart of one series: mean score against thread
// count, with a marker at every measured thread count. Each call
// returns a new, independent plot.
func NewChart(s *Series) (*plot.Plot, error) {
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("%s: no points to chart", s.Benchmark)
	}

	pl := plot.New()
	pl.Title.Text = s.Benchmark
	pl.X.Label.Text = "Threads"
	pl.Y.Label.Text = s.Label()

	pl.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(s.XYs())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Benchmark, err)
	}
	line.Color = plotutil.Color(0)
	line.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = plotutil.Color(0)
	points.Radius = vg.Points(3)
	pl.Add(line, points)

	pl.X.Tick.Marker = threadTicks(s)
	pl.Y.Tick.Marker = scaledTicks{}

	// Pad the data range by 5% so the extreme markers clear the frame.
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Mean
	}
	lo, hi := stats.Bounds(ys)
	if pad := (hi - lo) * 0.05; pad > 0 {
		pl.Y.Min, pl.Y.Max = lo-pad, hi+pad
	}
	first, last := s.Points[0].Threads, s.Points[len(s.Points)-1].Threads
	if first != last {
		pad := float64(last-first) * 0.05
		pl.X.Min, pl.X.Max = float64(first)-pad, float64(last)+pad
	}
	return pl, nil
}

// SaveChart renders the chart of s into dir and returns the path of
// the image file.
func SaveChart(s *Series, dir string, opts *ChartOptions) (string, error) {
	if opts == nil {
		opts = DefaultChartOptions()
	}
	if err := CheckFormat(opts.Format); err != nil {
		return "", err
	}
	pl, err := NewChart(s)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(s.Benchmark, opts.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := writeChart(f, pl, opts); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func writeChart(w io.Writer, pl *plot.Plot, opts *ChartOptions) error {
	var wt io.WriterTo
	if opts.Format == "png" {
		dpi := opts.DPI
		if dpi <= 0 {
			dpi = 96
		}
		c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
		pl.Draw(draw.New(c))
		wt = vgimg.PngCanvas{Canvas: c}
	} else {
		var err error
		wt, err = pl.WriterTo(opts.Width, opts.Height, opts.Format)
		if err != nil {
			return err
		}
	}
	_, err := wt.WriteTo(w)
	return err
}

// threadTicks puts one labeled tick at every measured thread count.
func threadTicks(s *Series) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(s.Points))
	for i, p := range s.Points {
		ticks[i] = plot.Tick{Value: float64(p.Threads), Label: strconv.Itoa(p.Threads)}
	}
	return plot.ConstantTicks(ticks)
}

// scaledTicks is the default tick layout, labeled with SI prefixes
// (1.500M rather than 1.5e+06).
type scaledTicks struct{}

func (scaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var major []float64
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		major = append(major, t.Value)
	}
	scale := jmhunit.CommonScale(major)
	for i := range ticks {
		if !ticks[i].IsMinor() {
			ticks[i].Label = scale.Format(ticks[i].Value)
		}
	}
	return ticks
}
