// Package chart renders word frequency tables as PNG plots.
package chart

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/BryanBennett/WordFreqCount/internal/freq"
)

// Width of the saved images, height follows the default aspect ratio.
var Width = 10 * vg.Centimeter

// ErrEmpty is returned when there are no words to plot.
var ErrEmpty = errors.New("no words to plot")

// RankFrequency saves a log-log plot of word count against rank (Zipf plot)
// to fname. The image format is picked from the file extension.
func RankFrequency(entries []freq.Entry, fname string) error {
	if len(entries) == 0 {
		return ErrEmpty
	}

	pts := rankPoints(entries)

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("%d distinct words", len(entries))
	p.X.Label.Text = "rank"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Label.Text = "count"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "rank plot")
	}
	s.Color = color.RGBA{255, 0, 0, 255}
	s.Radius = vg.Points(1)
	p.Add(s, hplot.NewGrid())

	// Log axes need a positive range, a single rank or a single count
	// would otherwise be widened to [0, 2].
	p.X.Min, p.X.Max = 0.5, float64(len(pts))+0.5
	p.Y.Min, p.Y.Max = 0.5, 2*pts[0].Y

	if err := p.Save(Width, -1, fname); err != nil {
		return errors.Wrapf(err, "can't save %s", fname)
	}
	return nil
}

// rankPoints returns (rank, count) points, rank 1 being the most frequent.
func rankPoints(entries []freq.Entry) plotter.XYs {
	counts := make([]int, len(entries))
	for i, e := range entries {
		counts[i] = e.Count
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i].X = float64(i + 1)
		pts[i].Y = float64(c)
	}
	return pts
}

// LengthHistogram saves a histogram of word lengths to fname, each word
// weighted by its count.
func LengthHistogram(entries []freq.Entry, fname string) error {
	if len(entries) == 0 {
		return ErrEmpty
	}

	h := lengthHist(entries)

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("word length: mean=%.2f std-dev=%.2f", h.XMean(), h.XStdDev())
	p.X.Label.Text = "letters"
	p.Y.Label.Text = "words"

	hh := hplot.NewH1D(h)
	hh.LineStyle.Color = color.NRGBA{0, 0, 255, 255}
	p.Add(hh, hplot.NewGrid())

	if err := p.Save(Width, -1, fname); err != nil {
		return errors.Wrapf(err, "can't save %s", fname)
	}
	return nil
}

// lengthHist bins word lengths one letter per bin.
func lengthHist(entries []freq.Entry) *hbook.H1D {
	longest := 0
	for _, e := range entries {
		if n := len(e.Word); n > longest {
			longest = n
		}
	}

	h := hbook.NewH1D(longest, 0.5, float64(longest)+0.5)
	for _, e := range entries {
		h.Fill(float64(len(e.Word)), float64(e.Count))
	}
	return h
}
