// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when a chart has no categories to draw.
var ErrNoData = errors.New("chart has no data")

// DefaultWidth and DefaultHeight are the dimensions of saved charts.
const (
	DefaultWidth  = 16 * vg.Inch
	DefaultHeight = 8 * vg.Inch
)

// HistogramColor fills the bars of single series charts.
var HistogramColor = color.RGBA{R: 0x00, G: 0x00, B: 0x8b, A: 0xff}

// Series is one legend entry of a bar chart. Values and Errors are indexed
// by category.
type Series struct {
	Label  string
	Values []float64
	Errors []float64
	// Labels are drawn above the bars when set.
	Labels []string
}

// BarChart describes a grouped bar chart with one group per category and one
// bar per series inside each group.
type BarChart struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series

	// LogScale draws the Y axis on a base 10 logarithmic scale.
	LogScale bool

	// HumanizeY labels Y ticks with K and M suffixes.
	HumanizeY bool

	// Color overrides the palette for every series.
	Color color.Color
}

// Plot builds the gonum plot for the chart.
func (c *BarChart) Plot() (*plot.Plot, error) {
	if len(c.Categories) == 0 || len(c.Series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.BackgroundColor = color.White

	floor := 0.0
	if c.LogScale {
		lo, ok := c.minPositive()
		if !ok {
			return nil, fmt.Errorf("log scale %q: %w", c.Title, ErrNoData)
		}
		floor = math.Pow(10, math.Floor(math.Log10(lo)))
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if c.HumanizeY {
		p.Y.Tick.Marker = humanTicks{Ticker: p.Y.Tick.Marker}
	}

	colors, err := c.colors()
	if err != nil {
		return nil, err
	}

	n := len(c.Series)
	width := 0.8 / float64(n)
	for i, s := range c.Series {
		bars := newBarSeries(s.Values, s.Errors, width, width*(float64(i)-float64(n-1)/2))
		bars.Labels = s.Labels
		bars.Floor = floor
		bars.Clamp = c.LogScale
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		bars.ErrorStyle.Color = color.Black
		bars.ErrorStyle.Width = 0.3 * vg.Millimeter
		bars.LabelStyle.Font.Size = vg.Points(8)

		p.Add(bars)
		if s.Label != "" {
			p.Legend.Add(s.Label, bars)
		}
	}

	p.NominalX(c.Categories...)
	p.X.Min = -0.5
	p.X.Max = float64(len(c.Categories)) - 0.5
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return p, nil
}

// Save renders the chart to path. The image format follows the file
// extension.
func (c *BarChart) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(DefaultWidth, DefaultHeight, path)
}

func (c *BarChart) minPositive() (float64, bool) {
	lo := math.Inf(1)
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > 0 && v < lo {
				lo = v
			}
		}
	}
	return lo, !math.IsInf(lo, 1)
}

func (c *BarChart) colors() ([]color.Color, error) {
	out := make([]color.Color, len(c.Series))
	if c.Color != nil {
		for i := range out {
			out[i] = c.Color
		}
		return out, nil
	}

	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", 12)
	if err != nil {
		return nil, err
	}
	cs := pal.Colors()
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out, nil
}
