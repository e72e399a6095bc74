// SPDX-License-Identifier: Apache-2.0
//
// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barSeries draws one bar per category. Category i sits at x = i and bars
// are shifted by Offset, both in data units, so that several series can be
// grouped side by side.
type barSeries struct {
	// Values are the bar heights. NaN values are not drawn.
	Values []float64

	// Errors are symmetric error bar half lengths. Optional.
	Errors []float64

	// Labels are drawn above each bar. Optional.
	Labels []string

	// Width of each bar and its offset from the category position.
	Width  float64
	Offset float64

	// Floor is the value bars start from. Bars below it extend downwards
	// unless Clamp is set. It must be positive on a log scale.
	Floor float64

	// Clamp keeps bars and error bars at or above Floor.
	Clamp bool

	Color color.Color

	draw.LineStyle

	ErrorStyle draw.LineStyle

	LabelStyle text.Style
}

func newBarSeries(values, errors []float64, width, offset float64) *barSeries {
	return &barSeries{
		Values:     values,
		Errors:     errors,
		Width:      width,
		Offset:     offset,
		Color:      color.Black,
		LineStyle:  plotter.DefaultLineStyle,
		ErrorStyle: plotter.DefaultLineStyle,
		LabelStyle: text.Style{
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			XAlign:  text.XCenter,
			YAlign:  text.YBottom,
			Handler: plot.DefaultTextHandler,
		},
	}
}

func (b *barSeries) errorAt(i int) float64 {
	if i >= len(b.Errors) || math.IsNaN(b.Errors[i]) {
		return 0
	}
	return math.Abs(b.Errors[i])
}

func (b *barSeries) labelAt(i int) string {
	if i >= len(b.Labels) {
		return ""
	}
	return b.Labels[i]
}

func (b *barSeries) clamp(v float64) float64 {
	if b.Clamp {
		return math.Max(v, b.Floor)
	}
	return v
}

// Plot implements the plot.Plotter interface.
func (b *barSeries) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, v := range b.Values {
		if math.IsNaN(v) {
			continue
		}
		x := float64(i) + b.Offset
		cat := trX(x)
		if !c.ContainsX(cat) {
			continue
		}
		catMin := trX(x - b.Width/2)
		catMax := trX(x + b.Width/2)
		valMin := trY(b.Floor)
		valMax := trY(b.clamp(v))

		pts := []vg.Point{
			{X: catMin, Y: valMin},
			{X: catMin, Y: valMax},
			{X: catMax, Y: valMax},
			{X: catMax, Y: valMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))

		pts = append(pts, vg.Point{X: catMin, Y: valMin})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)

		high := valMax
		if e := b.errorAt(i); e > 0 {
			low := trY(b.clamp(v - e))
			high = trY(v + e)

			errBar := c.ClipLinesY([]vg.Point{{X: cat, Y: low}, {X: cat, Y: high}})
			c.StrokeLines(b.ErrorStyle, errBar...)
			capWidth := (catMax - catMin) / 4
			c.StrokeLine2(b.ErrorStyle, cat-capWidth, low, cat+capWidth, low)
			c.StrokeLine2(b.ErrorStyle, cat-capWidth, high, cat+capWidth, high)
		}

		if label := b.labelAt(i); label != "" {
			c.FillText(b.LabelStyle, vg.Point{X: cat, Y: high + vg.Points(2)}, label)
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *barSeries) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = b.Offset - b.Width/2
	xmax = float64(len(b.Values)-1) + b.Offset + b.Width/2
	ymin = b.Floor
	ymax = math.Inf(-1)
	for i, v := range b.Values {
		if math.IsNaN(v) {
			continue
		}
		ymin = math.Min(ymin, v-b.errorAt(i))
		ymax = math.Max(ymax, v+b.errorAt(i))
	}
	if b.Clamp {
		ymin = math.Max(ymin, b.Floor)
	} else if !math.IsInf(ymax, -1) {
		ymax = math.Max(ymax, b.Floor)
	}
	if math.IsInf(ymax, -1) || ymax <= ymin {
		ymax = ymin + 1
		if b.Floor > 0 {
			ymax = b.Floor * 10
		}
	}
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes implements the plot.GlyphBoxer interface so that value labels
// are kept inside the plot area.
func (b *barSeries) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	var boxes []plot.GlyphBox
	for i, v := range b.Values {
		label := b.labelAt(i)
		if label == "" || math.IsNaN(v) {
			continue
		}
		r := b.LabelStyle.Rectangle(label)
		boxes = append(boxes, plot.GlyphBox{
			X: plt.X.Norm(float64(i) + b.Offset),
			Y: plt.Y.Norm(v + b.errorAt(i)),
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: r.Min.X},
				Max: vg.Point{X: r.Max.X, Y: r.Max.Y - r.Min.Y + vg.Points(2)},
			},
		})
	}
	return boxes
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *barSeries) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
