// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Page collects bar charts into a single interactive HTML page.
type Page struct {
	page   *components.Page
	charts int
}

// NewPage returns an empty page with the given title.
func NewPage(title string) *Page {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.SetLayout("flex")
	return &Page{page: page}
}

// Add appends an interactive version of c to the page. Error bars are not
// drawn; missing values are left as gaps.
func (p *Page) Add(c *BarChart) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
		}),
		charts.WithAnimation(false))
	if c.LogScale {
		bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Type: "log"}))
	}
	bar.SetXAxis(c.Categories)

	for _, s := range c.Series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: barValue(v)}
		}
		bar.AddSeries(s.Label, data)
	}

	p.page.AddCharts(bar)
	p.charts++
}

// Len returns the number of charts on the page.
func (p *Page) Len() int {
	return p.charts
}

// Render writes the page to w.
func (p *Page) Render(w io.Writer) error {
	return p.page.Render(w)
}

// WriteFile renders the page to path.
func (p *Page) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return p.Render(f)
}

// echarts treats "-" as a missing point; NaN cannot be encoded as JSON.
func barValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return v
}
