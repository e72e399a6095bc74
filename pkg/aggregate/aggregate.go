// SPDX-License-Identifier: Apache-2.0

// Package aggregate turns benchmark CSV files into grouped bar charts with
// error bars.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simreport/simreport/internal/naming"
	"github.com/simreport/simreport/pkg/chart"
	"github.com/simreport/simreport/pkg/collect"
	"github.com/simreport/simreport/pkg/logger"
	"github.com/simreport/simreport/pkg/plotconfig"
	"github.com/simreport/simreport/pkg/stats"
	"github.com/simreport/simreport/pkg/table"
)

// HTMLFile is the name of the interactive page written next to the charts.
const HTMLFile = "charts.html"

type Aggregator struct {
	plots  []plotconfig.PlotConfig
	logger logger.Logger
	html   bool
}

// Result lists what a run produced.
type Result struct {
	OutputDir string
	Files     []string
	Skipped   []string
}

func New(plots []plotconfig.PlotConfig, opts ...OptionFn) *Aggregator {
	o := &options{
		logger: logger.NewNoopLogger(),
		html:   true,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Aggregator{
		plots:  plots,
		logger: o.logger,
		html:   o.html,
	}
}

// Run reads one CSV from every directory matching pattern and renders the
// configured plots into the parent directory of the pattern. Plots that
// cannot be drawn from the data are logged and skipped; a malformed numeric
// cell fails the run.
func (a *Aggregator) Run(ctx context.Context, pattern string) (*Result, error) {
	t, err := collect.FromGlob(pattern, a.logger)
	if err != nil {
		return nil, err
	}

	outDir := filepath.Dir(pattern)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{OutputDir: outDir}
	var page *chart.Page
	if a.html {
		page = chart.NewPage("simreport charts")
	}

	for _, p := range a.plots {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		a.logger.LogPlotStart(p.Title)
		c, err := a.prepare(t, p)
		var parseErr *table.ParseError
		if errors.As(err, &parseErr) {
			return res, fmt.Errorf("plot %q: %w", p.Title, err)
		}
		if err != nil {
			a.logger.LogPlotSkipped(p.Title, err)
			res.Skipped = append(res.Skipped, p.Title)
			continue
		}

		files, err := a.render(c, outDir)
		res.Files = append(res.Files, files...)
		if err != nil {
			return res, err
		}
		if page != nil {
			page.Add(c.raw)
		}
	}

	if page != nil && page.Len() > 0 {
		path := filepath.Join(outDir, HTMLFile)
		if err := page.WriteFile(path); err != nil {
			return res, err
		}
		a.logger.LogFileWritten("html", path)
		res.Files = append(res.Files, path)
	}

	return res, nil
}

// charts holds every rendition of one plot.
type charts struct {
	title      string
	data       *chart.DataTable
	raw        *chart.BarChart
	normalized *chart.BarChart
	log        *chart.BarChart
}

func (a *Aggregator) prepare(t *table.Table, p plotconfig.PlotConfig) (*charts, error) {
	switch p.Type {
	case plotconfig.PlotTypeBar:
	case plotconfig.PlotTypeLine:
		return nil, ErrUnsupportedPlotType
	default:
		return nil, InvalidPlotTypeError{Type: string(p.Type)}
	}

	if err := t.Require(p.Columns()...); err != nil {
		return nil, err
	}

	grouped, err := stats.GroupBy(t, []string{p.GroupBy, p.X}, p.Y)
	if err != nil {
		return nil, err
	}
	xs, hues := t.Unique(p.GroupBy), t.Unique(p.X)
	groups := stats.Reindex(grouped, xs, hues)
	if len(groups) == 0 {
		return nil, fmt.Errorf("no rows with values for %s and %s", p.GroupBy, p.X)
	}

	humanize := strings.Contains(p.Y, "Memory") || strings.Contains(p.Y, "Runtime")
	c := &charts{
		title: p.Title,
		data:  dataTable(p, groups),
		raw:   barChart(p.Title, p, xs, hues, groups),
	}
	c.raw.HumanizeY = humanize

	c.normalized = barChart(p.Title+" (Normalized)", p, xs, hues, stats.Normalize(groups, 1))
	c.normalized.YLabel = "Normalized " + p.Y

	if useLogScale(p, groups) {
		c.log = barChart(p.Title+" (Log Scale)", p, xs, hues, groups)
		c.log.LogScale = true
		c.log.HumanizeY = humanize
	}

	return c, nil
}

func (a *Aggregator) render(c *charts, outDir string) ([]string, error) {
	stem := filepath.Join(outDir, naming.FileStem(c.title))

	var files []string
	dataPath := stem + "_data.txt"
	if err := c.data.WriteFile(dataPath); err != nil {
		return files, err
	}
	a.logger.LogFileWritten("data", dataPath)
	files = append(files, dataPath)

	renditions := []struct {
		chart  *chart.BarChart
		suffix string
	}{
		{c.raw, ""},
		{c.normalized, "_normalized"},
		{c.log, "_log"},
	}
	for _, r := range renditions {
		if r.chart == nil {
			continue
		}
		path := stem + r.suffix + ".svg"
		if err := r.chart.Save(path); err != nil {
			return files, fmt.Errorf("rendering %s: %w", path, err)
		}
		a.logger.LogFileWritten("chart", path)
		files = append(files, path)
	}
	return files, nil
}

// useLogScale reports whether the means span more than the configured ratio.
func useLogScale(p plotconfig.PlotConfig, groups []stats.Group) bool {
	ratio, enabled := p.LogScaleThreshold()
	if !enabled {
		return false
	}
	lo, hi, ok := stats.MeanRange(groups)
	return ok && lo > 0 && hi/lo > ratio
}

// barChart lays out x-major groups as one series per hue.
func barChart(title string, p plotconfig.PlotConfig, xs, hues []string, groups []stats.Group) *chart.BarChart {
	c := &chart.BarChart{
		Title:      title,
		XLabel:     p.GroupBy,
		YLabel:     p.Y,
		Categories: xs,
		Series:     make([]chart.Series, len(hues)),
	}
	for h, hue := range hues {
		s := chart.Series{
			Label:  hue,
			Values: make([]float64, len(xs)),
			Errors: make([]float64, len(xs)),
		}
		for x := range xs {
			g := groups[x*len(hues)+h]
			s.Values[x] = g.Mean
			s.Errors[x] = g.SEM
		}
		c.Series[h] = s
	}
	return c
}

func dataTable(p plotconfig.PlotConfig, groups []stats.Group) *chart.DataTable {
	d := &chart.DataTable{
		Title:  p.Title,
		Header: []string{p.GroupBy, p.X, "mean", "sem"},
		Rows:   make([][]string, len(groups)),
	}
	for i, g := range groups {
		d.Rows[i] = []string{g.Keys[0], g.Keys[1], chart.FormatFloat(g.Mean), chart.FormatFloat(g.SEM)}
	}
	return d
}
