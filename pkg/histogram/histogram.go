// SPDX-License-Identifier: Apache-2.0

// Package histogram ranks simulation runs by a metric and draws the best
// performers of every model.
package histogram

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/simreport/simreport/internal/naming"
	"github.com/simreport/simreport/pkg/chart"
	"github.com/simreport/simreport/pkg/collect"
	"github.com/simreport/simreport/pkg/logger"
	"github.com/simreport/simreport/pkg/plotconfig"
	"github.com/simreport/simreport/pkg/stats"
	"github.com/simreport/simreport/pkg/table"
)

// OutputDirName is the directory under the root that receives the charts.
const OutputDirName = "Top Performers"

const (
	suffixLocal         = " (Local)"
	suffixAll           = " (All)"
	suffixBranchAverage = " (Branch Average)"
)

type Generator struct {
	configs []plotconfig.HistogramConfig
	mode    Mode
	logger  logger.Logger
}

// Result lists what a run produced.
type Result struct {
	OutputDir string
	Files     []string
}

func New(configs []plotconfig.HistogramConfig, opts ...OptionFn) *Generator {
	o := &options{
		logger: logger.NewNoopLogger(),
		mode:   ModePerPath,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Generator{
		configs: configs,
		mode:    o.mode,
		logger:  o.logger,
	}
}

// Run draws every configured histogram from the runs under root.
func (g *Generator) Run(ctx context.Context, root string) (*Result, error) {
	outDir := filepath.Join(root, OutputDirName)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{OutputDir: outDir}
	for _, cfg := range g.configs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		g.logger.LogPlotStart(cfg.Title)
		t, err := collect.FromTree(root, cfg.Keywords, g.logger)
		if err != nil {
			return res, err
		}
		if t == nil {
			g.logger.Warn("No data found", "keywords", cfg.Keywords)
			continue
		}

		files, err := g.generate(t, cfg, outDir)
		res.Files = append(res.Files, files...)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (g *Generator) generate(t *table.Table, cfg plotconfig.HistogramConfig, outDir string) ([]string, error) {
	if err := t.Require(cfg.Y); err != nil {
		g.logger.LogPlotSkipped(cfg.Title, err)
		return nil, nil
	}

	floor, enabled := cfg.Floor()
	filtered, err := ApplyFloor(t, cfg.Y, floor, enabled)
	if err != nil {
		return nil, fmt.Errorf("histogram %q: %w", cfg.Title, err)
	}

	groups, err := stats.GroupBy(filtered, []string{collect.PathColumn, plotconfig.BranchColumn}, cfg.Y)
	if err != nil {
		var missing *table.MissingColumnsError
		if errors.As(err, &missing) {
			g.logger.LogPlotSkipped(cfg.Title, err)
			return nil, nil
		}
		return nil, fmt.Errorf("histogram %q: %w", cfg.Title, err)
	}
	stats.SortByMean(groups)
	if len(groups) == 0 {
		g.logger.Warn("No data left after filtering", "keywords", cfg.Keywords, "floor", floor)
		return nil, nil
	}

	var files []string
	for _, s := range g.subsets(groups) {
		if len(s.groups) == 0 {
			continue
		}
		written, err := g.render(cfg, s, outDir)
		files = append(files, written...)
		if err != nil {
			return files, err
		}
	}
	return files, nil
}

// subset is the set of groups drawn on one chart.
type subset struct {
	suffix string
	groups []stats.Group
}

func (g *Generator) subsets(groups []stats.Group) []subset {
	if g.mode == ModeBranchAverage {
		avg := stats.AverageBy(groups, 1)
		stats.SortByMean(avg)
		return []subset{{suffix: suffixBranchAverage, groups: avg}}
	}

	var local, other []stats.Group
	for _, grp := range groups {
		if strings.Contains(strings.ToLower(grp.Keys[0]), "local") {
			local = append(local, grp)
		} else {
			other = append(other, grp)
		}
	}
	return []subset{
		{suffix: suffixLocal, groups: local},
		{suffix: "", groups: other},
		{suffix: suffixAll, groups: groups},
	}
}

func (g *Generator) render(cfg plotconfig.HistogramConfig, s subset, outDir string) ([]string, error) {
	top := s.groups[:min(cfg.Limit(), len(s.groups))]

	c := &chart.BarChart{
		Title:      Title(cfg, s.suffix),
		XLabel:     "Model",
		YLabel:     cfg.Y,
		Categories: make([]string, len(top)),
		Series: []chart.Series{{
			Values: make([]float64, len(top)),
			Errors: make([]float64, len(top)),
			Labels: make([]string, len(top)),
		}},
		Color: chart.HistogramColor,
	}
	data := &chart.DataTable{Title: c.Title}
	if g.mode == ModeBranchAverage {
		data.Header = []string{plotconfig.BranchColumn, "mean", "count", "sem"}
	} else {
		data.Header = []string{collect.PathColumn, plotconfig.BranchColumn, "mean", "std", "count", "sem"}
	}

	for i, grp := range top {
		c.Categories[i] = categoryLabel(grp.Keys)
		c.Series[0].Values[i] = grp.Mean
		c.Series[0].Errors[i] = grp.SEM
		c.Series[0].Labels[i] = fmt.Sprintf("%.2f", grp.Mean)

		row := slices.Clone(grp.Keys)
		if g.mode != ModeBranchAverage {
			row = append(row, chart.FormatFloat(grp.Mean), chart.FormatFloat(grp.Std))
		} else {
			row = append(row, chart.FormatFloat(grp.Mean))
		}
		row = append(row, strconv.Itoa(grp.Count), chart.FormatFloat(grp.SEM))
		data.Rows = append(data.Rows, row)
	}

	stem := filepath.Join(outDir, naming.FileStem(cfg.Title)+strings.ReplaceAll(s.suffix, " ", "_"))
	var files []string

	path := stem + ".svg"
	if err := c.Save(path); err != nil {
		return files, fmt.Errorf("rendering %s: %w", path, err)
	}
	g.logger.LogFileWritten("chart", path)
	files = append(files, path)

	path = stem + "_data.txt"
	if err := data.WriteFile(path); err != nil {
		return files, err
	}
	g.logger.LogFileWritten("data", path)
	files = append(files, path)

	return files, nil
}

// Title is the chart title of a histogram with the given suffix.
func Title(cfg plotconfig.HistogramConfig, suffix string) string {
	return fmt.Sprintf("Histogram of %s across Branches%s on %s", cfg.Y, suffix, strings.Join(cfg.Keywords, ", "))
}

// ApplyFloor drops the rows whose y value is empty or, when enabled, below
// floor.
func ApplyFloor(t *table.Table, y string, floor float64, enabled bool) (*table.Table, error) {
	return t.Filter(func(i int) (bool, error) {
		v, err := t.Float(i, y)
		if err != nil {
			return false, err
		}
		if math.IsNaN(v) {
			return false, nil
		}
		return !enabled || v >= floor, nil
	})
}

// categoryLabel puts the branch first; per-path groups carry the path on a
// second line.
func categoryLabel(keys []string) string {
	if len(keys) == 1 {
		return keys[0]
	}
	return keys[1] + "\n" + keys[0]
}
