// SPDX-License-Identifier: Apache-2.0

package chart_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simreport/simreport/pkg/chart"
)

func sampleChart() *chart.BarChart {
	return &chart.BarChart{
		Title:      "Runtime",
		XLabel:     "Folder",
		YLabel:     "Runtime",
		Categories: []string{"run_a", "run_b"},
		Series: []chart.Series{
			{Label: "main", Values: []float64{10, 2000}, Errors: []float64{1, 100}},
			{Label: "feature", Values: []float64{12, math.NaN()}, Errors: []float64{0, math.NaN()}},
		},
		HumanizeY: true,
	}
}

func TestHumanizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name  string
		Value float64
		Want  string
	}{
		{Name: "small", Value: 42, Want: "42"},
		{Name: "thousands", Value: 1500, Want: "1.5K"},
		{Name: "exactly a thousand", Value: 1000, Want: "1.0K"},
		{Name: "millions", Value: 2_500_000, Want: "2.5M"},
		{Name: "zero", Value: 0, Want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, chart.HumanizeValue(tt.Value))
		})
	}
}

func TestPlotRequiresData(t *testing.T) {
	t.Parallel()

	_, err := (&chart.BarChart{Title: "empty"}).Plot()
	require.ErrorIs(t, err, chart.ErrNoData)

	c := sampleChart()
	c.Series = []chart.Series{{Label: "zeros", Values: []float64{0, math.NaN()}}}
	c.LogScale = true
	_, err = c.Plot()
	require.ErrorIs(t, err, chart.ErrNoData)
}

func TestPlotAxes(t *testing.T) {
	t.Parallel()

	p, err := sampleChart().Plot()
	require.NoError(t, err)

	assert.Equal(t, "Runtime", p.Title.Text)
	assert.Equal(t, -0.5, p.X.Min)
	assert.Equal(t, 1.5, p.X.Max)

	labeled := 0
	for _, tick := range p.Y.Tick.Marker.Ticks(0, 2_000_000) {
		if tick.Label == "" {
			continue
		}
		labeled++
		assert.Equal(t, chart.HumanizeValue(tick.Value), tick.Label)
	}
	assert.Positive(t, labeled)
}

func TestPlotNegativeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name    string
		Values  []float64
		WantMin float64
		WantMax float64
	}{
		{Name: "mixed signs", Values: []float64{-4, 6}, WantMin: -5, WantMax: 6},
		{Name: "all negative", Values: []float64{-4, -2}, WantMin: -5, WantMax: 0},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			c := &chart.BarChart{
				Title:      "Delta",
				Categories: []string{"a", "b"},
				Series:     []chart.Series{{Values: tt.Values, Errors: []float64{1, 0}}},
			}
			p, err := c.Plot()
			require.NoError(t, err)
			assert.Equal(t, tt.WantMin, p.Y.Min)
			assert.Equal(t, tt.WantMax, p.Y.Max)

			require.NoError(t, c.Save(filepath.Join(t.TempDir(), "delta.svg")))
		})
	}
}

func TestSaveSVG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, log := range []bool{false, true} {
		c := sampleChart()
		c.LogScale = log
		path := filepath.Join(dir, "nested", "runtime.svg")
		if log {
			path = filepath.Join(dir, "nested", "runtime_log.svg")
		}

		require.NoError(t, c.Save(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
	}
}

func TestSaveHistogramWithLabels(t *testing.T) {
	t.Parallel()

	c := &chart.BarChart{
		Title:      "Histogram of Runtime across Branches",
		Categories: []string{"main\nrun", "dev\nrun"},
		Series: []chart.Series{{
			Values: []float64{5, 7.25},
			Errors: []float64{0.5, 0},
			Labels: []string{"5.00", "7.25"},
		}},
		Color: chart.HistogramColor,
	}

	path := filepath.Join(t.TempDir(), "hist.svg")
	require.NoError(t, c.Save(path))
	assert.FileExists(t, path)
}

func TestPage(t *testing.T) {
	t.Parallel()

	page := chart.NewPage("simreport charts")
	page.Add(sampleChart())
	assert.Equal(t, 1, page.Len())

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "simreport charts")
	assert.Contains(t, out, "Runtime")

	path := filepath.Join(t.TempDir(), "charts.html")
	require.NoError(t, page.WriteFile(path))
	assert.FileExists(t, path)
}

func TestDataTable(t *testing.T) {
	t.Parallel()

	d := &chart.DataTable{
		Title:  "Runtime",
		Header: []string{"Folder", "branch", "mean", "sem"},
		Rows: [][]string{
			{"run_a", "main", chart.FormatFloat(1.5), chart.FormatFloat(0)},
			{"run_b", "main", chart.FormatFloat(math.NaN()), chart.FormatFloat(math.NaN())},
		},
	}

	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Data for plot: Runtime", lines[0])
	assert.Equal(t, []string{"Folder", "branch", "mean", "sem"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"run_a", "main", "1.5", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"run_b", "main", "NaN", "NaN"}, strings.Fields(lines[3]))

	path := filepath.Join(t.TempDir(), "out", "Runtime_data.txt")
	require.NoError(t, d.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}
