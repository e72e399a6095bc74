// SPDX-License-Identifier: Apache-2.0

package stats_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/simreport/simreport/pkg/stats"
	"github.com/simreport/simreport/pkg/table"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		Name   string
		Values []float64
		Mean   float64
		SEM    float64
		Count  int
	}{
		{
			Name:   "several samples",
			Values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			Mean:   5,
			SEM:    math.Sqrt(32.0/7) / math.Sqrt(8),
			Count:  8,
		},
		{
			Name:   "single sample has zero standard error",
			Values: []float64{3.5},
			Mean:   3.5,
			SEM:    0,
			Count:  1,
		},
		{
			Name:   "NaNs are ignored",
			Values: []float64{1, math.NaN(), 3},
			Mean:   2,
			SEM:    1,
			Count:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s := stats.Summarize(tt.Values)
			assert.Equal(t, tt.Count, s.Count)
			assert.InDelta(t, tt.Mean, s.Mean, 1e-9)
			assert.InDelta(t, tt.SEM, s.SEM, 1e-9)
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := stats.Summarize([]float64{math.NaN()})
	assert.True(t, s.Empty())
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.SEM))
}

func TestGroupBy(t *testing.T) {
	tbl := table.New("Folder", "branch", "runtime")
	for _, r := range [][]string{
		{"a", "main", "10"},
		{"a", "main", "20"},
		{"b", "dev", "5"},
		{"", "dev", "100"},
		{"a", "dev", ""},
	} {
		tbl.Append(map[string]string{"Folder": r[0], "branch": r[1], "runtime": r[2]})
	}

	groups, err := stats.GroupBy(tbl, []string{"Folder", "branch"}, "runtime")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, []string{"a", "main"}, groups[0].Keys)
	assert.Equal(t, 15.0, groups[0].Mean)
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, []string{"b", "dev"}, groups[1].Keys)
	assert.Equal(t, 0.0, groups[1].SEM)

	// A group whose values are all empty still exists, without samples.
	assert.Equal(t, []string{"a", "dev"}, groups[2].Keys)
	assert.True(t, groups[2].Empty())
}

func TestGroupByMissingColumn(t *testing.T) {
	tbl := table.New("branch")
	_, err := stats.GroupBy(tbl, []string{"Folder", "branch"}, "runtime")

	var missing *table.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Folder", "runtime"}, missing.Missing)
}

func TestGroupByParseError(t *testing.T) {
	tbl := table.New("branch", "runtime")
	tbl.Append(map[string]string{"branch": "main", "runtime": "n/a"})

	_, err := stats.GroupBy(tbl, []string{"branch"}, "runtime")
	var parseErr *table.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReindexCrossProduct(t *testing.T) {
	groups := []stats.Group{
		{Keys: []string{"a", "main"}, Summary: stats.Summarize([]float64{1})},
		{Keys: []string{"b", "dev"}, Summary: stats.Summarize([]float64{2})},
	}

	out := stats.Reindex(groups, []string{"a", "b"}, []string{"main", "dev"})
	require.Len(t, out, 4)

	assert.Equal(t, []string{"a", "main"}, out[0].Keys)
	assert.Equal(t, 1.0, out[0].Mean)
	assert.Equal(t, []string{"a", "dev"}, out[1].Keys)
	assert.True(t, out[1].Empty())
	assert.Equal(t, []string{"b", "main"}, out[2].Keys)
	assert.True(t, math.IsNaN(out[2].Mean))
	assert.Equal(t, 2.0, out[3].Mean)
}

func TestReindexCardinality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nx := rapid.IntRange(0, 6).Draw(t, "xs")
		nh := rapid.IntRange(0, 6).Draw(t, "hues")

		tbl := table.New("x", "hue", "y")
		rows := rapid.IntRange(0, 30).Draw(t, "rows")
		for i := 0; i < rows && nx > 0 && nh > 0; i++ {
			tbl.Append(map[string]string{
				"x":   fmt.Sprintf("x%d", rapid.IntRange(0, nx-1).Draw(t, "x")),
				"hue": fmt.Sprintf("h%d", rapid.IntRange(0, nh-1).Draw(t, "hue")),
				"y":   fmt.Sprint(rapid.Float64Range(0, 1000).Draw(t, "y")),
			})
		}

		groups, err := stats.GroupBy(tbl, []string{"x", "hue"}, "y")
		if err != nil {
			t.Fatal(err)
		}
		xs, hues := tbl.Unique("x"), tbl.Unique("hue")
		out := stats.Reindex(groups, xs, hues)
		if len(out) != len(xs)*len(hues) {
			t.Fatalf("expected %d rows, got %d", len(xs)*len(hues), len(out))
		}
		present := 0
		for _, g := range out {
			if !g.Empty() {
				present++
			}
		}
		if present != len(groups) {
			t.Fatalf("expected %d non-empty groups, got %d", len(groups), present)
		}
	})
}

func TestNormalize(t *testing.T) {
	groups := []stats.Group{
		{Keys: []string{"a", "main"}, Summary: stats.Summary{Mean: 5, SEM: 1, Count: 2}},
		{Keys: []string{"b", "main"}, Summary: stats.Summary{Mean: 10, SEM: 2, Count: 2}},
		{Keys: []string{"a", "dev"}, Summary: stats.Summary{Mean: 4, SEM: 0, Count: 1}},
		{Keys: []string{"b", "dev"}, Summary: stats.EmptySummary()},
	}

	out := stats.Normalize(groups, 1)
	assert.Equal(t, 0.5, out[0].Mean)
	assert.Equal(t, 0.1, out[0].SEM)
	assert.Equal(t, 1.0, out[1].Mean)
	assert.Equal(t, 1.0, out[2].Mean)
	assert.True(t, math.IsNaN(out[3].Mean))

	// The input is left untouched.
	assert.Equal(t, 5.0, groups[0].Mean)
}

func TestMeanRange(t *testing.T) {
	lo, hi, ok := stats.MeanRange([]stats.Group{
		{Summary: stats.EmptySummary()},
		{Summary: stats.Summary{Mean: 3}},
		{Summary: stats.Summary{Mean: 0.5}},
	})
	require.True(t, ok)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 3.0, hi)

	_, _, ok = stats.MeanRange([]stats.Group{{Summary: stats.EmptySummary()}})
	assert.False(t, ok)
}

func TestSortByMean(t *testing.T) {
	groups := []stats.Group{
		{Keys: []string{"z", "main"}, Summary: stats.Summary{Mean: 2}},
		{Keys: []string{"b", "main"}, Summary: stats.EmptySummary()},
		{Keys: []string{"a", "dev"}, Summary: stats.Summary{Mean: 2}},
		{Keys: []string{"c", "dev"}, Summary: stats.Summary{Mean: 1}},
	}
	stats.SortByMean(groups)

	var order []string
	for _, g := range groups {
		order = append(order, g.Keys[0])
	}
	assert.Equal(t, []string{"c", "a", "z", "b"}, order)
}

func TestAverageBy(t *testing.T) {
	groups := []stats.Group{
		{Keys: []string{"local", "main"}, Summary: stats.Summary{Mean: 10, SEM: 3, Count: 4}},
		{Keys: []string{"cluster", "main"}, Summary: stats.Summary{Mean: 20, SEM: 4, Count: 6}},
		{Keys: []string{"local", "dev"}, Summary: stats.Summary{Mean: 7, SEM: 1, Count: 2}},
		{Keys: []string{"cluster", "dev"}, Summary: stats.EmptySummary()},
	}

	out := stats.AverageBy(groups, 1)
	require.Len(t, out, 2)

	assert.Equal(t, []string{"main"}, out[0].Keys)
	assert.Equal(t, 15.0, out[0].Mean)
	assert.Equal(t, 2.5, out[0].SEM)
	assert.Equal(t, 10, out[0].Count)

	assert.Equal(t, []string{"dev"}, out[1].Keys)
	assert.Equal(t, 7.0, out[1].Mean)
	assert.Equal(t, 1.0, out[1].SEM)
}
