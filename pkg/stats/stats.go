// SPDX-License-Identifier: Apache-2.0

// Package stats computes grouped mean and standard error statistics over
// benchmark tables.
package stats

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/simreport/simreport/pkg/table"
)

// Summary describes the samples of one group.
type Summary struct {
	Mean  float64
	Std   float64
	Count int
	// SEM is the standard error of the mean: Std / sqrt(Count).
	SEM float64
}

// Empty reports whether the summary has no samples behind it.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// EmptySummary is the summary of a group with no samples.
func EmptySummary() Summary {
	return Summary{Mean: math.NaN(), Std: math.NaN(), SEM: math.NaN()}
}

// Summarize computes the summary of values, ignoring NaNs. A single sample
// has a standard deviation and standard error of zero.
func Summarize(values []float64) Summary {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}

	switch len(data) {
	case 0:
		return EmptySummary()
	case 1:
		return Summary{Mean: data[0], Count: 1}
	}

	mean, _ := stats.Mean(data)
	std, _ := stats.StandardDeviationSample(data)
	return Summary{
		Mean:  mean,
		Std:   std,
		Count: len(data),
		SEM:   std / math.Sqrt(float64(len(data))),
	}
}

// Group is the summary of the rows sharing the same key values.
type Group struct {
	Keys []string
	Summary
}

// GroupBy groups the rows of t by the values of the key columns and
// summarizes column y within each group. Groups are returned in order of first
// appearance. Rows with an empty key are ignored, as are empty y cells.
func GroupBy(t *table.Table, keys []string, y string) ([]Group, error) {
	if err := t.Require(append(slices.Clone(keys), y)...); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []Group
	var samples [][]float64

rows:
	for i := 0; i < t.Len(); i++ {
		k := make([]string, len(keys))
		for j, col := range keys {
			k[j] = t.String(i, col)
			if k[j] == "" {
				continue rows
			}
		}

		v, err := t.Float(i, y)
		if err != nil {
			return nil, err
		}

		id := joinKey(k)
		gi, ok := index[id]
		if !ok {
			gi = len(groups)
			index[id] = gi
			groups = append(groups, Group{Keys: k})
			samples = append(samples, nil)
		}
		samples[gi] = append(samples[gi], v)
	}

	for i := range groups {
		groups[i].Summary = Summarize(samples[i])
	}
	return groups, nil
}

// Reindex returns one group for every (x, hue) pair of the cross product of
// xs and hues, x-major. Groups are looked up by their first two keys and
// missing combinations get an EmptySummary.
func Reindex(groups []Group, xs, hues []string) []Group {
	byKey := make(map[string]Summary, len(groups))
	for _, g := range groups {
		if len(g.Keys) >= 2 {
			byKey[joinKey(g.Keys[:2])] = g.Summary
		}
	}

	out := make([]Group, 0, len(xs)*len(hues))
	for _, x := range xs {
		for _, h := range hues {
			s, ok := byKey[joinKey([]string{x, h})]
			if !ok {
				s = EmptySummary()
			}
			out = append(out, Group{Keys: []string{x, h}, Summary: s})
		}
	}
	return out
}

// Normalize divides the mean and SEM of every group by the largest mean of
// the groups sharing its key at hueIndex.
func Normalize(groups []Group, hueIndex int) []Group {
	maxByHue := make(map[string]float64)
	for _, g := range groups {
		h := g.Keys[hueIndex]
		if math.IsNaN(g.Mean) {
			continue
		}
		if m, ok := maxByHue[h]; !ok || g.Mean > m {
			maxByHue[h] = g.Mean
		}
	}

	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Keys: slices.Clone(g.Keys), Summary: g.Summary}
		m, ok := maxByHue[g.Keys[hueIndex]]
		if !ok || m == 0 {
			out[i].Mean, out[i].SEM = math.NaN(), math.NaN()
			continue
		}
		out[i].Mean = g.Mean / m
		out[i].SEM = g.SEM / m
	}
	return out
}

// MeanRange returns the smallest and largest non-NaN mean. ok is false when
// every mean is NaN.
func MeanRange(groups []Group) (lo, hi float64, ok bool) {
	for _, g := range groups {
		if math.IsNaN(g.Mean) {
			continue
		}
		if !ok {
			lo, hi, ok = g.Mean, g.Mean, true
			continue
		}
		lo = math.Min(lo, g.Mean)
		hi = math.Max(hi, g.Mean)
	}
	return lo, hi, ok
}

// SortByMean sorts groups by ascending mean, then by keys. NaN means sort
// last.
func SortByMean(groups []Group) {
	slices.SortStableFunc(groups, func(a, b Group) int {
		an, bn := math.IsNaN(a.Mean), math.IsNaN(b.Mean)
		switch {
		case an && bn:
		case an:
			return 1
		case bn:
			return -1
		default:
			if c := cmp.Compare(a.Mean, b.Mean); c != 0 {
				return c
			}
		}
		return slices.Compare(a.Keys, b.Keys)
	})
}

// AverageBy collapses groups sharing the key at keyIndex into a single group.
// Its mean is the average of the group means and its SEM is the root sum of
// squares of the group SEMs divided by the number of groups. Count is the
// total number of samples. The result is in order of first appearance.
func AverageBy(groups []Group, keyIndex int) []Group {
	index := make(map[string]int)
	var keys []string
	var members [][]Group
	for _, g := range groups {
		if g.Empty() {
			continue
		}
		k := g.Keys[keyIndex]
		i, ok := index[k]
		if !ok {
			i = len(keys)
			index[k] = i
			keys = append(keys, k)
			members = append(members, nil)
		}
		members[i] = append(members[i], g)
	}

	out := make([]Group, len(keys))
	for i, k := range keys {
		var sum, sumSq float64
		var count int
		for _, m := range members[i] {
			sum += m.Mean
			sumSq += m.SEM * m.SEM
			count += m.Count
		}
		n := float64(len(members[i]))
		out[i] = Group{
			Keys: []string{k},
			Summary: Summary{
				Mean:  sum / n,
				Std:   math.NaN(),
				Count: count,
				SEM:   math.Sqrt(sumSq) / n,
			},
		}
	}
	return out
}

func joinKey(keys []string) string {
	return strings.Join(keys, "\x00")
}
