// SPDX-License-Identifier: Apache-2.0

// Package plotconfig describes which charts and histograms simreport
// generates. The built-in defaults can be replaced by a YAML or JSON file that
// is validated against an embedded JSON schema.
package plotconfig

import (
	"github.com/oapi-codegen/nullable"
)

const (
	RuntimeColumn  = "Simulation_Runtime_(secs.)"
	MemoryColumn   = "Average_Memory_Usage_(MB)"
	RollbackColumn = "Primary_Rollbacks"
	ThreadsColumn  = "Worker_Thread_Count"
	BranchColumn   = "branch"
	FolderColumn   = "Folder"
)

const (
	// DefaultLogScaleRatio is the max/min ratio of means above which a
	// log-scale chart is also rendered.
	DefaultLogScaleRatio = 1000.0
	// DefaultMinValue is the histogram floor: rows below it are dropped.
	DefaultMinValue = 5.0
	// DefaultTop is the number of groups kept in a histogram.
	DefaultTop = 15
)

type PlotType string

const (
	PlotTypeBar  PlotType = "bar"
	PlotTypeLine PlotType = "line"
)

// Config is the complete set of charts generated by simreport.
type Config struct {
	Plots      []PlotConfig      `json:"plots,omitempty"`
	Histograms []HistogramConfig `json:"histograms,omitempty"`
}

// PlotConfig describes one grouped bar chart of the charts command. GroupBy
// values are the categories on the x axis and X values the bars within each
// category.
type PlotConfig struct {
	Title   string   `json:"title"`
	GroupBy string   `json:"groupBy"`
	X       string   `json:"x"`
	Y       string   `json:"y"`
	Type    PlotType `json:"type"`
	Agg     string   `json:"agg,omitempty"`

	// LogScaleRatio is unspecified for the default, null to disable log
	// charts.
	LogScaleRatio nullable.Nullable[float64] `json:"logScaleRatio,omitempty"`
}

// LogScaleThreshold returns the effective log-scale ratio, and false when log
// charts are disabled.
func (p PlotConfig) LogScaleThreshold() (float64, bool) {
	return resolve(p.LogScaleRatio, DefaultLogScaleRatio)
}

// Columns returns the columns the plot needs.
func (p PlotConfig) Columns() []string {
	return []string{p.GroupBy, p.X, p.Y}
}

// HistogramConfig describes one ranked histogram of the histogram command.
type HistogramConfig struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Y        string   `json:"y"`
	Top      int      `json:"top,omitempty"`

	// MinValue is unspecified for the default floor, null to keep every row.
	MinValue nullable.Nullable[float64] `json:"minValue,omitempty"`
}

// Floor returns the effective minimum value, and false when no rows are
// filtered.
func (h HistogramConfig) Floor() (float64, bool) {
	return resolve(h.MinValue, DefaultMinValue)
}

// Limit returns the number of groups to keep.
func (h HistogramConfig) Limit() int {
	if h.Top <= 0 {
		return DefaultTop
	}
	return h.Top
}

func resolve(v nullable.Nullable[float64], def float64) (float64, bool) {
	if !v.IsSpecified() {
		return def, true
	}
	if v.IsNull() {
		return 0, false
	}
	return v.MustGet(), true
}

// Default returns the charts generated when no configuration file is given.
func Default() *Config {
	return &Config{
		Plots: []PlotConfig{
			{
				Title:   "Branch vs Simulation Time vs Branch",
				GroupBy: FolderColumn,
				X:       BranchColumn,
				Y:       RuntimeColumn,
				Type:    PlotTypeBar,
				Agg:     "mean",
			},
			{
				Title:   "Average Memory Usage vs Branch",
				GroupBy: FolderColumn,
				X:       BranchColumn,
				Y:       MemoryColumn,
				Type:    PlotTypeBar,
				Agg:     "mean",
			},
			{
				Title:   "Branch vs Primary Rollback",
				GroupBy: FolderColumn,
				X:       BranchColumn,
				Y:       RollbackColumn,
				Type:    PlotTypeBar,
				Agg:     "mean",
			},
			{
				Title:   "ThreadCount vs Sim Time",
				GroupBy: ThreadsColumn,
				X:       BranchColumn,
				Y:       RuntimeColumn,
				Type:    PlotTypeBar,
				Agg:     "mean",
			},
		},
		Histograms: []HistogramConfig{
			{Title: "TrafficPerformers", Keywords: []string{"traffic"}, Y: RuntimeColumn},
			{Title: "PCSPerformers", Keywords: []string{"pcs"}, Y: RuntimeColumn},
			{Title: "EpidemicPerformers", Keywords: []string{"epidemic-10k"}, Y: RuntimeColumn},
			{Title: "Epidemic100kPerformers", Keywords: []string{"epidemic-100k"}, Y: RuntimeColumn},
		},
	}
}
