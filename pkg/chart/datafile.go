// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
)

// DataTable is the plain text dump written next to each chart.
type DataTable struct {
	Title  string
	Header []string
	Rows   [][]string
}

// FormatFloat renders a statistic for a data dump. NaN is written as "NaN".
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTo writes the table with aligned columns.
func (d *DataTable) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Data for plot: %s\n", d.Title)

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(d.Header, "\t"))
	for _, row := range d.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// WriteFile writes the table to path, creating parent directories.
func (d *DataTable) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var sb strings.Builder
	if _, err := d.WriteTo(&sb); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
