// SPDX-License-Identifier: Apache-2.0

// Package table is a minimal in-memory representation of benchmark CSV
// files: ordered columns, string cells and on-demand numeric parsing.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

const byteOrderMark = "\ufeff"

// missingValues are the cell contents read as missing numbers, the same set
// pandas treats as NA by default.
var missingValues = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// Table holds the rows of one or more benchmark CSV files.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

// Read parses CSV data with a header row.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := New()
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}
	for _, h := range header {
		t.addColumn(uniqueName(t.index, strings.TrimSpace(h)))
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if len(record) > len(t.columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields for %d columns", line, len(record), len(t.columns))
		}
		row := make([]string, len(t.columns))
		copy(row, record)
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// ReadFile reads the CSV file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// uniqueName returns name, or name.1, name.2, ... when name is already taken.
func uniqueName(taken map[string]int, name string) string {
	if _, ok := taken[name]; !ok {
		return name
	}
	for n := 1; ; n++ {
		candidate := name + "." + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func (t *Table) addColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
	return len(t.columns) - 1
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require checks that every named column is present. The returned error is a
// *MissingColumnsError listing all absent columns.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.HasColumn(c) && !slices.Contains(missing, c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnsError{Missing: missing, Available: t.Columns()}
}

// Set assigns value to column for every row, adding the column if needed.
func (t *Table) Set(column, value string) {
	i := t.addColumn(column)
	for _, row := range t.rows {
		row[i] = value
	}
}

// Append adds a row. Values are matched to columns by name and unknown
// columns are added.
func (t *Table) Append(values map[string]string) {
	row := make([]string, len(t.columns))
	t.rows = append(t.rows, row)
	for k, v := range values {
		i := t.addColumn(k)
		t.rows[len(t.rows)-1][i] = v
	}
}

// String returns the cell at row i, column name. Unknown columns read as
// empty.
func (t *Table) String(i int, column string) string {
	c, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[i][c]
}

// Float parses the cell at row i, column name. Empty cells and the usual
// missing-value markers (NA, N/A, null, ...) are NaN.
func (t *Table) Float(i int, column string) (float64, error) {
	s := strings.TrimSpace(t.String(i, column))
	if s == "" {
		return math.NaN(), nil
	}
	if _, ok := missingValues[s]; ok {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Column: column, Row: i, Value: s, Err: err}
	}
	return v, nil
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(i int) (bool, error)) (*Table, error) {
	out := New(t.columns...)
	for i, row := range t.rows {
		ok, err := keep(i)
		if err != nil {
			return nil, err
		}
		if ok {
			out.rows = append(out.rows, slices.Clone(row))
		}
	}
	return out, nil
}

// Unique returns the distinct non-empty values of column in order of first
// appearance.
func (t *Table) Unique(column string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range t.rows {
		v := t.String(i, column)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Concat stacks tables vertically. The result has the union of all columns
// in order of first appearance. Cells of columns a table lacks are empty.
func Concat(tables ...*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.columns {
			out.addColumn(c)
		}
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, row := range t.rows {
			r := make([]string, len(out.columns))
			for j, v := range row {
				r[out.index[t.columns[j]]] = v
			}
			out.rows = append(out.rows, r)
		}
	}
	return out
}
