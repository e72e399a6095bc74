// SPDX-License-Identifier: Apache-2.0

package table_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simreport/simreport/pkg/table"
)

const sampleCSV = `branch,Simulation_Runtime_(secs.),Average_Memory_Usage_(MB)
main,10.5,120
main,11.5,
feature,9,100
`

func TestRead(t *testing.T) {
	tbl, err := table.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"branch", "Simulation_Runtime_(secs.)", "Average_Memory_Usage_(MB)"}, tbl.Columns())

	v, err := tbl.Float(0, "Simulation_Runtime_(secs.)")
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = tbl.Float(1, "Average_Memory_Usage_(MB)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestReadEmpty(t *testing.T) {
	tbl, err := table.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Columns())
}

func TestFloatParseError(t *testing.T) {
	tbl, err := table.Read(strings.NewReader("branch,runtime\nmain,fast\n"))
	require.NoError(t, err)

	_, err = tbl.Float(0, "runtime")
	var parseErr *table.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "runtime", parseErr.Column)
	assert.Equal(t, "fast", parseErr.Value)
}

func TestReadStripsByteOrderMark(t *testing.T) {
	tbl, err := table.Read(strings.NewReader("\ufeffbranch,rt\nmain,1\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"branch", "rt"}, tbl.Columns())
	assert.True(t, tbl.HasColumn("branch"))
	assert.Equal(t, "main", tbl.String(0, "branch"))
}

func TestReadRenamesDuplicateColumns(t *testing.T) {
	tbl, err := table.Read(strings.NewReader("a,a,b,a\n1,2,3,4\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a.1", "b", "a.2"}, tbl.Columns())
	assert.Equal(t, "1", tbl.String(0, "a"))
	assert.Equal(t, "2", tbl.String(0, "a.1"))
	assert.Equal(t, "4", tbl.String(0, "a.2"))
}

func TestFloatMissingValueMarkers(t *testing.T) {
	markers := []string{"NA", "N/A", "n/a", "null", "NULL", "#N/A", "None", "<NA>", "nan", "-nan"}

	for _, m := range markers {
		t.Run(m, func(t *testing.T) {
			tbl := table.New("rt")
			tbl.Append(map[string]string{"rt": m})

			v, err := tbl.Float(0, "rt")
			require.NoError(t, err)
			assert.True(t, math.IsNaN(v))
		})
	}
}

func TestRequire(t *testing.T) {
	tbl := table.New("branch", "Folder")

	assert.NoError(t, tbl.Require("branch", "Folder"))

	err := tbl.Require("branch", "runtime", "memory", "runtime")
	var missing *table.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"runtime", "memory"}, missing.Missing)
	assert.Equal(t, []string{"branch", "Folder"}, missing.Available)
	assert.Contains(t, err.Error(), `"runtime"`)
}

func TestConcat(t *testing.T) {
	a := table.New("branch", "runtime")
	a.Append(map[string]string{"branch": "main", "runtime": "1"})
	a.Set("Folder", "a")

	b := table.New("branch", "memory")
	b.Append(map[string]string{"branch": "dev", "memory": "2"})
	b.Set("Folder", "b")

	c := table.Concat(a, nil, b)
	assert.Equal(t, []string{"branch", "runtime", "Folder", "memory"}, c.Columns())
	require.Equal(t, 2, c.Len())

	assert.Equal(t, "a", c.String(0, "Folder"))
	assert.Equal(t, "", c.String(0, "memory"))
	assert.Equal(t, "b", c.String(1, "Folder"))
	assert.Equal(t, "2", c.String(1, "memory"))
	assert.Equal(t, "", c.String(1, "runtime"))
}

func TestUniqueKeepsFirstAppearanceOrder(t *testing.T) {
	tbl := table.New("branch")
	for _, b := range []string{"zeta", "alpha", "zeta", "", "beta", "alpha"} {
		tbl.Append(map[string]string{"branch": b})
	}
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, tbl.Unique("branch"))
}

func TestFilter(t *testing.T) {
	tbl, err := table.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	out, err := tbl.Filter(func(i int) (bool, error) {
		return tbl.String(i, "branch") == "main", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, 3, tbl.Len())
}
