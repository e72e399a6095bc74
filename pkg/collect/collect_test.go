// SPDX-License-Identifier: Apache-2.0

package collect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simreport/simreport/internal/testutils"
	"github.com/simreport/simreport/pkg/collect"
	"github.com/simreport/simreport/pkg/logger"
)

func TestFromGlob(t *testing.T) {
	root := t.TempDir()
	header := []string{testutils.BranchColumn, testutils.RuntimeColumn}

	testutils.WriteCSV(t, filepath.Join(root, "run-a", "results.csv"), header,
		[]string{"main", "10"},
		[]string{"dev", "12"},
	)
	testutils.WriteCSV(t, filepath.Join(root, "run-b", "b.csv"), header,
		[]string{"main", "20"},
	)
	// Only the first CSV in lexical order is read.
	testutils.WriteCSV(t, filepath.Join(root, "run-b", "z.csv"), header,
		[]string{"ignored", "99"},
	)
	// A directory without a CSV contributes nothing.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "run-c"), 0o755))
	testutils.WriteFile(t, filepath.Join(root, "run-c", "notes.txt"), "nothing here")
	// Files matching the glob are ignored.
	testutils.WriteFile(t, filepath.Join(root, "run-d.csv"), "branch\nx\n")

	tbl, err := collect.FromGlob(filepath.Join(root, "run-*"), logger.NewNoopLogger())
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"run-a", "run-b"}, tbl.Unique(collect.FolderColumn))
	assert.Equal(t, []string{"main", "dev"}, tbl.Unique(testutils.BranchColumn))
}

func TestFromGlobNoMatches(t *testing.T) {
	tbl, err := collect.FromGlob(filepath.Join(t.TempDir(), "missing-*"), logger.NewNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestFromTree(t *testing.T) {
	root := t.TempDir()
	header := []string{testutils.BranchColumn, testutils.RuntimeColumn}

	testutils.WriteCSV(t, filepath.Join(root, "SIMD_local_20240115103000", "Traffic-Grid", "runs.csv"), header,
		[]string{"main", "10"},
	)
	testutils.WriteCSV(t, filepath.Join(root, "cluster_20240116103000", "traffic_big", "runs.csv"), header,
		[]string{"dev", "7"},
	)
	testutils.WriteCSV(t, filepath.Join(root, "cluster_20240116103000", "pcs", "runs.csv"), header,
		[]string{"dev", "3"},
	)

	tests := []struct {
		Name     string
		Keywords []string
		Rows     int
		Paths    []string
	}{
		{
			Name:     "single keyword is case insensitive",
			Keywords: []string{"TRAFFIC"},
			Rows:     2,
			Paths:    []string{"SIMD_local", "cluster"},
		},
		{
			Name:     "all keywords must match",
			Keywords: []string{"traffic", "big"},
			Rows:     1,
			Paths:    []string{"cluster"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			tbl, err := collect.FromTree(root, tt.Keywords, logger.NewNoopLogger())
			require.NoError(t, err)
			require.NotNil(t, tbl)

			assert.Equal(t, tt.Rows, tbl.Len())
			assert.ElementsMatch(t, tt.Paths, tbl.Unique(collect.PathColumn))
		})
	}
}

func TestFromTreeNoMatch(t *testing.T) {
	root := t.TempDir()
	testutils.WriteCSV(t, filepath.Join(root, "run", "pcs", "runs.csv"), []string{"branch"}, []string{"main"})

	tbl, err := collect.FromTree(root, []string{"epidemic-10k"}, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.Nil(t, tbl)
}
