// SPDX-License-Identifier: Apache-2.0

// Package collect finds benchmark CSV files on disk and concatenates them
// into a single table, tagging each row with where it came from.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/simreport/simreport/internal/naming"
	"github.com/simreport/simreport/pkg/logger"
	"github.com/simreport/simreport/pkg/table"
)

const (
	// FolderColumn is added by FromGlob and holds the source directory name.
	FolderColumn = "Folder"
	// PathColumn is added by FromTree and holds the run type directory name
	// without its timestamp suffix.
	PathColumn = "path"
)

// FromGlob reads one CSV file from every directory matching pattern. The
// first `*.csv` file of a directory in lexical order is used and directories
// without one are skipped. Rows are tagged with FolderColumn.
func FromGlob(pattern string, l logger.Logger) (*table.Table, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	slices.Sort(matches)

	var tables []*table.Table
	for _, dir := range matches {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		csvFile, err := firstCSV(dir)
		if err != nil {
			return nil, err
		}
		if csvFile == "" {
			l.LogSourceSkipped(dir, "no csv file")
			continue
		}

		t, err := table.ReadFile(csvFile)
		if err != nil {
			return nil, err
		}
		t.Set(FolderColumn, filepath.Base(dir))
		l.LogSourceLoaded(csvFile, t.Len())
		tables = append(tables, t)
	}

	return table.Concat(tables...), nil
}

// FromTree walks root/<run type>/<model>/*.csv and reads every CSV whose
// model directory name contains all keywords, case-insensitively. Rows are
// tagged with PathColumn. It returns nil when nothing matched.
func FromTree(root string, keywords []string, l logger.Logger) (*table.Table, error) {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	runTypes, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var tables []*table.Table
	for _, runType := range runTypes {
		if !runType.IsDir() {
			continue
		}
		runTypePath := filepath.Join(root, runType.Name())

		models, err := os.ReadDir(runTypePath)
		if err != nil {
			return nil, fmt.Errorf("reading run type directory: %w", err)
		}
		for _, model := range models {
			if !model.IsDir() || !matchesAll(model.Name(), lowered) {
				continue
			}

			csvFiles, err := filepath.Glob(filepath.Join(runTypePath, model.Name(), "*.csv"))
			if err != nil {
				return nil, err
			}
			for _, csvFile := range csvFiles {
				t, err := table.ReadFile(csvFile)
				if err != nil {
					return nil, err
				}
				t.Set(PathColumn, naming.StripTimestamp(runType.Name()))
				l.LogSourceLoaded(csvFile, t.Len())
				tables = append(tables, t)
			}
		}
	}

	if len(tables) == 0 {
		return nil, nil
	}
	return table.Concat(tables...), nil
}

func matchesAll(name string, keywords []string) bool {
	name = strings.ToLower(name)
	for _, k := range keywords {
		if !strings.Contains(name, k) {
			return false
		}
	}
	return true
}

func firstCSV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading directory: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", nil
}
