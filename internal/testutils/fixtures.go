// SPDX-License-Identifier: Apache-2.0

// Package testutils builds on-disk fixtures for the simreport tests.
package testutils

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Column names used by the benchmark CSV fixtures.
const (
	RuntimeColumn = "Simulation_Runtime_(secs.)"
	MemoryColumn  = "Average_Memory_Usage_(MB)"
	BranchColumn  = "branch"
)

// WriteCSV writes header and rows to path, creating parent directories.
func WriteCSV(tb testing.TB, path string, header []string, rows ...[]string) {
	tb.Helper()

	require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(tb, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(tb, w.Write(header))
	require.NoError(tb, w.WriteAll(rows))
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(tb testing.TB, path, content string) {
	tb.Helper()

	require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
}

// Call is a recorded invocation of FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// FakeRunner records external command invocations instead of running them.
// When Fail is set, its result is returned for each call.
type FakeRunner struct {
	Calls []Call
	Fail  func(Call) error
}

func (r *FakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	c := Call{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, c)
	if r.Fail != nil {
		return r.Fail(c)
	}
	return nil
}
