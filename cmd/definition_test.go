// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCommandTree(t *testing.T) {
	def, err := Describe(Prepare())
	require.NoError(t, err)

	assert.Equal(t, "simreport", def.Name)

	args := make(map[string][]string)
	for _, c := range def.Commands {
		args[c.Name] = c.Args
	}
	assert.Equal(t, []string{"input-glob"}, args["charts"])
	assert.Equal(t, []string{"root-dir"}, args["histogram"])
	assert.Equal(t, []string{"root-dir"}, args["report"])
	assert.Equal(t, []string{"source", "destination"}, args["migrate"])
	assert.Equal(t, []string{"latex-file"}, args["rewrite-paths"])
	assert.Equal(t, []string{}, args["config"])

	var flags []string
	for _, f := range def.Flags {
		flags = append(flags, f.Name)
	}
	assert.ElementsMatch(t, []string{"log-level", "config"}, flags)
}

func TestDescribeArgsMismatch(t *testing.T) {
	tests := []struct {
		Name    string
		Command *cobra.Command
		Want    ArgsMismatchError
	}{
		{
			Name:    "validator accepts more than named",
			Command: &cobra.Command{Use: "a", Args: cobra.ExactArgs(2), ValidArgs: []string{"x"}},
			Want:    ArgsMismatchError{Command: "a", Accepted: 2, Named: 1},
		},
		{
			Name:    "named args without validator",
			Command: &cobra.Command{Use: "b", ValidArgs: []string{"x"}},
			Want:    ArgsMismatchError{Command: "b", Named: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			root := &cobra.Command{Use: "root"}
			root.AddCommand(tt.Command)

			_, err := Describe(root)
			var mismatch ArgsMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.Want, mismatch)
		})
	}
}
