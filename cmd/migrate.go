// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simreport/simreport/pkg/migrate"
)

func migrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:       "migrate <source> <destination>",
		Short:     "Copy a report's LaTeX, PDF and linked SVG files into a clean directory tree",
		Example:   "migrate results/completed_logs upload/completed_logs_big",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"source", "destination"},
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger()
			l.LogCommandStart(cmd.Name(), args...)

			res, err := migrate.Copy(args[0], args[1], l)
			if err != nil {
				return fmt.Errorf("failed to migrate %q: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d files, removed %d empty directories\n", len(res.Copied), len(res.Pruned))
			l.LogCommandComplete(cmd.Name())
			return nil
		},
	}

	return migrateCmd
}
