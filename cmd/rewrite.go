// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simreport/simreport/cmd/flags"
	"github.com/simreport/simreport/pkg/migrate"
)

func rewritePathsCmd() *cobra.Command {
	rewriteCmd := &cobra.Command{
		Use:       "rewrite-paths <latex-file>",
		Short:     "Prefix every \\includesvg path of a LaTeX file",
		Example:   "rewrite-paths svg_collection.tex --prefix completed_logs_big",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"latex-file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := migrate.RewriteFile(args[0], flags.Prefix())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Modified content saved to %s\n", out)
			return nil
		},
	}

	rewriteCmd.Flags().String("prefix", migrate.DefaultPrefix, "directory prepended to every \\includesvg path")

	viper.BindPFlag("PREFIX", rewriteCmd.Flags().Lookup("prefix"))

	return rewriteCmd
}
