// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simreport/simreport/cmd/flags"
	"github.com/simreport/simreport/pkg/aggregate"
)

func chartsCmd() *cobra.Command {
	chartsCmd := &cobra.Command{
		Use:       "charts <input-glob>",
		Short:     "Aggregate the CSV results of matching run directories into bar charts",
		Example:   `charts "results/logs/run_*"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"input-glob"},
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger()
			l.LogCommandStart(cmd.Name(), args...)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a := aggregate.New(cfg.Plots,
				aggregate.WithLogger(l),
				aggregate.WithHTML(flags.HTML()),
			)
			res, err := a.Run(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to generate charts: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s (%d plots skipped)\n", len(res.Files), res.OutputDir, len(res.Skipped))
			l.LogCommandComplete(cmd.Name())
			return nil
		},
	}

	chartsCmd.Flags().Bool("html", true, "also write an interactive charts.html page")

	viper.BindPFlag("HTML", chartsCmd.Flags().Lookup("html"))

	return chartsCmd
}
