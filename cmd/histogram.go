// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simreport/simreport/cmd/flags"
	"github.com/simreport/simreport/pkg/histogram"
)

func histogramCmd() *cobra.Command {
	histogramCmd := &cobra.Command{
		Use:       "histogram <root-dir>",
		Short:     "Rank the runs of every model and chart the top performers",
		Example:   "histogram results/completed_logs",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"root-dir"},
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger()
			l.LogCommandStart(cmd.Name(), args...)

			mode, err := histogram.ParseMode(flags.HistogramMode())
			if err != nil {
				return err
			}
			if err := requireDir(args[0]); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			g := histogram.New(cfg.Histograms,
				histogram.WithLogger(l),
				histogram.WithMode(mode),
			)
			res, err := g.Run(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to generate histograms: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(res.Files), res.OutputDir)
			l.LogCommandComplete(cmd.Name())
			return nil
		},
	}

	histogramCmd.Flags().String("mode", string(histogram.ModePerPath), "grouping mode: per-path or branch-average")

	viper.BindPFlag("MODE", histogramCmd.Flags().Lookup("mode"))

	return histogramCmd
}
