// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/simreport/simreport/pkg/plotconfig"
)

func configCmd() *cobra.Command {
	var useJSON bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective chart configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			w := plotconfig.NewWriter(cmd.OutOrStdout(), plotconfig.NewFormat(useJSON))
			return w.Write(cfg)
		},
	}

	configCmd.Flags().BoolVarP(&useJSON, "json", "j", false, "output in JSON format instead of YAML")

	return configCmd
}
