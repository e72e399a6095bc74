// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simreport/simreport/cmd/flags"
	"github.com/simreport/simreport/pkg/logger"
	"github.com/simreport/simreport/pkg/plotconfig"
)

// Version is the simreport version, set at build time.
var Version = "development"

func init() {
	viper.SetEnvPrefix("SIMREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "simreport",
		Short:        "Aggregate simulation benchmark results into charts and LaTeX reports",
		SilenceUsage: true,
		Version:      Version,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON chart configuration file replacing the built-in defaults")

	viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("CONFIG", rootCmd.PersistentFlags().Lookup("config"))

	return rootCmd
}

// Prepare builds the root command with every subcommand registered.
func Prepare() *cobra.Command {
	rootCmd := newRootCmd()

	rootCmd.AddCommand(chartsCmd())
	rootCmd.AddCommand(histogramCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(rewritePathsCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// Execute executes the root command. An interrupt cancels the command's
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return Prepare().ExecuteContext(ctx)
}

func newLogger() logger.Logger {
	return logger.NewLogger(logger.ParseLevel(flags.LogLevel()))
}

func loadConfig() (*plotconfig.Config, error) {
	return plotconfig.Load(flags.ConfigFile())
}
