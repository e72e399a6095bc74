// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simreport/simreport/cmd/flags"
	"github.com/simreport/simreport/pkg/latex"
	"github.com/simreport/simreport/pkg/logger"
)

func reportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:       "report <root-dir>",
		Short:     "Collect the images under a directory into a LaTeX report and typeset it",
		Example:   "report results/completed_logs --format svg",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"root-dir"},
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger()
			l.LogCommandStart(cmd.Name(), args...)

			format, err := latex.ParseFormat(flags.ReportFormat())
			if err != nil {
				return err
			}
			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := requireDir(root); err != nil {
				return err
			}

			doc, err := latex.Build(root, format, l)
			if err != nil {
				return err
			}
			texFile, err := doc.WriteFile(root)
			if err != nil {
				return fmt.Errorf("failed to write LaTeX file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "LaTeX file created: %s\n", texFile)

			if flags.NoCompile() {
				return nil
			}
			return compileReport(cmd, root, format, l)
		},
	}

	reportCmd.Flags().String("format", string(latex.FormatPNG), "image format to collect: png or svg")
	reportCmd.Flags().String("engine", latex.DefaultEngine, "typesetting engine")
	reportCmd.Flags().Int("passes", latex.DefaultPasses, "number of typesetting passes")
	reportCmd.Flags().Bool("bibtex", false, "run bibtex after the first pass")
	reportCmd.Flags().Bool("no-compile", false, "only write the LaTeX file")

	viper.BindPFlag("FORMAT", reportCmd.Flags().Lookup("format"))
	viper.BindPFlag("ENGINE", reportCmd.Flags().Lookup("engine"))
	viper.BindPFlag("PASSES", reportCmd.Flags().Lookup("passes"))
	viper.BindPFlag("BIBTEX", reportCmd.Flags().Lookup("bibtex"))
	viper.BindPFlag("NO_COMPILE", reportCmd.Flags().Lookup("no-compile"))

	return reportCmd
}

// compileReport typesets the report. A missing or failing tool is reported
// but does not fail the command: the LaTeX file is still usable.
func compileReport(cmd *cobra.Command, root string, format latex.Format, l logger.Logger) error {
	var output io.Writer
	if lvl := logger.ParseLevel(flags.LogLevel()); lvl <= pterm.LogLevelDebug {
		output = os.Stderr
	}

	sp, _ := pterm.DefaultSpinner.WithText("Compiling report...").Start()
	c := latex.NewCompiler(
		latex.WithRunner(latex.ExecRunner{Output: output}),
		latex.WithEngine(flags.Engine()),
		latex.WithPasses(flags.Passes()),
		latex.WithBibtex(flags.Bibtex()),
		latex.WithCompilerLogger(l),
		latex.WithProgress(func(step string) {
			sp.UpdateText(fmt.Sprintf("Compiling report: %s...", step))
		}),
	)

	err := c.Compile(cmd.Context(), root, format)
	var compileErr *latex.CompileError
	switch {
	case err == nil:
		pdf := filepath.Join(root, format.BaseName()+".pdf")
		sp.Success(fmt.Sprintf("PDF file created: %s", pdf))
		return nil
	case errors.Is(err, latex.ErrToolNotFound):
		sp.Fail("Unable to create PDF: make sure LaTeX is installed and in your PATH")
		l.Error("typesetting tool not found", "error", err)
		return nil
	case errors.As(err, &compileErr):
		sp.Fail(fmt.Sprintf("Unable to create PDF: %s pass %d failed", compileErr.Tool, compileErr.Pass))
		l.Error("typesetting failed", "tool", compileErr.Tool, "pass", compileErr.Pass, "exit_code", compileErr.ExitCode)
		return nil
	default:
		sp.Fail("Unable to create PDF")
		return err
	}
}
