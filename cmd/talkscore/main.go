// Command talkscore scores transcripts offline and drives the seed samples
// against a running server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/talkscore/pkg/logger"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   "talkscore",
		Short: "Score spoken self-introduction transcripts",
		Long: `talkscore scores self-introduction transcripts against a fixed rubric.

Examples:
  talkscore score intro.txt --duration 35
  echo "..." | talkscore score --json
  talkscore samples run --url http://localhost:9080
  talkscore samples export --output samples.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(logger.WithFormat(logFormat), logger.WithWriter(errOut)); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			return logger.SetLevelString(logLevel)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatText, "Log format (text|json)")

	root.AddCommand(newScoreCmd(), newSamplesCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "talkscore "+version)
		},
	}
}
