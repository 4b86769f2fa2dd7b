package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/okian/talkscore/internal/samples"
	"github.com/spf13/cobra"
)

const (
	defaultBaseURL = "http://localhost:9080"
	defaultTimeout = 30 * time.Second
)

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Work with the seed sample transcripts",
	}
	cmd.AddCommand(newSamplesRunCmd(), newSamplesExportCmd())
	return cmd
}

func newSamplesRunCmd() *cobra.Command {
	var (
		baseURL string
		workers int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Submit the seed samples to a running server and verify the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client := samples.NewClient(baseURL, samples.WithTimeout(timeout))

			if err := client.Health(ctx); err != nil {
				return fmt.Errorf("service health check failed: %w", err)
			}

			outcomes := samples.Run(ctx, client, samples.All(), workers)
			fmt.Fprintln(cmd.OutOrStdout(), samples.RenderSummary(outcomes))
			return samples.Verify(outcomes)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", defaultBaseURL, "Base URL of the service")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of concurrent workers")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "HTTP request timeout")
	return cmd
}

func newSamplesExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the seed samples to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := samples.All()
			if err := samples.ExportFile(cmd.Context(), output, all, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d sample transcripts to %s\n", len(all), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", samples.DefaultExportFile, "Output file")
	return cmd
}
