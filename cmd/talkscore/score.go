package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	app "github.com/okian/talkscore/internal/app"
	"github.com/okian/talkscore/internal/config"
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/samples"
	"github.com/okian/talkscore/pkg/logger"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		duration float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score a transcript file or stdin",
		Long: `Score a transcript with the same engine the server uses. The transcript is
read from the named file, or from stdin when the file is omitted or "-".
Configuration comes from TALKSCORE_* variables and TALKSCORE_CONFIG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			text, err := readTranscript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			svc := app.New(
				app.WithLogger(logger.Get()),
				app.WithMinWords(cfg.MinWords),
				app.WithHistoryCapacity(1),
				app.WithDurations(cfg.DefaultDurationSeconds, cfg.MinDurationSeconds),
			)
			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Stop()

			var opts model.Options
			if cmd.Flags().Changed("duration") {
				opts = opts.WithDuration(duration)
			}

			res, err := svc.Score(ctx, text, opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), samples.RenderResult("Transcript Score", res))
			return nil
		},
	}

	cmd.Flags().Float64Var(&duration, "duration", 0, "Spoken duration in seconds (default from configuration)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func readTranscript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}
