package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/ransomcheck/internal/config"
	"github.com/nao1215/ransomcheck/internal/listing"
	"github.com/nao1215/ransomcheck/internal/log"
	"github.com/nao1215/ransomcheck/internal/model"
	"github.com/nao1215/ransomcheck/internal/pipeline"
	"github.com/nao1215/ransomcheck/internal/report"
	"github.com/nao1215/ransomcheck/internal/transport"
	"github.com/spf13/cobra"
)

// runCheckCmd executes a check for the keywords file in args.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := transport.NewHTTPClient(cfg.ProxyAddress, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	fetcher := listing.NewFetcher(client,
		listing.WithMaxBodySize(cfg.MaxBodySize),
		listing.WithNoticeWriter(cmd.OutOrStdout()),
		listing.WithLogger(logger),
	)

	return runCheck(ctx, cfg, fetcher, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from the optional config file and flags.
// Flags given on the command line take precedence over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.KeywordsFile = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if cfg.ConfigFilePath != "" {
		file, err := config.LoadConfigFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", cfg.ConfigFilePath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", cfg.ConfigFilePath, err)
		}
	}

	flags := cmd.Flags()

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("markdown") {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runCheck executes the check pipeline and writes the report.
// Progress lines and the report go to stdout unless a report file is set.
func runCheck(ctx context.Context, cfg *config.Config, fetcher pipeline.EntryFetcher, stdout io.Writer, logger *slog.Logger) error {
	logger.Info("starting check",
		"keywordsFile", cfg.KeywordsFile,
		"proxy", cfg.ProxyAddress,
		"timeout", cfg.Timeout,
	)

	p := pipeline.NewCheck(fetcher,
		pipeline.WithLogger(logger),
		pipeline.WithProgress(stdout),
	)

	logger.Debug("pipeline ready", "steps", p.StepNames())

	run := model.NewRun(cfg.KeywordsFile)
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	return outputReport(cfg, run, stdout)
}

// outputReport writes the match report to the configured destination.
func outputReport(cfg *config.Config, run *model.Run, stdout io.Writer) error {
	output := stdout

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		output = f
	}

	if _, err := newReportWriter(cfg, output).Write(run); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.ReportFile != "" {
		fmt.Fprintf(stdout, "Report written to: %s\n", cfg.ReportFile)
	}
	return nil
}

// newReportWriter selects the report format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	if cfg.MarkdownReport {
		return report.NewMarkdownWriter(output)
	}
	return report.NewSimpleWriter(output)
}
