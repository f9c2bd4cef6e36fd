// Package main provides the CLI entry point for cutoffs-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/cutoffs-go/internal/config"
	"github.com/ukaji3/cutoffs-go/internal/logging"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/reference"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cutoffs [workbook.xlsx ...]",
		Short: "Extract admission cutoff ranks from Excel files",
		Long: `cutoffs reads KCET cutoff workbooks (every *.xlsx in the input directory,
or the files given as arguments), normalizes institute, course and category
labels, and writes one consolidated JSON report.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "Directory searched for workbooks")
	flags.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Output file path")
	flags.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Workbook file name pattern")
	flags.StringVar(&cfg.TablesFile, "tables", cfg.TablesFile, "Reference tables YAML (default: embedded)")
	flags.BoolVar(&cfg.Summary, "summary", cfg.Summary, "Print summary statistics")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	tables := reference.Default()
	if cfg.TablesFile != "" {
		if tables, err = reference.Load(cfg.TablesFile); err != nil {
			return err
		}
	}
	logger.Debug("reference tables loaded",
		slog.String("version", tables.Version),
		slog.Int("institutes", len(tables.Institutes)),
		slog.Int("courses", len(tables.Courses)))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := cutoffs.Run(ctx, cutoffs.BatchOptions{
		Options: cutoffs.Options{
			Tables: tables,
			Logger: logger,
		},
		InputDir:   cfg.InputDir,
		Pattern:    cfg.Pattern,
		Files:      args,
		OutputPath: cfg.OutputPath,
	})
	if errors.Is(err, cutoffs.ErrNoInputFiles) {
		logger.Error("no Excel files found", slog.String("input_dir", cfg.InputDir), slog.String("pattern", cfg.Pattern))
		return nil
	}
	if err != nil {
		logger.Error("extraction failed", slog.String("error", err.Error()))
		return err
	}

	stats, err := summary.Compute(report.Cutoffs)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}
	summary.Log(logger, stats)
	if cfg.Summary {
		return summary.Render(cmd.OutOrStdout(), stats)
	}
	return nil
}

