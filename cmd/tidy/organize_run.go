package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/runlock"
)

type runOptions struct {
	dryRun    bool
	jsonOut   bool
	logLevel  string
	logFormat string
}

func runOrganize(cmd *cobra.Command, target string, opts runOptions) error {
	cfg, err := config.Resolve(target, opts.dryRun, opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	// Dry-runs touch nothing, so only live runs contend for the lock.
	if !cfg.DryRun {
		lock, err := runlock.Acquire(cfg.TargetDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release run lock", logging.Error(err))
			}
		}()
	}

	report, err := organizer.New(cfg, logger).Organize(cmd.Context())
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return writeJSON(cmd, newReportView(report))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Target: %s\n", report.TargetDir)
	if report.DryRun {
		fmt.Fprintln(out, "Mode:   DRY RUN (no changes will be made)")
	}
	if rendered := renderReport(out, report); rendered != "" {
		fmt.Fprintln(out, rendered)
	}
	fmt.Fprintln(out, summaryLine(report))
	return nil
}

func summaryLine(report *organizer.Report) string {
	skipped := report.SkippedDirs + report.SkippedOrganized
	if report.DryRun {
		return fmt.Sprintf("Done. %d planned, %d skipped, %d failed.", report.Planned, skipped, report.Failed)
	}
	return fmt.Sprintf("Done. %d moved, %d skipped, %d failed.", report.Moved, skipped, report.Failed)
}
