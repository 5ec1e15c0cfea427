package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"tidy/internal/classify"
	"tidy/internal/config"
	"tidy/internal/fileutil"
	"tidy/internal/logging"
	"tidy/internal/services"
)

// Organizer plans and performs category moves for one target directory.
type Organizer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs an organizer for the supplied configuration.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	if logger != nil {
		logger = logger.With(logging.String(logging.FieldComponent, "organizer"))
	}
	return &Organizer{cfg: cfg, logger: logger}
}

// Organize scans the target directory once and processes every entry to
// completion before moving to the next. The returned report holds one result
// per discovered entry. Only target-directory preconditions abort the run;
// per-entry failures are absorbed into the report.
func (o *Organizer) Organize(ctx context.Context) (*Report, error) {
	target := o.cfg.TargetDir

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "organize", "inspect target", fmt.Sprintf("Directory %s does not exist", target), err)
		}
		return nil, services.Wrap(services.ErrTransient, "organize", "inspect target", "Failed to inspect target directory", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrValidation, "organize", "inspect target", fmt.Sprintf("%s is not a directory", target), nil)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "organize", "list entries", "Failed to list target directory", err)
	}

	report := &Report{
		RunID:     uuid.NewString(),
		TargetDir: target,
		DryRun:    o.cfg.DryRun,
	}

	logger := logging.WithContext(services.WithRunID(ctx, report.RunID), o.logger)
	logger.Info(
		"organizing directory",
		logging.String("target", target),
		logging.Bool("dry_run", o.cfg.DryRun),
		logging.Int("entries", len(entries)),
	)

	r := &run{org: o, logger: logger, report: report, claimed: make(map[string]struct{})}
	for _, entry := range entries {
		report.add(r.process(entry))
	}

	logger.Info(
		"organization finished",
		logging.Int("moved", report.Moved),
		logging.Int("planned", report.Planned),
		logging.Int("skipped_dirs", report.SkippedDirs),
		logging.Int("skipped_organized", report.SkippedOrganized),
		logging.Int("failed", report.Failed),
	)
	return report, nil
}

// run carries the per-invocation state: the destination paths claimed so far
// keep dry-run plans consistent with what a live run would do.
type run struct {
	org     *Organizer
	logger  *slog.Logger
	report  *Report
	claimed map[string]struct{}
}

func (r *run) process(entry fs.DirEntry) Result {
	target := r.org.cfg.TargetDir
	name := entry.Name()
	path := filepath.Join(target, name)

	if entry.IsDir() {
		r.logger.Debug("skipping directory", logging.String("name", name))
		return Result{
			Entry:   FileEntry{Name: name, Path: path},
			Action:  ActionSkipDir,
			Outcome: OutcomeSkipped,
		}
	}

	fe := FileEntry{Name: name, Ext: entryExtension(name), Path: path}
	category := classify.Classify(fe.Ext)
	destDir := filepath.Join(target, category)

	// Idempotence guard: a file already inside its category folder stays put.
	if filepath.Dir(path) == destDir {
		r.logger.Debug("already organized", logging.String("name", name), logging.String("category", category))
		return Result{Entry: fe, Action: ActionSkipOrganized, Category: category, Outcome: OutcomeSkipped}
	}

	if !r.org.cfg.DryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			r.logger.Warn("failed to create category folder", logging.String("name", name), logging.String("category", category), logging.Error(err))
			return Result{
				Entry:    fe,
				Action:   ActionMove,
				Category: category,
				Outcome:  OutcomeFailed,
				Reason:   fmt.Sprintf("create %s folder: %v", category, err),
			}
		}
	}

	dest, err := nextAvailablePath(destDir, name, r.claimed)
	if err != nil {
		r.logger.Warn("failed to resolve destination name", logging.String("name", name), logging.Error(err))
		return Result{
			Entry:    fe,
			Action:   ActionMove,
			Category: category,
			Outcome:  OutcomeFailed,
			Reason:   fmt.Sprintf("resolve destination: %v", err),
		}
	}
	r.claimed[dest] = struct{}{}

	if r.org.cfg.DryRun {
		r.logger.Info(
			"planned move",
			logging.String("file", name),
			logging.String("category", category),
			logging.String("destination", dest),
		)
		return Result{Entry: fe, Action: ActionMove, Category: category, Destination: dest, Outcome: OutcomePlanned}
	}

	if err := fileutil.MoveFile(path, dest); err != nil {
		r.logger.Warn("failed to move file", logging.String("file", name), logging.String("destination", dest), logging.Error(err))
		return Result{
			Entry:    fe,
			Action:   ActionMove,
			Category: category,
			Outcome:  OutcomeFailed,
			Reason:   fmt.Sprintf("move to %s: %v", category, err),
		}
	}

	r.logger.Info(
		"moved file",
		logging.String("file", name),
		logging.String("category", category),
		logging.String("destination", dest),
	)
	return Result{Entry: fe, Action: ActionMove, Category: category, Destination: dest, Outcome: OutcomeMoved}
}
