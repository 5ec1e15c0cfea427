package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tidy/internal/organizer"
)

type reportView struct {
	RunID   string      `json:"run_id"`
	Target  string      `json:"target"`
	DryRun  bool        `json:"dry_run"`
	Entries []entryView `json:"entries"`
	Summary summaryView `json:"summary"`
}

type entryView struct {
	Name        string `json:"name"`
	Extension   string `json:"extension,omitempty"`
	Category    string `json:"category,omitempty"`
	Action      string `json:"action"`
	Destination string `json:"destination,omitempty"`
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason,omitempty"`
}

type summaryView struct {
	Moved            int `json:"moved"`
	Planned          int `json:"planned"`
	SkippedDirs      int `json:"skipped_dirs"`
	SkippedOrganized int `json:"skipped_organized"`
	Failed           int `json:"failed"`
}

func newReportView(report *organizer.Report) reportView {
	view := reportView{
		RunID:   report.RunID,
		Target:  report.TargetDir,
		DryRun:  report.DryRun,
		Entries: make([]entryView, 0, len(report.Results)),
		Summary: summaryView{
			Moved:            report.Moved,
			Planned:          report.Planned,
			SkippedDirs:      report.SkippedDirs,
			SkippedOrganized: report.SkippedOrganized,
			Failed:           report.Failed,
		},
	}
	for _, result := range report.Results {
		view.Entries = append(view.Entries, entryView{
			Name:        result.Entry.Name,
			Extension:   result.Entry.Ext,
			Category:    result.Category,
			Action:      result.Action.String(),
			Destination: result.Destination,
			Outcome:     result.Outcome.String(),
			Reason:      result.Reason,
		})
	}
	return view
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
