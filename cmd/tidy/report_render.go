package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"tidy/internal/organizer"
)

// renderReport formats the report as a rounded table on terminals and as
// plain one-line-per-entry output everywhere else, so piped output stays
// grep-friendly.
func renderReport(w io.Writer, report *organizer.Report) string {
	if len(report.Results) == 0 {
		return ""
	}
	if isTerminal(w) {
		return renderTable(report)
	}
	return renderPlain(report)
}

func renderTable(report *organizer.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Category", "Destination", "Outcome"})

	for _, result := range report.Results {
		tw.AppendRow(table.Row{
			result.Entry.Name,
			result.Category,
			relativeDestination(report.TargetDir, result),
			outcomeCell(result),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderPlain(report *organizer.Report) string {
	lines := make([]string, 0, len(report.Results))
	for _, result := range report.Results {
		lines = append(lines, plainLine(report.TargetDir, result))
	}
	return strings.Join(lines, "\n")
}

func plainLine(targetDir string, result organizer.Result) string {
	name := result.Entry.Name
	switch result.Outcome {
	case organizer.OutcomeFailed:
		return fmt.Sprintf("%s: failed: %s", name, result.Reason)
	case organizer.OutcomeSkipped:
		if result.Action == organizer.ActionSkipDir {
			return fmt.Sprintf("%s: skipped (directory)", name)
		}
		return fmt.Sprintf("%s: skipped (already organized)", name)
	case organizer.OutcomePlanned:
		return fmt.Sprintf("%s -> %s (planned)", name, relativeDestination(targetDir, result))
	default:
		return fmt.Sprintf("%s -> %s", name, relativeDestination(targetDir, result))
	}
}

func outcomeCell(result organizer.Result) string {
	if result.Outcome == organizer.OutcomeFailed {
		return "failed: " + result.Reason
	}
	if result.Outcome == organizer.OutcomeSkipped && result.Action == organizer.ActionSkipDir {
		return "skipped (directory)"
	}
	if result.Outcome == organizer.OutcomeSkipped {
		return "skipped (already organized)"
	}
	return result.Outcome.String()
}

func relativeDestination(targetDir string, result organizer.Result) string {
	if result.Destination == "" {
		return ""
	}
	rel, err := filepath.Rel(targetDir, result.Destination)
	if err != nil {
		return result.Destination
	}
	return rel
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
