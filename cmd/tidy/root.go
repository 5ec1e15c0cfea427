package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/classify"
)

var version = "0.1.0"

func newRootCommand() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "tidy [directory]",
		Short: "Organize a directory's files into category subfolders",
		Long: fmt.Sprintf(`Tidy moves each file in a directory into a subfolder named after its
category, derived from the file extension. Unknown extensions go to %s.
Directories are left untouched, so running tidy again on an organized
directory changes nothing.

Categories: %s.`, classify.DefaultCategory, strings.Join(classify.Categories(), ", ")),
		Example: `  tidy ~/Downloads
  tidy --dry-run ~/Downloads
  tidy --json . | jq .summary`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runOrganize(cmd, target, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Preview planned moves without touching the filesystem")
	rootCmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit the report as JSON")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log verbosity (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")
	// Registered ahead of cobra's default so the shorthand is -V, not -v.
	rootCmd.Flags().BoolP("version", "V", false, "Print the version and exit")

	return rootCmd
}
