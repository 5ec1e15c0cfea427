// Package services defines shared error and context utilities consumed by the
// organizer core and the CLI.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures for
//     later classification.
//   - ExitCode, which translates a run error into the process exit status
//     (precondition failures on the target directory get a distinct code).
//   - Context helpers that stamp the run correlation identifier for logging.
//
// Use these helpers when wiring new behaviour so error handling and
// observability stay uniform across the tool.
package services
