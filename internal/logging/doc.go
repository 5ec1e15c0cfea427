// Package logging assembles structured slog loggers and formatting helpers.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context-aware helpers so core code can automatically tag log lines
// with the run correlation ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
