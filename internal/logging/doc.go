// Package logging assembles the structured slog loggers used across
// gfl-pages components.
//
// It centralizes level and format plumbing, picks console or JSON output
// based on the terminal, and exposes standardized attribute keys so the
// media store, importer, and API emit log lines with the same shape. A
// no-op logger is available for tests and wiring code that cannot fail.
package logging
