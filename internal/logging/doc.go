// Package logging builds the structured slog loggers used across par2r.
//
// Two formats are supported: a compact single-line console format meant for
// humans ("ts LEVEL component: message key=value") and JSON with stable
// ts/level/msg keys for machine consumption. Diagnostic logs default to
// stderr so the per-directory report on stdout stays clean; a per-run log
// file can be added via the logging.dir setting and is pruned by age.
//
// Context helpers attach the run identifier and target directory so every
// line emitted while processing a directory can be correlated.
package logging
