// Package report turns per-directory archive results into the lines, summary
// table, and JSON document par2r prints.
//
// Classify is the single place that maps (action, exit code) to an outcome.
// par2 exit codes are treated as an opaque contract: 0 is success, 1 and 2
// carry action-specific meaning, and archive.MissingArchiveCode marks a
// directory without an archive.
package report
