// Package main hosts the par2r CLI entrypoint and command graph.
//
// Each archive action (create, verify, repair) is a Cobra subcommand taking a
// single directory argument. The command resolves configuration, runs the
// preflight checks, hands the tree to the runner, and prints one status line
// per target directory on stdout. Diagnostic logging goes to stderr and, when
// logging.dir is set, to a per-run log file.
//
// Keep this package lean: behaviour belongs in the internal packages and is
// surfaced here through flags and output formatting.
package main
