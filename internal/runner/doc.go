// Package runner drives one par2r invocation: it locks the root, scans it
// for target directories, and dispatches the chosen archive operation to
// each of them.
//
// Directories run one at a time by default. With run.jobs above one they run
// on a bounded errgroup pool; results are still returned in scan order. A
// per-directory failure never stops the run. Cancellation of the context
// stops dispatching new directories and is returned as the run error.
package runner
