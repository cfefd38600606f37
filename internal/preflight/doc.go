// Package preflight provides readiness checks run before a scan starts.
//
// These checks run in two contexts:
//   - Every create/verify/repair run calls RunAll and refuses to scan when a
//     check fails, so a missing par2 binary or unreadable root is reported
//     once instead of once per directory.
//   - The CLI "par2r check" command prints each result.
package preflight
