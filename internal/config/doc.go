// Package config loads, normalizes, and validates par2r configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PAR2_BINARY. The Config type centralizes the knobs the CLI needs: how the
// par2 tool is invoked, which file extensions mark a directory as a target,
// how many directories run at once, and where logs and run locks live.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
