package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePar2(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateRun(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePar2() error {
	if c.Par2.Binary == "" {
		return errors.New("par2.binary must be set")
	}
	if c.Par2.Redundancy < 1 || c.Par2.Redundancy > maxRedundancy {
		return fmt.Errorf("par2.redundancy must be between 1 and %d", maxRedundancy)
	}
	if c.Par2.RecoveryFiles < 0 {
		return errors.New("par2.recovery_files must be non-negative")
	}
	if c.Par2.QuietLevel < 0 || c.Par2.QuietLevel > maxQuietLevel {
		return fmt.Errorf("par2.quiet_level must be between 0 and %d", maxQuietLevel)
	}
	if c.Par2.TimeoutSeconds < 0 {
		return errors.New("par2.timeout_seconds must be non-negative")
	}
	if strings.ContainsAny(c.Par2.Threads, " \t") {
		return fmt.Errorf("par2.threads: unsupported value %q", c.Par2.Threads)
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	for _, dir := range c.Scan.ExcludeDirs {
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("scan.exclude_dirs: %q must be a directory name, not a path", dir)
		}
	}
	return nil
}

func (c *Config) validateRun() error {
	if c.Run.Jobs < 1 {
		return errors.New("run.jobs must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must be non-negative")
	}
	return nil
}
