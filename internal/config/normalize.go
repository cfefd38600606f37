package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizePar2()
	c.normalizeScan()
	if err := c.normalizeRun(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePar2() {
	c.Par2.Binary = strings.TrimSpace(c.Par2.Binary)
	if c.Par2.Binary == "" {
		if value, ok := os.LookupEnv("PAR2_BINARY"); ok {
			c.Par2.Binary = strings.TrimSpace(value)
		}
	}
	if c.Par2.Binary == "" {
		c.Par2.Binary = defaultPar2Binary
	}
	c.Par2.Threads = strings.TrimSpace(c.Par2.Threads)
}

// normalizeScan trims and deduplicates extensions without folding case; a
// missing leading dot is added.
func (c *Config) normalizeScan() {
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = append([]string(nil), DefaultExtensions...)
	} else {
		exts := make([]string, 0, len(c.Scan.Extensions))
		seen := make(map[string]struct{}, len(c.Scan.Extensions))
		for _, ext := range c.Scan.Extensions {
			normalized := strings.TrimSpace(ext)
			if normalized == "" {
				continue
			}
			if !strings.HasPrefix(normalized, ".") {
				normalized = "." + normalized
			}
			if _, exists := seen[normalized]; exists {
				continue
			}
			seen[normalized] = struct{}{}
			exts = append(exts, normalized)
		}
		c.Scan.Extensions = exts
	}

	if len(c.Scan.ExcludeDirs) > 0 {
		dirs := make([]string, 0, len(c.Scan.ExcludeDirs))
		for _, dir := range c.Scan.ExcludeDirs {
			if trimmed := strings.TrimSpace(dir); trimmed != "" {
				dirs = append(dirs, trimmed)
			}
		}
		c.Scan.ExcludeDirs = dirs
	}
}

func (c *Config) normalizeRun() error {
	if c.Run.Jobs == 0 {
		c.Run.Jobs = defaultJobs
	}
	if strings.TrimSpace(c.Run.LockDir) == "" {
		c.Run.LockDir = defaultLockDir
	}
	var err error
	if c.Run.LockDir, err = expandPath(strings.TrimSpace(c.Run.LockDir)); err != nil {
		return fmt.Errorf("run.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
