package testsupport

import (
	"path/filepath"
	"testing"

	"par2r/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Run.LockDir = filepath.Join(base, "locks")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithJobs sets the worker count on the test config.
func WithJobs(jobs int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.Jobs = jobs
	}
}

// WithPar2Binary overrides the par2 executable on the test config.
func WithPar2Binary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Par2.Binary = binary
	}
}

// WithLogDir enables per-run log files under the config's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}
