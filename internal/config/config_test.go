package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"par2r/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("PAR2_BINARY", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "par2r", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLockDir := filepath.Join(tempHome, ".local", "state", "par2r", "locks")
	if cfg.Run.LockDir != wantLockDir {
		t.Fatalf("unexpected lock dir: got %q want %q", cfg.Run.LockDir, wantLockDir)
	}
	if cfg.Par2.Binary != "par2" {
		t.Fatalf("unexpected par2 binary: %q", cfg.Par2.Binary)
	}
	if cfg.Par2.Redundancy != 10 || cfg.Par2.RecoveryFiles != 1 || cfg.Par2.QuietLevel != 2 || cfg.Par2.Threads != "+" {
		t.Fatalf("unexpected par2 defaults: %+v", cfg.Par2)
	}
	if diff := cmp.Diff(config.DefaultExtensions, cfg.Scan.Extensions); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}
	if cfg.Run.Jobs != 1 {
		t.Fatalf("expected a single job by default, got %d", cfg.Run.Jobs)
	}
	if cfg.Run.IgnoreFailures {
		t.Fatal("expected failures to affect exit status by default")
	}
	if cfg.Logging.Dir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Logging.Dir)
	}
	if cfg.Par2Timeout() != 0 {
		t.Fatalf("expected no timeout by default, got %s", cfg.Par2Timeout())
	}
}

func TestLoadCustomConfigOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "par2r.toml")
	content := `
[par2]
binary = "/opt/par2/bin/par2"
redundancy = 25
timeout_seconds = 90

[scan]
extensions = ["CR2", ".jpg", " .jpg ", ".NEF"]
exclude_dirs = [" @eaDir "]

[run]
jobs = 4
lock_dir = "~/locks"
ignore_failures = true

[logging]
format = "JSON"
level = "DEBUG"
dir = "~/logs"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected explicit config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Par2.Binary != "/opt/par2/bin/par2" || cfg.Par2.Redundancy != 25 {
		t.Fatalf("unexpected par2 section: %+v", cfg.Par2)
	}
	if got := cfg.Par2Timeout().String(); got != "1m30s" {
		t.Fatalf("unexpected timeout: %s", got)
	}
	if diff := cmp.Diff([]string{".CR2", ".jpg", ".NEF"}, cfg.Scan.Extensions); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"@eaDir"}, cfg.Scan.ExcludeDirs); diff != "" {
		t.Fatalf("exclude dirs mismatch (-want +got):\n%s", diff)
	}
	if cfg.Run.Jobs != 4 || !cfg.Run.IgnoreFailures {
		t.Fatalf("unexpected run section: %+v", cfg.Run)
	}
	if cfg.Run.LockDir != filepath.Join(tempHome, "locks") {
		t.Fatalf("unexpected lock dir: %q", cfg.Run.LockDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.Logging.Dir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Logging.Dir)
	}
}

func TestLoadUsesPar2BinaryFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAR2_BINARY", "par2tbb")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[par2]\nbinary = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Par2.Binary != "par2tbb" {
		t.Fatalf("expected binary from env, got %q", cfg.Par2.Binary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "redundancy", content: "[par2]\nredundancy = 0\n", want: "par2.redundancy"},
		{name: "quiet", content: "[par2]\nquiet_level = 3\n", want: "par2.quiet_level"},
		{name: "jobs", content: "[run]\njobs = -2\n", want: "run.jobs"},
		{name: "format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "exclude path", content: "[scan]\nexclude_dirs = [\"a/b\"]\n", want: "scan.exclude_dirs"},
		{name: "unknown key", content: "[par2]\nbogus = true\n", want: "parse config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	want := config.Default()
	if cfg.Par2.Redundancy != want.Par2.Redundancy || cfg.Run.Jobs != want.Run.Jobs {
		t.Fatalf("sample diverges from defaults: %+v", cfg)
	}
	if diff := cmp.Diff(want.Scan.Extensions, cfg.Scan.Extensions); diff != "" {
		t.Fatalf("sample extensions mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureDirectoriesCreatesLockAndLogDirs(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Run.LockDir = filepath.Join(base, "locks")
	cfg.Logging.Dir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Run.LockDir, cfg.Logging.Dir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
