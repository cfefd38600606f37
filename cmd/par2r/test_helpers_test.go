package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"par2r/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	lockDir    string
	root       string
	stub       *testsupport.Par2Stub
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("PAR2_BINARY", "")

	env := &cliTestEnv{
		configPath: filepath.Join(base, "par2r.toml"),
		lockDir:    filepath.Join(base, "locks"),
		root:       filepath.Join(base, "media"),
		stub:       testsupport.InstallPar2Stub(t),
	}
	if err := os.MkdirAll(env.root, 0o755); err != nil {
		t.Fatalf("mkdir media root: %v", err)
	}
	writeTestConfig(t, env.configPath, env.lockDir)
	return env
}

func writeTestConfig(t *testing.T, path, lockDir string) {
	t.Helper()
	content := fmt.Sprintf("[run]\nlock_dir = %q\n\n[logging]\nlevel = \"error\"\n", lockDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
