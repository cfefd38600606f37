package testsupport

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Par2Call records a single invocation of the stub par2 binary.
type Par2Call struct {
	Dir  string
	Args []string
}

// Par2Stub is a shell script standing in for par2. It appends every call to a
// log, touches the archive on create, and exits with a per-directory code.
type Par2Stub struct {
	Path      string
	logPath   string
	codesPath string
}

const par2StubScript = `#!/bin/sh
dir=$(pwd)
{ printf '%%s' "$dir"; for arg in "$@"; do printf '\t%%s' "$arg"; done; printf '\n'; } >> %q
archive=""
last=""
for arg in "$@"; do archive="$last"; last="$arg"; done
if [ "$1" = "create" ] && [ -n "$archive" ]; then : > "$archive"; fi
code=0
if [ -f %q ]; then
  found=$(awk -F '\t' -v d="$(basename "$dir")" '$1 == d { print $2 }' %q)
  if [ -n "$found" ]; then code=$found; fi
fi
exit $code
`

// InstallPar2Stub writes a stub named par2 into a temp bin directory and
// prepends it to PATH for the duration of the test.
func InstallPar2Stub(t testing.TB) *Par2Stub {
	t.Helper()

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	stub := &Par2Stub{
		Path:      filepath.Join(binDir, "par2"),
		logPath:   filepath.Join(binDir, "calls.log"),
		codesPath: filepath.Join(binDir, "codes.tsv"),
	}
	script := fmt.Sprintf(par2StubScript, stub.logPath, stub.codesPath, stub.codesPath)
	if err := os.WriteFile(stub.Path, []byte(script), 0o755); err != nil {
		t.Fatalf("write par2 stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return stub
}

// SetExitCode makes the stub exit with code when run inside a directory
// named dirName.
func (s *Par2Stub) SetExitCode(t testing.TB, dirName string, code int) {
	t.Helper()

	f, err := os.OpenFile(s.codesPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open stub codes: %v", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\t%d\n", dirName, code); err != nil {
		t.Fatalf("write stub codes: %v", err)
	}
}

// Calls returns the recorded invocations in call order.
func (s *Par2Stub) Calls(t testing.TB) []Par2Call {
	t.Helper()

	f, err := os.Open(s.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("open stub log: %v", err)
	}
	defer f.Close()

	var calls []Par2Call
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) == 0 || fields[0] == "" {
			continue
		}
		calls = append(calls, Par2Call{Dir: fields[0], Args: fields[1:]})
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read stub log: %v", err)
	}
	return calls
}
