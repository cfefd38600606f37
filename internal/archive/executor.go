package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Executor abstracts command execution for testability.
//
// Run starts binary with args inside dir and waits for it. A process that
// ran to completion yields its exit code and a nil error, whatever the code.
// A non-nil error means the process could not be started or was killed.
type Executor interface {
	Run(ctx context.Context, dir, binary string, args []string) (code int, output []byte, err error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, dir, binary string, args []string) (int, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if err == nil {
		return 0, output.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, output.Bytes(), fmt.Errorf("%s interrupted: %w", binary, ctxErr)
		}
		code := exitErr.ExitCode()
		if code < 0 {
			return code, output.Bytes(), fmt.Errorf("%s terminated: %w", binary, err)
		}
		return code, output.Bytes(), nil
	}
	return -1, output.Bytes(), fmt.Errorf("run %s: %w", binary, err)
}
