package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"par2r/internal/config"
	"par2r/internal/logging"
)

const (
	// Extension is the suffix of every archive par2r creates.
	Extension = ".par2"
	// MissingArchiveCode is reported when verify or repair finds no archive.
	// par2 itself never exits with this value.
	MissingArchiveCode = 10

	selectAll       = "*"
	maxOutputBytes  = 4096
	rootArchiveStem = "root"
)

// Result is the outcome of one operation on one directory.
type Result struct {
	Dir    string
	Action Action
	// Code is par2's exit code, MissingArchiveCode when the archive was
	// absent, or -1 when par2 could not be run.
	Code int
	// Invoked is false when the operation short-circuited without running par2.
	Invoked  bool
	Args     []string
	Output   string
	Err      error
	Duration time.Duration
}

// Missing reports whether the operation found no archive to work with.
func (r Result) Missing() bool {
	return !r.Invoked && r.Err == nil && r.Code == MissingArchiveCode
}

// Operation runs one action against one directory.
type Operation func(ctx context.Context, dir string) Result

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the logger used for per-invocation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds each par2 invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// Client wraps par2 CLI interactions.
type Client struct {
	settings config.Par2
	timeout  time.Duration
	exec     Executor
	logger   *slog.Logger
}

// New constructs a par2 client from the [par2] config section.
func New(settings config.Par2, opts ...Option) (*Client, error) {
	settings.Binary = strings.TrimSpace(settings.Binary)
	if settings.Binary == "" {
		return nil, errors.New("par2 binary required")
	}
	client := &Client{
		settings: settings,
		exec:     commandExecutor{},
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "archive")
	return client, nil
}

// Operation selects the function implementing action.
func (c *Client) Operation(action Action) (Operation, error) {
	switch action {
	case ActionCreate:
		return c.Create, nil
	case ActionVerify:
		return c.Verify, nil
	case ActionRepair:
		return c.Repair, nil
	default:
		return nil, fmt.Errorf("unsupported action %s", action)
	}
}

// Create writes a new archive for dir covering every file in it.
func (c *Client) Create(ctx context.Context, dir string) Result {
	return c.invoke(ctx, ActionCreate, dir, CreateArgs(c.settings, ArchiveName(dir)))
}

// Verify checks the files in dir against its archive.
func (c *Client) Verify(ctx context.Context, dir string) Result {
	return c.withArchive(ctx, ActionVerify, dir)
}

// Repair restores damaged files in dir from its archive.
func (c *Client) Repair(ctx context.Context, dir string) Result {
	return c.withArchive(ctx, ActionRepair, dir)
}

func (c *Client) withArchive(ctx context.Context, action Action, dir string) Result {
	name := ArchiveName(dir)
	if !archiveExists(filepath.Join(dir, name)) {
		logging.WithContext(logging.WithDir(ctx, dir), c.logger).Debug("archive missing; par2 not started",
			logging.String(logging.FieldAction, action.String()),
			logging.String("archive", name),
		)
		return Result{Dir: dir, Action: action, Code: MissingArchiveCode}
	}
	return c.invoke(ctx, action, dir, CheckArgs(action, c.settings, name))
}

func (c *Client) invoke(ctx context.Context, action Action, dir string, args []string) Result {
	logger := logging.WithContext(logging.WithDir(ctx, dir), c.logger)

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger.Debug("invoking par2",
		logging.String(logging.FieldAction, action.String()),
		logging.String("binary", c.settings.Binary),
		logging.Any("args", args),
	)

	started := time.Now()
	code, output, err := c.exec.Run(runCtx, dir, c.settings.Binary, args)
	result := Result{
		Dir:      dir,
		Action:   action,
		Code:     code,
		Invoked:  true,
		Args:     args,
		Output:   tail(output, maxOutputBytes),
		Err:      err,
		Duration: time.Since(started),
	}
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		result.Err = fmt.Errorf("par2 timed out after %s: %w", c.timeout, err)
	}
	if result.Err != nil && result.Code >= 0 {
		result.Code = -1
	}

	logger.Debug("par2 finished",
		logging.String(logging.FieldAction, action.String()),
		logging.Int("exit_code", result.Code),
		logging.Duration("duration", result.Duration),
		logging.String("output", result.Output),
	)
	return result
}

// ArchiveName derives the archive filename from the directory's own name.
func ArchiveName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == string(filepath.Separator) || base == "." || base == "" {
		base = rootArchiveStem
	}
	return base + Extension
}

// CreateArgs builds the par2 arguments for creating archive.
func CreateArgs(settings config.Par2, archive string) []string {
	args := []string{ActionCreate.String()}
	if settings.Redundancy > 0 {
		args = append(args, "-r"+strconv.Itoa(settings.Redundancy))
	}
	if settings.Threads != "" {
		args = append(args, "-t"+settings.Threads)
	}
	if settings.RecoveryFiles > 0 {
		args = append(args, "-n"+strconv.Itoa(settings.RecoveryFiles))
	}
	args = appendQuiet(args, settings.QuietLevel)
	return append(args, archive, selectAll)
}

// CheckArgs builds the par2 arguments for verify or repair.
func CheckArgs(action Action, settings config.Par2, archive string) []string {
	args := appendQuiet([]string{action.String()}, settings.QuietLevel)
	return append(args, archive, selectAll)
}

func appendQuiet(args []string, level int) []string {
	for i := 0; i < level; i++ {
		args = append(args, "-q")
	}
	return args
}

func archiveExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func tail(output []byte, limit int) string {
	trimmed := strings.TrimSpace(string(output))
	if len(trimmed) <= limit {
		return trimmed
	}
	cut := len(trimmed) - limit
	for cut < len(trimmed) && !utf8.RuneStart(trimmed[cut]) {
		cut++
	}
	return "..." + trimmed[cut:]
}
