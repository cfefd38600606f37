package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"par2r/internal/archive"
	"par2r/internal/config"
	"par2r/internal/logging"
	"par2r/internal/scan"
)

// Dispatcher selects the operation for an action.
type Dispatcher interface {
	Operation(action archive.Action) (archive.Operation, error)
}

// Run is the outcome of one invocation.
type Run struct {
	ID        string
	Action    archive.Action
	Root      string
	StartedAt time.Time
	Elapsed   time.Duration
	Results   []archive.Result
}

// Runner coordinates scanning and dispatch.
type Runner struct {
	cfg        *config.Config
	dispatcher Dispatcher
	logger     *slog.Logger
}

// New constructs a runner.
func New(cfg *config.Config, dispatcher Dispatcher, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || dispatcher == nil {
		return nil, errors.New("runner requires config and dispatcher")
	}
	return &Runner{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logging.NewComponentLogger(logger, "runner"),
	}, nil
}

// Run applies action to every target directory under root.
func (r *Runner) Run(ctx context.Context, action archive.Action, root string) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Action:    action,
		StartedAt: time.Now(),
	}
	ctx = logging.WithRunID(ctx, run.ID)
	logger := logging.WithContext(ctx, r.logger).With(logging.String(logging.FieldAction, action.String()))

	op, err := r.dispatcher.Operation(action)
	if err != nil {
		return run, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return run, fmt.Errorf("resolve root %q: %w", root, err)
	}
	run.Root = absRoot

	lock, err := acquireLock(r.cfg.Run.LockDir, absRoot)
	if err != nil {
		return run, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.WarnWithContext(logger, "release run lock failed", "lock_release_failed",
				logging.Error(err),
				logging.String("lock", lock.Path()),
				logging.String(logging.FieldImpact, "stale lock file left behind; it is reusable"),
			)
		}
	}()

	targets, err := scan.TargetDirs(absRoot, scan.Options{
		Extensions:  scan.NewExtensionSet(r.cfg.Scan.Extensions),
		ExcludeDirs: r.cfg.Scan.ExcludeDirs,
	})
	if err != nil {
		return run, err
	}
	logger.Info("scan complete",
		logging.String("root", absRoot),
		logging.Int("targets", len(targets)),
		logging.Int("jobs", r.cfg.Run.Jobs),
	)

	run.Results, err = r.dispatch(ctx, logger, op, targets)
	run.Elapsed = time.Since(run.StartedAt)
	if err != nil {
		return run, err
	}

	logger.Info("run finished",
		logging.Int("targets", len(targets)),
		logging.Duration("elapsed", run.Elapsed),
	)
	return run, nil
}

func (r *Runner) dispatch(ctx context.Context, logger *slog.Logger, op archive.Operation, targets []string) ([]archive.Result, error) {
	if r.cfg.Run.Jobs <= 1 || len(targets) <= 1 {
		results := make([]archive.Result, 0, len(targets))
		for _, dir := range targets {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results = append(results, r.process(ctx, logger, op, dir))
		}
		return results, nil
	}

	slots := make([]archive.Result, len(targets))
	done := make([]bool, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Run.Jobs)
	for i, dir := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = r.process(gctx, logger, op, dir)
			done[i] = true
			return nil
		})
	}
	err := g.Wait()

	results := make([]archive.Result, 0, len(targets))
	for i := range slots {
		if done[i] {
			results = append(results, slots[i])
		}
	}
	return results, err
}

func (r *Runner) process(ctx context.Context, logger *slog.Logger, op archive.Operation, dir string) archive.Result {
	result := op(logging.WithDir(ctx, dir), dir)
	attrs := []logging.Attr{
		logging.String(logging.FieldDir, dir),
		logging.Int("exit_code", result.Code),
		logging.Bool("invoked", result.Invoked),
		logging.Duration("duration", result.Duration),
	}
	if result.Err != nil {
		logging.ErrorWithContext(logger, "par2 could not be run", "par2_launch_failed",
			append(attrs, logging.Error(result.Err),
				logging.Alert("par2_unavailable"),
				logging.String(logging.FieldErrorHint, "check par2.binary and that par2 is installed"))...)
		return result
	}
	logger.Debug("directory processed", logging.Args(attrs...)...)
	return result
}
