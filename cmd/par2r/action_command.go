package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"par2r/internal/archive"
	"par2r/internal/config"
	"par2r/internal/logging"
	"par2r/internal/preflight"
	"par2r/internal/report"
	"par2r/internal/runner"
)

// ErrRunFailed is returned when at least one directory did not succeed.
var ErrRunFailed = errors.New("par2 run finished with failures")

type runFlags struct {
	jobs           int
	json           bool
	summary        bool
	ignoreFailures bool
	logLevel       string
}

func newActionCommand(ctx *commandContext, action archive.Action) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s <dir>", action),
		Aliases: action.Aliases(),
		Short:   actionShort(action),
		Args:    directoryArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, cfg, flags); err != nil {
				return err
			}
			return runAction(cmd, cfg, action, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Directories processed at once (overrides run.jobs)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Write the report as JSON")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a summary table after the status lines")
	cmd.Flags().BoolVar(&flags.ignoreFailures, "ignore-failures", false, "Exit 0 even when directories failed")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	return cmd
}

func actionShort(action archive.Action) string {
	switch action {
	case archive.ActionCreate:
		return "Create a par2 archive in every media directory"
	case archive.ActionVerify:
		return "Verify media directories against their par2 archives"
	default:
		return "Repair media directories from their par2 archives"
	}
}

func directoryArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", args[0])
	}
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config, flags runFlags) error {
	if cmd.Flags().Changed("jobs") {
		if flags.jobs < 1 {
			return fmt.Errorf("--jobs must be at least 1 (got %d)", flags.jobs)
		}
		cfg.Run.Jobs = flags.jobs
	}
	if flags.ignoreFailures {
		cfg.Run.IgnoreFailures = true
	}
	if level := strings.ToLower(strings.TrimSpace(flags.logLevel)); level != "" {
		switch level {
		case "debug", "info", "warn", "error":
			cfg.Logging.Level = level
		default:
			return fmt.Errorf("--log-level: unsupported value %q", flags.logLevel)
		}
	}
	return nil
}

func runAction(cmd *cobra.Command, cfg *config.Config, action archive.Action, root string, flags runFlags) error {
	runStamp := time.Now().UTC().Format("20060102T150405.000Z")
	logger, logPath, err := logging.NewFromConfig(cfg, runStamp)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Logging.Dir, "par2r-*.log", logPath)

	if err := checkPreflight(logger, cfg, root, action); err != nil {
		return err
	}

	client, err := archive.New(cfg.Par2,
		archive.WithLogger(logger),
		archive.WithTimeout(cfg.Par2Timeout()),
	)
	if err != nil {
		return err
	}
	r, err := runner.New(cfg, client, logger)
	if err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, runErr := r.Run(signalCtx, action, root)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	summary := report.Summarize(run.Results, run.Elapsed)
	if err := printRun(cmd, run, summary, flags); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if summary.Failed() && !cfg.Run.IgnoreFailures {
		return fmt.Errorf("%w: %d of %d directories", ErrRunFailed, summary.Warnings+summary.Errors, summary.Total)
	}
	return nil
}

// checkPreflight fails the run when the root cannot be accessed. A missing
// par2 binary is only logged; each directory then reports it.
func checkPreflight(logger *slog.Logger, cfg *config.Config, root string, action archive.Action) error {
	var fatal []string
	for _, result := range preflight.Failures(preflight.RunAll(cfg, root, action.Writes())) {
		if result.Name == "par2" {
			logging.WarnWithContext(logger, "par2 binary not found", "preflight_binary_missing",
				logging.String("detail", result.Detail),
				logging.String(logging.FieldErrorHint, "install par2 or set par2.binary"),
				logging.String(logging.FieldImpact, "directories that need par2 will report an error"),
			)
			continue
		}
		fatal = append(fatal, fmt.Sprintf("%s: %s", result.Name, result.Detail))
	}
	if len(fatal) > 0 {
		return fmt.Errorf("preflight failed: %s", strings.Join(fatal, "; "))
	}
	return nil
}

func printRun(cmd *cobra.Command, run runner.Run, summary report.Summary, flags runFlags) error {
	if flags.json {
		return writeJSON(cmd, report.NewDocument(run.ID, run.Action, run.Root, run.StartedAt, run.Results, summary))
	}
	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out, report.ShouldColorize(out))
	if err := printer.Results(run.Results); err != nil {
		return err
	}
	if flags.summary {
		return printer.Summary(run.Action, summary)
	}
	return nil
}
