package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"par2r/internal/config"
	"par2r/internal/deps"
	"par2r/internal/preflight"
	"par2r/internal/report"
)

// errCheckFailed signals that check found a blocking problem.
var errCheckFailed = errors.New("system check failed")

type checkReport struct {
	ConfigPath   string        `json:"config_path"`
	ConfigExists bool          `json:"config_exists"`
	Dependencies []deps.Status `json:"dependencies"`
	Directory    *dirCheck     `json:"directory,omitempty"`
}

type dirCheck struct {
	Path   string `json:"path"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var write bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that par2 is installed and the configuration is usable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rep := checkReport{
				ConfigPath:   ctx.configPath,
				ConfigExists: ctx.configExists,
				Dependencies: deps.CheckBinaries(deps.Par2Requirements(cfg.Par2.Binary)),
			}
			if len(args) == 1 {
				result := preflight.CheckDirectoryAccess("Directory", args[0], write)
				rep.Directory = &dirCheck{Path: args[0], Passed: result.Passed, Detail: result.Detail}
			}

			if jsonOut {
				if err := writeJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				printCheckReport(cmd, cfg, rep)
			}

			if len(deps.MissingRequired(rep.Dependencies)) > 0 || (rep.Directory != nil && !rep.Directory.Passed) {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Write the check report as JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Also require write access to the directory (create/repair)")
	return cmd
}

func printCheckReport(cmd *cobra.Command, cfg *config.Config, rep checkReport) {
	out := cmd.OutOrStdout()
	colorize := report.ShouldColorize(out)

	var lines []string
	lines = append(lines, renderSectionHeader("Configuration", colorize)...)
	configMsg := rep.ConfigPath
	if !rep.ConfigExists {
		configMsg += " (not found, defaults in use)"
	}
	lines = append(lines,
		renderStatusLine("Config file", report.KindInfo, configMsg, colorize),
		renderStatusLine("Extensions", report.KindInfo, strings.Join(cfg.Scan.Extensions, " "), colorize),
		renderStatusLine("Jobs", report.KindInfo, strconv.Itoa(cfg.Run.Jobs), colorize),
		renderStatusLine("Ignore failures", report.KindInfo, yesNo(cfg.Run.IgnoreFailures), colorize),
		"",
	)

	lines = append(lines, renderSectionHeader("Dependencies", colorize)...)
	rows := make([][]string, 0, len(rep.Dependencies))
	for _, status := range rep.Dependencies {
		detail := status.Detail
		if status.Available {
			detail = status.Path
		}
		rows = append(rows, []string{status.Name, status.Command, yesNo(status.Available), detail})
	}
	lines = append(lines, renderTable([]string{"Name", "Command", "Available", "Detail"}, rows, nil))
	for _, status := range rep.Dependencies {
		kind, msg := report.KindOK, "available"
		if !status.Available {
			kind, msg = report.KindError, status.Detail
			if status.Optional {
				kind = report.KindWarn
			}
		}
		lines = append(lines, renderStatusLine(status.Name, kind, msg, colorize))
	}

	if rep.Directory != nil {
		lines = append(lines, "")
		lines = append(lines, renderSectionHeader("Directory", colorize)...)
		kind := report.KindOK
		if !rep.Directory.Passed {
			kind = report.KindError
		}
		lines = append(lines, renderStatusLine("Access", kind, rep.Directory.Detail, colorize))
	}

	fmt.Fprintln(out, strings.Join(lines, "\n"))
}
