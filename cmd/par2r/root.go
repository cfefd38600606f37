package main

import (
	"errors"

	"github.com/spf13/cobra"

	"par2r/internal/archive"
)

var errActionRequired = errors.New("action required (choose from create, c, verify, v, repair, r)")

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "par2r",
		Short:         "Create, verify, and repair par2 archives for media directories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          rejectUnknownAction,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	for _, action := range archive.Actions {
		rootCmd.AddCommand(newActionCommand(ctx, action))
	}
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// rejectUnknownAction fails a bare invocation or an unrecognised first
// argument; help stays available through --help.
func rejectUnknownAction(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errActionRequired
	}
	_, err := archive.ParseAction(args[0])
	return err
}
