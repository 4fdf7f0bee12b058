package main

import (
	"fmt"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/internal/cli"
	"github.com/kestrel9/syskit/pkg/sysrun"
)

var runHeartbeat time.Duration

var runCmd = &cobra.Command{
	Use:   "run <cmdline | program args...>",
	Short: "Run a program without shell interpretation",
	Long: `Run a program from an argument vector, bypassing the shell.

A single argument is split into a vector with shell-style word rules
(quotes and escapes are honored, but nothing is expanded or interpreted).
Multiple arguments are used as the vector directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&runHeartbeat, "heartbeat", 0, "Print a liveness message at this interval while the command runs")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(assumeYes)
	if err != nil {
		return err
	}

	argv := args
	if len(args) == 1 {
		argv, err = shellquote.Split(args[0])
		if err != nil {
			return fmt.Errorf("invalid command line: %w", err)
		}
		if len(argv) == 0 {
			return fmt.Errorf("empty command line")
		}
	}

	if !sysrun.CommandExists(argv[0]) {
		return fmt.Errorf("command not found: %s", argv[0])
	}

	stop := startHeartbeat(ctx, runHeartbeat)
	status, err := ctx.Runner.Exec(argv[0], argv[1:]...)
	stop()
	if err != nil {
		return err
	}

	reportStatus(ctx, status)
	return nil
}
