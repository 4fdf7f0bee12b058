package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/internal/cli"
)

var shellHeartbeat time.Duration

var shellCmd = &cobra.Command{
	Use:   "shell <command>...",
	Short: "Run a command line through the system shell",
	Long: `Run a command line through the operating system command interpreter.

The arguments are joined with spaces and handed to the shell with no
quoting or escaping, so shell metacharacters (pipes, redirection,
expansion) are interpreted and the command runs with the full privileges
of this process. A confirmation prompt guards the execution; pass --yes to
skip it. Use run for plain program execution without a shell.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShell,
}

func init() {
	shellCmd.Flags().DurationVar(&shellHeartbeat, "heartbeat", 0, "Print a liveness message at this interval while the command runs")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(assumeYes)
	if err != nil {
		return err
	}

	command := strings.Join(args, " ")
	ok, err := ctx.Confirm(fmt.Sprintf("Run %q through the system shell?", command))
	if err != nil {
		return err
	}
	if !ok {
		ctx.UI.Info("Aborted")
		return nil
	}

	stop := startHeartbeat(ctx, shellHeartbeat)
	status, err := ctx.Runner.Shell(command)
	stop()
	if err != nil {
		return err
	}

	reportStatus(ctx, status)
	return nil
}
