package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/internal/cli"
	"github.com/kestrel9/syskit/internal/heartbeat"
	"github.com/kestrel9/syskit/pkg/sysrun"
	"github.com/kestrel9/syskit/pkg/version"
)

var assumeYes bool

var rootCmd = &cobra.Command{
	Use:   "syskit",
	Short: "System command and output utilities",
	Long: `syskit is a small command-execution and printing toolkit.

Commands:
  run    - execute a program from an argument vector (no shell)
  shell  - execute a command line through the system shell
  hello  - print the fixed greeting
  print  - print text verbatim
  clean  - empty a directory

Shell execution is a full-privilege pass-through to the operating system
command interpreter: whatever the command line does, this process's
privileges allow. Prefer run unless shell features are required.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.AddCommand(versionCmd)
}

// startHeartbeat begins liveness messages at the given interval, falling
// back to the configured default when the flag interval is zero. The
// returned function stops the messages.
func startHeartbeat(ctx *cli.Context, interval time.Duration) func() {
	if interval == 0 {
		interval = ctx.Config.HeartbeatInterval()
	}
	if interval <= 0 {
		return func() {}
	}
	hb := heartbeat.Start(interval, func() {
		ctx.UI.Info("still running...")
	})
	return hb.Stop
}

// reportStatus prints the outcome of an executed command and exits the
// process with the decoded exit code when it is non-zero.
func reportStatus(ctx *cli.Context, status int) {
	code := sysrun.ExitStatus(status)
	if signaled, sig := sysrun.Signaled(status); signaled {
		ctx.UI.Warningf("Command terminated by signal %d (raw status %d)", sig, status)
	} else if code != 0 {
		ctx.UI.Warningf("Command exited with code %d (raw status %d)", code, status)
	} else {
		ctx.UI.Successf("Command succeeded (raw status %d)", status)
	}
	if code != 0 {
		os.Exit(code)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
