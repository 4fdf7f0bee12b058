package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/internal/cli"
	"github.com/kestrel9/syskit/internal/projectroot"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <dir>",
	Short: "Remove everything inside a directory",
	Long: `Remove every entry inside a directory, keeping the directory itself.

A relative path resolves against the project root: the nearest parent
directory of the working directory containing a .git entry or a go.mod
file.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(assumeYes)
	if err != nil {
		return err
	}

	ok, err := ctx.Confirm(fmt.Sprintf("Remove all contents of %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		ctx.UI.Info("Aborted")
		return nil
	}

	if err := projectroot.ClearDir(args[0]); err != nil {
		return err
	}
	ctx.UI.Successf("Cleared %s", args[0])
	return nil
}
