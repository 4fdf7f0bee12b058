package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/internal/cli"
	"github.com/kestrel9/syskit/pkg/echo"
)

var printNewline bool

var printCmd = &cobra.Command{
	Use:   "print <text>...",
	Short: "Print text verbatim",
	Long: `Print text exactly as given, with no trailing newline by default.

Printf-style directives embedded in the text are emitted literally, never
interpreted; a warning on stderr points them out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVarP(&printNewline, "newline", "n", false, "Append a trailing newline")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(assumeYes)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if dirs := echo.FormatDirectives(text); len(dirs) > 0 {
		ctx.UI.Warningf("Text contains format directives (%s); printing them literally", strings.Join(dirs, " "))
	}

	echo.Print(text)
	if printNewline {
		echo.Print("\n")
	}
	return nil
}
