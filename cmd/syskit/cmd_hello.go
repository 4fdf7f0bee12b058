package main

import (
	"github.com/spf13/cobra"

	"github.com/kestrel9/syskit/pkg/echo"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Print the greeting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		echo.HelloWorld()
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
