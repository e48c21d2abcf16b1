package main

import (
	"os"

	"github.com/pat-lang/pat/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "pat [subcommand]",
	Short:        "pat 📬\n a type checker for mailbox-typed concurrent protocols",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
}
