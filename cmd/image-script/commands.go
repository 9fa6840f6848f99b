package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-script/internal/script"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the script commands",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range script.Commands {
			fmt.Fprintf(out, "  %-40s %s\n", c.Usage, c.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
