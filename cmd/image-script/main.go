package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "image-script",
	Short: "Run image editing scripts or serve them over MCP",
	Long: `image-script edits raster images with small command scripts:

  open photo.png
  crop 10 10 200 100
  median_filter 3
  save thumb.png

Use "image-script commands" for the list of script commands.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogging(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (or set "+logLevelEnv+"=debug)")
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(versionText())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
