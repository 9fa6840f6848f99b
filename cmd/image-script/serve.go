package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-script/internal/codec"
	"github.com/ironsheep/image-script/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an editing session over MCP on stdin/stdout",
	Long: `Serve an editing session over the MCP protocol on stdin/stdout.

Configure it in your MCP client (e.g., Claude Desktop) as a stdio server.
Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addCodecFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := codecOptions(cmd)
	if err != nil {
		return err
	}

	debugf("Image Script MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New(codec.New(opts), Version)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
