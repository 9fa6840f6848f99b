package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-script/internal/codec"
	"github.com/ironsheep/image-script/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute an editing script (use - to read it from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	addCodecFlags(runCmd)
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print a line per executed command")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	opts, err := codecOptions(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	path := args[0]
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}

	debugf("running %s (jpeg quality %d, auto-orient %v)", path, opts.JPEGQuality, opts.AutoOrient)
	n, err := script.Run(in, script.NewSession(codec.New(opts)), out)
	if err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	debugf("%s: %d commands executed", path, n)
	return nil
}
