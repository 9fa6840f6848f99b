package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-script/internal/codec"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Print dimensions and format of an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := codec.New(codec.Options{}).Info(path)
	if err != nil {
		return fmt.Errorf("identifying %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Color depth: %s\n", info.ColorDepth)
	fmt.Fprintf(out, "Alpha:       %v\n", info.HasAlpha)
	fmt.Fprintf(out, "File size:   %d bytes\n", info.FileSizeBytes)
	return nil
}
