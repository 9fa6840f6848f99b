package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-script/internal/codec"
)

const jpegQualityEnv = "IMAGE_SCRIPT_JPEG_QUALITY"

func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().Int("jpeg-quality", codec.DefaultJPEGQuality, "JPEG quality (1-100) for saved .jpg files (or set "+jpegQualityEnv+")")
	cmd.Flags().Bool("auto-orient", false, "Apply the EXIF orientation of JPEG files when opening them")
}

// codecOptions reads the codec flags of cmd. The quality environment
// variable applies when the flag is not given.
func codecOptions(cmd *cobra.Command) (codec.Options, error) {
	quality, _ := cmd.Flags().GetInt("jpeg-quality")
	if !cmd.Flags().Changed("jpeg-quality") {
		if v := os.Getenv(jpegQualityEnv); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil {
				return codec.Options{}, fmt.Errorf("parsing %s: %w", jpegQualityEnv, err)
			}
			quality = q
		}
	}
	if quality < 1 || quality > 100 {
		return codec.Options{}, fmt.Errorf("jpeg quality %d outside 1-100", quality)
	}
	autoOrient, _ := cmd.Flags().GetBool("auto-orient")

	return codec.Options{JPEGQuality: quality, AutoOrient: autoOrient}, nil
}
