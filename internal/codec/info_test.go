package codec

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestInfo(t *testing.T) {
	c := New(Options{})
	path := createTestImage(t, 120, 80, color.NRGBA{255, 0, 0, 255})

	info, err := c.Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if info.Width != 120 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 120x80", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %q, want %q", info.Format, "png")
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %q, want %q", info.ColorDepth, "8-bit")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
	if c.Cache().Len() != 1 {
		t.Errorf("Info did not populate the cache")
	}
}

func TestInfo_XPM2(t *testing.T) {
	c := New(Options{})
	path := filepath.Join(t.TempDir(), "img.xpm2")
	if err := c.Encode(path, patternImage(t)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	info, err := c.Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Format != "xpm2" || info.Width != 4 || info.Height != 3 {
		t.Errorf("got %+v, want 4x3 xpm2", info)
	}
	if info.HasAlpha {
		t.Error("xpm2 image reported alpha")
	}
}

func TestInfo_NonExistent(t *testing.T) {
	c := New(Options{})
	if _, err := c.Info("/nonexistent/image.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestInfo_UnsupportedExtension(t *testing.T) {
	c := New(Options{})
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := c.Info(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
