package server

import (
	"testing"

	"github.com/ironsheep/image-script/internal/raster"
)

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		c       raster.Color
		wantHex string
		wantHSL HSLColor
	}{
		{"red", raster.Color{R: 255, G: 0, B: 0}, "#FF0000", HSLColor{0, 100, 50}},
		{"green", raster.Color{R: 0, G: 255, B: 0}, "#00FF00", HSLColor{120, 100, 50}},
		{"blue", raster.Color{R: 0, G: 0, B: 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", raster.White, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", raster.Black, "#000000", HSLColor{0, 0, 0}},
		{"grey", raster.Color{R: 128, G: 128, B: 128}, "#808080", HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := raster.New(2, 2, tt.c)
			got, err := sampleColor(img, 1, 1)
			if err != nil {
				t.Fatalf("sampleColor failed: %v", err)
			}
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
			if got.RGB != tt.c {
				t.Errorf("RGB: got %v, want %v", got.RGB, tt.c)
			}
			if got.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.wantHSL)
			}
			if got.X != 1 || got.Y != 1 {
				t.Errorf("position: got (%d,%d), want (1,1)", got.X, got.Y)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img, _ := raster.New(3, 3, raster.Black)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := sampleColor(img, p[0], p[1]); err == nil {
			t.Errorf("sampleColor(%d,%d) should fail", p[0], p[1])
		}
	}
}
