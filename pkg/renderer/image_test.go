package renderer

import (
	"image/color"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{0.999, 255},
		{1, 255},
		{7, 255},
	}

	for _, tt := range tests {
		if got := ToByte(tt.input); got != tt.expected {
			t.Errorf("ToByte(%f): expected %d, got %d", tt.input, tt.expected, got)
		}
	}
}

func TestToImage(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0.5, 0.5, 0.5),
	}

	img := ToImage(2, 2, pixels)

	expected := map[[2]int]color.RGBA{
		{0, 0}: {255, 0, 0, 255},
		{1, 0}: {0, 255, 0, 255},
		{0, 1}: {0, 0, 255, 255},
		{1, 1}: {128, 128, 128, 255},
	}
	for pos, want := range expected {
		if got := img.RGBAAt(pos[0], pos[1]); got != want {
			t.Errorf("Pixel %v: expected %v, got %v", pos, want, got)
		}
	}
}
