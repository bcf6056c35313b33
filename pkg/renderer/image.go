package renderer

import (
	"image"
	"image/color"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// ToByte maps a gamma corrected channel in [0, 1] to 0-255
func ToByte(c float64) uint8 {
	return uint8(256 * max(0, min(c, 0.999)))
}

// ToImage converts gamma corrected row-major pixels, top row first, into an
// 8-bit image
func ToImage(width, height int, pixels []core.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: ToByte(c.X),
				G: ToByte(c.Y),
				B: ToByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}
