package renderer

import (
	"errors"
	"fmt"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// ErrBufferMismatch is returned when adding buffers of different sizes
var ErrBufferMismatch = errors.New("buffer dimensions do not match")

// Buffer accumulates raw radiance sums for a full frame. Pixels are stored
// row-major with the top row first.
type Buffer struct {
	Width, Height int
	Samples       int // Samples summed into every pixel
	Pixels        []core.Vec3
}

// NewBuffer creates an empty buffer
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Add sums other into b
func (b *Buffer) Add(other *Buffer) error {
	if other.Width != b.Width || other.Height != b.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrBufferMismatch, b.Width, b.Height, other.Width, other.Height)
	}
	for i := range b.Pixels {
		b.Pixels[i] = b.Pixels[i].Add(other.Pixels[i])
	}
	b.Samples += other.Samples
	return nil
}

// At returns the raw sum for column x of the given row, row 0 being the top
func (b *Buffer) At(x, row int) core.Vec3 {
	return b.Pixels[row*b.Width+x]
}

// Resolve averages the sums and applies gamma 2. An empty buffer resolves
// to black.
func (b *Buffer) Resolve() []core.Vec3 {
	pixels := make([]core.Vec3, len(b.Pixels))
	if b.Samples == 0 {
		return pixels
	}
	for i, sum := range b.Pixels {
		pixels[i] = resolvePixel(sum, b.Samples)
	}
	return pixels
}
