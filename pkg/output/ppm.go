// Package output writes rendered frames to disk and to streams.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/renderer"
)

// WritePPM writes gamma-corrected pixels, row-major with the top row first,
// as a plain-text P3 image
func WritePPM(w io.Writer, width, height int, pixels []core.Vec3) error {
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: %d pixels for a %dx%d image", len(pixels), width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, c := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", renderer.ToByte(c.X), renderer.ToByte(c.Y), renderer.ToByte(c.Z))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	return nil
}
