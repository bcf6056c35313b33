package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples accumulated in every pixel
	MaxSamples      int           // Samples per pixel the render is heading for
	Passes          int           // Progressive passes completed
	Elapsed         time.Duration // Wall time spent so far
}

// NewRenderStats summarizes a buffer
func NewRenderStats(buffer *Buffer, maxSamples, passes int, elapsed time.Duration) RenderStats {
	pixels := buffer.Width * buffer.Height
	return RenderStats{
		TotalPixels:     pixels,
		TotalSamples:    pixels * buffer.Samples,
		SamplesPerPixel: buffer.Samples,
		MaxSamples:      maxSamples,
		Passes:          passes,
		Elapsed:         elapsed,
	}
}

// Progress returns the completed fraction in [0, 1]
func (s RenderStats) Progress() float64 {
	if s.MaxSamples <= 0 {
		return 1
	}
	return min(float64(s.SamplesPerPixel)/float64(s.MaxSamples), 1)
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d/%d spp, %d passes in %v",
		s.TotalPixels, s.SamplesPerPixel, s.MaxSamples, s.Passes, s.Elapsed.Round(time.Millisecond))
}
