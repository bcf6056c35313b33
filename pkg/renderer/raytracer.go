package renderer

import (
	"errors"
	"fmt"

	"github.com/Lucifier129/go-ray-tracing/pkg/camera"
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/integrator"
)

// ErrInvalidConfig is returned when sampling settings cannot produce an image
var ErrInvalidConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports settings that cannot produce an image
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Raytracer turns a camera and a world into pixel colors. It holds no
// mutable state, so one instance may be shared by many goroutines as long
// as each passes its own sampler.
type Raytracer struct {
	camera     camera.Camera
	world      geometry.Hittable
	config     SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer. A nil integrator selects the
// default path tracer.
func NewRaytracer(cam camera.Camera, world geometry.Hittable, config SamplingConfig, integ integrator.Integrator) *Raytracer {
	if integ == nil {
		integ = integrator.NewPathTracingIntegrator(integrator.DefaultConfig())
	}
	return &Raytracer{
		camera:     cam,
		world:      world,
		config:     config,
		integrator: integ,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// checkPixel panics on coordinates outside the image. Pixel addresses come
// from the caller's loops, so a bad one is a programming error.
func (rt *Raytracer) checkPixel(x, y int) {
	if x < 0 || y < 0 || x >= rt.config.Width || y >= rt.config.Height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside %dx%d image", x, y, rt.config.Width, rt.config.Height))
	}
}

// SamplePixel traces one jittered ray through pixel (x, y), y counted from
// the bottom row, and returns its linear radiance
func (rt *Raytracer) SamplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	rt.checkPixel(x, y)

	// A one pixel wide image still needs a usable denominator
	du := float64(max(rt.config.Width-1, 1))
	dv := float64(max(rt.config.Height-1, 1))

	u := (float64(x) + sampler.Get1D()) / du
	v := (float64(y) + sampler.Get1D()) / dv

	ray := rt.camera.GetRay(u, v, sampler)
	return rt.integrator.RayColor(ray, rt.world, rt.config.MaxDepth, sampler)
}

// samplePixelSum adds up samples jittered radiance values for one pixel
func (rt *Raytracer) samplePixelSum(x, y, samples int, sampler core.Sampler) core.Vec3 {
	var colorAccum core.Vec3
	for s := 0; s < samples; s++ {
		colorAccum = colorAccum.Add(rt.SamplePixel(x, y, sampler))
	}
	return colorAccum
}

// RenderPixel averages samples jittered rays through pixel (x, y), y counted
// from the bottom row, and applies gamma 2
func (rt *Raytracer) RenderPixel(x, y, samples int, sampler core.Sampler) core.Vec3 {
	rt.checkPixel(x, y)
	if samples <= 0 {
		panic(fmt.Sprintf("renderer: samples per pixel must be positive, got %d", samples))
	}
	return resolvePixel(rt.samplePixelSum(x, y, samples, sampler), samples)
}

// RenderAll renders every pixel with the configured sample count. The
// result is row-major with the top row first.
func (rt *Raytracer) RenderAll(sampler core.Sampler) []core.Vec3 {
	w, h := rt.config.Width, rt.config.Height
	pixels := make([]core.Vec3, 0, w*h)

	for j := h - 1; j >= 0; j-- {
		for i := 0; i < w; i++ {
			pixels = append(pixels, rt.RenderPixel(i, j, rt.config.SamplesPerPixel, sampler))
		}
	}

	return pixels
}

// RenderSamples traces samples rays through every pixel and returns the raw
// radiance sums. Buffers from independent batches can be added together.
func (rt *Raytracer) RenderSamples(samples int, sampler core.Sampler) *Buffer {
	w, h := rt.config.Width, rt.config.Height
	buffer := NewBuffer(w, h)
	buffer.Samples = samples

	for j := h - 1; j >= 0; j-- {
		row := h - 1 - j
		for i := 0; i < w; i++ {
			buffer.Pixels[row*w+i] = rt.samplePixelSum(i, j, samples, sampler)
		}
	}

	return buffer
}

// resolvePixel turns a radiance sum into a display value with gamma 2
func resolvePixel(sum core.Vec3, samples int) core.Vec3 {
	return sum.Divide(float64(samples)).Sqrt()
}
