// Package scene assembles worlds, cameras and render settings into
// ready-to-render demo scenes.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/camera"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/integrator"
	"github.com/Lucifier129/go-ray-tracing/pkg/renderer"
)

var (
	// ErrUnknownScene is returned when no scene is registered under a name
	ErrUnknownScene = errors.New("unknown scene")
	// ErrCameraNotMovable is returned when moving a camera without a
	// keyboard control
	ErrCameraNotMovable = errors.New("camera cannot be moved")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Description  string
	Camera       camera.Camera
	World        *geometry.HittableList
	Sampling     renderer.SamplingConfig
	CameraConfig camera.Config
	Integrator   integrator.Integrator
}

// Raytracer returns a raytracer for the scene's current camera
func (s *Scene) Raytracer() *renderer.Raytracer {
	return renderer.NewRaytracer(s.Camera, s.World, s.Sampling, s.Integrator)
}

// Move repositions the scene's exposure camera. It must not be called while
// a render of the scene is in flight.
func (s *Scene) Move(m camera.Movement) error {
	cam, ok := s.Camera.(*camera.ExposureCamera)
	if !ok {
		return fmt.Errorf("scene %q: %w", s.Name, ErrCameraNotMovable)
	}
	cam.Move(m)
	s.CameraConfig = cam.Config()
	return nil
}

// Options overrides scene defaults. Zero values keep the scene's own setting.
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64    // Layout seed for generated scenes
	SphereCount     int      // Small sphere budget for generated scenes
	Aperture        *float64 // Lens aperture; nil keeps the scene default
}

// sampling merges the overrides into base. A width without a height keeps
// the base aspect ratio.
func (o Options) sampling(base renderer.SamplingConfig) renderer.SamplingConfig {
	cfg := base
	if o.Width > 0 {
		cfg.Width = o.Width
		if o.Height <= 0 {
			cfg.Height = max(1, int(math.Round(float64(o.Width)/base.AspectRatio())))
		}
	}
	if o.Height > 0 {
		cfg.Height = o.Height
	}
	if o.SamplesPerPixel > 0 {
		cfg.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.MaxDepth > 0 {
		cfg.MaxDepth = o.MaxDepth
	}
	return cfg
}

// aperture returns the override or fallback
func (o Options) aperture(fallback float64) float64 {
	if o.Aperture != nil {
		return *o.Aperture
	}
	return fallback
}

// defaultSampling returns the settings the demo scenes start from
func defaultSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}
