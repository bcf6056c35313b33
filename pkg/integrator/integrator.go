// Package integrator computes the radiance carried back along a camera ray.
package integrator

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use with distinct samplers.
type Integrator interface {
	// RayColor returns the radiance arriving along ray after at most depth
	// bounces through world
	RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}

// Background is a vertical sky gradient used wherever a ray escapes the scene
type Background struct {
	Horizon core.Vec3 // Color for rays pointing straight down
	Zenith  core.Vec3 // Color for rays pointing straight up
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the background radiance for an escaping ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(t, b.Horizon, b.Zenith)
}
