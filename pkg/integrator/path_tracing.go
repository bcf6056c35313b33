package integrator

import (
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
)

// Config holds the tunables of the path tracer
type Config struct {
	// ShadowEpsilon is the smallest accepted hit distance. It keeps a
	// scattered ray from re-hitting the surface it just left.
	ShadowEpsilon float64
	Background    Background
}

// DefaultConfig returns the standard path tracer settings
func DefaultConfig() Config {
	return Config{
		ShadowEpsilon: 0.001,
		Background:    DefaultBackground(),
	}
}

// PathTracingIntegrator implements unidirectional path tracing with uniform
// material scattering and no light sampling
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// Config returns the integrator settings
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor follows the path from ray through at most depth scattering
// events, multiplying the attenuation of every bounce into a running
// throughput. Absorption or an exhausted depth yields black; escaping the
// scene yields throughput times the background.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, pt.config.ShadowEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.config.Background.Color(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached, no more light is gathered
	return core.Vec3{}
}
